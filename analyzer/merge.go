package analyzer

import "fmt"

// MergeThreatVerdict folds the external feed answer into a local result.
// Three outcomes, no fall-through:
//
//   - confirmed phishing: fixed penalty, safety recomputed, verdict forced to
//     unsafe regardless of the threshold bands, fail check prepended
//   - confirmed clean: pass check prepended, scores untouched
//   - feed unavailable: the local result is returned exactly as given
func MergeThreatVerdict(local AnalysisResult, threat ThreatVerdict, cfg ScoringConfig) AnalysisResult {
	if threat.IsPhishing {
		local.RiskScore += cfg.Weights.ThreatConfirmed
		local.SafetyScore = clampSafety(local.RiskScore)
		local.Verdict = VerdictUnsafe
		local.Checks = append([]CheckResult{{
			Name:        "Global Threat Database",
			Status:      StatusFail,
			Description: fmt.Sprintf("⚠️ URL detected in abuse.ch malicious database (%s)", threat.Threat),
		}}, local.Checks...)
		return local
	}

	if !threat.Unavailable {
		local.Checks = append([]CheckResult{{
			Name:        "Global Threat Database",
			Status:      StatusPass,
			Description: "✓ URL verified clean in global malicious database",
		}}, local.Checks...)
	}
	return local
}
