package analyzer

import (
	"fmt"
	"strings"
)

// Verdict is the final three-band classification of a URL.
type Verdict string

const (
	VerdictSafe   Verdict = "safe"
	VerdictRisky  Verdict = "risky"
	VerdictUnsafe Verdict = "unsafe"
)

// AnalysisResult aggregates the outcome of one analysis. RiskScore is the
// exact sum of the penalties of the checks present in Checks; SafetyScore is
// 100 minus that, clamped to [0,100]. The two are not complementary once
// RiskScore exceeds 100.
type AnalysisResult struct {
	RiskScore   int           `json:"risk_score"`
	SafetyScore int           `json:"safety_score"`
	Verdict     Verdict       `json:"verdict"`
	Checks      []CheckResult `json:"checks"`
}

// Analyze runs the seven structural checks in fixed order against a parsed
// URL. Each check is independent of the others; no check's outcome feeds into
// another. rawURL is the string the keyword scan runs over, normally the
// normalized URL.
func Analyze(parsed ParsedURL, rawURL string, cfg ScoringConfig) AnalysisResult {
	checks := make([]CheckResult, 0, 8)
	risk := 0
	host := parsed.Hostname

	// Check 1: SSL/TLS. Only the http/https branches emit a result.
	switch parsed.Protocol {
	case "https":
		checks = append(checks, CheckResult{"SSL/TLS Encryption", StatusPass, "URL uses secure HTTPS protocol"})
	case "http":
		checks = append(checks, CheckResult{"SSL/TLS Encryption", StatusFail, "URL uses unencrypted HTTP protocol"})
		risk += cfg.Weights.PlainHTTP
	}

	// Check 2: subdomain count
	if len(strings.Split(host, ".")) > 3 {
		checks = append(checks, CheckResult{"Subdomain Count", StatusWarn, "Multiple subdomains may indicate suspicious hosting"})
		risk += cfg.Weights.ManySubdomains
	} else {
		checks = append(checks, CheckResult{"Subdomain Count", StatusPass, "Normal subdomain structure"})
	}

	// Check 3: IP-literal host
	if ipHostPattern.MatchString(host) {
		checks = append(checks, CheckResult{"IP Address Domain", StatusFail, "Direct IP addresses are often used in phishing"})
		risk += cfg.Weights.IPHost
	} else {
		checks = append(checks, CheckResult{"IP Address Domain", StatusPass, "Uses standard domain name"})
	}

	// Check 4: domain length
	switch {
	case len(host) < 4:
		checks = append(checks, CheckResult{"Domain Length", StatusWarn, "Very short domain names are uncommon"})
		risk += cfg.Weights.DomainLength
	case len(host) > 50:
		checks = append(checks, CheckResult{"Domain Length", StatusWarn, "Very long domain names may be suspicious"})
		risk += cfg.Weights.DomainLength
	default:
		checks = append(checks, CheckResult{"Domain Length", StatusPass, "Domain length appears normal"})
	}

	// Check 5: special characters in hostname
	if hostCharPattern.MatchString(host) {
		checks = append(checks, CheckResult{"Special Characters", StatusFail, "Domain contains suspicious special characters"})
		risk += cfg.Weights.SpecialChars
	} else {
		checks = append(checks, CheckResult{"Special Characters", StatusPass, "No suspicious characters in domain"})
	}

	// Check 6: suspicious keywords, matched against the whole URL string
	found := 0
	lower := strings.ToLower(rawURL)
	for _, kw := range cfg.Keywords {
		if strings.Contains(lower, kw) {
			found++
		}
	}
	switch {
	case found >= 2:
		checks = append(checks, CheckResult{"Suspicious Keywords", StatusWarn, fmt.Sprintf("Found %d common phishing keywords", found)})
		risk += found * cfg.Weights.PerKeyword
	case found == 1:
		checks = append(checks, CheckResult{"Suspicious Keywords", StatusWarn, "Found 1 common phishing keyword"})
		risk += cfg.Weights.SingleKeyword
	default:
		checks = append(checks, CheckResult{"Suspicious Keywords", StatusPass, "No common phishing keywords detected"})
	}

	// Check 7: overall URL length
	if len(parsed.Full) > 100 {
		checks = append(checks, CheckResult{"URL Length", StatusWarn, "Very long URLs may contain hidden parameters"})
		risk += cfg.Weights.LongURL
	} else {
		checks = append(checks, CheckResult{"URL Length", StatusPass, "URL length is reasonable"})
	}

	safety := clampSafety(risk)
	return AnalysisResult{
		RiskScore:   risk,
		SafetyScore: safety,
		Verdict:     verdictFor(safety, cfg.Thresholds),
		Checks:      checks,
	}
}

func clampSafety(risk int) int {
	if risk > 100 {
		return 0
	}
	return 100 - risk
}

func verdictFor(safety int, t Thresholds) Verdict {
	switch {
	case safety >= t.SafeMin:
		return VerdictSafe
	case safety >= t.RiskyMin:
		return VerdictRisky
	default:
		return VerdictUnsafe
	}
}
