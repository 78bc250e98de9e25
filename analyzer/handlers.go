package analyzer

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type AnalyzeRequest struct {
	URL string `json:"url"`
}

type AnalyzeResponse struct {
	Status      string        `json:"status"`
	Verdict     Verdict       `json:"verdict"`
	SafetyScore int           `json:"safety_score"`
	RiskScore   int           `json:"risk_score"`
	Checks      []CheckResult `json:"checks"`
	Timestamp   string        `json:"timestamp"`
}

type DomainRequest struct {
	Domain string `json:"domain"`
}

type DomainResponse struct {
	Status    string `json:"status"`
	Domain    string `json:"domain"`
	Registrar string `json:"registrar,omitempty"`
	CreatedOn string `json:"created_on,omitempty"`
	UpdatedOn string `json:"updated_on,omitempty"`
	ExpiresOn string `json:"expires_on,omitempty"`
	AgeDays   int    `json:"age_days"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type StatsResponse struct {
	Status   string          `json:"status"`
	App      string          `json:"app"`
	Version  string          `json:"version"`
	Features map[string]bool `json:"features"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	raw := strings.TrimSpace(req.URL)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Please enter a URL")
		return
	}
	if !Validate(raw) {
		writeError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	normalized := Normalize(raw)
	log.Printf("[analyze] %s url=%s", reqID(r.Context()), normalized)

	result, err := s.analyze(r.Context(), normalized)
	if err != nil {
		log.Printf("[analyze] %s failed: %v", reqID(r.Context()), err)
		writeError(w, http.StatusInternalServerError, "Error during analysis: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Status:      "ok",
		Verdict:     result.Verdict,
		SafetyScore: result.SafetyScore,
		RiskScore:   result.RiskScore,
		Checks:      result.Checks,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

// analyze runs the local checks and the feed lookup in parallel and merges
// the two. The feed result never produces an error here; an unreachable feed
// degrades to a local-only result inside ThreatFeed.Check.
func (s *Server) analyze(ctx context.Context, normalized string) (AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FeedTimeout)
	defer cancel()

	var local AnalysisResult
	var threat ThreatVerdict

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		local = Analyze(Parse(normalized), normalized, s.scoring)
		return nil
	})
	g.Go(func() error {
		threat = s.feed.Check(gctx, normalized)
		return nil
	})
	if err := g.Wait(); err != nil {
		return AnalysisResult{}, err
	}

	return MergeThreatVerdict(local, threat, s.scoring), nil
}

func (s *Server) handleDomain(w http.ResponseWriter, r *http.Request) {
	var req DomainRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	domain := strings.TrimSpace(req.Domain)
	if domain == "" {
		writeError(w, http.StatusBadRequest, "Please enter a domain")
		return
	}

	info, err := LookupDomainInfo(domain)
	if err != nil {
		log.Printf("[whois] %s lookup failed: %v", domain, err)
		writeError(w, http.StatusBadGateway, "WHOIS lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, DomainResponse{
		Status:    "ok",
		Domain:    domain,
		Registrar: info.Registrar,
		CreatedOn: formatWhoisDate(info.Created),
		UpdatedOn: formatWhoisDate(info.Updated),
		ExpiresOn: formatWhoisDate(info.Expires),
		AgeDays:   info.AgeDays,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   s.cfg.Version,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponse{
		Status:  "ok",
		App:     "URL Phishing Detector",
		Version: s.cfg.Version,
		Features: map[string]bool{
			"local_analysis":   true,
			"global_database":  true,
			"history_tracking": true,
			"batch_processing": false,
			"whois_lookup":     true,
		},
	})
}

func formatWhoisDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Status: "error", Error: msg})
}
