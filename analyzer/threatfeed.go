package analyzer

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ThreatVerdict is the external feed's answer for one URL. Unavailable marks
// a feed that could not be reached or understood, which is distinct from
// "checked and clean".
type ThreatVerdict struct {
	IsPhishing   bool
	Threat       string
	LastAnalysis string
	Unavailable  bool
}

// ThreatFeed queries the abuse.ch URLhaus database. One attempt per lookup,
// bounded by the client timeout; no caching, no retries.
type ThreatFeed struct {
	endpoint string
	client   *http.Client
}

func NewThreatFeed(endpoint string, timeout time.Duration) *ThreatFeed {
	return &ThreatFeed{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Check looks up one normalized URL. Transport failures, non-2xx responses
// and unparsable payloads all come back as Unavailable so the caller can
// degrade to local-only analysis instead of failing the request.
func (f *ThreatFeed) Check(ctx context.Context, target string) ThreatVerdict {
	form := url.Values{"url": {target}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ThreatVerdict{Unavailable: true}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("[urlhaus] lookup failed: %v", err)
		return ThreatVerdict{Unavailable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[urlhaus] unexpected status: %s", resp.Status)
		return ThreatVerdict{Unavailable: true}
	}

	var raw struct {
		QueryStatus  string `json:"query_status"`
		Result       string `json:"result"`
		LastAnalysis string `json:"last_analysis_date"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		log.Printf("[urlhaus] decode failed: %v", err)
		return ThreatVerdict{Unavailable: true}
	}

	if raw.QueryStatus == "ok" && raw.Result != "not_found" {
		threat := raw.Result
		if threat == "" {
			threat = "malware"
		}
		last := raw.LastAnalysis
		if last == "" {
			last = "Unknown"
		}
		return ThreatVerdict{IsPhishing: true, Threat: threat, LastAnalysis: last}
	}

	return ThreatVerdict{}
}
