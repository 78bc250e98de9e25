package analyzer

import "regexp"

// Status classifies the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// CheckResult is one line item in an analysis report.
type CheckResult struct {
	Name        string `json:"name"`
	Status      Status `json:"status"`
	Description string `json:"description"`
}

var (
	// Dotted quad, no octet range validation. Direct-IP hosts score the same
	// whether or not the address is routable.
	ipHostPattern = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

	// Anything outside [A-Za-z0-9_.-] counts as suspicious in a hostname.
	hostCharPattern = regexp.MustCompile(`[^\w.-]`)
)
