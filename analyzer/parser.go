package analyzer

import (
	"net/url"
	"strings"
)

// ParsedURL holds the structural components of a single analyzed URL.
// Absent components are empty strings, never omitted.
type ParsedURL struct {
	Full     string `json:"full"`
	Hostname string `json:"hostname"`
	Protocol string `json:"protocol"`
	Path     string `json:"pathname"`
	Query    string `json:"search"`
}

// Validate reports whether raw can be analyzed at all. The input is given the
// same https:// prefix Normalize would apply (unless it already starts with
// "http"), then must parse with a non-empty scheme and host. Malformed input
// yields false, never an error.
func Validate(raw string) bool {
	candidate := raw
	if !strings.HasPrefix(candidate, "http") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Normalize prepends https:// when raw carries no explicit scheme. No other
// rewriting happens here.
func Normalize(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// Parse decomposes a normalized URL. It never fails for input that passed
// Validate; anything unparsable comes back with only Full set, which the
// checks treat as "no host".
func Parse(normalized string) ParsedURL {
	u, err := url.Parse(normalized)
	if err != nil {
		return ParsedURL{Full: normalized}
	}

	return ParsedURL{
		Full:     u.String(),
		Hostname: strings.ToLower(u.Hostname()),
		Protocol: u.Scheme,
		Path:     u.Path,
		Query:    u.RawQuery,
	}
}
