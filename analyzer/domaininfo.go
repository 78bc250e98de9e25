package analyzer

import (
	"fmt"
	"strings"
	"time"

	whois "github.com/likexian/whois"
	parser "github.com/likexian/whois-parser"
)

// DomainInfo summarizes the WHOIS registration record for a domain.
type DomainInfo struct {
	Registrar string
	Created   time.Time
	Updated   time.Time
	Expires   time.Time
	AgeDays   int
}

// Registries disagree on date formats; try the common ones.
var whoisLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// LookupDomainInfo fetches and parses the WHOIS record. Subdomains fall back
// to the parent domain, since that is what the registry knows about.
func LookupDomainInfo(domain string) (DomainInfo, error) {
	raw, err := whois.Whois(domain)
	if err != nil {
		return DomainInfo{}, err
	}

	p, err := parser.Parse(raw)
	if err != nil || p.Domain == nil {
		parts := strings.Split(domain, ".")
		if len(parts) > 2 {
			return LookupDomainInfo(strings.Join(parts[1:], "."))
		}
		if err == nil {
			err = fmt.Errorf("no domain section in WHOIS record")
		}
		return DomainInfo{}, err
	}

	info := DomainInfo{}
	if p.Registrar != nil {
		info.Registrar = p.Registrar.Name
	}
	info.Created = parseWhoisDate(p.Domain.CreatedDate)
	info.Updated = parseWhoisDate(p.Domain.UpdatedDate)
	info.Expires = parseWhoisDate(p.Domain.ExpirationDate)
	if !info.Created.IsZero() {
		info.AgeDays = int(time.Since(info.Created).Hours() / 24)
	}

	return info, nil
}

func parseWhoisDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, l := range whoisLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
