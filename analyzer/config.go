package analyzer

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const Version = "1.0.0"

// Config holds everything the HTTP layer and CLI need at startup. Only
// LoadConfig touches the environment; the engine itself never reads globals.
type Config struct {
	Host        string
	Port        string
	SecretKey   string
	Debug       bool
	FeedURL     string
	FeedTimeout time.Duration
	Version     string
}

// LoadConfig reads .env (if present) and the process environment, falling
// back to development defaults.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Host:        "127.0.0.1",
		Port:        "8080",
		SecretKey:   "dev-key-change-in-production",
		FeedURL:     "https://urlhaus-api.abuse.ch/v1/url/",
		FeedTimeout: 5 * time.Second,
		Version:     Version,
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("URLHAUS_API_URL"); v != "" {
		cfg.FeedURL = v
	}
	if v := os.Getenv("URLHAUS_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.FeedTimeout = time.Duration(secs) * time.Second
		}
	}
	cfg.Debug = os.Getenv("DEBUG") == "true"

	return cfg
}

// Weights defines the penalty each check adds when it fires.
type Weights struct {
	PlainHTTP       int `json:"plain_http"`
	ManySubdomains  int `json:"many_subdomains"`
	IPHost          int `json:"ip_host"`
	DomainLength    int `json:"domain_length"`
	SpecialChars    int `json:"special_chars"`
	SingleKeyword   int `json:"single_keyword"`
	PerKeyword      int `json:"per_keyword"`
	LongURL         int `json:"long_url"`
	ThreatConfirmed int `json:"threat_confirmed"`
}

// Thresholds defines the safety-score bands, inclusive at the lower bound.
type Thresholds struct {
	SafeMin  int `json:"safe_min"`  // safe:  >= 75
	RiskyMin int `json:"risky_min"` // risky: >= 50, unsafe below
}

// ScoringConfig carries every tunable of the scoring engine so tests can
// inject their own values.
type ScoringConfig struct {
	Weights    Weights
	Thresholds Thresholds
	Keywords   []string
}

// DefaultScoringConfig returns the production weights and keyword set.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: Weights{
			PlainHTTP:       15,
			ManySubdomains:  8,
			IPHost:          20,
			DomainLength:    5,
			SpecialChars:    15,
			SingleKeyword:   5,
			PerKeyword:      3,
			LongURL:         8,
			ThreatConfirmed: 50,
		},
		Thresholds: Thresholds{
			SafeMin:  75,
			RiskyMin: 50,
		},
		Keywords: []string{"verify", "confirm", "update", "login", "urgent", "click", "secure", "validate"},
	}
}
