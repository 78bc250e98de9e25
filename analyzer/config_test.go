package analyzer

import (
	"testing"
	"time"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "SECRET_KEY", "DEBUG", "URLHAUS_API_URL", "URLHAUS_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := LoadConfig()

	if cfg.Host != "127.0.0.1" || cfg.Port != "8080" {
		t.Errorf("addr = %s:%s, want 127.0.0.1:8080", cfg.Host, cfg.Port)
	}
	if cfg.FeedURL != "https://urlhaus-api.abuse.ch/v1/url/" {
		t.Errorf("feed url = %q", cfg.FeedURL)
	}
	if cfg.FeedTimeout != 5*time.Second {
		t.Errorf("feed timeout = %v, want 5s", cfg.FeedTimeout)
	}
	if cfg.Debug {
		t.Error("debug should default to off")
	}
	if cfg.Version != Version {
		t.Errorf("version = %q, want %q", cfg.Version, Version)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("URLHAUS_API_URL", "http://localhost:9999/v1/url/")
	t.Setenv("URLHAUS_TIMEOUT", "9")
	t.Setenv("DEBUG", "true")

	cfg := LoadConfig()

	if cfg.Host != "0.0.0.0" || cfg.Port != "9090" {
		t.Errorf("addr = %s:%s", cfg.Host, cfg.Port)
	}
	if cfg.FeedURL != "http://localhost:9999/v1/url/" {
		t.Errorf("feed url = %q", cfg.FeedURL)
	}
	if cfg.FeedTimeout != 9*time.Second {
		t.Errorf("feed timeout = %v, want 9s", cfg.FeedTimeout)
	}
	if !cfg.Debug {
		t.Error("debug should be on")
	}
}

func TestLoadConfigBadTimeoutFallsBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("URLHAUS_TIMEOUT", "soon")

	if cfg := LoadConfig(); cfg.FeedTimeout != 5*time.Second {
		t.Errorf("feed timeout = %v, want default 5s", cfg.FeedTimeout)
	}
}

func TestDefaultScoringConfig(t *testing.T) {
	cfg := DefaultScoringConfig()

	if len(cfg.Keywords) != 8 {
		t.Errorf("keywords = %d, want 8", len(cfg.Keywords))
	}
	if cfg.Weights.IPHost != 20 || cfg.Weights.PlainHTTP != 15 || cfg.Weights.ThreatConfirmed != 50 {
		t.Errorf("weights = %+v", cfg.Weights)
	}
	if cfg.Thresholds.SafeMin != 75 || cfg.Thresholds.RiskyMin != 50 {
		t.Errorf("thresholds = %+v", cfg.Thresholds)
	}
}
