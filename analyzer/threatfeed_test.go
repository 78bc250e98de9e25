package analyzer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func stubFeed(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("feed queried with %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil || r.PostFormValue("url") == "" {
			t.Error("feed queried without a url form value")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestThreatFeedConfirmedMalicious(t *testing.T) {
	srv := stubFeed(t, http.StatusOK, `{"query_status":"ok","result":"malware_download","last_analysis_date":"2024-01-15"}`)
	feed := NewThreatFeed(srv.URL, 2*time.Second)

	v := feed.Check(context.Background(), "https://evil.example.com")

	if !v.IsPhishing || v.Unavailable {
		t.Fatalf("verdict = %+v, want confirmed phishing", v)
	}
	if v.Threat != "malware_download" {
		t.Errorf("threat = %q, want malware_download", v.Threat)
	}
	if v.LastAnalysis != "2024-01-15" {
		t.Errorf("last analysis = %q", v.LastAnalysis)
	}
}

func TestThreatFeedFlaggedWithoutLabel(t *testing.T) {
	srv := stubFeed(t, http.StatusOK, `{"query_status":"ok","result":""}`)
	feed := NewThreatFeed(srv.URL, 2*time.Second)

	v := feed.Check(context.Background(), "https://evil.example.com")

	if !v.IsPhishing {
		t.Fatalf("verdict = %+v, want phishing", v)
	}
	if v.Threat != "malware" {
		t.Errorf("threat = %q, want default label malware", v.Threat)
	}
}

func TestThreatFeedClean(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not found result", `{"query_status":"ok","result":"not_found"}`},
		{"no results status", `{"query_status":"no_results"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := stubFeed(t, http.StatusOK, tt.body)
			feed := NewThreatFeed(srv.URL, 2*time.Second)

			v := feed.Check(context.Background(), "https://google.com")
			if v.IsPhishing || v.Unavailable {
				t.Errorf("verdict = %+v, want clean", v)
			}
		})
	}
}

func TestThreatFeedUnavailable(t *testing.T) {
	t.Run("non-2xx response", func(t *testing.T) {
		srv := stubFeed(t, http.StatusInternalServerError, "boom")
		v := NewThreatFeed(srv.URL, 2*time.Second).Check(context.Background(), "https://google.com")
		if !v.Unavailable {
			t.Errorf("verdict = %+v, want unavailable", v)
		}
	})

	t.Run("unparsable payload", func(t *testing.T) {
		srv := stubFeed(t, http.StatusOK, "<html>not json</html>")
		v := NewThreatFeed(srv.URL, 2*time.Second).Check(context.Background(), "https://google.com")
		if !v.Unavailable {
			t.Errorf("verdict = %+v, want unavailable", v)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		v := NewThreatFeed(url, 2*time.Second).Check(context.Background(), "https://google.com")
		if !v.Unavailable {
			t.Errorf("verdict = %+v, want unavailable", v)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()
		v := NewThreatFeed(srv.URL, 50*time.Millisecond).Check(context.Background(), "https://google.com")
		if !v.Unavailable {
			t.Errorf("verdict = %+v, want unavailable", v)
		}
	})
}
