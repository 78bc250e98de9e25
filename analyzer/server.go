package analyzer

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Server wires the scoring engine and the threat feed behind the API routes.
type Server struct {
	cfg     Config
	scoring ScoringConfig
	feed    *ThreatFeed
}

func NewServer(cfg Config) *Server {
	return &Server{
		cfg:     cfg,
		scoring: DefaultScoringConfig(),
		feed:    NewThreatFeed(cfg.FeedURL, cfg.FeedTimeout),
	}
}

// Routes builds the router. Unmatched routes and wrong methods get the same
// JSON error envelope as everything else.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(recoverer)

	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/domain", s.handleDomain)
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/stats", s.handleStats)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// ListenAndServe starts the API server on the configured address.
func (s *Server) ListenAndServe() error {
	addr := s.cfg.Host + ":" + s.cfg.Port

	log.Printf("✅ phishguard listening on %s", addr)
	log.Println("📍 Endpoints:")
	log.Println("   POST /api/analyze - URL risk analysis")
	log.Println("   POST /api/domain  - WHOIS registration info")
	log.Println("   GET  /api/health  - Health check")
	log.Println("   GET  /api/stats   - Feature manifest")

	return http.ListenAndServe(addr, s.Routes())
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags every request with a correlation ID for the logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// recoverer converts an unhandled panic into the generic 500 envelope.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[server] panic on %s %s: %v", r.Method, r.URL.Path, rec)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func reqID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
