package rest

import (
	"log/slog"
	"net/http"

	"github.com/hanbitlee/mykorean-backend/internal/config"
	"github.com/hanbitlee/mykorean-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Sessions *SessionHandler
	Vocab    *VocabHandler
	Health   *HealthHandler
	Limiter  *middleware.RateLimiter
	Logger   *slog.Logger
	Server   config.ServerConfig
	CORS     config.CORSConfig
}

// NewRouter builds the HTTP handler: routes plus the middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /readyz", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("POST /api/sessions", deps.Sessions.Create)
	mux.HandleFunc("GET /api/sessions/{id}", deps.Sessions.Get)
	mux.HandleFunc("DELETE /api/sessions/{id}", deps.Sessions.Delete)
	mux.HandleFunc("POST /api/sessions/{id}/topic/advance", deps.Sessions.AdvanceTopic)
	mux.HandleFunc("POST /api/sessions/{id}/noun/advance", deps.Sessions.AdvanceNoun)

	mux.HandleFunc("GET /api/vocabulary", deps.Vocab.List)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		deps.Limiter.Limit(deps.Server.RateLimit),
	)

	return chain(mux)
}
