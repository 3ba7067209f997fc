package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/hmelikyan/wanderbot/internal/logger"
)

// HealthResponse is the payload for the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger reports backing-store connectivity. The postgres pool implements
// it; the in-memory repository has nothing to ping and passes nil.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz is the liveness check.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz is the readiness check. With a nil pinger the service is
// always ready.
func HandleReadyz(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := pinger.Ping(ctx); err != nil {
				logger.FromContext(r.Context()).Error("readiness check failed", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: "database connection failed",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
