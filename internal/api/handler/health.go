package handler

import (
	"net/http"

	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/repository/mongo"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "service is healthy", map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including database connectivity
func ReadyCheck(db *mongo.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "database not ready", nil, err)
			return
		}

		response.OK(w, "service is ready", map[string]string{
			"status": "ready",
		})
	}
}
