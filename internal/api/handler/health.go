package handler

import (
	"net/http"

	"github.com/akoval/taskhub/internal/api/response"
	"github.com/akoval/taskhub/internal/repository"
)

// HealthCheck reports process liveness
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReadyCheck reports store connectivity
func ReadyCheck(store repository.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		response.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
