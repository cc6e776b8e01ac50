package api

import (
	"net/http"

	"github.com/ThisisBizness/Study-Buddy/internal/api/shared"
)

// healthMessage is returned by the health endpoint so deploy checks can see
// which service answered.
const healthMessage = "Study Buddy API is running"

// HealthCheck handles GET /health requests
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: healthMessage,
	})
}
