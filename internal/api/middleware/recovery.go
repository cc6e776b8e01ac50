package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/ThisisBizness/Study-Buddy/internal/api/shared"
	"github.com/ThisisBizness/Study-Buddy/internal/platform/logger"
)

// Recoverer returns middleware that converts handler panics into a generic
// 500 JSON response so clients never see a bare connection reset or an HTML
// error page. http.ErrAbortHandler is re-panicked because the server uses it
// to abort the connection deliberately.
func Recoverer(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				log := logger.FromContextOrDefault(r.Context(), baseLogger)
				log.Error("panic recovered while handling request",
					slog.Any("panic", rvr),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithJSON(w, r, http.StatusInternalServerError, shared.ErrorResponse{
					Error:   "An internal server error occurred",
					Details: "An unexpected error occurred while processing the request.",
					Code:    http.StatusInternalServerError,
					TraceID: shared.GetTraceID(r.Context()),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
