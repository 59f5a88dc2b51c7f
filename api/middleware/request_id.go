package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/greenloopdev/wastetrack-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a correlation id, echoed back in the
// response header and carried on the context logger. An inbound id is honored
// only when it is a well-formed UUID, so clients cannot inject arbitrary
// strings into the logs.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := inboundRequestID(r)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func inboundRequestID(r *http.Request) string {
	candidate := r.Header.Get(requestIDHeader)
	if candidate == "" {
		return ""
	}
	if _, err := uuid.Parse(candidate); err != nil {
		return ""
	}
	return candidate
}
