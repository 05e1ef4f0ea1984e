package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"teamdir/internal/httputil"
)

// RequestID assigns a correlation ID to each request. A client-supplied
// X-Correlation-ID is honored so IDs can span service hops; otherwise a
// fresh UUID is generated. The ID is stored in the request context and
// echoed in the response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httputil.CorrelationIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(httputil.CorrelationIDHeader, id)
			next.ServeHTTP(w, httputil.WithCorrelationID(r, id))
		})
	}
}
