package httputil

import (
	"context"
	"net/http"
)

// CorrelationIDHeader carries the request correlation ID in both
// directions: accepted from the client if supplied, always echoed in
// responses.
const CorrelationIDHeader = "X-Correlation-ID"

// Context key type to avoid collisions
type contextKey string

const correlationIDKey contextKey = "correlationID"

// WithCorrelationID adds the correlation ID to the request context
func WithCorrelationID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), correlationIDKey, id)
	return r.WithContext(ctx)
}

// GetCorrelationID retrieves the correlation ID from the request
// context, returns empty string if not found
func GetCorrelationID(r *http.Request) string {
	id, _ := r.Context().Value(correlationIDKey).(string)
	return id
}
