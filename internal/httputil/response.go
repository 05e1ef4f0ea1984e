package httputil

import (
	"encoding/json"
	"net/http"

	"teamdir/internal/domain"
)

// ErrorResponse is the JSON body for every failed request.
// CorrelationID is echoed from the request-scoped ID so clients can
// reference a specific request in reports.
type ErrorResponse struct {
	Error         string               `json:"error"`
	Message       string               `json:"message"`
	Details       []domain.FieldDetail `json:"details"`
	CorrelationID *string              `json:"correlation_id"`
}

// RespondJSON writes a JSON response with the given status code.
// It marshals first so a failed encoding never produces a partial
// response after headers are sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes an error envelope. The discriminant is
// "business_error" for business failures, "validation_error" for shape
// violations and "server_error" for everything else; details may be nil.
func RespondError(w http.ResponseWriter, r *http.Request, status int, discriminant, message string, details []domain.FieldDetail) {
	var correlationID *string
	if id := GetCorrelationID(r); id != "" {
		correlationID = &id
		w.Header().Set(CorrelationIDHeader, id)
	}

	if details == nil {
		details = []domain.FieldDetail{}
	}

	RespondJSON(w, status, ErrorResponse{
		Error:         discriminant,
		Message:       message,
		Details:       details,
		CorrelationID: correlationID,
	})
}
