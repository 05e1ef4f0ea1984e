package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"teamdir/internal/domain"
	"teamdir/internal/httputil"
)

// PaginatedResponse is the envelope for list endpoints.
type PaginatedResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

// handleError converts domain errors to HTTP responses. Mapping is
// done strictly on the error kind, never on message text.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var bizErr *domain.BusinessError
	if errors.As(err, &bizErr) {
		switch bizErr.Kind {
		case domain.KindValidation:
			httputil.RespondError(w, r, http.StatusUnprocessableEntity,
				"validation_error", bizErr.Message, bizErr.Details)
		case domain.KindConflict:
			httputil.RespondError(w, r, http.StatusBadRequest,
				"business_error", bizErr.Message, bizErr.Details)
		case domain.KindNotFound, domain.KindNotInRelation:
			httputil.RespondError(w, r, http.StatusNotFound,
				"business_error", bizErr.Message, bizErr.Details)
		default:
			httputil.RespondError(w, r, http.StatusInternalServerError,
				"server_error", "internal server error", nil)
		}
		return
	}

	// Unexpected store failure: no business semantics attached
	logger.Error("unhandled error",
		"error", err,
		"path", r.URL.Path,
		"method", r.Method,
		"correlation_id", httputil.GetCorrelationID(r),
	)
	httputil.RespondError(w, r, http.StatusInternalServerError,
		"server_error", "internal server error", nil)
}

// PathParam extracts a required path parameter, responding 400 itself
// when the value is empty.
func PathParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	v := r.PathValue(name)
	if v == "" {
		httputil.RespondError(w, r, http.StatusBadRequest,
			"validation_error", label+" is required", nil)
		return "", false
	}
	return v, true
}
