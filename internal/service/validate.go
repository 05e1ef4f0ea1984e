package service

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"teamdir/internal/domain"
)

// validationError converts an ozzo validation result into the typed
// business failure, preserving per-field messages and codes so clients
// can identify the offending fields.
func validationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validation.Errors
	if !errors.As(err, &ves) {
		return domain.NewValidation(err.Error(), nil)
	}

	fields := make([]string, 0, len(ves))
	for field := range ves {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]domain.FieldDetail, 0, len(ves))
	for _, field := range fields {
		ferr := ves[field]
		code := "invalid"
		if eo, ok := ferr.(validation.ErrorObject); ok {
			code = eo.Code()
		}
		details = append(details, domain.FieldDetail{
			Field:   field,
			Message: ferr.Error(),
			Code:    code,
		})
	}

	return domain.NewValidation("validation failed", details)
}

// requiredFieldsError reports PUT payloads missing mandatory fields.
func requiredFieldsError(missing []string) error {
	details := make([]domain.FieldDetail, 0, len(missing))
	for _, field := range missing {
		details = append(details, domain.FieldDetail{
			Field:   field,
			Message: "field is required for full update",
			Code:    "required",
		})
	}
	return domain.NewValidation("missing required fields", details)
}
