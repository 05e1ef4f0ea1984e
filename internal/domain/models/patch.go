package models

// OptionalField tracks tri-state semantics for PATCH updates (RFC 7396).
// This is transport-agnostic (no JSON tags) - the handler maps from
// httputil.OptionalString.
//   - Present=false: field absent from request (don't change)
//   - Present=true, Value=nil: field is null (clear)
//   - Present=true, Value=&"text": field has value
type OptionalField struct {
	Present bool
	Value   *string
}
