package config

const (
	// MaxKeyLength is the maximum length for client-supplied user_id and
	// project_id values. Keys are 1-64 characters of [a-zA-Z0-9_-].
	MaxKeyLength = 64

	// MaxNameLength is the maximum length for user given/family names
	// and project names.
	MaxNameLength = 64

	// MaxEmailLength is the maximum length for email addresses.
	// Limited to 255 to fit common mailbox limits.
	MaxEmailLength = 255

	// MaxDescriptionLength is the maximum length for project descriptions.
	MaxDescriptionLength = 255

	// MaxPageSize is the largest number of items a list endpoint returns
	// per page.
	MaxPageSize = 100
)
