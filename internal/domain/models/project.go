package models

import (
	"time"
)

// Project is the canonical project record. ProjectID is the
// client-supplied opaque identifier; uniqueness is enforced on it.
type Project struct {
	ID          int64     `json:"-" db:"id"`
	ProjectID   string    `json:"project_id" db:"project_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
