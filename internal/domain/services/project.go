package services

import (
	"context"

	"teamdir/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project.
// Description is optional.
type CreateProjectRequest struct {
	ProjectID   string  `json:"project_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ReplaceProjectRequest represents a full (PUT) update. Name is
// mandatory; description may be omitted and is then cleared.
type ReplaceProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PatchProjectRequest represents a partial (PATCH) update.
type PatchProjectRequest struct {
	Name        models.OptionalField
	Description models.OptionalField
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	// Create validates the payload, enforces project_id uniqueness and
	// persists the project with created_at = updated_at = now
	Create(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// Get retrieves a project by project_id
	Get(ctx context.Context, projectID string) (*models.Project, error)

	// List retrieves a page of projects in insertion order plus the total count
	List(ctx context.Context, skip, limit int) ([]models.Project, int, error)

	// Replace applies a full update; updated_at is bumped unconditionally
	Replace(ctx context.Context, projectID string, req *ReplaceProjectRequest) (*models.Project, error)

	// Patch applies only the supplied fields
	Patch(ctx context.Context, projectID string, req *PatchProjectRequest) (*models.Project, error)

	// Delete removes a project and, by cascade, its memberships
	Delete(ctx context.Context, projectID string) error
}
