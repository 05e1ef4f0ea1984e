package repositories

import (
	"context"

	"teamdir/internal/domain/models"
)

// ProjectRepository defines persistence operations for projects
type ProjectRepository interface {
	// Create inserts a new project. Returns a Conflict BusinessError if
	// project_id is already taken.
	Create(ctx context.Context, project *models.Project) error

	// GetByProjectID retrieves a project by its client-facing identifier
	GetByProjectID(ctx context.Context, projectID string) (*models.Project, error)

	// List retrieves a page of projects in insertion order
	List(ctx context.Context, skip, limit int) ([]models.Project, error)

	// Count returns the total number of projects
	Count(ctx context.Context) (int, error)

	// Update persists changed fields and the bumped updated_at
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project; memberships go with it via FK cascade
	Delete(ctx context.Context, projectID string) error
}
