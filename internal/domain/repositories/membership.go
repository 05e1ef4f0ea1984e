package repositories

import (
	"context"

	"teamdir/internal/domain/models"
)

// MembershipRepository manages the user-project association rows.
// Callers identify endpoints by surrogate ID; existence checks happen
// in the service layer before these are invoked.
type MembershipRepository interface {
	// Add links a user to a project. Inserting an already-present pair
	// is a no-op; Add reports whether a new link was created.
	Add(ctx context.Context, userID, projectID int64) (bool, error)

	// Remove unlinks a user from a project. Reports whether a link
	// actually existed.
	Remove(ctx context.Context, userID, projectID int64) (bool, error)

	// ListUsersByProject returns the members of a project in store order
	ListUsersByProject(ctx context.Context, projectID int64) ([]models.User, error)

	// ListProjectsByUser returns the projects a user belongs to in store order
	ListProjectsByUser(ctx context.Context, userID int64) ([]models.Project, error)
}
