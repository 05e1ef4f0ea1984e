package services

import (
	"context"

	"teamdir/internal/domain/models"
)

// MembershipService manages the many-to-many link between users and
// projects. Both endpoints are addressed by their client-facing keys.
type MembershipService interface {
	// AddUser links a user to a project. Fails with NotFound if either
	// endpoint is missing; adding an already-present pair is a no-op.
	AddUser(ctx context.Context, projectID, userID string) error

	// RemoveUser unlinks a user from a project. Fails with NotFound if
	// either endpoint is missing and with NotInRelation if the pair
	// does not currently exist.
	RemoveUser(ctx context.Context, projectID, userID string) error

	// ListProjectUsers returns the members of a project.
	// Fails with NotFound if the project is missing.
	ListProjectUsers(ctx context.Context, projectID string) ([]models.User, error)

	// ListUserProjects returns the projects a user belongs to.
	// Fails with NotFound if the user is missing.
	ListUserProjects(ctx context.Context, userID string) ([]models.Project, error)
}
