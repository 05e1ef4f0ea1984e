package repositories

import (
	"context"

	"teamdir/internal/domain/models"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create inserts a new user. Returns a Conflict BusinessError if
	// user_id or email is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByUserID retrieves a user by its client-facing identifier
	GetByUserID(ctx context.Context, userID string) (*models.User, error)

	// GetByEmail retrieves a user by email, for uniqueness pre-flight checks
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List retrieves a page of users in insertion order
	List(ctx context.Context, skip, limit int) ([]models.User, error)

	// Count returns the total number of users, independent of any page window
	Count(ctx context.Context) (int, error)

	// Update persists changed fields and the bumped updated_at.
	// Returns a Conflict BusinessError if email collides with another user.
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user; memberships go with it via FK cascade
	Delete(ctx context.Context, userID string) error
}
