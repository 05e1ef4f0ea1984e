package services

import (
	"context"

	"teamdir/internal/domain/models"
)

// CreateUserRequest represents a request to create a user.
// All fields are required.
type CreateUserRequest struct {
	UserID     string `json:"user_id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// ReplaceUserRequest represents a full (PUT) update. Every mandatory
// field must be present or the request is rejected before it reaches
// the store.
type ReplaceUserRequest struct {
	GivenName  *string `json:"given_name"`
	FamilyName *string `json:"family_name"`
	Email      *string `json:"email"`
}

// PatchUserRequest represents a partial (PATCH) update. Only fields
// present in the request are touched.
type PatchUserRequest struct {
	GivenName  models.OptionalField
	FamilyName models.OptionalField
	Email      models.OptionalField
}

// UserService defines business logic operations for users
type UserService interface {
	// Create validates the payload, enforces user_id/email uniqueness
	// and persists the user with created_at = updated_at = now
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// Get retrieves a user by user_id
	Get(ctx context.Context, userID string) (*models.User, error)

	// List retrieves a page of users in insertion order plus the total count
	List(ctx context.Context, skip, limit int) ([]models.User, int, error)

	// Replace applies a full update; updated_at is bumped unconditionally
	Replace(ctx context.Context, userID string, req *ReplaceUserRequest) (*models.User, error)

	// Patch applies only the supplied fields; updated_at is bumped
	// unconditionally on any successful write
	Patch(ctx context.Context, userID string, req *PatchUserRequest) (*models.User, error)

	// Delete removes a user and, by cascade, its memberships
	Delete(ctx context.Context, userID string) error
}
