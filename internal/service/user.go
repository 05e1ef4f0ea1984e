package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"teamdir/internal/config"
	"teamdir/internal/domain"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/repositories"
	"teamdir/internal/domain/services"
)

// keyPattern constrains client-supplied user_id and project_id values
var keyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// userService implements the UserService interface
type userService struct {
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, logger *slog.Logger) services.UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a new user
func (s *userService) Create(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, validationError(err)
	}

	// Pre-flight uniqueness checks. A race between check and insert is
	// possible; the unique constraints catch it and the repository
	// converts the violation to the same Conflict error.
	if _, err := s.userRepo.GetByUserID(ctx, req.UserID); err == nil {
		return nil, domain.NewConflict("a user with this user_id already exists", "user_id", "user_id_exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := s.checkEmailFree(ctx, req.Email, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		UserID:     req.UserID,
		GivenName:  strings.TrimSpace(req.GivenName),
		FamilyName: strings.TrimSpace(req.FamilyName),
		Email:      req.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"user_id", user.UserID,
		"email", user.Email,
	)

	return user, nil
}

// Get retrieves a user by user_id
func (s *userService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetByUserID(ctx, userID)
}

// List retrieves a page of users plus the total count. The count is
// computed independently of the page window.
func (s *userService) List(ctx context.Context, skip, limit int) ([]models.User, int, error) {
	users, err := s.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Replace applies a full (PUT) update. All mandatory fields must be
// present; the request is rejected before reaching the store otherwise.
func (s *userService) Replace(ctx context.Context, userID string, req *services.ReplaceUserRequest) (*models.User, error) {
	var missing []string
	if req.GivenName == nil {
		missing = append(missing, "given_name")
	}
	if req.FamilyName == nil {
		missing = append(missing, "family_name")
	}
	if req.Email == nil {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, requiredFieldsError(missing)
	}

	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.GivenName = strings.TrimSpace(*req.GivenName)
	user.FamilyName = strings.TrimSpace(*req.FamilyName)
	user.Email = *req.Email

	return s.applyUpdate(ctx, user)
}

// Patch applies a partial (PATCH) update; only supplied fields are
// touched. Supplying null for a mandatory field is a validation error.
func (s *userService) Patch(ctx context.Context, userID string, req *services.PatchUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply := []struct {
		name  string
		field models.OptionalField
		dest  *string
	}{
		{"given_name", req.GivenName, &user.GivenName},
		{"family_name", req.FamilyName, &user.FamilyName},
		{"email", req.Email, &user.Email},
	}
	for _, f := range apply {
		if !f.field.Present {
			continue
		}
		if f.field.Value == nil {
			return nil, domain.NewValidation("validation failed", []domain.FieldDetail{
				{Field: f.name, Message: "field cannot be null", Code: "not_nullable"},
			})
		}
		*f.dest = strings.TrimSpace(*f.field.Value)
	}

	return s.applyUpdate(ctx, user)
}

// Delete removes a user; memberships cascade at the store
func (s *userService) Delete(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}

// applyUpdate validates the mutated record, re-checks email uniqueness
// against other users and persists it with an unconditional updated_at
// bump.
func (s *userService) applyUpdate(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.validateFields(user); err != nil {
		return nil, validationError(err)
	}

	if err := s.checkEmailFree(ctx, user.Email, user.UserID); err != nil {
		return nil, err
	}

	// Timestamp bump is unconditional on a successful write, even if
	// the field values are unchanged.
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.UserID)
	return user, nil
}

// checkEmailFree fails with Conflict when the email belongs to a user
// other than selfUserID.
func (s *userService) checkEmailFree(ctx context.Context, email, selfUserID string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.UserID == selfUserID {
		return nil
	}
	return domain.NewConflict("a user with this email already exists", "email", "email_exists")
}

func (s *userService) validateCreateRequest(req *services.CreateUserRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID,
			validation.Required,
			validation.Length(1, config.MaxKeyLength),
			validation.Match(keyPattern),
		),
		validation.Field(&req.GivenName,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.FamilyName,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.Email,
			validation.Required,
			validation.Length(1, config.MaxEmailLength),
			is.EmailFormat,
		),
	)
}

func (s *userService) validateFields(user *models.User) error {
	return validation.ValidateStruct(user,
		validation.Field(&user.GivenName,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&user.FamilyName,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&user.Email,
			validation.Required,
			validation.Length(1, config.MaxEmailLength),
			is.EmailFormat,
		),
	)
}
