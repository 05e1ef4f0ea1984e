package service

import (
	"context"
	"fmt"
	"log/slog"

	"teamdir/internal/domain"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/repositories"
	"teamdir/internal/domain/services"
)

// membershipService implements the MembershipService interface
type membershipService struct {
	userRepo       repositories.UserRepository
	projectRepo    repositories.ProjectRepository
	membershipRepo repositories.MembershipRepository
	txManager      repositories.TransactionManager
	logger         *slog.Logger
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	membershipRepo repositories.MembershipRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.MembershipService {
	return &membershipService{
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		membershipRepo: membershipRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// AddUser links a user to a project. Adding an already-linked pair
// succeeds without duplicating the link.
func (s *membershipService) AddUser(ctx context.Context, projectID, userID string) error {
	return s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		user, project, err := s.resolveEndpoints(ctx, projectID, userID)
		if err != nil {
			return err
		}

		added, err := s.membershipRepo.Add(ctx, user.ID, project.ID)
		if err != nil {
			return err
		}

		if added {
			s.logger.Info("user added to project",
				"user_id", userID,
				"project_id", projectID,
			)
		}
		return nil
	})
}

// RemoveUser unlinks a user from a project
func (s *membershipService) RemoveUser(ctx context.Context, projectID, userID string) error {
	return s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		user, project, err := s.resolveEndpoints(ctx, projectID, userID)
		if err != nil {
			return err
		}

		removed, err := s.membershipRepo.Remove(ctx, user.ID, project.ID)
		if err != nil {
			return err
		}
		if !removed {
			return domain.NewNotInRelation(
				fmt.Sprintf("user '%s' is not a member of project '%s'", userID, projectID))
		}

		s.logger.Info("user removed from project",
			"user_id", userID,
			"project_id", projectID,
		)
		return nil
	})
}

// ListProjectUsers returns the members of a project
func (s *membershipService) ListProjectUsers(ctx context.Context, projectID string) ([]models.User, error) {
	project, err := s.projectRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return s.membershipRepo.ListUsersByProject(ctx, project.ID)
}

// ListUserProjects returns the projects a user belongs to
func (s *membershipService) ListUserProjects(ctx context.Context, userID string) ([]models.Project, error) {
	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.membershipRepo.ListProjectsByUser(ctx, user.ID)
}

// resolveEndpoints fetches both association endpoints, failing with
// NotFound when either is missing.
func (s *membershipService) resolveEndpoints(ctx context.Context, projectID, userID string) (*models.User, *models.Project, error) {
	project, err := s.projectRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, project, nil
}
