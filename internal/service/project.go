package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"teamdir/internal/config"
	"teamdir/internal/domain"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/repositories"
	"teamdir/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repositories.ProjectRepository, logger *slog.Logger) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create creates a new project
func (s *projectService) Create(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, validationError(err)
	}

	// Pre-flight uniqueness check; the unique constraint is the
	// race-tolerant fallback.
	if _, err := s.projectRepo.GetByProjectID(ctx, req.ProjectID); err == nil {
		return nil, domain.NewConflict("a project with this project_id already exists", "project_id", "project_id_exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	project := &models.Project{
		ProjectID:   req.ProjectID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"project_id", project.ProjectID,
		"name", project.Name,
	)

	return project, nil
}

// Get retrieves a project by project_id
func (s *projectService) Get(ctx context.Context, projectID string) (*models.Project, error) {
	return s.projectRepo.GetByProjectID(ctx, projectID)
}

// List retrieves a page of projects plus the total count
func (s *projectService) List(ctx context.Context, skip, limit int) ([]models.Project, int, error) {
	projects, err := s.projectRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Replace applies a full (PUT) update. Name is mandatory; an omitted
// description is cleared, matching full-replacement semantics.
func (s *projectService) Replace(ctx context.Context, projectID string, req *services.ReplaceProjectRequest) (*models.Project, error) {
	if req.Name == nil {
		return nil, requiredFieldsError([]string{"name"})
	}

	project, err := s.projectRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project.Name = strings.TrimSpace(*req.Name)
	project.Description = req.Description

	return s.applyUpdate(ctx, project)
}

// Patch applies a partial (PATCH) update. A null description clears it;
// a null name is rejected.
func (s *projectService) Patch(ctx context.Context, projectID string, req *services.PatchProjectRequest) (*models.Project, error) {
	project, err := s.projectRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name.Present {
		if req.Name.Value == nil {
			return nil, domain.NewValidation("validation failed", []domain.FieldDetail{
				{Field: "name", Message: "field cannot be null", Code: "not_nullable"},
			})
		}
		project.Name = strings.TrimSpace(*req.Name.Value)
	}
	if req.Description.Present {
		project.Description = req.Description.Value
	}

	return s.applyUpdate(ctx, project)
}

// Delete removes a project; memberships cascade at the store
func (s *projectService) Delete(ctx context.Context, projectID string) error {
	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	s.logger.Info("project deleted", "project_id", projectID)
	return nil
}

func (s *projectService) applyUpdate(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := s.validateFields(project); err != nil {
		return nil, validationError(err)
	}

	// Timestamp bump is unconditional on a successful write.
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated", "project_id", project.ProjectID)
	return project, nil
}

func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ProjectID,
			validation.Required,
			validation.Length(1, config.MaxKeyLength),
			validation.Match(keyPattern),
		),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&req.Description,
			validation.Length(0, config.MaxDescriptionLength),
		),
	)
}

func (s *projectService) validateFields(project *models.Project) error {
	return validation.ValidateStruct(project,
		validation.Field(&project.Name,
			validation.Required,
			validation.Length(1, config.MaxNameLength),
		),
		validation.Field(&project.Description,
			validation.Length(0, config.MaxDescriptionLength),
		),
	)
}
