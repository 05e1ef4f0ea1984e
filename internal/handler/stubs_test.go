package handler

import (
	"context"
	"io"
	"log/slog"

	"teamdir/internal/domain/models"
	"teamdir/internal/domain/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubUserService delegates to function fields so each test can pin
// down exactly the behavior it exercises.
type stubUserService struct {
	createFn  func(ctx context.Context, req *services.CreateUserRequest) (*models.User, error)
	getFn     func(ctx context.Context, userID string) (*models.User, error)
	listFn    func(ctx context.Context, skip, limit int) ([]models.User, int, error)
	replaceFn func(ctx context.Context, userID string, req *services.ReplaceUserRequest) (*models.User, error)
	patchFn   func(ctx context.Context, userID string, req *services.PatchUserRequest) (*models.User, error)
	deleteFn  func(ctx context.Context, userID string) error
}

func (s *stubUserService) Create(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	return s.createFn(ctx, req)
}

func (s *stubUserService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubUserService) List(ctx context.Context, skip, limit int) ([]models.User, int, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubUserService) Replace(ctx context.Context, userID string, req *services.ReplaceUserRequest) (*models.User, error) {
	return s.replaceFn(ctx, userID, req)
}

func (s *stubUserService) Patch(ctx context.Context, userID string, req *services.PatchUserRequest) (*models.User, error) {
	return s.patchFn(ctx, userID, req)
}

func (s *stubUserService) Delete(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

type stubProjectService struct {
	createFn  func(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error)
	getFn     func(ctx context.Context, projectID string) (*models.Project, error)
	listFn    func(ctx context.Context, skip, limit int) ([]models.Project, int, error)
	replaceFn func(ctx context.Context, projectID string, req *services.ReplaceProjectRequest) (*models.Project, error)
	patchFn   func(ctx context.Context, projectID string, req *services.PatchProjectRequest) (*models.Project, error)
	deleteFn  func(ctx context.Context, projectID string) error
}

func (s *stubProjectService) Create(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	return s.createFn(ctx, req)
}

func (s *stubProjectService) Get(ctx context.Context, projectID string) (*models.Project, error) {
	return s.getFn(ctx, projectID)
}

func (s *stubProjectService) List(ctx context.Context, skip, limit int) ([]models.Project, int, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubProjectService) Replace(ctx context.Context, projectID string, req *services.ReplaceProjectRequest) (*models.Project, error) {
	return s.replaceFn(ctx, projectID, req)
}

func (s *stubProjectService) Patch(ctx context.Context, projectID string, req *services.PatchProjectRequest) (*models.Project, error) {
	return s.patchFn(ctx, projectID, req)
}

func (s *stubProjectService) Delete(ctx context.Context, projectID string) error {
	return s.deleteFn(ctx, projectID)
}

type stubMembershipService struct {
	addFn          func(ctx context.Context, projectID, userID string) error
	removeFn       func(ctx context.Context, projectID, userID string) error
	listUsersFn    func(ctx context.Context, projectID string) ([]models.User, error)
	listProjectsFn func(ctx context.Context, userID string) ([]models.Project, error)
}

func (s *stubMembershipService) AddUser(ctx context.Context, projectID, userID string) error {
	return s.addFn(ctx, projectID, userID)
}

func (s *stubMembershipService) RemoveUser(ctx context.Context, projectID, userID string) error {
	return s.removeFn(ctx, projectID, userID)
}

func (s *stubMembershipService) ListProjectUsers(ctx context.Context, projectID string) ([]models.User, error) {
	return s.listUsersFn(ctx, projectID)
}

func (s *stubMembershipService) ListUserProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.listProjectsFn(ctx, userID)
}
