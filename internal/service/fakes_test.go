package service

import (
	"context"
	"fmt"

	"teamdir/internal/domain"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/repositories"
)

// In-memory fakes implementing the repository interfaces. They mirror
// the postgres implementations' error behavior: Conflict on duplicate
// keys, NotFound on missing rows, insertion-ordered listing.

type fakeUserRepo struct {
	users  []*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.UserID == user.UserID {
			return domain.NewConflict("a user with this user_id already exists", "user_id", "user_id_exists")
		}
		if u.Email == user.Email {
			return domain.NewConflict("a user with this email already exists", "email", "email_exists")
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByUserID(_ context.Context, userID string) (*models.User, error) {
	for _, u := range r.users {
		if u.UserID == userID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound(fmt.Sprintf("user with user_id '%s' not found", userID))
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound(fmt.Sprintf("user with email '%s' not found", email))
}

func (r *fakeUserRepo) List(_ context.Context, skip, limit int) ([]models.User, error) {
	out := []models.User{}
	for i := skip; i < len(r.users) && len(out) < limit; i++ {
		out = append(out, *r.users[i])
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.UserID != user.UserID && u.Email == user.Email {
			return domain.NewConflict("a user with this email already exists", "email", "email_exists")
		}
	}
	for i, u := range r.users {
		if u.UserID == user.UserID {
			cp := *user
			cp.ID = u.ID
			r.users[i] = &cp
			return nil
		}
	}
	return domain.NewNotFound(fmt.Sprintf("user with user_id '%s' not found", user.UserID))
}

func (r *fakeUserRepo) Delete(_ context.Context, userID string) error {
	for i, u := range r.users {
		if u.UserID == userID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFound(fmt.Sprintf("user with user_id '%s' not found", userID))
}

type fakeProjectRepo struct {
	projects []*models.Project
	nextID   int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	for _, p := range r.projects {
		if p.ProjectID == project.ProjectID {
			return domain.NewConflict("a project with this project_id already exists", "project_id", "project_id_exists")
		}
	}
	r.nextID++
	project.ID = r.nextID
	cp := *project
	r.projects = append(r.projects, &cp)
	return nil
}

func (r *fakeProjectRepo) GetByProjectID(_ context.Context, projectID string) (*models.Project, error) {
	for _, p := range r.projects {
		if p.ProjectID == projectID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.NewNotFound(fmt.Sprintf("project with project_id '%s' not found", projectID))
}

func (r *fakeProjectRepo) List(_ context.Context, skip, limit int) ([]models.Project, error) {
	out := []models.Project{}
	for i := skip; i < len(r.projects) && len(out) < limit; i++ {
		out = append(out, *r.projects[i])
	}
	return out, nil
}

func (r *fakeProjectRepo) Count(_ context.Context) (int, error) {
	return len(r.projects), nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	for i, p := range r.projects {
		if p.ProjectID == project.ProjectID {
			cp := *project
			cp.ID = p.ID
			r.projects[i] = &cp
			return nil
		}
	}
	return domain.NewNotFound(fmt.Sprintf("project with project_id '%s' not found", project.ProjectID))
}

func (r *fakeProjectRepo) Delete(_ context.Context, projectID string) error {
	for i, p := range r.projects {
		if p.ProjectID == projectID {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFound(fmt.Sprintf("project with project_id '%s' not found", projectID))
}

type pair struct {
	userID    int64
	projectID int64
}

type fakeMembershipRepo struct {
	pairs    []pair
	users    *fakeUserRepo
	projects *fakeProjectRepo
}

func newFakeMembershipRepo(users *fakeUserRepo, projects *fakeProjectRepo) *fakeMembershipRepo {
	return &fakeMembershipRepo{users: users, projects: projects}
}

func (r *fakeMembershipRepo) Add(_ context.Context, userID, projectID int64) (bool, error) {
	for _, p := range r.pairs {
		if p.userID == userID && p.projectID == projectID {
			return false, nil
		}
	}
	r.pairs = append(r.pairs, pair{userID: userID, projectID: projectID})
	return true, nil
}

func (r *fakeMembershipRepo) Remove(_ context.Context, userID, projectID int64) (bool, error) {
	for i, p := range r.pairs {
		if p.userID == userID && p.projectID == projectID {
			r.pairs = append(r.pairs[:i], r.pairs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMembershipRepo) ListUsersByProject(_ context.Context, projectID int64) ([]models.User, error) {
	out := []models.User{}
	for _, p := range r.pairs {
		if p.projectID != projectID {
			continue
		}
		for _, u := range r.users.users {
			if u.ID == p.userID {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

func (r *fakeMembershipRepo) ListProjectsByUser(_ context.Context, userID int64) ([]models.Project, error) {
	out := []models.Project{}
	for _, pr := range r.pairs {
		if pr.userID != userID {
			continue
		}
		for _, p := range r.projects.projects {
			if p.ID == pr.projectID {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

// fakeTxManager runs the function directly; the fakes have no
// transaction semantics to coordinate.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
