package service

import (
	"context"
	"errors"
	"testing"

	"teamdir/internal/domain"
	"teamdir/internal/domain/services"
)

type membershipFixture struct {
	users       services.UserService
	projects    services.ProjectService
	memberships services.MembershipService
}

func newMembershipFixture() *membershipFixture {
	userRepo := newFakeUserRepo()
	projectRepo := newFakeProjectRepo()
	membershipRepo := newFakeMembershipRepo(userRepo, projectRepo)
	logger := testLogger()

	return &membershipFixture{
		users:       NewUserService(userRepo, logger),
		projects:    NewProjectService(projectRepo, logger),
		memberships: NewMembershipService(userRepo, projectRepo, membershipRepo, fakeTxManager{}, logger),
	}
}

func TestMembershipLifecycle(t *testing.T) {
	fx := newMembershipFixture()
	ctx := context.Background()

	mustCreateUser(t, fx.users, "alice", "a@x.com")
	mustCreateProject(t, fx.projects, "p1", "Project One")

	if err := fx.memberships.AddUser(ctx, "p1", "alice"); err != nil {
		t.Fatalf("AddUser() failed: %v", err)
	}

	projects, err := fx.memberships.ListUserProjects(ctx, "alice")
	if err != nil {
		t.Fatalf("ListUserProjects() failed: %v", err)
	}
	if len(projects) != 1 || projects[0].ProjectID != "p1" {
		t.Fatalf("expected [p1], got %+v", projects)
	}

	users, err := fx.memberships.ListProjectUsers(ctx, "p1")
	if err != nil {
		t.Fatalf("ListProjectUsers() failed: %v", err)
	}
	if len(users) != 1 || users[0].UserID != "alice" {
		t.Fatalf("expected [alice], got %+v", users)
	}

	if err := fx.memberships.RemoveUser(ctx, "p1", "alice"); err != nil {
		t.Fatalf("RemoveUser() failed: %v", err)
	}

	projects, err = fx.memberships.ListUserProjects(ctx, "alice")
	if err != nil {
		t.Fatalf("ListUserProjects() failed: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("expected empty list after removal, got %+v", projects)
	}

	// Removing again fails: the pair no longer exists
	err = fx.memberships.RemoveUser(ctx, "p1", "alice")
	if !errors.Is(err, domain.ErrNotInRelation) {
		t.Errorf("expected not-in-relation, got %v", err)
	}
}

func TestMembershipAddIsIdempotent(t *testing.T) {
	fx := newMembershipFixture()
	ctx := context.Background()

	mustCreateUser(t, fx.users, "alice", "a@x.com")
	mustCreateProject(t, fx.projects, "p1", "Project One")

	if err := fx.memberships.AddUser(ctx, "p1", "alice"); err != nil {
		t.Fatalf("first AddUser() failed: %v", err)
	}
	if err := fx.memberships.AddUser(ctx, "p1", "alice"); err != nil {
		t.Fatalf("second AddUser() should be a no-op, got %v", err)
	}

	users, err := fx.memberships.ListProjectUsers(ctx, "p1")
	if err != nil {
		t.Fatalf("ListProjectUsers() failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected exactly one association, got %d", len(users))
	}
}

func TestMembershipMissingEndpoints(t *testing.T) {
	fx := newMembershipFixture()
	ctx := context.Background()

	mustCreateUser(t, fx.users, "alice", "a@x.com")
	mustCreateProject(t, fx.projects, "p1", "Project One")

	tests := []struct {
		name      string
		projectID string
		userID    string
	}{
		{name: "missing user", projectID: "p1", userID: "ghost"},
		{name: "missing project", projectID: "ghost", userID: "alice"},
		{name: "both missing", projectID: "ghost", userID: "ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := fx.memberships.AddUser(ctx, tt.projectID, tt.userID); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("AddUser: expected not found, got %v", err)
			}
			if err := fx.memberships.RemoveUser(ctx, tt.projectID, tt.userID); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("RemoveUser: expected not found, got %v", err)
			}
		})
	}

	if _, err := fx.memberships.ListProjectUsers(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ListProjectUsers: expected not found, got %v", err)
	}
	if _, err := fx.memberships.ListUserProjects(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ListUserProjects: expected not found, got %v", err)
	}
}

func TestMembershipManyToMany(t *testing.T) {
	fx := newMembershipFixture()
	ctx := context.Background()

	mustCreateUser(t, fx.users, "alice", "a@x.com")
	mustCreateUser(t, fx.users, "bob", "b@x.com")
	mustCreateProject(t, fx.projects, "p1", "One")
	mustCreateProject(t, fx.projects, "p2", "Two")

	for _, link := range [][2]string{{"p1", "alice"}, {"p1", "bob"}, {"p2", "bob"}} {
		if err := fx.memberships.AddUser(ctx, link[0], link[1]); err != nil {
			t.Fatalf("AddUser(%s, %s) failed: %v", link[0], link[1], err)
		}
	}

	users, _ := fx.memberships.ListProjectUsers(ctx, "p1")
	if len(users) != 2 {
		t.Errorf("p1 should have 2 members, got %d", len(users))
	}

	projects, _ := fx.memberships.ListUserProjects(ctx, "bob")
	if len(projects) != 2 {
		t.Errorf("bob should be in 2 projects, got %d", len(projects))
	}

	projects, _ = fx.memberships.ListUserProjects(ctx, "alice")
	if len(projects) != 1 || projects[0].ProjectID != "p1" {
		t.Errorf("alice should be in [p1], got %+v", projects)
	}
}
