package handler

import (
	"log/slog"
	"net/http"

	"teamdir/internal/domain/services"
	"teamdir/internal/httputil"
)

// MembershipHandler handles user-project association HTTP requests
type MembershipHandler struct {
	membershipService services.MembershipService
	logger            *slog.Logger
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService services.MembershipService, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		logger:            logger,
	}
}

// AddUserToProject links a user to a project
// POST /v1/projects/{project_id}/users/{user_id}
func (h *MembershipHandler) AddUserToProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathParam(w, r, "project_id", "project ID")
	if !ok {
		return
	}
	userID, ok := PathParam(w, r, "user_id", "user ID")
	if !ok {
		return
	}

	if err := h.membershipService.AddUser(r.Context(), projectID, userID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveUserFromProject unlinks a user from a project
// DELETE /v1/projects/{project_id}/users/{user_id}
func (h *MembershipHandler) RemoveUserFromProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathParam(w, r, "project_id", "project ID")
	if !ok {
		return
	}
	userID, ok := PathParam(w, r, "user_id", "user ID")
	if !ok {
		return
	}

	if err := h.membershipService.RemoveUser(r.Context(), projectID, userID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListProjectUsers returns the members of a project
// GET /v1/projects/{project_id}/users
func (h *MembershipHandler) ListProjectUsers(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathParam(w, r, "project_id", "project ID")
	if !ok {
		return
	}

	users, err := h.membershipService.ListProjectUsers(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, users)
}

// ListUserProjects returns the projects a user belongs to
// GET /v1/projects/user/{user_id}/projects
func (h *MembershipHandler) ListUserProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := PathParam(w, r, "user_id", "user ID")
	if !ok {
		return
	}

	projects, err := h.membershipService.ListUserProjects(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}
