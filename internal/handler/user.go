package handler

import (
	"log/slog"
	"net/http"

	"teamdir/internal/config"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/services"
	"teamdir/internal/httputil"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	userService services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// patchUserRequest is the transport DTO for PATCH; OptionalString
// preserves the absent/null/value distinction.
type patchUserRequest struct {
	GivenName  httputil.OptionalString `json:"given_name"`
	FamilyName httputil.OptionalString `json:"family_name"`
	Email      httputil.OptionalString `json:"email"`
}

// CreateUser creates a new user
// POST /v1/users/
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req services.CreateUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest,
			"validation_error", "invalid request body", nil)
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, user)
}

// ListUsers retrieves a page of users
// GET /v1/users/?skip=&limit=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip := httputil.QueryInt(r, "skip", 0, 0, int(^uint(0)>>1))
	limit := httputil.QueryInt(r, "limit", config.MaxPageSize, 1, config.MaxPageSize)

	users, total, err := h.userService.List(r.Context(), skip, limit)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, PaginatedResponse[models.User]{
		Items: users,
		Total: total,
		Limit: limit,
		Skip:  skip,
	})
}

// GetUser retrieves a user by user_id
// GET /v1/users/{user_id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := PathParam(w, r, "user_id", "user ID")
	if !ok {
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

// ReplaceUser applies a full update
// PUT /v1/users/{user_id}
func (h *UserHandler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := PathParam(w, r, "user_id", "user ID")
	if !ok {
		return
	}

	var req services.ReplaceUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest,
			"validation_error", "invalid request body", nil)
		return
	}

	user, err := h.userService.Replace(r.Context(), userID, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

// PatchUser applies a partial update
// PATCH /v1/users/{user_id}
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := PathParam(w, r, "user_id", "user ID")
	if !ok {
		return
	}

	var req patchUserRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest,
			"validation_error", "invalid request body", nil)
		return
	}

	user, err := h.userService.Patch(r.Context(), userID, &services.PatchUserRequest{
		GivenName:  models.OptionalField(req.GivenName),
		FamilyName: models.OptionalField(req.FamilyName),
		Email:      models.OptionalField(req.Email),
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

// DeleteUser removes a user
// DELETE /v1/users/{user_id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := PathParam(w, r, "user_id", "user ID")
	if !ok {
		return
	}

	if err := h.userService.Delete(r.Context(), userID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
