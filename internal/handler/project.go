package handler

import (
	"log/slog"
	"net/http"

	"teamdir/internal/config"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/services"
	"teamdir/internal/httputil"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projectService services.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService services.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

type patchProjectRequest struct {
	Name        httputil.OptionalString `json:"name"`
	Description httputil.OptionalString `json:"description"`
}

// CreateProject creates a new project
// POST /v1/projects/
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req services.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest,
			"validation_error", "invalid request body", nil)
		return
	}

	project, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// ListProjects retrieves a page of projects
// GET /v1/projects/?skip=&limit=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	skip := httputil.QueryInt(r, "skip", 0, 0, int(^uint(0)>>1))
	limit := httputil.QueryInt(r, "limit", config.MaxPageSize, 1, config.MaxPageSize)

	projects, total, err := h.projectService.List(r.Context(), skip, limit)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, PaginatedResponse[models.Project]{
		Items: projects,
		Total: total,
		Limit: limit,
		Skip:  skip,
	})
}

// GetProject retrieves a project by project_id
// GET /v1/projects/{project_id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathParam(w, r, "project_id", "project ID")
	if !ok {
		return
	}

	project, err := h.projectService.Get(r.Context(), projectID)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// ReplaceProject applies a full update
// PUT /v1/projects/{project_id}
func (h *ProjectHandler) ReplaceProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathParam(w, r, "project_id", "project ID")
	if !ok {
		return
	}

	var req services.ReplaceProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest,
			"validation_error", "invalid request body", nil)
		return
	}

	project, err := h.projectService.Replace(r.Context(), projectID, &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// PatchProject applies a partial update
// PATCH /v1/projects/{project_id}
func (h *ProjectHandler) PatchProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathParam(w, r, "project_id", "project ID")
	if !ok {
		return
	}

	var req patchProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, r, http.StatusBadRequest,
			"validation_error", "invalid request body", nil)
		return
	}

	project, err := h.projectService.Patch(r.Context(), projectID, &services.PatchProjectRequest{
		Name:        models.OptionalField(req.Name),
		Description: models.OptionalField(req.Description),
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// DeleteProject removes a project
// DELETE /v1/projects/{project_id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := PathParam(w, r, "project_id", "project ID")
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), projectID); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
