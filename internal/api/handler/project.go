package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/service"
	"github.com/rensmac/portfolio-api/internal/storage"
)

// ProjectHandler handles portfolio project endpoints
type ProjectHandler struct {
	projectService *service.ProjectService
	store          storage.Store
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, store storage.Store) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, store: store}
}

// Create creates a project. Accepts JSON, or multipart with an image file.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectCreate
	fileURL, err := decodeBody(w, r, h.store, &input)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if fileURL != "" {
		input.Image = fileURL
	}

	project, err := h.projectService.Create(r.Context(), input)
	if err != nil {
		cleanupUpload(r, h.store, fileURL)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "project created successfully", project)
}

// List returns projects filtered, sorted and paginated by query parameters
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, meta, err := h.projectService.List(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, "projects retrieved successfully", projects, meta)
}

// Get returns a single project
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "project retrieved successfully", project)
}

// Update applies a partial update to a project
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectUpdate
	fileURL, err := decodeBody(w, r, h.store, &input)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if fileURL != "" {
		input.Image = &fileURL
	}

	project, err := h.projectService.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		cleanupUpload(r, h.store, fileURL)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "project updated successfully", project)
}

// Delete removes a project
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "project deleted successfully", nil)
}
