package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/service"
)

// SkillHandler handles skill and skill category endpoints
type SkillHandler struct {
	skillService *service.SkillService
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// Create creates a skill
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.SkillCreate
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	skill, err := h.skillService.Create(r.Context(), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "skill created successfully", skill)
}

// List returns every skill
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "skills retrieved successfully", skills)
}

// Get returns a single skill
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	skill, err := h.skillService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "skill retrieved successfully", skill)
}

// Update applies a partial update to a skill
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.SkillUpdate
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	skill, err := h.skillService.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "skill updated successfully", skill)
}

// Delete removes a skill
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.skillService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "skill deleted successfully", nil)
}

// CreateCategory creates a skill category
func (h *SkillHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input domain.SkillCategoryCreate
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	category, err := h.skillService.CreateCategory(r.Context(), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "skill category created successfully", category)
}

// ListCategories returns every skill category
func (h *SkillHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.skillService.GetAllCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "skill categories retrieved successfully", categories)
}

// UpdateCategory renames a skill category
func (h *SkillHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input domain.SkillCategoryCreate
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	category, err := h.skillService.UpdateCategory(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "skill category updated successfully", category)
}

// DeleteCategory removes a skill category
func (h *SkillHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.skillService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "skill category deleted successfully", nil)
}
