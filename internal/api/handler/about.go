package handler

import (
	"net/http"

	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/service"
	"github.com/rensmac/portfolio-api/internal/storage"
)

// AboutHandler handles the profile endpoints
type AboutHandler struct {
	aboutService *service.AboutService
	store        storage.Store
}

// NewAboutHandler creates a new about handler
func NewAboutHandler(aboutService *service.AboutService, store storage.Store) *AboutHandler {
	return &AboutHandler{aboutService: aboutService, store: store}
}

// Create creates the profile record. Accepts JSON, or multipart with a
// photo file.
func (h *AboutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.AboutCreate
	fileURL, err := decodeBody(w, r, h.store, &input)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if fileURL != "" {
		input.Photo = fileURL
	}

	about, err := h.aboutService.Create(r.Context(), input)
	if err != nil {
		cleanupUpload(r, h.store, fileURL)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "about created successfully", about)
}

// Get returns the profile record
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.aboutService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "about retrieved successfully", about)
}

// Update applies a partial update to the profile record
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.AboutUpdate
	fileURL, err := decodeBody(w, r, h.store, &input)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if fileURL != "" {
		input.Photo = &fileURL
	}

	about, err := h.aboutService.Update(r.Context(), input)
	if err != nil {
		cleanupUpload(r, h.store, fileURL)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "about updated successfully", about)
}

// Delete removes the profile record
func (h *AboutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.aboutService.Delete(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "about deleted successfully", nil)
}
