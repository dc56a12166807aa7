package handler

import (
	"net/http"

	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/storage"
)

// MediaHandler handles standalone asset uploads
type MediaHandler struct {
	store storage.Store
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(store storage.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

// Upload stores an image and returns its public URL
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	url, err := h.store.Save(r.Context(), header.Filename, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "file uploaded successfully", map[string]string{
		"url": url,
	})
}
