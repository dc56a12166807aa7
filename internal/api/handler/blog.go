package handler

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rensmac/portfolio-api/internal/api/middleware"
	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/service"
	"github.com/rensmac/portfolio-api/internal/storage"
)

// BlogHandler handles blog and comment endpoints
type BlogHandler struct {
	blogService *service.BlogService
	store       storage.Store
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *service.BlogService, store storage.Store) *BlogHandler {
	return &BlogHandler{blogService: blogService, store: store}
}

// Create creates a blog post. Accepts JSON, or multipart with a featured
// image file.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	var input domain.BlogCreate
	fileURL, err := decodeBody(w, r, h.store, &input)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if fileURL != "" {
		input.FeaturedImage = fileURL
	}

	blog, err := h.blogService.Create(r.Context(), claims.UserID(), input)
	if err != nil {
		cleanupUpload(r, h.store, fileURL)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "blog created successfully", blog)
}

// ListAdmin returns posts in every status for the owner dashboard
func (h *BlogHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	blogs, meta, err := h.blogService.ListAdmin(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, "blogs retrieved successfully", blogs, meta)
}

// ListPublished returns published posts for the public site
func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	blogs, meta, err := h.blogService.ListPublished(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, "blogs retrieved successfully", blogs, meta)
}

// GetAdmin returns a post in any status, comments included
func (h *BlogHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	blog, err := h.blogService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "blog retrieved successfully", blog)
}

// GetPublished returns a published post by id or slug and records the view
func (h *BlogHandler) GetPublished(w http.ResponseWriter, r *http.Request) {
	blog, err := h.blogService.GetPublished(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "blog retrieved successfully", blog)
}

// Update applies a partial update to a post
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.BlogUpdate
	fileURL, err := decodeBody(w, r, h.store, &input)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if fileURL != "" {
		input.FeaturedImage = &fileURL
	}

	blog, err := h.blogService.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		cleanupUpload(r, h.store, fileURL)
		response.HandleError(w, err)
		return
	}

	response.OK(w, "blog updated successfully", blog)
}

// Delete removes a post and its comments
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "blog deleted successfully", nil)
}

// AddComment records an anonymous comment on a published post
func (h *BlogHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var input domain.CommentCreate
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	comment, err := h.blogService.AddComment(r.Context(), chi.URLParam(r, "id"), input, clientIP(r), r.UserAgent())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "comment submitted for moderation", comment)
}

// GetComments returns the approved comments of a published post
func (h *BlogHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, meta, err := h.blogService.GetComments(r.Context(), chi.URLParam(r, "id"), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, "comments retrieved successfully", comments, meta)
}

// ModerateComment approves or rejects a comment
func (h *BlogHandler) ModerateComment(w http.ResponseWriter, r *http.Request) {
	var input domain.CommentModerate
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	comment, err := h.blogService.ModerateComment(r.Context(), chi.URLParam(r, "commentId"), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "comment moderated successfully", comment)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
