// Package handler contains the HTTP endpoints. Handlers decode and validate
// input, delegate to services, and render the response envelope; they hold
// no business rules of their own.
package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/storage"
)

var validate = validator.New()

// maxUploadSize bounds multipart request bodies (10 MB)
const maxUploadSize = 10 << 20

// decodeJSON decodes and validates a JSON request body
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.BadRequest("invalid request body")
	}
	return validate.Struct(dst)
}

// decodeBody decodes either a plain JSON body or a multipart form carrying a
// JSON "data" field plus an optional image file. When a file is present it is
// stored immediately and its public URL returned; the caller owns cleanup if
// the request fails later.
func decodeBody(w http.ResponseWriter, r *http.Request, store storage.Store, dst any) (fileURL string, err error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		return "", decodeJSON(r, dst)
	}

	// ParseMultipartForm only bounds the in-memory buffer; cap the body itself
	// so an oversized upload is cut off instead of streamed to disk.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", apperror.BadRequest("invalid multipart form")
	}

	data := r.FormValue("data")
	if data == "" {
		return "", apperror.BadRequest("missing data field")
	}
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return "", apperror.BadRequest("invalid data field")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", validate.Struct(dst)
		}
		return "", apperror.BadRequest("invalid file field")
	}
	defer file.Close()

	fileURL, err = store.Save(r.Context(), header.Filename, file)
	if err != nil {
		return "", err
	}

	if err := validate.Struct(dst); err != nil {
		// Validation failed after the file landed on disk; remove it so a
		// rejected request leaves nothing behind.
		store.Delete(r.Context(), fileURL)
		return "", err
	}
	return fileURL, nil
}

// cleanupUpload removes a stored file after a failed request
func cleanupUpload(r *http.Request, store storage.Store, fileURL string) {
	if fileURL != "" {
		store.Delete(r.Context(), fileURL)
	}
}
