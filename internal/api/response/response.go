// Package response renders the uniform API envelope. Success payloads carry
// data plus optional pagination meta; failures carry a message and a list of
// error sources the frontend can map onto form fields.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/go-playground/validator/v10"
	"github.com/rensmac/portfolio-api/internal/apperror"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// debugMode controls whether error responses include the raw error and a
// stack trace. Enabled outside production only.
var debugMode bool

// EnableDebug turns on verbose error payloads
func EnableDebug() {
	debugMode = true
}

// Response is the success envelope
type Response struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Meta    *domain.ListMeta `json:"meta,omitempty"`
	Data    any              `json:"data,omitempty"`
}

// ErrorSource points a failure at a request field
type ErrorSource struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	ErrorSources []ErrorSource `json:"errorSources"`
	Err          string        `json:"err,omitempty"`
	Stack        string        `json:"stack,omitempty"`
}

// JSON sends a success envelope
func JSON(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List sends a success envelope with pagination meta
func List(w http.ResponseWriter, message string, data any, meta *domain.ListMeta) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Meta:    meta,
		Data:    data,
	})
}

// OK sends a 200 response
func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, message, data)
}

// Created sends a 201 response
func Created(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, message, data)
}

// Error sends a failure envelope
func Error(w http.ResponseWriter, status int, message string, sources []ErrorSource, cause error) {
	if sources == nil {
		sources = []ErrorSource{{Path: "", Message: message}}
	}

	resp := ErrorResponse{
		Success:      false,
		Message:      message,
		ErrorSources: sources,
	}
	if debugMode && cause != nil {
		resp.Err = cause.Error()
		resp.Stack = string(debug.Stack())
	}

	writeJSON(w, status, resp)
}

// BadRequest sends a 400 failure
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message, nil, nil)
}

// Unauthorized sends a 401 failure
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message, nil, nil)
}

// Forbidden sends a 403 failure
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message, nil, nil)
}

// HandleError maps a service error onto the failure envelope. AppErrors keep
// their status; validation errors become field-level 400s; driver errors map
// to the obvious statuses; everything else is a 500.
func HandleError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Error(w, appErr.StatusCode, appErr.Message, nil, err)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		sources := make([]ErrorSource, 0, len(validationErrs))
		for _, fe := range validationErrs {
			sources = append(sources, ErrorSource{
				Path:    fe.Field(),
				Message: validationMessage(fe),
			})
		}
		Error(w, http.StatusBadRequest, "validation failed", sources, err)
		return
	}

	switch {
	case errors.Is(err, storage.ErrUnsupportedType):
		Error(w, http.StatusBadRequest, "unsupported file type", nil, err)
	case mongo.IsDuplicateKeyError(err):
		Error(w, http.StatusConflict, "resource already exists", nil, err)
	case errors.Is(err, mongo.ErrNoDocuments):
		Error(w, http.StatusNotFound, "resource not found", nil, err)
	case errors.Is(err, primitive.ErrInvalidHex):
		Error(w, http.StatusBadRequest, "invalid id", nil, err)
	default:
		Error(w, http.StatusInternalServerError, "something went wrong", nil, err)
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "invalid email format"
	case "url":
		return "invalid URL"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "hexadecimal":
		return "must be a hexadecimal string"
	default:
		return "validation failed on " + fe.Tag()
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
