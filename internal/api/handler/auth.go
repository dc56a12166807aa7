package handler

import (
	"net/http"
	"time"

	"github.com/rensmac/portfolio-api/internal/api/middleware"
	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/security"
	"github.com/rensmac/portfolio-api/internal/service"
)

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	authService *service.AuthService
	tokens      *security.TokenManager
	// secureCookies marks auth cookies Secure; off in local development so
	// plain-http testing works.
	secureCookies bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, tokens *security.TokenManager, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		tokens:        tokens,
		secureCookies: secureCookies,
	}
}

// Register handles owner registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "user registered successfully", user)
}

// Login authenticates and delivers the token pair as httpOnly cookies
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), input)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setCookie(w, middleware.AccessTokenCookie, result.AccessToken, h.tokens.AccessTokenTTL())
	h.setCookie(w, middleware.RefreshTokenCookie, result.RefreshToken, h.tokens.RefreshTokenTTL())

	response.OK(w, "logged in successfully", result)
}

// RefreshToken mints a fresh access token from the refresh cookie
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.RefreshTokenCookie)
	if err != nil {
		response.Unauthorized(w, "refresh token missing")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setCookie(w, middleware.AccessTokenCookie, pair.AccessToken, h.tokens.AccessTokenTTL())

	response.OK(w, "access token refreshed", pair)
}

// Logout clears both auth cookies
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, middleware.AccessTokenCookie)
	h.clearCookie(w, middleware.RefreshTokenCookie)

	response.OK(w, "logged out successfully", nil)
}

// ChangePassword rotates the authenticated user's password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	var input domain.PasswordChange
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), claims.UserID(), input); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "password changed successfully", nil)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "authentication required")
		return
	}

	user, err := h.authService.Me(r.Context(), claims.UserID())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, "user retrieved successfully", user)
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
