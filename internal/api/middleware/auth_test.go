package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthStack(accessTTL time.Duration) (*AuthMiddleware, *security.TokenManager) {
	tokens := security.NewTokenManager("access-secret", "refresh-secret", accessTTL, 72*time.Hour)
	return NewAuthMiddleware(tokens), tokens
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		require.True(t, ok)
		require.NotEmpty(t, claims.UserID())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequireRole_BearerHeader(t *testing.T) {
	mw, tokens := newAuthStack(15 * time.Minute)

	token, err := tokens.GenerateAccessToken("64f000000000000000000001", "owner@example.com", string(domain.RoleOwner))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireRole(domain.RoleOwner)(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole_Cookie(t *testing.T) {
	mw, tokens := newAuthStack(15 * time.Minute)

	token, err := tokens.GenerateAccessToken("64f000000000000000000001", "owner@example.com", string(domain.RoleOwner))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	rec := httptest.NewRecorder()

	mw.RequireRole(domain.RoleOwner)(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireRole_MissingToken(t *testing.T) {
	mw, _ := newAuthStack(15 * time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	mw.RequireRole(domain.RoleOwner)(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_ExpiredToken(t *testing.T) {
	mw, tokens := newAuthStack(-time.Minute)

	token, err := tokens.GenerateAccessToken("64f000000000000000000001", "owner@example.com", string(domain.RoleOwner))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireRole(domain.RoleOwner)(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	mw, tokens := newAuthStack(15 * time.Minute)

	token, err := tokens.GenerateAccessToken("64f000000000000000000001", "guest@example.com", "GUEST")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireRole(domain.RoleOwner)(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_RefreshTokenRejected(t *testing.T) {
	mw, tokens := newAuthStack(15 * time.Minute)

	token, err := tokens.GenerateRefreshToken("64f000000000000000000001", "owner@example.com", string(domain.RoleOwner))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.RequireRole(domain.RoleOwner)(protectedHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
