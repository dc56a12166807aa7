package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rensmac/portfolio-api/internal/api/response"
	"github.com/rensmac/portfolio-api/internal/domain"
	"github.com/rensmac/portfolio-api/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// AccessTokenCookie and RefreshTokenCookie name the auth cookies set at
// login.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// AuthMiddleware guards owner-only routes
type AuthMiddleware struct {
	tokens *security.TokenManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireRole authenticates the request and enforces the given role. The
// access token is read from the Authorization header first, falling back to
// the auth cookie so browser clients work without custom headers.
func (m *AuthMiddleware) RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
					tokenString = cookie.Value
				}
			}
			if tokenString == "" {
				response.Unauthorized(w, "authentication required")
				return
			}

			claims, err := m.tokens.VerifyAccessToken(tokenString)
			if err != nil {
				response.Unauthorized(w, "invalid or expired token")
				return
			}

			if claims.Role != string(role) {
				response.Forbidden(w, "insufficient permissions")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the verified claims stored by RequireRole
func ClaimsFrom(ctx context.Context) (*security.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
