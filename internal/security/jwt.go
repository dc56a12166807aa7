package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTypeAccess and TokenTypeRefresh are carried as an explicit claim
	// so a refresh token is never accepted where an access token is
	// required, even if both secrets were ever set to the same value.
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	issuer = "portfolio-api"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims. Subject holds the user id.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// UserID returns the user id the token was minted for.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenManager mints and verifies the access/refresh pair. The two token
// kinds use independent secrets and independent TTLs.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager creates a new token manager
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// GenerateAccessToken mints a short-lived access token
func (m *TokenManager) GenerateAccessToken(userID, email, role string) (string, error) {
	return m.generate(userID, email, role, TokenTypeAccess, m.accessTTL, m.accessSecret)
}

// GenerateRefreshToken mints a long-lived refresh token
func (m *TokenManager) GenerateRefreshToken(userID, email, role string) (string, error) {
	return m.generate(userID, email, role, TokenTypeRefresh, m.refreshTTL, m.refreshSecret)
}

// GenerateTokenPair mints both tokens for a login response
func (m *TokenManager) GenerateTokenPair(userID, email, role string) (accessToken, refreshToken string, err error) {
	accessToken, err = m.GenerateAccessToken(userID, email, role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err = m.GenerateRefreshToken(userID, email, role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (m *TokenManager) generate(userID, email, role, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken validates signature, expiry and token type
func (m *TokenManager) VerifyAccessToken(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenTypeAccess, m.accessSecret)
}

// VerifyRefreshToken validates signature, expiry and token type
func (m *TokenManager) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenTypeRefresh, m.refreshSecret)
}

func (m *TokenManager) verify(tokenString, wantType string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AccessTokenTTL returns the access token TTL
func (m *TokenManager) AccessTokenTTL() time.Duration {
	return m.accessTTL
}

// RefreshTokenTTL returns the refresh token TTL
func (m *TokenManager) RefreshTokenTTL() time.Duration {
	return m.refreshTTL
}
