package security_test

import (
	"testing"
	"time"

	"github.com/rensmac/portfolio-api/internal/security"
)

func newManager() *security.TokenManager {
	return security.NewTokenManager(
		"access-secret-with-32-characters!",
		"refresh-secret-with-32-character!",
		15*time.Minute,
		72*time.Hour,
	)
}

func TestTokenManager_GenerateAndVerify(t *testing.T) {
	manager := newManager()

	accessToken, refreshToken, err := manager.GenerateTokenPair("68b1f0aa1c9d440000a1b2c3", "owner@example.com", "OWNER")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}

	claims, err := manager.VerifyAccessToken(accessToken)
	if err != nil {
		t.Fatalf("failed to verify access token: %v", err)
	}
	if claims.UserID() != "68b1f0aa1c9d440000a1b2c3" {
		t.Errorf("user id mismatch: got %v", claims.UserID())
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("email mismatch: got %v", claims.Email)
	}
	if claims.Role != "OWNER" {
		t.Errorf("role mismatch: got %v", claims.Role)
	}

	rc, err := manager.VerifyRefreshToken(refreshToken)
	if err != nil {
		t.Fatalf("failed to verify refresh token: %v", err)
	}
	if rc.UserID() != claims.UserID() {
		t.Errorf("refresh token user id mismatch: got %v", rc.UserID())
	}
}

func TestTokenManager_RejectsCrossUse(t *testing.T) {
	manager := newManager()

	accessToken, refreshToken, err := manager.GenerateTokenPair("68b1f0aa1c9d440000a1b2c3", "owner@example.com", "OWNER")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if _, err := manager.VerifyAccessToken(refreshToken); err == nil {
		t.Error("refresh token accepted as access token")
	}
	if _, err := manager.VerifyRefreshToken(accessToken); err == nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestTokenManager_RejectsSameSecretCrossUse(t *testing.T) {
	// Even with identical secrets the type claim keeps the two kinds apart.
	manager := security.NewTokenManager("shared-secret", "shared-secret", time.Minute, time.Hour)

	refreshToken, err := manager.GenerateRefreshToken("68b1f0aa1c9d440000a1b2c3", "owner@example.com", "OWNER")
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	if _, err := manager.VerifyAccessToken(refreshToken); err == nil {
		t.Error("refresh token accepted as access token despite type claim")
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	expired := security.NewTokenManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	accessToken, err := expired.GenerateAccessToken("68b1f0aa1c9d440000a1b2c3", "owner@example.com", "OWNER")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	manager := security.NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	if _, err := manager.VerifyAccessToken(accessToken); err == nil {
		t.Error("expired access token accepted")
	}
}

func TestTokenManager_RejectsTampered(t *testing.T) {
	manager := newManager()

	accessToken, err := manager.GenerateAccessToken("68b1f0aa1c9d440000a1b2c3", "owner@example.com", "OWNER")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	// Invalid format
	if _, err := manager.VerifyAccessToken("not-a-token"); err == nil {
		t.Error("malformed token accepted")
	}

	// Signed with a different secret
	other := security.NewTokenManager("a-completely-different-secret!!!", "another-one", time.Minute, time.Hour)
	otherToken, _ := other.GenerateAccessToken("68b1f0aa1c9d440000a1b2c3", "owner@example.com", "OWNER")
	if _, err := manager.VerifyAccessToken(otherToken); err == nil {
		t.Error("token signed with wrong secret accepted")
	}

	// Flipped payload byte
	tampered := accessToken[:len(accessToken)-2] + "xx"
	if _, err := manager.VerifyAccessToken(tampered); err == nil {
		t.Error("tampered token accepted")
	}
}
