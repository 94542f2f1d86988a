package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testConfig() Config {
	return Config{JWTSecret: "test-secret", AccessTokenTTL: time.Hour}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(cfg, "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Email = %q, want a@x.com", claims.Email)
	}
	if claims.Subject != "a@x.com" {
		t.Errorf("Subject = %q, want a@x.com", claims.Subject)
	}

	// 有效期约等于 1 小时
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 55*time.Minute || ttl > 65*time.Minute {
		t.Errorf("token TTL = %v, want ~1h", ttl)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testConfig(), "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := Config{JWTSecret: "other-secret", AccessTokenTTL: time.Hour}
	if _, err := ParseToken(other, token); err == nil {
		t.Error("Expected error for token signed with different secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testConfig()
	// GenerateToken 对非正 TTL 会回落到 1 小时，过期令牌直接签
	claims := Claims{Email: "a@x.com"}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(cfg, token); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(testConfig(), "not.a.jwt"); err == nil {
		t.Error("Expected error for malformed token")
	}
}

func TestConfigEnabled(t *testing.T) {
	if (Config{}).Enabled() {
		t.Error("empty config should be disabled")
	}
	if !testConfig().Enabled() {
		t.Error("config with secret should be enabled")
	}
}
