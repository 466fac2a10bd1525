package jwt

import (
	"testing"
	"time"

	"github.com/codewithamasu/e-jurnal/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:     "test-secret-key-for-unit-testing-2026",
		AdminTokenTTL: 1 * time.Hour,
		GuruTokenTTL:  24 * time.Hour,
	})
}

func TestGenerateAndParseAdminToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAdminToken("1992502")
	if err != nil {
		t.Fatalf("GenerateAdminToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.Username != "1992502" {
		t.Errorf("期望 Username=1992502，实际=%s", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("期望 Role=admin，实际=%s", claims.Role)
	}
	if claims.GuruID != 0 {
		t.Errorf("管理员 Token 不应携带 GuruID，实际=%d", claims.GuruID)
	}
	if claims.Issuer != "e-jurnal" {
		t.Errorf("期望 Issuer=e-jurnal，实际=%s", claims.Issuer)
	}

	// 检查过期时间约为 1h
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > 61*time.Minute {
		t.Errorf("管理员 Token TTL 期望约1h，实际=%v", ttl)
	}
}

func TestGenerateAndParseGuruToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateGuruToken(42, "kepsek")
	if err != nil {
		t.Fatalf("GenerateGuruToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.GuruID != 42 {
		t.Errorf("期望 GuruID=42，实际=%d", claims.GuruID)
	}
	if claims.Role != "kepsek" {
		t.Errorf("期望 Role=kepsek，实际=%s", claims.Role)
	}

	// 检查过期时间约为 24h
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("教师 Token TTL 期望约24h，实际=%v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:     "different-secret-key",
		AdminTokenTTL: 1 * time.Hour,
		GuruTokenTTL:  24 * time.Hour,
	})

	token, _ := m1.GenerateGuruToken(1, "guru")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("不同密钥签名的 token 不应通过验证")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// 创建一个 TTL 极短的 manager 来测试过期
	m := NewManager(&config.AuthConfig{
		JWTSecret:     "test-secret-key-exp",
		AdminTokenTTL: 1 * time.Millisecond,
		GuruTokenTTL:  1 * time.Millisecond,
	})

	token, _ := m.GenerateGuruToken(1, "guru")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}
