package jwtmw

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewService は各種設定でServiceが正しく生成されることを検証します。
func TestNewService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
		want       time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour, time.Hour},
		{"short expiration", "s", time.Minute, time.Minute},
		{"zero falls back to default", "s", 0, DefaultExpiration},
		{"negative falls back to default", "s", -time.Minute, DefaultExpiration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(tt.secret, tt.expiration)

			if string(svc.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(svc.secret))
			}
			if svc.expiration != tt.want {
				t.Errorf("expected expiration %v, got %v", tt.want, svc.expiration)
			}
		})
	}
}

// TestService_GenerateToken は生成されたトークンが正しいクレームを含むことを検証します。
func TestService_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
	}{
		{"basic user", 1},
		{"large user id", 999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService("test-secret", time.Hour)
			tokenStr, err := svc.GenerateToken(tt.userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil || !token.Valid {
				t.Fatalf("failed to parse token: %v", err)
			}
			if claims.Subject != strconv.FormatUint(uint64(tt.userID), 10) {
				t.Errorf("expected sub %d, got %q", tt.userID, claims.Subject)
			}
			if claims.ID == "" {
				t.Error("expected jti to be set")
			}
			lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
			if lifetime != time.Hour {
				t.Errorf("expected 1h lifetime, got %v", lifetime)
			}
			if token.Method.Alg() != "HS256" {
				t.Errorf("expected HS256, got %s", token.Method.Alg())
			}
		})
	}
}

// TestService_GenerateToken_UniqueIDs は同一ユーザーでもトークンIDが毎回異なることを検証します。
func TestService_GenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret", time.Hour)
	a, err := svc.GenerateToken(1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.GenerateToken(1)
	if err != nil {
		t.Fatal(err)
	}

	ca, _ := svc.Verify(a)
	cb, _ := svc.Verify(b)
	if ca == nil || cb == nil {
		t.Fatal("expected both tokens to verify")
	}
	if ca.ID == cb.ID {
		t.Error("expected distinct token IDs")
	}
}
