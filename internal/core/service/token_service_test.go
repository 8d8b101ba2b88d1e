package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

func TestTokenService_Issue(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := &domain.User{ID: 42, Username: "alice", Role: domain.RoleAdmin}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "42" {
		t.Fatalf("expected sub 42, got %v", claims["sub"])
	}
	if claims["username"] != "alice" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		t.Fatalf("token already expired")
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.tokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h default TTL, got %s", svc.tokenTTL)
	}
}
