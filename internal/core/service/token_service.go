package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

// TokenService mints the signed, expiring bearer tokens handed out at login.
// Token concerns live here, outside the account service, so the account
// contract stays credential-format agnostic.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL}
}

// Issue signs an HS256 JWT carrying the user's identity and role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

var _ ports.TokenIssuer = (*TokenService)(nil)
