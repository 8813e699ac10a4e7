package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/linity/todo-api/internal/core/domain"
)

// TokenService issues and verifies HS256-signed identity tokens carrying
// {sub, exp} claims. The secret is held for the process lifetime; there is no
// refresh, revocation, or rotation — a leaked token stays valid until expiry.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue mints a token for username, valid for the configured TTL.
func (s *TokenService) Issue(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token and returns its subject. Failures come
// back as distinct sentinel errors (malformed, bad signature, expired) so
// they can be logged precisely; callers collapse them into one
// unauthenticated outcome before anything reaches a client.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrTokenSignature
		default:
			return "", domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return "", domain.ErrTokenMalformed
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrTokenMalformed
	}
	return sub, nil
}
