package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/glowmart/shop-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and validates the HS256-signed stateless session tokens.
// The signing secret is process-wide and read-only after construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token carrying the subject email and role.
func (s *TokenService) Issue(email string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature then expiry and fails closed: any structural,
// signature, or expiry problem yields ErrInvalidToken, never a partial
// principal. Callers map all failures to the same unauthenticated outcome so
// clients cannot probe why a token was refused.
func (s *TokenService) Validate(raw string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	roleClaim, _ := claims["role"].(string)
	role, ok := domain.ParseRole(roleClaim)
	if sub == "" || !ok {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{Email: sub, Role: role}, nil
}
