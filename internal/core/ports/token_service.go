package ports

import "github.com/glowmart/shop-api/internal/core/domain"

// TokenService issues and validates the stateless session tokens. Validate
// fails closed: any structural, signature, or expiry problem yields
// domain.ErrInvalidToken and never a partial principal.
type TokenService interface {
	Issue(email string, role domain.Role) (string, error)
	Validate(token string) (domain.Principal, error)
}
