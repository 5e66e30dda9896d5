package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/glowmart/shop-api/internal/api/metrics"
	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// principalKey is the context key under which the resolved principal lives
// for the remainder of the request. Read-only once set.
const principalKey = "principal"

// Auth resolves the request principal from a bearer token. It runs once per
// request and never rejects on its own: a missing, malformed, or invalid
// token leaves the request anonymous, and the policy layer decides whether
// anonymous is acceptable for the route. Malformed, tampered, and expired
// tokens are indistinguishable from outside.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			principal, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal resolved by Auth, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
