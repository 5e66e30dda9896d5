package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/glowmart/shop-api/internal/api/metrics"
)

// Requirement is the access level a rule demands.
type Requirement int

const (
	Public Requirement = iota
	Authenticated
	AdminOnly
)

// Rule maps an HTTP method and path pattern onto a requirement. Method "*"
// matches every verb. Patterns are matched segment by segment; a single
// trailing "**" segment matches any suffix, including the empty one.
type Rule struct {
	Method  string
	Pattern string
	Require Requirement
}

// Policy enforces an ordered rule table, evaluated top to bottom with the
// first match winning. Requests that match no rule require authentication.
// The table is static configuration fixed at startup.
//
// Policy must run after Auth: a request with no resolved principal is
// rejected as unauthenticated (401), while a valid principal lacking the
// ADMIN role on an admin route gets the distinct forbidden outcome (403).
func Policy(rules []Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requirement := requirementFor(rules, c.Request().Method, c.Request().URL.Path)
			principal, authenticated := PrincipalFrom(c)

			switch requirement {
			case Public:
				return next(c)
			case Authenticated:
				if !authenticated {
					metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				return next(c)
			case AdminOnly:
				if !authenticated {
					metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}
				if !principal.IsAdmin() {
					metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "admin role required")
				}
				return next(c)
			default:
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
		}
	}
}

func requirementFor(rules []Rule, method, path string) Requirement {
	for _, r := range rules {
		if r.matches(method, path) {
			return r.Require
		}
	}
	return Authenticated
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "*" && !strings.EqualFold(r.Method, method) {
		return false
	}
	return matchPattern(r.Pattern, path)
}

// matchPattern compares literal path segments; a trailing "**" matches any
// remainder, so "/api/products/**" covers "/api/products" as well as every
// path below it.
func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range patSegs {
		if seg == "**" && i == len(patSegs)-1 {
			return true
		}
		if i >= len(pathSegs) || seg != pathSegs[i] {
			return false
		}
	}
	return len(patSegs) == len(pathSegs)
}
