package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/glowmart/shop-api/internal/core/domain"
)

type stubTokenService struct {
	validateFn func(token string) (domain.Principal, error)
}

func (s *stubTokenService) Issue(email string, role domain.Role) (string, error) {
	return "", nil
}

func (s *stubTokenService) Validate(token string) (domain.Principal, error) {
	return s.validateFn(token)
}

func runAuth(t *testing.T, tokens *stubTokenService, header string) (echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return c, called
}

func TestAuth_NoHeaderStaysAnonymous(t *testing.T) {
	tokens := &stubTokenService{
		validateFn: func(string) (domain.Principal, error) {
			t.Fatalf("validate should not be called without a header")
			return domain.Principal{}, nil
		},
	}

	c, called := runAuth(t, tokens, "")
	if !called {
		t.Fatalf("next handler not called")
	}
	if _, ok := PrincipalFrom(c); ok {
		t.Fatalf("expected no principal")
	}
}

func TestAuth_MalformedHeaderStaysAnonymous(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc123", "justatoken"} {
		tokens := &stubTokenService{
			validateFn: func(string) (domain.Principal, error) {
				t.Fatalf("validate should not be called for %q", header)
				return domain.Principal{}, nil
			},
		}

		c, called := runAuth(t, tokens, header)
		if !called {
			t.Fatalf("next handler not called for %q", header)
		}
		if _, ok := PrincipalFrom(c); ok {
			t.Fatalf("expected no principal for %q", header)
		}
	}
}

func TestAuth_InvalidTokenStaysAnonymous(t *testing.T) {
	tokens := &stubTokenService{
		validateFn: func(string) (domain.Principal, error) {
			return domain.Principal{}, domain.ErrInvalidToken
		},
	}

	c, called := runAuth(t, tokens, "Bearer bad-token")
	if !called {
		t.Fatalf("next handler not called: invalid tokens must not reject here")
	}
	if _, ok := PrincipalFrom(c); ok {
		t.Fatalf("expected no principal for invalid token")
	}
}

func TestAuth_ValidTokenSetsPrincipal(t *testing.T) {
	tokens := &stubTokenService{
		validateFn: func(token string) (domain.Principal, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return domain.Principal{Email: "a@example.com", Role: domain.RoleAdmin}, nil
		},
	}

	c, called := runAuth(t, tokens, "Bearer good-token")
	if !called {
		t.Fatalf("next handler not called")
	}

	p, ok := PrincipalFrom(c)
	if !ok {
		t.Fatalf("expected principal to be set")
	}
	if p.Email != "a@example.com" || !p.IsAdmin() {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestAuth_LowercaseBearerAccepted(t *testing.T) {
	tokens := &stubTokenService{
		validateFn: func(string) (domain.Principal, error) {
			return domain.Principal{Email: "u@example.com", Role: domain.RoleUser}, nil
		},
	}

	c, _ := runAuth(t, tokens, "bearer some-token")
	if _, ok := PrincipalFrom(c); !ok {
		t.Fatalf("scheme comparison should be case-insensitive")
	}
}
