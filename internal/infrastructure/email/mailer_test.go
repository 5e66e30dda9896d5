package email

import (
	"strings"
	"testing"

	"github.com/glowmart/shop-api/internal/core/ports"
)

func TestCompose_Confirmation(t *testing.T) {
	subject, body, err := compose(ports.EmailJob{
		Kind: ports.EmailConfirmation,
		Name: "Alice",
		Code: "123456",
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if subject != "Confirm your email address" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "Alice") || !strings.Contains(body, "123456") {
		t.Fatalf("body must carry name and code: %q", body)
	}
}

func TestCompose_PasswordReset(t *testing.T) {
	subject, body, err := compose(ports.EmailJob{
		Kind: ports.EmailPasswordReset,
		Link: "https://shop.example/reset-password/tok-1",
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if subject != "Reset your password" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "https://shop.example/reset-password/tok-1") {
		t.Fatalf("body must carry the reset link: %q", body)
	}
	if !strings.Contains(body, "Hi there,") {
		t.Fatalf("missing name must fall back to a generic greeting: %q", body)
	}
}

func TestCompose_UnknownKind(t *testing.T) {
	if _, _, err := compose(ports.EmailJob{Kind: "newsletter"}); err == nil {
		t.Fatalf("unknown kinds must be rejected")
	}
}
