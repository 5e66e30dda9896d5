package ports

import (
	"context"

	"github.com/glowmart/shop-api/internal/core/domain"
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	FullName     string
	Email        string
	Password     string
	CaptchaToken string
}

// LoginInput carries a login attempt.
type LoginInput struct {
	Email        string
	Password     string
	CaptchaToken string
}

// AuthService defines credential issuance and account lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a session token on success. Bad email and bad password are
	// deliberately indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (string, error)
	ConfirmEmail(ctx context.Context, email, code string) error
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
