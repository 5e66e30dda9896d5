package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

const resetTokenTTL = time.Hour

// CaptchaVerifier abstracts the reCAPTCHA check. Implementations must fail
// closed: any verification problem reports false.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// LoginLimiter throttles login attempts per email (Redis-backed in production).
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}

// EmailQueue hands a message to the async delivery workers.
type EmailQueue interface {
	Enqueue(job ports.EmailJob)
}

// AuthService implements registration, login, and account lifecycle flows.
type AuthService struct {
	repo        ports.UserRepository
	tokens      ports.TokenService
	captcha     CaptchaVerifier
	limiter     LoginLimiter
	emails      EmailQueue
	frontendURL string
	log         zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	tokens ports.TokenService,
	captcha CaptchaVerifier,
	limiter LoginLimiter,
	emails EmailQueue,
	frontendURL string,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:        repo,
		tokens:      tokens,
		captcha:     captcha,
		limiter:     limiter,
		emails:      emails,
		frontendURL: frontendURL,
		log:         log,
	}
}

// Register creates a USER-role account and enqueues the confirmation email.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if !s.captcha.Verify(ctx, input.CaptchaToken) {
		return nil, domain.ErrCaptchaFailed
	}
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FullName:         input.FullName,
		Email:            input.Email,
		PasswordHash:     string(hash),
		Role:             domain.RoleUser,
		EmailConfirmed:   false,
		ConfirmationCode: confirmationCode(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.emails.Enqueue(ports.EmailJob{
		Kind: ports.EmailConfirmation,
		To:   created.Email,
		Name: created.FullName,
		Code: created.ConfirmationCode,
	})

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login authenticates and returns a session token. Unknown email and wrong
// password both surface as ErrInvalidCredentials so the response does not
// reveal which one was wrong.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (string, error) {
	if !s.captcha.Verify(ctx, input.CaptchaToken) {
		return "", domain.ErrCaptchaFailed
	}
	if input.Email == "" || input.Password == "" {
		return "", domain.ErrInvalidCredentials
	}

	allowed, err := s.limiter.Allow(ctx, input.Email)
	if err != nil {
		// The limiter is best-effort: a broken Redis must not lock everyone out.
		s.log.Warn().Err(err).Msg("login limiter unavailable")
	} else if !allowed {
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, input.Email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter reset failed")
	}

	return s.tokens.Issue(user.Email, user.Role)
}

// ConfirmEmail marks the account confirmed when the code matches.
func (s *AuthService) ConfirmEmail(ctx context.Context, email, code string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if code == "" || user.ConfirmationCode != code {
		return domain.ErrInvalidCode
	}

	user.EmailConfirmed = true
	user.ConfirmationCode = ""
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

// ForgotPassword stores a one-hour reset token and enqueues the reset email.
// An unknown email is not an error: the endpoint answers the same either way
// so it cannot be used to enumerate accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		return err
	}

	user.ResetToken = uuid.NewString()
	user.ResetTokenExpiry = time.Now().UTC().Add(resetTokenTTL)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.emails.Enqueue(ports.EmailJob{
		Kind: ports.EmailPasswordReset,
		To:   user.Email,
		Name: user.FullName,
		Link: fmt.Sprintf("%s/reset-password/%s", s.frontendURL, user.ResetToken),
	})
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.repo.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if time.Now().UTC().After(user.ResetTokenExpiry) {
		return domain.ErrResetTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ResetToken = ""
	user.ResetTokenExpiry = time.Time{}
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

func (s *AuthService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *AuthService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *AuthService) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// confirmationCode returns a random 6-digit code.
func confirmationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return fmt.Sprintf("%06d", time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
