package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// --- Stubs ---

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	m := make(map[string]*domain.User, len(users))
	for _, u := range users {
		m[u.Email] = u
	}
	return &stubUserRepo{users: m}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	u := *user
	u.ID = "id-" + user.Email
	r.users[u.Email] = &u
	return &u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == token {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubCaptcha struct{ ok bool }

func (s stubCaptcha) Verify(context.Context, string) bool { return s.ok }

type stubLimiter struct {
	allowed  bool
	err      error
	resets   int
	attempts int
}

func (s *stubLimiter) Allow(context.Context, string) (bool, error) {
	s.attempts++
	return s.allowed, s.err
}

func (s *stubLimiter) Reset(context.Context, string) error {
	s.resets++
	return nil
}

type stubQueue struct{ jobs []ports.EmailJob }

func (s *stubQueue) Enqueue(job ports.EmailJob) { s.jobs = append(s.jobs, job) }

type stubTokens struct{}

func (stubTokens) Issue(email string, role domain.Role) (string, error) {
	return "token-for-" + email, nil
}

func (stubTokens) Validate(string) (domain.Principal, error) {
	return domain.Principal{}, domain.ErrInvalidToken
}

func newTestAuthService(repo ports.UserRepository, captcha CaptchaVerifier, limiter LoginLimiter, queue EmailQueue) *AuthService {
	return NewAuthService(repo, stubTokens{}, captcha, limiter, queue, "https://shop.example", zerolog.Nop())
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

// --- Register ---

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	queue := &stubQueue{}
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: true}, queue)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Role != domain.RoleUser {
		t.Fatalf("new accounts must get the USER role, got %s", user.Role)
	}
	if user.EmailConfirmed {
		t.Fatalf("new accounts must start unconfirmed")
	}
	if len(user.ConfirmationCode) != 6 {
		t.Fatalf("expected 6-digit confirmation code, got %q", user.ConfirmationCode)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("expected one queued email, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.Kind != ports.EmailConfirmation || job.To != "alice@example.com" || job.Code != user.ConfirmationCode {
		t.Fatalf("unexpected email job: %+v", job)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo(&domain.User{Email: "alice@example.com"})
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: true}, &stubQueue{})

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_CaptchaFailure(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), stubCaptcha{ok: false}, &stubLimiter{allowed: true}, &stubQueue{})

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, domain.ErrCaptchaFailed) {
		t.Fatalf("expected ErrCaptchaFailed, got %v", err)
	}
}

// --- Login ---

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "supersecret"),
		Role:         domain.RoleUser,
	})
	limiter := &stubLimiter{allowed: true}
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, limiter, &stubQueue{})

	token, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "token-for-alice@example.com" {
		t.Fatalf("unexpected token %q", token)
	}
	if limiter.resets != 1 {
		t.Fatalf("successful login must reset the limiter, resets=%d", limiter.resets)
	}
}

// Unknown email and wrong password must be indistinguishable.
func TestAuthService_Login_BadCredentials(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "supersecret"),
	})
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: true}, &stubQueue{})

	_, errUnknown := svc.Login(context.Background(), ports.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, errWrongPass := svc.Login(context.Background(), ports.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "supersecret"),
	})
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: false}, &stubQueue{})

	_, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

// A broken limiter must not lock everyone out.
func TestAuthService_Login_LimiterErrorFailsOpen(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "supersecret"),
	})
	limiter := &stubLimiter{allowed: false, err: errors.New("redis down")}
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, limiter, &stubQueue{})

	if _, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "alice@example.com",
		Password: "supersecret",
	}); err != nil {
		t.Fatalf("expected login to succeed when the limiter errors, got %v", err)
	}
}

// --- Email confirmation ---

func TestAuthService_ConfirmEmail(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		Email:            "alice@example.com",
		ConfirmationCode: "123456",
	})
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: true}, &stubQueue{})

	if err := svc.ConfirmEmail(context.Background(), "alice@example.com", "999999"); !errors.Is(err, domain.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}

	if err := svc.ConfirmEmail(context.Background(), "alice@example.com", "123456"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	user, _ := repo.FindByEmail(context.Background(), "alice@example.com")
	if !user.EmailConfirmed || user.ConfirmationCode != "" {
		t.Fatalf("expected confirmed account with cleared code, got %+v", user)
	}
}

// --- Password reset ---

func TestAuthService_ForgotPassword_UnknownEmailSilentlySucceeds(t *testing.T) {
	queue := &stubQueue{}
	svc := newTestAuthService(newStubUserRepo(), stubCaptcha{ok: true}, &stubLimiter{allowed: true}, queue)

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Fatalf("unknown email must not error, got %v", err)
	}
	if len(queue.jobs) != 0 {
		t.Fatalf("no email must be queued for unknown accounts")
	}
}

func TestAuthService_ForgotPassword_QueuesResetLink(t *testing.T) {
	repo := newStubUserRepo(&domain.User{Email: "alice@example.com", FullName: "Alice"})
	queue := &stubQueue{}
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: true}, queue)

	if err := svc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	user, _ := repo.FindByEmail(context.Background(), "alice@example.com")
	if user.ResetToken == "" {
		t.Fatalf("expected a stored reset token")
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("expected one queued email, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.Kind != ports.EmailPasswordReset {
		t.Fatalf("unexpected email kind %q", job.Kind)
	}
	want := "https://shop.example/reset-password/" + user.ResetToken
	if job.Link != want {
		t.Fatalf("unexpected reset link %q, want %q", job.Link, want)
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		Email:            "alice@example.com",
		PasswordHash:     hashPassword(t, "oldpassword"),
		ResetToken:       "tok-1",
		ResetTokenExpiry: time.Now().UTC().Add(time.Hour),
	})
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: true}, &stubQueue{})

	if err := svc.ResetPassword(context.Background(), "tok-1", "newpassword"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	user, _ := repo.FindByEmail(context.Background(), "alice@example.com")
	if user.ResetToken != "" {
		t.Fatalf("reset token must be cleared after use")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword")) != nil {
		t.Fatalf("new password not stored")
	}
}

func TestAuthService_ResetPassword_Expired(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		Email:            "alice@example.com",
		ResetToken:       "tok-1",
		ResetTokenExpiry: time.Now().UTC().Add(-time.Minute),
	})
	svc := newTestAuthService(repo, stubCaptcha{ok: true}, &stubLimiter{allowed: true}, &stubQueue{})

	if err := svc.ResetPassword(context.Background(), "tok-1", "newpassword"); !errors.Is(err, domain.ErrResetTokenExpired) {
		t.Fatalf("expected ErrResetTokenExpired, got %v", err)
	}
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), stubCaptcha{ok: true}, &stubLimiter{allowed: true}, &stubQueue{})

	if err := svc.ResetPassword(context.Background(), "missing", "newpassword"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
