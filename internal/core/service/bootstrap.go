package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowmart/shop-api/internal/core/domain"
	"github.com/glowmart/shop-api/internal/core/ports"
)

// Bootstrap seeds default data at process start. Every step is idempotent:
// it only writes when the backing collection is empty, so repeated restarts
// insert nothing.
type Bootstrap struct {
	users         ports.UserRepository
	categories    ports.CategoryRepository
	adminEmail    string
	adminPassword string
	env           string
	log           zerolog.Logger
}

func NewBootstrap(users ports.UserRepository, categories ports.CategoryRepository, adminEmail, adminPassword, env string, log zerolog.Logger) *Bootstrap {
	return &Bootstrap{
		users:         users,
		categories:    categories,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		env:           env,
		log:           log,
	}
}

// EnsureDefaults runs once at startup, before the server accepts traffic.
func (b *Bootstrap) EnsureDefaults(ctx context.Context) error {
	if err := b.ensureCategories(ctx); err != nil {
		return err
	}
	return b.ensureUsers(ctx)
}

func (b *Bootstrap) ensureCategories(ctx context.Context) error {
	count, err := b.categories.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		b.log.Debug().Int64("count", count).Msg("categories already seeded")
		return nil
	}

	defaults := []domain.Category{
		{Name: "Skincare", Description: "Products for skin health."},
		{Name: "Makeup", Description: "Cosmetics for enhancing appearance."},
		{Name: "Haircare", Description: "Products for hair hygiene."},
		{Name: "Fragrance", Description: "Perfumes and scented products."},
		{Name: "Bath & Body", Description: "Soaps, scrubs, and lotions."},
		{Name: "Tools & Brushes", Description: "Makeup and skincare tools."},
	}

	now := time.Now().UTC()
	for i := range defaults {
		defaults[i].CreatedAt = now
		if _, err := b.categories.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	b.log.Info().Int("count", len(defaults)).Msg("default categories seeded")
	return nil
}

func (b *Bootstrap) ensureUsers(ctx context.Context) error {
	count, err := b.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		b.log.Debug().Int64("count", count).Msg("users already seeded")
		return nil
	}

	if err := b.createUser(ctx, "Admin User", b.adminEmail, b.adminPassword, domain.RoleAdmin); err != nil {
		return err
	}

	// Demo shopper account, never seeded in production.
	if b.env != "production" {
		if err := b.createUser(ctx, "Demo User", "user@example.com", "userpassword", domain.RoleUser); err != nil {
			return err
		}
	}

	b.log.Info().Str("admin_email", b.adminEmail).Msg("default users seeded")
	return nil
}

func (b *Bootstrap) createUser(ctx context.Context, name, email, password string, role domain.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = b.users.Create(ctx, &domain.User{
		FullName:       name,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		EmailConfirmed: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	return err
}
