// Package seed creates the initial admin account on startup.
package seed

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/repositories"
	"github.com/grupoidi/deptoweb/internal/config"
	"github.com/grupoidi/deptoweb/internal/pkg/auth"
	"github.com/grupoidi/deptoweb/internal/pkg/logger"
)

// EnsureAdmin creates the configured admin account when no admin exists yet.
// An existing account is never overwritten, so password changes via config
// only apply to fresh databases.
func EnsureAdmin(ctx context.Context, adminRepo *repositories.AdminRepository, cfg *config.Config) error {
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}
	password := cfg.Admin.Password
	if password == "" {
		logger.Warn().Msg("No admin password configured, seeding with default credentials")
		password = "admin"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("Seeded admin account")
	return nil
}
