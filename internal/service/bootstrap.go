package service

import (
	"context"

	"product-manager/internal/config"
	"product-manager/internal/models"
	"product-manager/internal/repo"
	"product-manager/pkg/hash"
	"product-manager/pkg/logging"
)

// EnsureAdmin creates the bootstrap ADMIN account on startup when enabled.
// Safe to run on every boot: an existing username short-circuits.
func EnsureAdmin(ctx context.Context, r *repo.GormRepo, cfg *config.Config) error {
	if !cfg.AdminCreateOnStartup {
		return nil
	}

	exists, err := r.UsernameExists(ctx, cfg.AdminUsername)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	pwHash, err := hash.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	if err := r.CreateUser(ctx, &models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
		Enabled:      true,
	}); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("admin_account_created", "username", cfg.AdminUsername)
	return nil
}
