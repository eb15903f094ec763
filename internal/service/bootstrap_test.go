package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-manager/internal/config"
	"product-manager/internal/models"
	"product-manager/pkg/hash"
)

func TestEnsureAdmin_CreatesAdminOnce(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cfg := &config.Config{
		AdminCreateOnStartup: true,
		AdminUsername:        "admin",
		AdminEmail:           "admin@example.com",
		AdminPassword:        "bootpass",
	}

	require.NoError(t, EnsureAdmin(ctx, r, cfg))
	require.NoError(t, EnsureAdmin(ctx, r, cfg))

	var count int64
	require.NoError(t, r.DB.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	user, err := r.FindUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.Enabled)
	assert.True(t, hash.CheckPassword(user.PasswordHash, "bootpass"))
}

func TestEnsureAdmin_KeepsExistingPassword(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cfg := &config.Config{
		AdminCreateOnStartup: true,
		AdminUsername:        "admin",
		AdminEmail:           "admin@example.com",
		AdminPassword:        "first",
	}
	require.NoError(t, EnsureAdmin(ctx, r, cfg))

	cfg.AdminPassword = "second"
	require.NoError(t, EnsureAdmin(ctx, r, cfg))

	user, err := r.FindUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, hash.CheckPassword(user.PasswordHash, "first"))
}

func TestEnsureAdmin_Disabled(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, r, &config.Config{AdminCreateOnStartup: false, AdminUsername: "admin"}))

	exists, err := r.UsernameExists(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, exists)
}
