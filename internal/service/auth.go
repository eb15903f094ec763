package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"product-manager/internal/apperr"
	"product-manager/internal/models"
	"product-manager/internal/repo"
	"product-manager/pkg/hash"
	"product-manager/pkg/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

type LoginResult struct {
	Token    string
	Username string
	Email    string
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("bad.credentials")
		}
		return nil, err
	}
	if !user.Enabled || !hash.CheckPassword(user.PasswordHash, password) {
		return nil, apperr.Unauthorized("bad.credentials")
	}

	token, err := tokens.NewAccessToken(user.Username, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Username: user.Username, Email: user.Email}, nil
}

// Register creates a CUSTOMER account. Username uniqueness is checked before
// email uniqueness, so a request violating both reports the username.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	taken, err := s.Repo.UsernameExists(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("username.in.use", username)
	}

	taken, err = s.Repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("email.in.use", email)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return err
	}
	return s.Repo.CreateUser(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleCustomer,
		Enabled:      true,
	})
}
