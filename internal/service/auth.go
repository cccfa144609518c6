package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopmesh/storefront/internal/hash"
	"github.com/shopmesh/storefront/internal/logging"
	"github.com/shopmesh/storefront/internal/models"
	"github.com/shopmesh/storefront/internal/repo"
	"github.com/shopmesh/storefront/internal/tokens"
	"github.com/shopmesh/storefront/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// The unique index on email is the source of truth for duplicates, so a
	// concurrent registration of the same address cannot slip past a
	// check-then-create gap.
	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			l.Warn("register_rejected", "reason", "email already registered")
			return nil, fmt.Errorf("user already registered: %w", ErrConflict)
		}
		return nil, err
	}

	return s.issue(&user)
}

// Login deliberately reports the same failure for an unknown email and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password")
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthenticated)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*transport.AuthResponse, error) {
	token, err := tokens.Sign(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		return nil, err
	}
	return &transport.AuthResponse{
		Token: token,
		User: transport.AuthUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
