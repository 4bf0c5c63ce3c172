package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash []byte) error
}

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignUpParams contains data submitted on registration.
type SignUpParams struct {
	Username string `validate:"required,min=3,max=64,username"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6,max=72"`
}

// ResetPasswordParams contains data submitted on password reset.
type ResetPasswordParams struct {
	Username    string `validate:"required"`
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,min=6,max=72"`
}
