// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"its/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Every returned user has its Extension and GameProfile loaded.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves the user whose extension carries email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists the user together with its extension and game profile.
	Create(ctx context.Context, user *entity.User) error

	// UpdateExtension overwrites the mutable extension fields.
	UpdateExtension(ctx context.Context, ext *entity.UserExtension) error

	// UpdateGameProfile overwrites the profile counters.
	UpdateGameProfile(ctx context.Context, profile *entity.GameProfile) error

	// Delete removes the user and everything it owns.
	Delete(ctx context.Context, id uuid.UUID) error
}
