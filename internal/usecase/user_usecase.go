// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"its/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new player.
type RegisterUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	User        *entity.User
}

// UserDetail is the personal room of a player: the account with its extension and
// profile plus everything the profile owns.
type UserDetail struct {
	User     *entity.User
	Ships    []*entity.SpaceShip
	Missions []*entity.Mission
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	FindUser(ctx context.Context, username string) (*UserDetail, error)
	ChangeUserExtension(ctx context.Context, username string, patch entity.UserExtensionPatch) (*entity.User, error)
	DeleteUser(ctx context.Context, username string) error
}
