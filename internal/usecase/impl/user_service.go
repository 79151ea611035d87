package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "its/internal/delivery/context"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/repository"
	"its/internal/domain/service"
	"its/internal/domain/validation"
	"its/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validator    *validation.Validator
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validator    *validation.Validator
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validator:    params.Validator,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// RegisterUser creates a player account with its extension and an empty game profile.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("registration input is required")
	}
	if err := srv.validator.Check().Username(input.Username).Password(input.Password).Email(input.Email).Err(); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Role:         entity.RolePlayer,
		Extension: &entity.UserExtension{
			Email:            input.Email,
			RegistrationTime: srv.now(),
		},
		GameProfile: &entity.GameProfile{},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createUniqueUser(ctx, repoFactory.UserRepo(), user)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// createUniqueUser rejects a taken username or email before inserting. The unique
// indexes report the same errors when a concurrent registration wins the race.
func createUniqueUser(ctx context.Context, users repository.UserRepository, user *entity.User) error {
	_, err := users.FindByUsername(ctx, user.Username)
	if err == nil {
		return domainerrors.ErrUserAlreadyExists.WithDetails(user.Username)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username")
	}

	_, err = users.FindByEmail(ctx, user.Extension.Email)
	if err == nil {
		return domainerrors.ErrEmailAlreadyExists.WithDetails(user.Extension.Email)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	if err := users.Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, _, err := srv.tokenService.GenerateAccessToken(user.ID, user.Username, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration() / time.Second),
		User:        user,
	}, nil
}

// FindUser returns the personal room of username.
func (srv *userService) FindUser(ctx context.Context, username string) (*usecase.UserDetail, error) {
	if err := srv.validator.Check().Username(username).Err(); err != nil {
		return nil, err
	}

	detail := &usecase.UserDetail{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findOwner(ctx, repoFactory.UserRepo(), username)
		if err != nil {
			return err
		}
		detail.User = user

		if detail.Ships, err = repoFactory.ShipRepo().FindAllByOwner(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to list ships")
		}

		if detail.Missions, err = repoFactory.MissionRepo().FindAllByOwner(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to list missions")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return detail, nil
}

// ChangeUserExtension applies patch to the user's extension.
func (srv *userService) ChangeUserExtension(ctx context.Context, username string, patch entity.UserExtensionPatch) (*entity.User, error) {
	check := srv.validator.Check().Username(username)
	if patch.Email != nil {
		check = check.Email(*patch.Email)
	}
	if err := check.Err(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to change")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := findOwner(ctx, userRepo, username)
		if err != nil {
			return err
		}
		if user.Extension == nil {
			return errors.Wrap(domainerrors.ErrInternalError, "user has no extension")
		}

		if patch.Email != nil && *patch.Email != user.Extension.Email {
			holder, err := userRepo.FindByEmail(ctx, *patch.Email)
			if err == nil && holder.ID != user.ID {
				return domainerrors.ErrEmailAlreadyExists.WithDetails(*patch.Email)
			}
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email")
			}
		}

		ext := patch.Apply(*user.Extension)
		ext.UserID = user.ID
		if err := userRepo.UpdateExtension(ctx, &ext); err != nil {
			return errors.Wrap(err, "failed to update user extension")
		}

		result := *user
		result.Extension = &ext
		updated = &result

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change user extension")
	}

	srv.log(ctx).Info("User extension changed", slog.String("username", username))

	return updated, nil
}

// DeleteUser removes the account together with its ships and missions.
func (srv *userService) DeleteUser(ctx context.Context, username string) error {
	if err := srv.validator.Check().Username(username).Err(); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findOwner(ctx, repoFactory.UserRepo(), username)
		if err != nil {
			return err
		}

		return repoFactory.UserRepo().Delete(ctx, user.ID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("username", username))

	return nil
}
