package postgres

import (
	"context"

	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/repository"
	"its/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) withAssociations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Extension").
		Preload("GameProfile")
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withAssociations(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by exact username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.withAssociations(ctx).Where("username = ?", username).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves the user whose extension carries email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var extM model.UserExtensionModel

	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&extM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return repo.FindByID(ctx, extM.UserID)
}

// Create persists the user together with its extension and game profile.
// Callers run it inside a transaction so the three rows land atomically.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	userM := fromUserDomain(user)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	if userM.Extension != nil {
		if err := db.Create(userM.Extension).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create user extension")
		}
	}

	if userM.GameProfile != nil {
		if err := db.Create(userM.GameProfile).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create game profile")
		}
		user.GameProfile.UserID = user.ID
		user.GameProfile.UpdatedAt = userM.GameProfile.UpdatedAt
	}
	if user.Extension != nil {
		user.Extension.UserID = user.ID
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateExtension overwrites the mutable extension fields.
func (repo *userRepository) UpdateExtension(ctx context.Context, ext *entity.UserExtension) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserExtensionModel{}).
		Where("user_id = ?", ext.UserID).
		Updates(map[string]any{"email": ext.Email})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user extension")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateGameProfile overwrites the profile counters.
func (repo *userRepository) UpdateGameProfile(ctx context.Context, profile *entity.GameProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GameProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"ships_number":       profile.ShipsNumber,
			"experience":         profile.Experience,
			"completed_missions": profile.CompletedMissions,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update game profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user and everything it owns, children first.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	steps := []struct {
		model any
		where string
	}{
		{&model.MissionModel{}, "owner_id = ?"},
		{&model.SpaceShipModel{}, "owner_id = ?"},
		{&model.GameProfileModel{}, "user_id = ?"},
		{&model.UserExtensionModel{}, "user_id = ?"},
	}
	for _, step := range steps {
		if err := db.Where(step.where, id).Delete(step.model).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete user data")
		}
	}

	result := db.Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         entity.ParseRole(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Extension != nil {
		user.Extension = &entity.UserExtension{
			UserID:           data.Extension.UserID,
			Email:            data.Extension.Email,
			RegistrationTime: data.Extension.RegistrationTime,
		}
	}
	if data.GameProfile != nil {
		user.GameProfile = &entity.GameProfile{
			UserID:            data.GameProfile.UserID,
			ShipsNumber:       data.GameProfile.ShipsNumber,
			Experience:        data.GameProfile.Experience,
			CompletedMissions: data.GameProfile.CompletedMissions,
			UpdatedAt:         data.GameProfile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RolePlayer
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         role.String(),
	}
	if data.Extension != nil {
		userM.Extension = &model.UserExtensionModel{
			UserID:           data.ID,
			Email:            data.Extension.Email,
			RegistrationTime: data.Extension.RegistrationTime,
		}
	}
	if data.GameProfile != nil {
		userM.GameProfile = &model.GameProfileModel{
			UserID:            data.ID,
			ShipsNumber:       data.GameProfile.ShipsNumber,
			Experience:        data.GameProfile.Experience,
			CompletedMissions: data.GameProfile.CompletedMissions,
		}
	}

	return userM
}
