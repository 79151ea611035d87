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

// spaceShipRepository implements the repository.SpaceShipRepository interface.
type spaceShipRepository struct {
	db *gorm.DB
}

// NewSpaceShipRepository is the constructor for spaceShipRepository.
func NewSpaceShipRepository(db *gorm.DB) repository.SpaceShipRepository {
	return &spaceShipRepository{db: db}
}

// Create persists a new ship for its owner.
func (repo *spaceShipRepository) Create(ctx context.Context, ship *entity.SpaceShip) error {
	if ship.ID == uuid.Nil {
		ship.ID = uuid.New()
	}
	shipM := fromShipDomain(ship)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(shipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShipAlreadyExists.WrapMessage("ship name already used by this owner")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("ship owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create space ship")
	}

	ship.CreatedAt = shipM.CreatedAt
	ship.UpdatedAt = shipM.UpdatedAt

	return nil
}

// FindByID retrieves a ship by its unique ID.
func (repo *spaceShipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SpaceShip, error) {
	return repo.first(ctx, "id = ?", id)
}

// FindByOwnerAndName retrieves an owner's ship by exact name.
func (repo *spaceShipRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.SpaceShip, error) {
	return repo.first(ctx, "owner_id = ? AND name = ?", ownerID, name)
}

func (repo *spaceShipRepository) first(ctx context.Context, query string, args ...any) (*entity.SpaceShip, error) {
	var shipM model.SpaceShipModel

	if err := repo.db.WithContext(ctx).Preload("Owner").Where(query, args...).First(&shipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipNotFound
		}

		return nil, errors.Wrap(err, "failed to find space ship")
	}

	return toShipDomain(&shipM), nil
}

// FindAllByOwner returns the owner's ships ordered by name.
func (repo *spaceShipRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.SpaceShip, error) {
	return repo.find(ctx, "owner_id = ?", ownerID)
}

// FindAllByOwnerAndStatus returns the owner's ships in the given status ordered by name.
func (repo *spaceShipRepository) FindAllByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.ShipStatus) ([]*entity.SpaceShip, error) {
	return repo.find(ctx, "owner_id = ? AND status = ?", ownerID, status.String())
}

func (repo *spaceShipRepository) find(ctx context.Context, query string, args ...any) ([]*entity.SpaceShip, error) {
	var shipMs []model.SpaceShipModel

	if err := repo.db.WithContext(ctx).Preload("Owner").Where(query, args...).Order("name ASC").Find(&shipMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list space ships")
	}

	ships := make([]*entity.SpaceShip, 0, len(shipMs))
	for i := range shipMs {
		ships = append(ships, toShipDomain(&shipMs[i]))
	}

	return ships, nil
}

// UpdateStatus changes the availability of a ship.
func (repo *spaceShipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ShipStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpaceShipModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update space ship status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipNotFound
	}

	return nil
}

func toShipDomain(data *model.SpaceShipModel) *entity.SpaceShip {
	if data == nil {
		return nil
	}

	ship := &entity.SpaceShip{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		MaxCargoCapacity: data.MaxCargoCapacity,
		Level:            data.Level,
		Speed:            data.Speed,
		Status:           entity.ShipStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Owner != nil {
		ship.OwnerUsername = data.Owner.Username
	}

	return ship
}

func fromShipDomain(data *entity.SpaceShip) *model.SpaceShipModel {
	return &model.SpaceShipModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		MaxCargoCapacity: data.MaxCargoCapacity,
		Level:            data.Level,
		Speed:            data.Speed,
		Status:           data.Status.String(),
	}
}
