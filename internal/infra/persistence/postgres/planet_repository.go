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
)

// planetRepository implements the repository.PlanetRepository interface.
type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository is the constructor for planetRepository.
func NewPlanetRepository(db *gorm.DB) repository.PlanetRepository {
	return &planetRepository{db: db}
}

// Create persists a new planet.
func (repo *planetRepository) Create(ctx context.Context, planet *entity.Planet) error {
	if planet.ID == uuid.Nil {
		planet.ID = uuid.New()
	}
	planetM := fromPlanetDomain(planet)

	if err := repo.db.WithContext(ctx).Create(planetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPlanetAlreadyExists.WrapMessage("planet name already taken")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create planet")
	}

	planet.CreatedAt = planetM.CreatedAt

	return nil
}

// FindByName retrieves a planet by its exact name.
func (repo *planetRepository) FindByName(ctx context.Context, name string) (*entity.Planet, error) {
	var planetM model.PlanetModel

	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&planetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanetNotFound
		}

		return nil, errors.Wrap(err, "failed to find planet by name")
	}

	return toPlanetDomain(&planetM), nil
}

// FindAll returns planets ordered by name.
func (repo *planetRepository) FindAll(ctx context.Context) ([]*entity.Planet, error) {
	var planetMs []model.PlanetModel

	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&planetMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list planets")
	}

	planets := make([]*entity.Planet, 0, len(planetMs))
	for i := range planetMs {
		planets = append(planets, toPlanetDomain(&planetMs[i]))
	}

	return planets, nil
}

// DeleteAll removes every planet. Planets referenced by missions block the delete.
func (repo *planetRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.PlanetModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.ErrPlanetInUse.WrapMessage("cannot delete planets used by missions")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete planets")
	}

	return result.RowsAffected, nil
}

func toPlanetDomain(data *model.PlanetModel) *entity.Planet {
	if data == nil {
		return nil
	}

	return &entity.Planet{
		ID:        data.ID,
		Name:      data.Name,
		PositionX: data.PositionX,
		PositionY: data.PositionY,
		Radius:    data.Radius,
		Color:     data.Color,
		Type:      entity.PlanetType(data.Type),
		CreatedAt: data.CreatedAt,
	}
}

func fromPlanetDomain(data *entity.Planet) *model.PlanetModel {
	return &model.PlanetModel{
		ID:        data.ID,
		Name:      data.Name,
		PositionX: data.PositionX,
		PositionY: data.PositionY,
		Radius:    data.Radius,
		Color:     data.Color,
		Type:      int(data.Type),
	}
}
