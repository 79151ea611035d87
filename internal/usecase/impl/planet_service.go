package impl

import (
	"context"
	"log/slog"

	deliverycontext "its/internal/delivery/context"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/repository"
	"its/internal/domain/validation"
	"its/internal/usecase"

	"github.com/pkg/errors"
)

// planetService implements the PlanetUsecase interface.
type planetService struct {
	txManager repository.TransactionManager
	validator *validation.Validator
	logger    *slog.Logger
}

// NewPlanetService is the constructor for planetService.
func NewPlanetService(
	txManager repository.TransactionManager,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.PlanetUsecase {
	return &planetService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

func (srv *planetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// CreatePlanet adds a planet to the catalog.
func (srv *planetService) CreatePlanet(ctx context.Context, input *usecase.CreatePlanetInput) (*entity.Planet, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("planet input is required")
	}
	err := srv.validator.Check().
		PlanetName(input.Name).
		Coordinate(input.PositionX).
		Coordinate(input.PositionY).
		Err()
	if err != nil {
		return nil, err
	}
	if input.Radius < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("planet radius must not be negative")
	}
	planetType := entity.PlanetType(input.Type)
	if !planetType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown planet type")
	}

	planet := &entity.Planet{
		Name:      input.Name,
		PositionX: input.PositionX,
		PositionY: input.PositionY,
		Radius:    input.Radius,
		Color:     input.Color,
		Type:      planetType,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planetRepo := repoFactory.PlanetRepo()

		_, err := planetRepo.FindByName(ctx, input.Name)
		if err == nil {
			return domainerrors.ErrPlanetAlreadyExists.WithDetails(input.Name)
		}
		if !errors.Is(err, repository.ErrPlanetNotFound) {
			return errors.Wrap(err, "failed to check planet name")
		}

		return planetRepo.Create(ctx, planet)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create planet")
	}

	srv.log(ctx).Info("Planet created", slog.String("planet", planet.Name))

	return planet, nil
}

// FindPlanet returns the planet called name.
func (srv *planetService) FindPlanet(ctx context.Context, name string) (*entity.Planet, error) {
	if err := srv.validator.Check().PlanetName(name).Err(); err != nil {
		return nil, err
	}

	var planet *entity.Planet
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		planet, err = findPlanet(ctx, repoFactory.PlanetRepo(), name)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find planet")
	}

	return planet, nil
}

// FindAllPlanets lists the catalog ordered by name.
func (srv *planetService) FindAllPlanets(ctx context.Context) ([]*entity.Planet, error) {
	planets := []*entity.Planet{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.PlanetRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list planets")
		}
		if found != nil {
			planets = found
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find planets")
	}

	return planets, nil
}

// DeleteAllPlanets empties the catalog. It fails while any mission references a planet.
func (srv *planetService) DeleteAllPlanets(ctx context.Context) (int64, error) {
	var deleted int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.PlanetRepo().DeleteAll(ctx)

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete planets")
	}

	srv.log(ctx).Warn("Planet catalog cleared", slog.Int64("deleted", deleted))

	return deleted, nil
}
