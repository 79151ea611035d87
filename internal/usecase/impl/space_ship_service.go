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

// spaceShipService implements the SpaceShipUsecase interface.
type spaceShipService struct {
	txManager repository.TransactionManager
	validator *validation.Validator
	logger    *slog.Logger
}

// NewSpaceShipService is the constructor for spaceShipService.
func NewSpaceShipService(
	txManager repository.TransactionManager,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.SpaceShipUsecase {
	return &spaceShipService{
		txManager: txManager,
		validator: validator,
		logger:    logger,
	}
}

func (srv *spaceShipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// CreateSpaceShip builds a FREE ship for owner and bumps the profile's ship counter.
func (srv *spaceShipService) CreateSpaceShip(ctx context.Context, owner string, input *usecase.CreateSpaceShipInput) (*entity.SpaceShip, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("space ship input is required")
	}
	err := srv.validator.Check().
		Username(owner).
		ShipName(input.Name).
		CargoCapacity(input.MaxCargoCapacity).
		ShipLevel(input.Level).
		ShipSpeed(input.Speed).
		Err()
	if err != nil {
		return nil, err
	}

	var ship *entity.SpaceShip
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		shipRepo := repoFactory.ShipRepo()

		user, err := findOwner(ctx, userRepo, owner)
		if err != nil {
			return err
		}
		if user.GameProfile == nil {
			return domainerrors.ErrUserNotFound.WithDetails(owner + " has no game profile")
		}

		_, err = shipRepo.FindByOwnerAndName(ctx, user.ID, input.Name)
		if err == nil {
			return domainerrors.ErrShipAlreadyExists.WithDetails(input.Name)
		}
		if !errors.Is(err, repository.ErrShipNotFound) {
			return errors.Wrap(err, "failed to check ship name")
		}

		newShip := &entity.SpaceShip{
			OwnerID:          user.ID,
			OwnerUsername:    user.Username,
			Name:             input.Name,
			MaxCargoCapacity: input.MaxCargoCapacity,
			Level:            input.Level,
			Speed:            input.Speed,
			Status:           entity.ShipStatusFree,
		}
		if err := shipRepo.Create(ctx, newShip); err != nil {
			return errors.Wrap(err, "failed to create space ship")
		}

		profile := *user.GameProfile
		profile.ShipsNumber++
		if err := userRepo.UpdateGameProfile(ctx, &profile); err != nil {
			return errors.Wrap(err, "failed to update game profile")
		}

		ship = newShip

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create space ship")
	}

	srv.log(ctx).Info("Space ship created", slog.String("owner", owner), slog.String("ship", ship.Name))

	return ship, nil
}

// FindSpaceShip returns the owner's ship called name.
func (srv *spaceShipService) FindSpaceShip(ctx context.Context, owner, name string) (*entity.SpaceShip, error) {
	if err := srv.validator.Check().Username(owner).ShipName(name).Err(); err != nil {
		return nil, err
	}

	var ship *entity.SpaceShip
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findOwner(ctx, repoFactory.UserRepo(), owner)
		if err != nil {
			return err
		}

		ship, err = findOwnedShip(ctx, repoFactory.ShipRepo(), user, name)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find space ship")
	}

	return ship, nil
}

// FindAllShips lists every ship of owner.
func (srv *spaceShipService) FindAllShips(ctx context.Context, owner string) ([]*entity.SpaceShip, error) {
	return srv.list(ctx, owner, "")
}

// FindAllFreeShips lists the owner's ships that can take a new mission.
func (srv *spaceShipService) FindAllFreeShips(ctx context.Context, owner string) ([]*entity.SpaceShip, error) {
	return srv.list(ctx, owner, entity.ShipStatusFree)
}

func (srv *spaceShipService) list(ctx context.Context, owner string, status entity.ShipStatus) ([]*entity.SpaceShip, error) {
	if err := srv.validator.Check().Username(owner).Err(); err != nil {
		return nil, err
	}

	ships := []*entity.SpaceShip{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findOwner(ctx, repoFactory.UserRepo(), owner)
		if err != nil {
			return err
		}

		var found []*entity.SpaceShip
		if status == "" {
			found, err = repoFactory.ShipRepo().FindAllByOwner(ctx, user.ID)
		} else {
			found, err = repoFactory.ShipRepo().FindAllByOwnerAndStatus(ctx, user.ID, status)
		}
		if err != nil {
			return errors.Wrap(err, "failed to list space ships")
		}
		if found != nil {
			ships = found
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find space ships")
	}

	return ships, nil
}
