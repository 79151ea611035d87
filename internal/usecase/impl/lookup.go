package impl

import (
	"context"

	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// findOwner resolves an authenticated username to its account.
func findOwner(ctx context.Context, users repository.UserRepository, username string) (*entity.User, error) {
	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("no user named " + username)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func findPlanet(ctx context.Context, planets repository.PlanetRepository, name string) (*entity.Planet, error) {
	planet, err := planets.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPlanetNotFound) {
			return nil, domainerrors.ErrPlanetNotFound.WithDetails("no planet named " + name)
		}

		return nil, errors.Wrap(err, "failed to find planet")
	}

	return planet, nil
}

func findOwnedShip(ctx context.Context, ships repository.SpaceShipRepository, owner *entity.User, name string) (*entity.SpaceShip, error) {
	ship, err := ships.FindByOwnerAndName(ctx, owner.ID, name)
	if err != nil {
		if errors.Is(err, repository.ErrShipNotFound) {
			return nil, domainerrors.ErrShipNotFound.WithDetails(owner.Username + " has no ship named " + name)
		}

		return nil, errors.Wrap(err, "failed to find space ship")
	}

	return ship, nil
}

// findOwnedMission loads a mission and checks that username owns it.
func findOwnedMission(ctx context.Context, missions repository.MissionRepository, username string, id uuid.UUID) (*entity.Mission, error) {
	mission, err := missions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMissionNotFound) {
			return nil, domainerrors.ErrMissionNotFound.WithDetails("no mission with id " + id.String())
		}

		return nil, errors.Wrap(err, "failed to find mission")
	}

	if !mission.OwnedBy(username) {
		return nil, domainerrors.ErrOwnershipViolation.WithDetails("mission " + id.String() + " belongs to another user")
	}

	return mission, nil
}
