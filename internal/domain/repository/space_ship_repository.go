package repository

import (
	"context"
	"errors"

	"its/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShipNotFound is returned when the owner has no ship with the requested name.
var ErrShipNotFound = errors.New("space ship not found")

// SpaceShipRepository persists ships. Names are unique per owner.
type SpaceShipRepository interface {
	Create(ctx context.Context, ship *entity.SpaceShip) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SpaceShip, error)
	FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.SpaceShip, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.SpaceShip, error)
	FindAllByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status entity.ShipStatus) ([]*entity.SpaceShip, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ShipStatus) error
}
