package usecase

import (
	"context"

	"its/internal/domain/entity"
)

// CreateSpaceShipInput defines the data required to build a ship.
type CreateSpaceShipInput struct {
	Name             string  `json:"name"`
	MaxCargoCapacity float64 `json:"maxCargoCapacity"`
	Level            int     `json:"level"`
	Speed            float64 `json:"speed"`
}

// SpaceShipUsecase manages the ships of one owner. Every operation is scoped to the
// username passed in.
type SpaceShipUsecase interface {
	CreateSpaceShip(ctx context.Context, owner string, input *CreateSpaceShipInput) (*entity.SpaceShip, error)
	FindSpaceShip(ctx context.Context, owner, name string) (*entity.SpaceShip, error)
	FindAllShips(ctx context.Context, owner string) ([]*entity.SpaceShip, error)
	FindAllFreeShips(ctx context.Context, owner string) ([]*entity.SpaceShip, error)
}
