package usecase

import (
	"context"

	"its/internal/domain/entity"
)

// CreatePlanetInput defines a new catalog entry.
type CreatePlanetInput struct {
	Name      string `json:"name"`
	PositionX int64  `json:"positionX"`
	PositionY int64  `json:"positionY"`
	Radius    int    `json:"radius"`
	Color     string `json:"color"`
	Type      int    `json:"type"`
}

// PlanetUsecase manages the shared planet catalog.
type PlanetUsecase interface {
	CreatePlanet(ctx context.Context, input *CreatePlanetInput) (*entity.Planet, error)
	FindPlanet(ctx context.Context, name string) (*entity.Planet, error)
	FindAllPlanets(ctx context.Context) ([]*entity.Planet, error)
	DeleteAllPlanets(ctx context.Context) (int64, error)
}
