package repository

import (
	"context"
	"errors"

	"its/internal/domain/entity"
)

// ErrPlanetNotFound is returned when no planet has the requested name.
var ErrPlanetNotFound = errors.New("planet not found")

// PlanetRepository persists the shared planet catalog.
type PlanetRepository interface {
	Create(ctx context.Context, planet *entity.Planet) error
	FindByName(ctx context.Context, name string) (*entity.Planet, error)
	// FindAll returns planets ordered by name.
	FindAll(ctx context.Context) ([]*entity.Planet, error)
	// DeleteAll removes every planet and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
