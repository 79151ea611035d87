package repository

import (
	"context"
	"errors"

	"its/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMissionNotFound is returned when no mission has the requested ID.
var ErrMissionNotFound = errors.New("mission not found")

// MissionRepository persists missions. Returned missions carry their ship,
// both planets and the owner's username.
type MissionRepository interface {
	Create(ctx context.Context, mission *entity.Mission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mission, error)
	// FindAllByOwner returns missions ordered by registration time, newest first.
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Mission, error)
	// Update stores status, start and finish times, payload and duration.
	Update(ctx context.Context, mission *entity.Mission) error
}
