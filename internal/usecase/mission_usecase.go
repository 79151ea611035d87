package usecase

import (
	"context"

	"its/internal/domain/entity"
	"its/internal/domain/mechanics"

	"github.com/google/uuid"
)

// MissionRequest names the route, the ship and the cargo of a prospective mission.
// Ship is resolved among the caller's own ships.
type MissionRequest struct {
	Start       string  `json:"start" query:"start"`
	Destination string  `json:"destination" query:"destination"`
	Ship        string  `json:"ship" query:"ship"`
	Payload     float64 `json:"payload" query:"payload"`
}

// MissionUsecase drives the mission lifecycle. The owner argument is the
// authenticated username; missions of other users are never visible.
type MissionUsecase interface {
	FindMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error)
	GenerateMissionMetrics(ctx context.Context, owner string, req *MissionRequest) (*mechanics.MissionMetrics, error)
	ConstructNewMission(ctx context.Context, owner string, req *MissionRequest) (*entity.Mission, error)
	StartMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error)
	CancelMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error)
	CompleteMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error)
	FindAllMissions(ctx context.Context, owner string) ([]*entity.Mission, error)
}
