// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	deliverycontext "its/internal/delivery/context"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/mechanics"
	"its/internal/domain/repository"
	"its/internal/domain/validation"
	"its/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// missionService implements the MissionUsecase interface.
type missionService struct {
	txManager    repository.TransactionManager
	validator    *validation.Validator
	coefficients mechanics.Coefficients
	logger       *slog.Logger
	now          func() time.Time
}

// NewMissionService is the constructor for missionService.
func NewMissionService(
	txManager repository.TransactionManager,
	validator *validation.Validator,
	coefficients mechanics.Coefficients,
	logger *slog.Logger,
) usecase.MissionUsecase {
	return &missionService{
		txManager:    txManager,
		validator:    validator,
		coefficients: coefficients,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *missionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// route is a mission request resolved against storage.
type route struct {
	owner *entity.User
	ship  *entity.SpaceShip
	start *entity.Planet
	dest  *entity.Planet
}

func (srv *missionService) validateRequest(owner string, req *usecase.MissionRequest) error {
	if req == nil {
		return domainerrors.ErrValidationFailed.WithDetails("mission request is required")
	}

	return srv.validator.Check().
		Username(owner).
		PlanetName(req.Start).
		PlanetName(req.Destination).
		ShipName(req.Ship).
		Payload(req.Payload).
		Err()
}

// resolveRoute looks up the caller, the caller's ship and both planets. The ship status
// check runs before the capacity check.
func (srv *missionService) resolveRoute(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	owner string,
	req *usecase.MissionRequest,
	requireFreeShip bool,
) (*route, error) {
	user, err := findOwner(ctx, repoFactory.UserRepo(), owner)
	if err != nil {
		return nil, err
	}

	ship, err := findOwnedShip(ctx, repoFactory.ShipRepo(), user, req.Ship)
	if err != nil {
		return nil, err
	}

	if requireFreeShip && !ship.IsFree() {
		return nil, domainerrors.ErrShipNotAvailable.WithDetails(fmt.Sprintf("ship %s is %s", ship.Name, ship.Status))
	}

	if !ship.CanCarry(req.Payload) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("payload %g exceeds the capacity %g of ship %s", req.Payload, ship.MaxCargoCapacity, ship.Name))
	}

	start, err := findPlanet(ctx, repoFactory.PlanetRepo(), req.Start)
	if err != nil {
		return nil, err
	}

	dest, err := findPlanet(ctx, repoFactory.PlanetRepo(), req.Destination)
	if err != nil {
		return nil, err
	}

	if start.SamePosition(dest) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("planets %s and %s share the same coordinates", start.Name, dest.Name))
	}

	return &route{owner: user, ship: ship, start: start, dest: dest}, nil
}

// FindMission returns one mission of the owner.
func (srv *missionService) FindMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error) {
	if err := srv.validator.Check().Username(owner).Err(); err != nil {
		return nil, err
	}

	var mission *entity.Mission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOwnedMission(ctx, repoFactory.MissionRepo(), owner, id)
		if err != nil {
			return err
		}
		mission = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find mission")
	}

	return mission, nil
}

// GenerateMissionMetrics previews distance and duration without persisting anything.
func (srv *missionService) GenerateMissionMetrics(ctx context.Context, owner string, req *usecase.MissionRequest) (*mechanics.MissionMetrics, error) {
	if err := srv.validateRequest(owner, req); err != nil {
		return nil, err
	}

	var metrics *mechanics.MissionMetrics
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		r, err := srv.resolveRoute(ctx, repoFactory, owner, req, false)
		if err != nil {
			return err
		}

		metrics, err = mechanics.NewMissionMetrics(r.ship, r.start, r.dest, req.Payload, srv.coefficients)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate mission metrics")
	}

	return metrics, nil
}

// ConstructNewMission registers a CREATED mission. The ship stays FREE until the mission starts.
func (srv *missionService) ConstructNewMission(ctx context.Context, owner string, req *usecase.MissionRequest) (*entity.Mission, error) {
	if err := srv.validateRequest(owner, req); err != nil {
		return nil, err
	}

	var mission *entity.Mission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		r, err := srv.resolveRoute(ctx, repoFactory, owner, req, true)
		if err != nil {
			return err
		}

		metrics, err := mechanics.NewMissionMetrics(r.ship, r.start, r.dest, req.Payload, srv.coefficients)
		if err != nil {
			return err
		}

		newMission := &entity.Mission{
			OwnerID:           r.owner.ID,
			OwnerUsername:     r.owner.Username,
			Ship:              r.ship,
			StartPlanet:       r.start,
			DestinationPlanet: r.dest,
			Payload:           req.Payload,
			RegistrationTime:  srv.now(),
			Duration:          metrics.Duration,
			Status:            entity.MissionStatusCreated,
		}
		if err := repoFactory.MissionRepo().Create(ctx, newMission); err != nil {
			return errors.Wrap(err, "failed to create mission")
		}
		mission = newMission

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Mission construction failed", slog.String("owner", owner), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to construct mission")
	}

	srv.log(ctx).Info("Mission constructed",
		slog.String("owner", owner),
		slog.String("mission_id", mission.ID.String()),
		slog.Int64("duration", mission.Duration))

	return mission, nil
}

// StartMission moves a CREATED mission to STARTED and occupies its ship.
func (srv *missionService) StartMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error) {
	return srv.fire(ctx, owner, id, entity.MissionEventStart)
}

// CancelMission moves a CREATED or STARTED mission to CANCELED, releasing the ship of a started one.
func (srv *missionService) CancelMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error) {
	return srv.fire(ctx, owner, id, entity.MissionEventCancel)
}

// CompleteMission moves a STARTED mission to COMPLETED, releases the ship and rewards the owner.
func (srv *missionService) CompleteMission(ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error) {
	return srv.fire(ctx, owner, id, entity.MissionEventComplete)
}

// fire applies one lifecycle event inside a single transaction. Nothing is written
// unless the transition is allowed.
func (srv *missionService) fire(ctx context.Context, owner string, id uuid.UUID, event entity.MissionEvent) (*entity.Mission, error) {
	if err := srv.validator.Check().Username(owner).Err(); err != nil {
		return nil, err
	}

	var updated *entity.Mission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mission, err := findOwnedMission(ctx, repoFactory.MissionRepo(), owner, id)
		if err != nil {
			return err
		}

		next, ok := mission.Status.Transition(event)
		if !ok {
			return domainerrors.ErrMissionStateConflict.WithDetails(
				fmt.Sprintf("cannot %s a %s mission", event, mission.Status))
		}

		now := srv.now()
		if event == entity.MissionEventComplete {
			if err := checkArrived(mission, now); err != nil {
				return err
			}
		}

		patch := entity.MissionPatch{Status: &next}
		if event == entity.MissionEventStart {
			patch.StartTime = &now
		} else {
			patch.FinishTime = &now
		}

		shipStatus, err := srv.shipStatusAfter(ctx, repoFactory, mission, event)
		if err != nil {
			return err
		}

		result := patch.Apply(*mission)
		if err := repoFactory.MissionRepo().Update(ctx, &result); err != nil {
			return errors.Wrap(err, "failed to update mission")
		}

		if shipStatus != "" {
			if err := repoFactory.ShipRepo().UpdateStatus(ctx, mission.Ship.ID, shipStatus); err != nil {
				return errors.Wrap(err, "failed to update ship status")
			}
			ship := *mission.Ship
			ship.Status = shipStatus
			result.Ship = &ship
		}

		if event == entity.MissionEventComplete {
			if err := srv.rewardOwner(ctx, repoFactory.UserRepo(), &result); err != nil {
				return err
			}
		}

		updated = &result

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Mission transition failed",
			slog.String("owner", owner),
			slog.String("mission_id", id.String()),
			slog.String("event", string(event)),
			slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to %s mission", event)
	}

	srv.log(ctx).Info("Mission transitioned",
		slog.String("owner", owner),
		slog.String("mission_id", id.String()),
		slog.String("status", updated.Status.String()))

	return updated, nil
}

// checkArrived rejects completing a mission whose flight time has not yet elapsed.
func checkArrived(mission *entity.Mission, now time.Time) error {
	arrival, ok := mission.ArrivalTime()
	if !ok {
		return domainerrors.ErrMissionStateConflict.WithDetails("mission has no start time")
	}
	if now.Before(arrival) {
		return domainerrors.ErrMissionStateConflict.WithDetails(
			fmt.Sprintf("mission arrives at %s", arrival.UTC().Format(time.RFC3339)))
	}

	return nil
}

// shipStatusAfter returns the status the mission's ship takes after event, or "" when it
// does not change. Starting requires the ship to be FREE at that moment.
func (srv *missionService) shipStatusAfter(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	mission *entity.Mission,
	event entity.MissionEvent,
) (entity.ShipStatus, error) {
	switch event {
	case entity.MissionEventStart:
		ship, err := repoFactory.ShipRepo().FindByID(ctx, mission.Ship.ID)
		if err != nil {
			if errors.Is(err, repository.ErrShipNotFound) {
				return "", domainerrors.ErrShipNotFound.WithDetails("ship of mission " + mission.ID.String())
			}

			return "", errors.Wrap(err, "failed to find space ship")
		}
		if !ship.IsFree() {
			return "", domainerrors.ErrShipNotAvailable.WithDetails(fmt.Sprintf("ship %s is %s", ship.Name, ship.Status))
		}

		return entity.ShipStatusBusy, nil
	case entity.MissionEventCancel:
		if mission.Status == entity.MissionStatusStarted {
			return entity.ShipStatusFree, nil
		}

		return "", nil
	case entity.MissionEventComplete:
		return entity.ShipStatusFree, nil
	default:
		return "", nil
	}
}

// rewardOwner credits the route length to the owner's profile.
func (srv *missionService) rewardOwner(ctx context.Context, users repository.UserRepository, mission *entity.Mission) error {
	user, err := users.FindByID(ctx, mission.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WithDetails("owner of mission " + mission.ID.String())
		}

		return errors.Wrap(err, "failed to find mission owner")
	}
	if user.GameProfile == nil {
		return errors.Wrap(domainerrors.ErrInternalError, "mission owner has no game profile")
	}

	distance, err := mechanics.Distance(
		mission.StartPlanet.PositionX, mission.StartPlanet.PositionY,
		mission.DestinationPlanet.PositionX, mission.DestinationPlanet.PositionY)
	if err != nil {
		return err
	}

	profile := *user.GameProfile
	profile.CompletedMissions++
	profile.Experience += int64(math.Floor(distance + 0.5))

	if err := users.UpdateGameProfile(ctx, &profile); err != nil {
		return errors.Wrap(err, "failed to update game profile")
	}

	return nil
}

// FindAllMissions lists the owner's missions, newest first.
func (srv *missionService) FindAllMissions(ctx context.Context, owner string) ([]*entity.Mission, error) {
	if err := srv.validator.Check().Username(owner).Err(); err != nil {
		return nil, err
	}

	missions := []*entity.Mission{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := findOwner(ctx, repoFactory.UserRepo(), owner)
		if err != nil {
			return err
		}

		found, err := repoFactory.MissionRepo().FindAllByOwner(ctx, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to list missions")
		}
		if found != nil {
			missions = found
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find missions")
	}

	return missions, nil
}
