package impl

import (
	"context"
	"testing"
	"time"

	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/mechanics"
	"its/internal/domain/repository"
	"its/internal/domain/validation"
	"its/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// missionServiceFixtures holds all test dependencies for mission service tests.
type missionServiceFixtures struct {
	repoFixtures
	service *missionService
}

func createTestMissionService(t *testing.T) missionServiceFixtures {
	repos := newRepoFixtures(t)
	coefficients := mechanics.Coefficients{ShipLevel: 0.1, TimeSeconds: 1}

	svc := NewMissionService(repos.txManager, validation.New(0), coefficients, newDiscardLogger()).(*missionService)
	svc.now = func() time.Time { return fixedNow }

	return missionServiceFixtures{repoFixtures: repos, service: svc}
}

func defaultRequest() *usecase.MissionRequest {
	return &usecase.MissionRequest{Start: "P-001", Destination: "P-002", Ship: "Dragon-1", Payload: 0.5}
}

func (f missionServiceFixtures) expectRoute(ctx context.Context, alex *entity.User, ship *entity.SpaceShip, start, dest *entity.Planet) {
	f.users.EXPECT().FindByUsername(ctx, "Alex").Return(alex, nil)
	f.ships.EXPECT().FindByOwnerAndName(ctx, alex.ID, "Dragon-1").Return(ship, nil)
	if start != nil {
		f.planets.EXPECT().FindByName(ctx, start.Name).Return(start, nil)
	}
	if dest != nil {
		f.planets.EXPECT().FindByName(ctx, dest.Name).Return(dest, nil)
	}
}

func TestMissionService_GenerateMissionMetrics_Success(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()

	fx.expectTx()
	fx.expectRoute(ctx, alex, newDragon(alex, entity.ShipStatusFree), newPlanet("P-001", 50, 50), newPlanet("P-002", 300, 300))

	metrics, err := fx.service.GenerateMissionMetrics(ctx, "Alex", defaultRequest())

	require.NoError(t, err)
	assert.InDelta(t, 353.553, metrics.Distance, 0.001)
	assert.Equal(t, int64(23), metrics.Duration)
	assert.Equal(t, "Dragon-1", metrics.ShipName)
	assert.Equal(t, 0.5, metrics.ActualPayload)
}

func TestMissionService_GenerateMissionMetrics_BusyShipStillPreviews(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()

	fx.expectTx()
	fx.expectRoute(ctx, alex, newDragon(alex, entity.ShipStatusBusy), newPlanet("P-001", 50, 50), newPlanet("P-002", 300, 300))

	_, err := fx.service.GenerateMissionMetrics(ctx, "Alex", defaultRequest())

	assert.NoError(t, err)
}

func TestMissionService_GenerateMissionMetrics_UnknownShip(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()

	fx.expectTx()
	fx.users.EXPECT().FindByUsername(ctx, "Alex").Return(alex, nil)
	fx.ships.EXPECT().FindByOwnerAndName(ctx, alex.ID, "Dragon-1").Return(nil, repository.ErrShipNotFound)

	_, err := fx.service.GenerateMissionMetrics(ctx, "Alex", defaultRequest())

	assert.True(t, errors.Is(err, domainerrors.ErrShipNotFound))
}

func TestMissionService_GenerateMissionMetrics_UnknownPlanet(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()

	fx.expectTx()
	fx.expectRoute(ctx, alex, newDragon(alex, entity.ShipStatusFree), newPlanet("P-001", 50, 50), nil)
	fx.planets.EXPECT().FindByName(ctx, "P-002").Return(nil, repository.ErrPlanetNotFound)

	_, err := fx.service.GenerateMissionMetrics(ctx, "Alex", defaultRequest())

	assert.True(t, errors.Is(err, domainerrors.ErrPlanetNotFound))
}

func TestMissionService_ValidationRunsBeforeStorage(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		req   *usecase.MissionRequest
	}{
		{"empty owner", "", defaultRequest()},
		{"nil request", "Alex", nil},
		{"empty start", "Alex", &usecase.MissionRequest{Destination: "P-002", Ship: "Dragon-1", Payload: 0.5}},
		{"empty ship", "Alex", &usecase.MissionRequest{Start: "P-001", Destination: "P-002", Payload: 0.5}},
		{"zero payload", "Alex", &usecase.MissionRequest{Start: "P-001", Destination: "P-002", Ship: "Dragon-1"}},
		{"negative payload", "Alex", &usecase.MissionRequest{Start: "P-001", Destination: "P-002", Ship: "Dragon-1", Payload: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMissionService(t)

			_, err := fx.service.ConstructNewMission(context.Background(), tt.owner, tt.req)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestMissionService_ConstructNewMission_Success(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()
	ship := newDragon(alex, entity.ShipStatusFree)

	fx.expectTx()
	fx.expectRoute(ctx, alex, ship, newPlanet("P-001", 50, 50), newPlanet("P-002", 300, 300))
	fx.missions.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Mission")).
		Run(func(_ context.Context, m *entity.Mission) {
			m.ID = uuid.New()
		}).
		Return(nil)

	mission, err := fx.service.ConstructNewMission(ctx, "Alex", defaultRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, mission.ID)
	assert.Equal(t, entity.MissionStatusCreated, mission.Status)
	assert.Equal(t, int64(23), mission.Duration)
	assert.Equal(t, fixedNow, mission.RegistrationTime)
	assert.Equal(t, alex.ID, mission.OwnerID)
	assert.Equal(t, "Alex", mission.OwnerUsername)
	assert.Nil(t, mission.StartTime)
	assert.Nil(t, mission.FinishTime)
	// construction does not occupy the ship
	assert.Equal(t, entity.ShipStatusFree, mission.Ship.Status)
}

func TestMissionService_ConstructNewMission_ShipNotFree(t *testing.T) {
	for _, status := range []entity.ShipStatus{entity.ShipStatusBusy, entity.ShipStatusInactive} {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestMissionService(t)
			ctx := context.Background()
			alex := newAlex()

			fx.expectTx()
			// status is checked before capacity and before any planet lookup
			fx.expectRoute(ctx, alex, newDragon(alex, status), nil, nil)

			req := defaultRequest()
			req.Payload = 100
			_, err := fx.service.ConstructNewMission(ctx, "Alex", req)

			assert.True(t, errors.Is(err, domainerrors.ErrShipNotAvailable))
		})
	}
}

func TestMissionService_ConstructNewMission_PayloadExceedsCapacity(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()

	fx.expectTx()
	fx.expectRoute(ctx, alex, newDragon(alex, entity.ShipStatusFree), nil, nil)

	req := defaultRequest()
	req.Payload = 1.5
	_, err := fx.service.ConstructNewMission(ctx, "Alex", req)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMissionService_ConstructNewMission_SameCoordinates(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()

	fx.expectTx()
	fx.expectRoute(ctx, alex, newDragon(alex, entity.ShipStatusFree), newPlanet("P-001", 50, 50), newPlanet("P-002", 50, 50))

	_, err := fx.service.ConstructNewMission(ctx, "Alex", defaultRequest())

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMissionService_FindMission(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		fx := createTestMissionService(t)
		alex := newAlex()
		mission := newMission(alex, newDragon(alex, entity.ShipStatusFree), entity.MissionStatusCreated)

		fx.expectTx()
		fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)

		found, err := fx.service.FindMission(ctx, "Alex", mission.ID)

		require.NoError(t, err)
		assert.Equal(t, mission, found)
	})

	t.Run("foreign owner", func(t *testing.T) {
		fx := createTestMissionService(t)
		alex := newAlex()
		mission := newMission(alex, newDragon(alex, entity.ShipStatusFree), entity.MissionStatusCreated)

		fx.expectTx()
		fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)

		_, err := fx.service.FindMission(ctx, "Bob", mission.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrOwnershipViolation))
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestMissionService(t)
		id := uuid.New()

		fx.expectTx()
		fx.missions.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMissionNotFound)

		_, err := fx.service.FindMission(ctx, "Alex", id)

		assert.True(t, errors.Is(err, domainerrors.ErrMissionNotFound))
	})

	t.Run("empty owner", func(t *testing.T) {
		fx := createTestMissionService(t)

		_, err := fx.service.FindMission(ctx, "", uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestMissionService_StartMission_Success(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()
	ship := newDragon(alex, entity.ShipStatusFree)
	mission := newMission(alex, ship, entity.MissionStatusCreated)

	fx.expectTx()
	fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)
	fx.ships.EXPECT().FindByID(ctx, ship.ID).Return(ship, nil)
	fx.missions.EXPECT().
		Update(ctx, mock.MatchedBy(func(m *entity.Mission) bool {
			return m.Status == entity.MissionStatusStarted && m.StartTime != nil && m.StartTime.Equal(fixedNow)
		})).
		Return(nil)
	fx.ships.EXPECT().UpdateStatus(ctx, ship.ID, entity.ShipStatusBusy).Return(nil)

	started, err := fx.service.StartMission(ctx, "Alex", mission.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.MissionStatusStarted, started.Status)
	assert.Equal(t, entity.ShipStatusBusy, started.Ship.Status)
	// the loaded value is not mutated
	assert.Equal(t, entity.MissionStatusCreated, mission.Status)
	assert.Equal(t, entity.ShipStatusFree, ship.Status)
}

func TestMissionService_StartMission_ShipBusy(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()
	ship := newDragon(alex, entity.ShipStatusFree)
	mission := newMission(alex, ship, entity.MissionStatusCreated)

	fx.expectTx()
	fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)
	fx.ships.EXPECT().FindByID(ctx, ship.ID).Return(newDragon(alex, entity.ShipStatusBusy), nil)

	_, err := fx.service.StartMission(ctx, "Alex", mission.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrShipNotAvailable))
}

func TestMissionService_Transitions_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		status entity.MissionStatus
		fire   func(srv *missionService, ctx context.Context, owner string, id uuid.UUID) (*entity.Mission, error)
	}{
		{"start started", entity.MissionStatusStarted, (*missionService).StartMission},
		{"start completed", entity.MissionStatusCompleted, (*missionService).StartMission},
		{"start canceled", entity.MissionStatusCanceled, (*missionService).StartMission},
		{"cancel completed", entity.MissionStatusCompleted, (*missionService).CancelMission},
		{"cancel canceled", entity.MissionStatusCanceled, (*missionService).CancelMission},
		{"complete created", entity.MissionStatusCreated, (*missionService).CompleteMission},
		{"complete canceled", entity.MissionStatusCanceled, (*missionService).CompleteMission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMissionService(t)
			ctx := context.Background()
			alex := newAlex()
			mission := newMission(alex, newDragon(alex, entity.ShipStatusFree), tt.status)

			fx.expectTx()
			fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)

			_, err := tt.fire(fx.service, ctx, "Alex", mission.ID)

			assert.True(t, errors.Is(err, domainerrors.ErrMissionStateConflict))
		})
	}
}

func TestMissionService_CancelMission(t *testing.T) {
	ctx := context.Background()

	t.Run("created keeps ship", func(t *testing.T) {
		fx := createTestMissionService(t)
		alex := newAlex()
		mission := newMission(alex, newDragon(alex, entity.ShipStatusFree), entity.MissionStatusCreated)

		fx.expectTx()
		fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)
		fx.missions.EXPECT().
			Update(ctx, mock.MatchedBy(func(m *entity.Mission) bool {
				return m.Status == entity.MissionStatusCanceled && m.FinishTime != nil
			})).
			Return(nil)

		canceled, err := fx.service.CancelMission(ctx, "Alex", mission.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.MissionStatusCanceled, canceled.Status)
		assert.Nil(t, canceled.StartTime)
	})

	t.Run("started releases ship", func(t *testing.T) {
		fx := createTestMissionService(t)
		alex := newAlex()
		ship := newDragon(alex, entity.ShipStatusBusy)
		mission := newMission(alex, ship, entity.MissionStatusStarted)

		fx.expectTx()
		fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)
		fx.missions.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Mission")).Return(nil)
		fx.ships.EXPECT().UpdateStatus(ctx, ship.ID, entity.ShipStatusFree).Return(nil)

		canceled, err := fx.service.CancelMission(ctx, "Alex", mission.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.ShipStatusFree, canceled.Ship.Status)
	})

	t.Run("foreign owner", func(t *testing.T) {
		fx := createTestMissionService(t)
		alex := newAlex()
		mission := newMission(alex, newDragon(alex, entity.ShipStatusFree), entity.MissionStatusCreated)

		fx.expectTx()
		fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)

		_, err := fx.service.CancelMission(ctx, "Bob", mission.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrOwnershipViolation))
	})
}

func TestMissionService_CompleteMission_RewardsOwner(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()
	ship := newDragon(alex, entity.ShipStatusBusy)
	mission := newMission(alex, ship, entity.MissionStatusStarted)
	started := fixedNow.Add(-time.Duration(mission.Duration) * time.Second)
	mission.StartTime = &started

	fx.expectTx()
	fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)
	fx.missions.EXPECT().
		Update(ctx, mock.MatchedBy(func(m *entity.Mission) bool {
			return m.Status == entity.MissionStatusCompleted && m.FinishTime != nil
		})).
		Return(nil)
	fx.ships.EXPECT().UpdateStatus(ctx, ship.ID, entity.ShipStatusFree).Return(nil)
	fx.users.EXPECT().FindByID(ctx, alex.ID).Return(alex, nil)
	fx.users.EXPECT().
		UpdateGameProfile(ctx, mock.MatchedBy(func(p *entity.GameProfile) bool {
			return p.CompletedMissions == 1 && p.Experience == 354 && p.ShipsNumber == 1
		})).
		Return(nil)

	completed, err := fx.service.CompleteMission(ctx, "Alex", mission.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.MissionStatusCompleted, completed.Status)
	assert.Equal(t, entity.ShipStatusFree, completed.Ship.Status)
}

func TestMissionService_CompleteMission_BeforeArrival(t *testing.T) {
	tests := []struct {
		name      string
		startedAt *time.Time
	}{
		{"one second early", func() *time.Time { at := fixedNow.Add(-22 * time.Second); return &at }()},
		{"just started", func() *time.Time { at := fixedNow; return &at }()},
		{"no start time", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMissionService(t)
			ctx := context.Background()
			alex := newAlex()
			mission := newMission(alex, newDragon(alex, entity.ShipStatusBusy), entity.MissionStatusStarted)
			mission.StartTime = tt.startedAt

			fx.expectTx()
			fx.missions.EXPECT().FindByID(ctx, mission.ID).Return(mission, nil)

			_, err := fx.service.CompleteMission(ctx, "Alex", mission.ID)

			assert.True(t, errors.Is(err, domainerrors.ErrMissionStateConflict))
		})
	}
}

func TestMissionService_FindAllMissions(t *testing.T) {
	fx := createTestMissionService(t)
	ctx := context.Background()
	alex := newAlex()

	fx.expectTx()
	fx.users.EXPECT().FindByUsername(ctx, "Alex").Return(alex, nil)
	fx.missions.EXPECT().FindAllByOwner(ctx, alex.ID).Return(nil, nil)

	missions, err := fx.service.FindAllMissions(ctx, "Alex")

	require.NoError(t, err)
	assert.NotNil(t, missions)
	assert.Empty(t, missions)
}
