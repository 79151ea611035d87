package impl

import (
	"context"
	"testing"
	"time"

	"its/config"
	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/mechanics"
	"its/internal/domain/repository"
	"its/internal/domain/validation"
	"its/internal/infra/auth"
	"its/internal/infra/persistence/postgres"
	"its/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type integrationServices struct {
	users     usecase.UserUsecase
	planets   usecase.PlanetUsecase
	ships     usecase.SpaceShipUsecase
	missions  usecase.MissionUsecase
	bootstrap usecase.BootstrapUsecase
	clock     *testClock
}

// testClock is the mission service clock; tests move it forward to simulate flight time.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newIntegrationServices(t *testing.T, seed *config.BootstrapConfig) integrationServices {
	t.Helper()

	cfg := &config.Config{
		Database:  config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
		SecretKey: config.SecretKeyConfig{Access: "integration_secret_key"},
		Auth:      &config.AuthConfig{AccessTokenTTL: time.Hour},
		Bootstrap: seed,
	}

	db, err := postgres.Open(cfg, newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	var txManager repository.TransactionManager = postgres.NewTransactionManager(db)
	v := validation.New(8)
	logger := newDiscardLogger()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	planets := NewPlanetService(txManager, v, logger)
	ships := NewSpaceShipService(txManager, v, logger)
	clock := &testClock{now: time.Now().UTC().Truncate(time.Second)}
	missions := NewMissionService(txManager, v, mechanics.Coefficients{ShipLevel: 0.1, TimeSeconds: 1}, logger).(*missionService)
	missions.now = clock.Now

	return integrationServices{
		users: NewUserService(UserServiceParams{
			TxManager: txManager, Hasher: hasher, TokenService: tokens, Validator: v, Logger: logger,
		}),
		planets:  planets,
		ships:    ships,
		missions: missions,
		clock:    clock,
		bootstrap: NewBootstrapService(BootstrapServiceParams{
			Config: cfg, TxManager: txManager, Hasher: hasher, Validator: v, Planets: planets, Ships: ships, Logger: logger,
		}),
	}
}

func TestMissionLifecycle_EndToEnd(t *testing.T) {
	s := newIntegrationServices(t, nil)
	ctx := context.Background()

	_, err := s.users.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "Alex", Password: "12345678", Email: "alex@mail.com"})
	require.NoError(t, err)

	_, err = s.ships.CreateSpaceShip(ctx, "Alex", &usecase.CreateSpaceShipInput{Name: "Dragon-1", MaxCargoCapacity: 1, Level: 1, Speed: 15.5})
	require.NoError(t, err)

	_, err = s.planets.CreatePlanet(ctx, &usecase.CreatePlanetInput{Name: "P-001", PositionX: 50, PositionY: 50})
	require.NoError(t, err)
	_, err = s.planets.CreatePlanet(ctx, &usecase.CreatePlanetInput{Name: "P-002", PositionX: 300, PositionY: 300})
	require.NoError(t, err)

	req := &usecase.MissionRequest{Start: "P-001", Destination: "P-002", Ship: "Dragon-1", Payload: 0.5}

	metrics, err := s.missions.GenerateMissionMetrics(ctx, "Alex", req)
	require.NoError(t, err)
	assert.InDelta(t, 353.553, metrics.Distance, 0.001)
	assert.Equal(t, int64(23), metrics.Duration)

	mission, err := s.missions.ConstructNewMission(ctx, "Alex", req)
	require.NoError(t, err)
	assert.Equal(t, entity.MissionStatusCreated, mission.Status)
	assert.Equal(t, int64(23), mission.Duration)

	started, err := s.missions.StartMission(ctx, "Alex", mission.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MissionStatusStarted, started.Status)
	require.NotNil(t, started.StartTime)

	ship, err := s.ships.FindSpaceShip(ctx, "Alex", "Dragon-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ShipStatusBusy, ship.Status)

	free, err := s.ships.FindAllFreeShips(ctx, "Alex")
	require.NoError(t, err)
	assert.Empty(t, free)

	// a busy ship cannot take another mission
	_, err = s.missions.ConstructNewMission(ctx, "Alex", req)
	assert.True(t, errors.Is(err, domainerrors.ErrShipNotAvailable))

	canceled, err := s.missions.CancelMission(ctx, "Alex", mission.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MissionStatusCanceled, canceled.Status)
	require.NotNil(t, canceled.FinishTime)

	ship, err = s.ships.FindSpaceShip(ctx, "Alex", "Dragon-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ShipStatusFree, ship.Status)

	_, err = s.missions.StartMission(ctx, "Alex", mission.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrMissionStateConflict))

	stored, err := s.missions.FindMission(ctx, "Alex", mission.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MissionStatusCanceled, stored.Status)
}

func TestMissionLifecycle_CompleteAndOwnership(t *testing.T) {
	s := newIntegrationServices(t, nil)
	ctx := context.Background()

	for _, name := range []string{"Alex", "Bob"} {
		_, err := s.users.RegisterUser(ctx, &usecase.RegisterUserInput{Username: name, Password: "12345678", Email: name + "@mail.com"})
		require.NoError(t, err)
	}
	_, err := s.ships.CreateSpaceShip(ctx, "Alex", &usecase.CreateSpaceShipInput{Name: "Dragon-1", MaxCargoCapacity: 1, Level: 1, Speed: 15.5})
	require.NoError(t, err)
	_, err = s.planets.CreatePlanet(ctx, &usecase.CreatePlanetInput{Name: "P-001", PositionX: 50, PositionY: 50})
	require.NoError(t, err)
	_, err = s.planets.CreatePlanet(ctx, &usecase.CreatePlanetInput{Name: "P-002", PositionX: 300, PositionY: 300})
	require.NoError(t, err)

	req := &usecase.MissionRequest{Start: "P-001", Destination: "P-002", Ship: "Dragon-1", Payload: 0.5}

	// Bob cannot use Alex's ship
	_, err = s.missions.ConstructNewMission(ctx, "Bob", req)
	assert.True(t, errors.Is(err, domainerrors.ErrShipNotFound))

	mission, err := s.missions.ConstructNewMission(ctx, "Alex", req)
	require.NoError(t, err)

	_, err = s.missions.FindMission(ctx, "Bob", mission.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnershipViolation))
	_, err = s.missions.StartMission(ctx, "Bob", mission.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnershipViolation))

	_, err = s.missions.StartMission(ctx, "Alex", mission.ID)
	require.NoError(t, err)

	// still in flight
	_, err = s.missions.CompleteMission(ctx, "Alex", mission.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrMissionStateConflict))

	s.clock.Advance(time.Duration(mission.Duration) * time.Second)
	completed, err := s.missions.CompleteMission(ctx, "Alex", mission.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MissionStatusCompleted, completed.Status)

	detail, err := s.users.FindUser(ctx, "Alex")
	require.NoError(t, err)
	assert.Equal(t, 1, detail.User.GameProfile.CompletedMissions)
	assert.Equal(t, int64(354), detail.User.GameProfile.Experience)
	assert.Equal(t, 1, detail.User.GameProfile.ShipsNumber)
	require.Len(t, detail.Missions, 1)
	assert.Equal(t, entity.ShipStatusFree, detail.Ships[0].Status)

	bobMissions, err := s.missions.FindAllMissions(ctx, "Bob")
	require.NoError(t, err)
	assert.Empty(t, bobMissions)

	// planets referenced by missions stay put
	_, err = s.planets.DeleteAllPlanets(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrPlanetInUse))
}

func TestUserLifecycle_LoginAndDelete(t *testing.T) {
	s := newIntegrationServices(t, nil)
	ctx := context.Background()

	_, err := s.users.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "Alex", Password: "12345678", Email: "alex@mail.com"})
	require.NoError(t, err)

	_, err = s.users.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "Alex", Password: "12345678", Email: "other@mail.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	out, err := s.users.Login(ctx, &usecase.LoginInput{Username: "Alex", Password: "12345678"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, int64(3600), out.ExpiresIn)

	_, err = s.users.Login(ctx, &usecase.LoginInput{Username: "Alex", Password: "87654321"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	email := "new@mail.com"
	updated, err := s.users.ChangeUserExtension(ctx, "Alex", entity.UserExtensionPatch{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Extension.Email)

	require.NoError(t, s.users.DeleteUser(ctx, "Alex"))
	_, err = s.users.FindUser(ctx, "Alex")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestBootstrap_SeedIsIdempotent(t *testing.T) {
	seed := &config.BootstrapConfig{
		Enabled: true,
		Planets: []config.PlanetSeed{
			{Name: "P-001", PositionX: 250, PositionY: 400, Radius: 10, Color: "#d43900", Type: 2},
			{Name: "Earth", PositionX: 800, PositionY: 300, Radius: 15, Color: "#32cbd4", Type: 0},
		},
		Admin: &config.UserSeed{Username: "root", Password: "rootroot", Email: "root@its.local"},
		DefaultUser: &config.UserSeed{
			Username: "Alex", Password: "12345678", Email: "alex@mail.com",
			Ships: []config.ShipSeed{
				{Name: "Dragon-1", MaxCargoCapacity: 50, Level: 1, Speed: 30},
				{Name: "Dragon-2", MaxCargoCapacity: 70, Level: 1, Speed: 15},
			},
		},
	}
	s := newIntegrationServices(t, seed)
	ctx := context.Background()

	report, err := s.bootstrap.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.BootstrapReport{PlanetsCreated: 2, UsersCreated: 2, ShipsCreated: 2}, *report)

	report, err = s.bootstrap.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.BootstrapReport{Skipped: 6}, *report)

	out, err := s.users.Login(ctx, &usecase.LoginInput{Username: "root", Password: "rootroot"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	ships, err := s.ships.FindAllShips(ctx, "Alex")
	require.NoError(t, err)
	assert.Len(t, ships, 2)

	detail, err := s.users.FindUser(ctx, "Alex")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.User.GameProfile.ShipsNumber)
}
