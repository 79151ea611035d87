package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"its/internal/domain/entity"
	"its/internal/domain/repository"
	mockRepo "its/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// repoFixtures wires a transaction manager whose Execute runs the callback against
// one factory of repository mocks.
type repoFixtures struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	users     *mockRepo.MockUserRepository
	planets   *mockRepo.MockPlanetRepository
	ships     *mockRepo.MockSpaceShipRepository
	missions  *mockRepo.MockMissionRepository
}

func newRepoFixtures(t *testing.T) repoFixtures {
	f := repoFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		users:     mockRepo.NewMockUserRepository(t),
		planets:   mockRepo.NewMockPlanetRepository(t),
		ships:     mockRepo.NewMockSpaceShipRepository(t),
		missions:  mockRepo.NewMockMissionRepository(t),
	}

	f.factory.EXPECT().UserRepo().Return(f.users).Maybe()
	f.factory.EXPECT().PlanetRepo().Return(f.planets).Maybe()
	f.factory.EXPECT().ShipRepo().Return(f.ships).Maybe()
	f.factory.EXPECT().MissionRepo().Return(f.missions).Maybe()

	return f
}

func (f repoFixtures) expectTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func newAlex() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:           id,
		Username:     "Alex",
		PasswordHash: "hashed",
		Role:         entity.RolePlayer,
		Extension:    &entity.UserExtension{UserID: id, Email: "alex@mail.com", RegistrationTime: fixedNow},
		GameProfile:  &entity.GameProfile{UserID: id, ShipsNumber: 1},
	}
}

func newDragon(owner *entity.User, status entity.ShipStatus) *entity.SpaceShip {
	return &entity.SpaceShip{
		ID:               uuid.New(),
		OwnerID:          owner.ID,
		OwnerUsername:    owner.Username,
		Name:             "Dragon-1",
		MaxCargoCapacity: 1,
		Level:            1,
		Speed:            15.5,
		Status:           status,
	}
}

func newPlanet(name string, x, y int64) *entity.Planet {
	return &entity.Planet{ID: uuid.New(), Name: name, PositionX: x, PositionY: y}
}

func newMission(owner *entity.User, ship *entity.SpaceShip, status entity.MissionStatus) *entity.Mission {
	return &entity.Mission{
		ID:                uuid.New(),
		OwnerID:           owner.ID,
		OwnerUsername:     owner.Username,
		Ship:              ship,
		StartPlanet:       newPlanet("P-001", 50, 50),
		DestinationPlanet: newPlanet("P-002", 300, 300),
		Payload:           0.5,
		RegistrationTime:  fixedNow,
		Duration:          23,
		Status:            status,
	}
}
