package impl

import (
	"context"
	"testing"

	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"
	"its/internal/domain/repository"
	"its/internal/domain/validation"
	"its/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPlanetService(t *testing.T) (repoFixtures, usecase.PlanetUsecase) {
	repos := newRepoFixtures(t)

	return repos, NewPlanetService(repos.txManager, validation.New(0), newDiscardLogger())
}

func TestPlanetService_CreatePlanet(t *testing.T) {
	ctx := context.Background()
	input := &usecase.CreatePlanetInput{Name: "Earth", PositionX: 800, PositionY: 300, Radius: 15, Color: "#32cbd4", Type: 0}

	t.Run("success", func(t *testing.T) {
		fx, svc := createTestPlanetService(t)

		fx.expectTx()
		fx.planets.EXPECT().FindByName(ctx, "Earth").Return(nil, repository.ErrPlanetNotFound)
		fx.planets.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Planet) bool {
				return p.Name == "Earth" && p.PositionX == 800 && p.Type == entity.PlanetTypeTerrestrial
			})).
			Return(nil)

		planet, err := svc.CreatePlanet(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "#32cbd4", planet.Color)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx, svc := createTestPlanetService(t)

		fx.expectTx()
		fx.planets.EXPECT().FindByName(ctx, "Earth").Return(newPlanet("Earth", 1, 1), nil)

		_, err := svc.CreatePlanet(ctx, input)

		assert.True(t, errors.Is(err, domainerrors.ErrPlanetAlreadyExists))
	})
}

func TestPlanetService_CreatePlanet_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreatePlanetInput
	}{
		{"nil", nil},
		{"empty name", &usecase.CreatePlanetInput{PositionX: 1, PositionY: 1}},
		{"negative x", &usecase.CreatePlanetInput{Name: "P", PositionX: -1}},
		{"negative y", &usecase.CreatePlanetInput{Name: "P", PositionY: -1}},
		{"negative radius", &usecase.CreatePlanetInput{Name: "P", Radius: -1}},
		{"unknown type", &usecase.CreatePlanetInput{Name: "P", Type: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := createTestPlanetService(t)

			_, err := svc.CreatePlanet(context.Background(), tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPlanetService_FindPlanet_NotFound(t *testing.T) {
	fx, svc := createTestPlanetService(t)
	ctx := context.Background()

	fx.expectTx()
	fx.planets.EXPECT().FindByName(ctx, "Pluto").Return(nil, repository.ErrPlanetNotFound)

	_, err := svc.FindPlanet(ctx, "Pluto")

	assert.True(t, errors.Is(err, domainerrors.ErrPlanetNotFound))
}

func TestPlanetService_DeleteAllPlanets(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx, svc := createTestPlanetService(t)

		fx.expectTx()
		fx.planets.EXPECT().DeleteAll(ctx).Return(int64(3), nil)

		deleted, err := svc.DeleteAllPlanets(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	t.Run("in use", func(t *testing.T) {
		fx, svc := createTestPlanetService(t)

		fx.expectTx()
		fx.planets.EXPECT().DeleteAll(ctx).Return(int64(0), domainerrors.ErrPlanetInUse)

		_, err := svc.DeleteAllPlanets(ctx)

		assert.True(t, errors.Is(err, domainerrors.ErrPlanetInUse))
	})
}
