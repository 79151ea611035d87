package mechanics

import (
	"math"
	"testing"

	"its/internal/domain/entity"
	domainerrors "its/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCoefficients = Coefficients{ShipLevel: 0.1, TimeSeconds: 1}

func TestDistance(t *testing.T) {
	d, err := Distance(50, 50, 300, 300)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(250*250+250*250), d, 1e-9)
	assert.InDelta(t, 353.553, d, 0.001)

	d, err = Distance(0, 0, 3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-9)

	d, err = Distance(7, 7, 7, 7)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDistance_NegativeCoordinate(t *testing.T) {
	cases := [][4]int64{
		{-1, 0, 1, 1},
		{0, -1, 1, 1},
		{0, 0, -1, 1},
		{0, 0, 1, -1},
	}

	for _, c := range cases {
		_, err := Distance(c[0], c[1], c[2], c[3])
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestDuration(t *testing.T) {
	d, err := Duration(353.553, 15.5, 1, testCoefficients)
	require.NoError(t, err)
	assert.Equal(t, int64(23), d)

	// 10 / (4.5 + 5*0.1) * 1 == 2.0
	d, err = Duration(10, 4.5, 5, testCoefficients)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)

	// rounds half up: 5 / 2 == 2.5 -> 3
	d, err = Duration(5, 1.9, 1, testCoefficients)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)

	// time coefficient scales the result
	d, err = Duration(100, 9.9, 1, Coefficients{ShipLevel: 0.1, TimeSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, int64(600), d)
}

func TestDuration_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		speed    float64
		level    int
	}{
		{"zero distance", 0, 10, 1},
		{"negative distance", -5, 10, 1},
		{"zero speed", 10, 0, 1},
		{"negative speed", 10, -1, 1},
		{"level below one", 10, 10, 0},
		{"flight time beyond int64", 1.3e19, 1, 1},
		{"flight time beyond time.Duration", MaxDurationSeconds * 2, 0.9, 1},
		{"infinite distance", math.Inf(1), 1, 1},
		{"nan distance", math.NaN(), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Duration(tt.distance, tt.speed, tt.level, testCoefficients)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestDuration_LargeCoordinates(t *testing.T) {
	distance, err := Distance(0, 0, 9e18, 0)
	require.NoError(t, err)

	_, err = Duration(distance, 1, 1, Coefficients{ShipLevel: 0.1, TimeSeconds: 10})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	d, err := Duration(MaxDurationSeconds, 1, 1, Coefficients{ShipLevel: 0, TimeSeconds: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(MaxDurationSeconds), d)
}

func TestNewCoefficients(t *testing.T) {
	k1, k2 := 0.1, 1.0
	c, err := NewCoefficients(&k1, &k2)
	require.NoError(t, err)
	assert.Equal(t, Coefficients{ShipLevel: 0.1, TimeSeconds: 1}, c)

	_, err = NewCoefficients(nil, &k2)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))

	_, err = NewCoefficients(&k1, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))

	zero := 0.0
	_, err = NewCoefficients(&k1, &zero)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))

	nan := math.NaN()
	_, err = NewCoefficients(&nan, &k2)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestNewMissionMetrics(t *testing.T) {
	ship := &entity.SpaceShip{Name: "Dragon-1", MaxCargoCapacity: 1.0, Level: 1, Speed: 15.5}
	start := &entity.Planet{Name: "P-001", PositionX: 50, PositionY: 50}
	dest := &entity.Planet{Name: "P-002", PositionX: 300, PositionY: 300}

	metrics, err := NewMissionMetrics(ship, start, dest, 0.5, testCoefficients)
	require.NoError(t, err)

	assert.Equal(t, "Dragon-1", metrics.ShipName)
	assert.Equal(t, 1.0, metrics.ShipMaxPayload)
	assert.Equal(t, 0.5, metrics.ActualPayload)
	assert.Equal(t, "P-001", metrics.StartPlanetName)
	assert.Equal(t, "P-002", metrics.DestinationPlanetName)
	assert.InDelta(t, 353.553, metrics.Distance, 0.001)
	assert.Equal(t, int64(23), metrics.Duration)
}

func TestMissionMetrics_RefreshResetsOnFailure(t *testing.T) {
	metrics := &MissionMetrics{
		ShipLevel:            1,
		ShipSpeed:            15.5,
		DestinationPositionX: 300,
		DestinationPositionY: 300,
		Distance:             1,
		Duration:             1,
	}

	metrics.ShipSpeed = 0
	err := metrics.RefreshDistanceAndDuration(testCoefficients)
	require.Error(t, err)
	assert.Zero(t, metrics.Distance)
	assert.Zero(t, metrics.Duration)

	metrics.ShipSpeed = 15.5
	require.NoError(t, metrics.RefreshDistanceAndDuration(testCoefficients))
	assert.InDelta(t, 424.264, metrics.Distance, 0.001)
	assert.Equal(t, int64(27), metrics.Duration)
}
