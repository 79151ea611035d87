// Package mechanics holds the game formulas behind mission planning: route distance,
// flight duration and the MissionMetrics aggregate that bundles them.
package mechanics

import (
	"math"
	"time"

	domainerrors "its/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Coefficients are the process-wide tuning constants of the duration formula.
type Coefficients struct {
	ShipLevel   float64 // Speed bonus granted per ship level.
	TimeSeconds float64 // Converts normalized flight time into seconds.
}

// NewCoefficients validates the configured constants. Both must be present, finite and positive.
func NewCoefficients(shipLevel, timeSeconds *float64) (Coefficients, error) {
	if shipLevel == nil {
		return Coefficients{}, domainerrors.ErrConfiguration.WithDetails("ship level coefficient is not set")
	}
	if timeSeconds == nil {
		return Coefficients{}, domainerrors.ErrConfiguration.WithDetails("time coefficient is not set")
	}
	if !isPositiveFinite(*shipLevel) {
		return Coefficients{}, domainerrors.ErrConfiguration.WithDetails("ship level coefficient must be a positive number")
	}
	if !isPositiveFinite(*timeSeconds) {
		return Coefficients{}, domainerrors.ErrConfiguration.WithDetails("time coefficient must be a positive number")
	}

	return Coefficients{ShipLevel: *shipLevel, TimeSeconds: *timeSeconds}, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// MaxDurationSeconds is the longest flight time that still fits a time.Duration,
// so StartTime plus Duration never overflows.
const MaxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))

// Distance returns the Euclidean distance between two map positions.
func Distance(startX, startY, destX, destY int64) (float64, error) {
	if startX < 0 || startY < 0 || destX < 0 || destY < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("planet coordinates must not be negative")
	}

	start := orb.Point{float64(startX), float64(startY)}
	dest := orb.Point{float64(destX), float64(destY)}

	return planar.Distance(start, dest), nil
}

// Duration returns the flight time in whole seconds, rounded half up:
//
//	round(distance / (speed + level*c.ShipLevel) * c.TimeSeconds)
func Duration(distance, speed float64, level int, c Coefficients) (int64, error) {
	switch {
	case distance <= 0:
		return 0, domainerrors.ErrValidationFailed.WithDetails("distance must be positive")
	case speed <= 0:
		return 0, domainerrors.ErrValidationFailed.WithDetails("ship speed must be positive")
	case level < 1:
		return 0, domainerrors.ErrValidationFailed.WithDetails("ship level must be at least 1")
	}

	seconds := math.Floor(distance/(speed+float64(level)*c.ShipLevel)*c.TimeSeconds + 0.5)
	if math.IsNaN(seconds) || seconds > MaxDurationSeconds {
		return 0, domainerrors.ErrValidationFailed.WithDetails("flight time is out of range")
	}

	return int64(seconds), nil
}
