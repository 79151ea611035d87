package mechanics

import (
	"its/internal/domain/entity"
)

// MissionMetrics is the planning summary of a prospective mission. Distance and Duration
// are derived; call RefreshDistanceAndDuration after filling the ship and planet fields.
type MissionMetrics struct {
	ShipName       string  `json:"shipName"`
	ShipLevel      int     `json:"shipLevel"`
	ShipSpeed      float64 `json:"shipSpeed"`
	ShipMaxPayload float64 `json:"shipMaxPayload"`
	ActualPayload  float64 `json:"actualPayload"`

	StartPlanetName string `json:"startPlanetName"`
	StartPositionX  int64  `json:"startPositionX"`
	StartPositionY  int64  `json:"startPositionY"`

	DestinationPlanetName string `json:"destinationPlanetName"`
	DestinationPositionX  int64  `json:"destinationPositionX"`
	DestinationPositionY  int64  `json:"destinationPositionY"`

	Distance float64 `json:"distance"`
	Duration int64   `json:"duration"` // seconds
}

// NewMissionMetrics fills the ship, payload and planet fields and computes the derived values.
func NewMissionMetrics(ship *entity.SpaceShip, start, dest *entity.Planet, payload float64, c Coefficients) (*MissionMetrics, error) {
	metrics := &MissionMetrics{
		ShipName:              ship.Name,
		ShipLevel:             ship.Level,
		ShipSpeed:             ship.Speed,
		ShipMaxPayload:        ship.MaxCargoCapacity,
		ActualPayload:         payload,
		StartPlanetName:       start.Name,
		StartPositionX:        start.PositionX,
		StartPositionY:        start.PositionY,
		DestinationPlanetName: dest.Name,
		DestinationPositionX:  dest.PositionX,
		DestinationPositionY:  dest.PositionY,
	}

	if err := metrics.RefreshDistanceAndDuration(c); err != nil {
		return nil, err
	}

	return metrics, nil
}

// RefreshDistanceAndDuration recomputes Distance and Duration in place.
// On failure both derived fields are reset to zero.
func (m *MissionMetrics) RefreshDistanceAndDuration(c Coefficients) error {
	m.Distance, m.Duration = 0, 0

	distance, err := Distance(m.StartPositionX, m.StartPositionY, m.DestinationPositionX, m.DestinationPositionY)
	if err != nil {
		return err
	}

	duration, err := Duration(distance, m.ShipSpeed, m.ShipLevel, c)
	if err != nil {
		return err
	}

	m.Distance, m.Duration = distance, duration

	return nil
}
