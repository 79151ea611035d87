package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlanetType classifies how a planet is drawn on the space map.
type PlanetType int

const (
	PlanetTypeTerrestrial PlanetType = iota
	PlanetTypeGas
	PlanetTypeIce
)

func (t PlanetType) IsValid() bool {
	return t >= PlanetTypeTerrestrial && t <= PlanetTypeIce
}

// Planet is a fixed point of the space map. Planets are shared by all players
// and are not edited after creation.
type Planet struct {
	ID        uuid.UUID
	Name      string     // Unique, case-sensitive.
	PositionX int64      // Horizontal coordinate, never negative.
	PositionY int64      // Vertical coordinate, never negative.
	Radius    int        // Drawing radius on the map.
	Color     string     // Drawing color, e.g. "#32cbd4".
	Type      PlanetType // Drawing style.
	CreatedAt time.Time
}

// SamePosition reports whether p and other occupy identical coordinates.
func (p *Planet) SamePosition(other *Planet) bool {
	return p.PositionX == other.PositionX && p.PositionY == other.PositionY
}
