package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShipStatus is the availability state of a SpaceShip.
type ShipStatus string

const (
	// ShipStatusFree marks a ship that can be attached to a new mission.
	ShipStatusFree ShipStatus = "FREE"
	// ShipStatusBusy marks a ship performing a started mission.
	ShipStatusBusy ShipStatus = "BUSY"
	// ShipStatusInactive marks a ship withdrawn from service.
	ShipStatusInactive ShipStatus = "INACTIVE"
)

// String returns the string representation of the ShipStatus.
func (s ShipStatus) String() string {
	return string(s)
}

// IsValid checks if the ShipStatus is a valid value.
func (s ShipStatus) IsValid() bool {
	switch s {
	case ShipStatusFree, ShipStatusBusy, ShipStatusInactive:
		return true
	default:
		return false
	}
}

// SpaceShip is a cargo ship owned by exactly one game profile.
type SpaceShip struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID  // GameProfile (user) that owns the ship.
	OwnerUsername    string     // Resolved from the owner, read-only.
	Name             string     // Unique per owner.
	MaxCargoCapacity float64    // Largest payload the ship can carry, > 0.
	Level            int        // >= 1, speeds the ship up through the level coefficient.
	Speed            float64    // Base speed, > 0.
	Status           ShipStatus // FREE, BUSY or INACTIVE.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsFree reports whether the ship can take a new mission.
func (s *SpaceShip) IsFree() bool {
	return s.Status == ShipStatusFree
}

// CanCarry reports whether payload fits into the cargo hold.
func (s *SpaceShip) CanCarry(payload float64) bool {
	return payload <= s.MaxCargoCapacity
}
