package model

import (
	"time"

	"github.com/google/uuid"
)

// SpaceShipModel mirrors the 'space_ships' table. Names are unique per owner.
type SpaceShipModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_space_ships_owner_name,priority:1"`
	Name             string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_space_ships_owner_name,priority:2"`
	MaxCargoCapacity float64   `gorm:"not null"`
	Level            int       `gorm:"not null;default:1"`
	Speed            float64   `gorm:"not null"`
	Status           string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (SpaceShipModel) TableName() string {
	return "space_ships"
}
