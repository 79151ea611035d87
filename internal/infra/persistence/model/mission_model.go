package model

import (
	"time"

	"github.com/google/uuid"
)

// MissionModel mirrors the 'missions' table.
type MissionModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID             uuid.UUID `gorm:"type:uuid;not null;index"`
	ShipID              uuid.UUID `gorm:"type:uuid;not null;index"`
	StartPlanetID       uuid.UUID `gorm:"type:uuid;not null"`
	DestinationPlanetID uuid.UUID `gorm:"type:uuid;not null"`
	Payload             float64   `gorm:"not null"`
	RegistrationTime    time.Time `gorm:"not null;index"`
	StartTime           *time.Time
	FinishTime          *time.Time
	Duration            int64  `gorm:"not null"`
	Status              string `gorm:"type:varchar(16);not null;index"`
	UpdatedAt           time.Time

	Owner             *UserModel      `gorm:"foreignKey:OwnerID"`
	Ship              *SpaceShipModel `gorm:"foreignKey:ShipID"`
	StartPlanet       *PlanetModel    `gorm:"foreignKey:StartPlanetID"`
	DestinationPlanet *PlanetModel    `gorm:"foreignKey:DestinationPlanetID"`
}

// TableName explicitly sets the table name for GORM.
func (MissionModel) TableName() string {
	return "missions"
}
