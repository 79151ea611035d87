package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanetModel mirrors the 'planets' table.
type PlanetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PositionX int64     `gorm:"not null"`
	PositionY int64     `gorm:"not null"`
	Radius    int       `gorm:"not null;default:0"`
	Color     string    `gorm:"type:varchar(16)"`
	Type      int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanetModel) TableName() string {
	return "planets"
}
