// Package model contains the gorm mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application so the
// same schema works on PostgreSQL and SQLite.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null;default:player"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Extension   *UserExtensionModel `gorm:"foreignKey:UserID"`
	GameProfile *GameProfileModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserExtensionModel mirrors the 'user_extensions' table. UserID references users.id.
type UserExtensionModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	RegistrationTime time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserExtensionModel) TableName() string {
	return "user_extensions"
}

// GameProfileModel mirrors the 'game_profiles' table. UserID references users.id.
type GameProfileModel struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipsNumber       int       `gorm:"not null;default:0"`
	Experience        int64     `gorm:"not null;default:0"`
	CompletedMissions int       `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (GameProfileModel) TableName() string {
	return "game_profiles"
}
