package postgres

import (
	"its/internal/errors"
	"its/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.UserExtensionModel{},
		&model.GameProfileModel{},
		&model.PlanetModel{},
		&model.SpaceShipModel{},
		&model.MissionModel{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
