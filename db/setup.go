package db

import (
	"github.com/wasteless-dev/wasteless/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database handle. The handle is created once at
// startup and passed to the stores; there is no package-level global.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(gormDB *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.FoodEntry{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	}

	migrator := gormDB.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gormDB.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
