package migration

import (
	"Recipe-Book/entities"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrate recipes: %w", err)
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		return fmt.Errorf("migrate ingredients: %w", err)
	}
	// also creates the step_ingredients join table
	if err := db.AutoMigrate(&entities.RecipeStep{}); err != nil {
		return fmt.Errorf("migrate recipe steps: %w", err)
	}
	if err := db.AutoMigrate(&entities.RecipeImage{}); err != nil {
		return fmt.Errorf("migrate recipe images: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
