package config

import (
	"Recipe-Book/internal/api/handlers"
	"Recipe-Book/internal/api/routes"
	"Recipe-Book/internal/middleware"
	"Recipe-Book/internal/utils"
	"Recipe-Book/internal/utils/storage"
	"Recipe-Book/pkg/photo"
	"Recipe-Book/pkg/recipe"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const maxUploadBytes = 10 * 1024 * 1024

func NewApp(db *gorm.DB, store storage.PhotoStore) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:           "Recipe Book",
		BodyLimit:         maxUploadBytes,
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("CORS_ALLOW_ORIGINS"))
	validator := utils.Validate

	// setting up logging and limiter
	logPath := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	maxRequests, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX"))
	if err != nil || maxRequests <= 0 {
		maxRequests = 20
	}
	app.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: 1 * time.Second,
	}))

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository)
	recipePhotoService := photo.NewRecipePhotoService(recipeService, store)
	stepPhotoService := photo.NewStepPhotoService(recipeService, store)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	recipePhotoHandler := handlers.NewRecipePhotoHandler(recipePhotoService, validator)
	stepPhotoHandler := handlers.NewStepPhotoHandler(stepPhotoService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		RecipeHandler:      recipeHandler,
		RecipePhotoHandler: recipePhotoHandler,
		StepPhotoHandler:   stepPhotoHandler,
		Middleware:         middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
