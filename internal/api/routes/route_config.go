package routes

import (
	"Recipe-Book/internal/api/handlers"
	"Recipe-Book/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	RecipeHandler      handlers.RecipeHandler
	RecipePhotoHandler handlers.PhotoHandler
	StepPhotoHandler   handlers.PhotoHandler
	Middleware         middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Recipes()
	c.RecipePhotos()
	c.StepPhotos()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")

	// static segments go before /:id
	recipes.Get("/search", c.RecipeHandler.SearchRecipes)
	recipes.Get("/category/:category", c.RecipeHandler.GetRecipesByCategory)

	recipes.Get("", c.RecipeHandler.GetAllRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Get("/:id/progress", c.RecipeHandler.GetProgress)
}

func (c *Config) RecipePhotos() {
	photos := c.App.Group("/api/recipes/:id")
	{
		photos.Post("/photo", c.RecipePhotoHandler.UploadPhoto)
		photos.Get("/photo/:filename", c.RecipePhotoHandler.GetPhoto)
		photos.Get("/photos", c.RecipePhotoHandler.GetPhotoFilenames)
		photos.Delete("/photo/:filename", c.RecipePhotoHandler.DeletePhoto)
		photos.Delete("/photos", c.RecipePhotoHandler.DeleteAllPhotos)
	}
}

func (c *Config) StepPhotos() {
	photos := c.App.Group("/api/recipes/:id/steps/:stepId")
	{
		photos.Post("/photo", c.StepPhotoHandler.UploadPhoto)
		photos.Get("/photo/:filename", c.StepPhotoHandler.GetPhoto)
		photos.Get("/photos", c.StepPhotoHandler.GetPhotoFilenames)
		photos.Delete("/photo/:filename", c.StepPhotoHandler.DeletePhoto)
		photos.Delete("/photos", c.StepPhotoHandler.DeleteAllPhotos)
	}
}
