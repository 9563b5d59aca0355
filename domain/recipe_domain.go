package domain

import (
	"Recipe-Book/entities"
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetProgress     = "success get recipe progress"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedGetProgress     = "failed to get recipe progress"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrStepNotFound      = errors.New("recipe step not found")
	ErrInvalidRecipeID   = errors.New("recipe id must be a positive integer")
	ErrInvalidStepID     = errors.New("step id must be a positive integer")
	ErrInvalidCategory   = errors.New("invalid recipe category")
	ErrInvalidDifficulty = errors.New("invalid difficulty level")
	ErrInvalidStepOrder  = errors.New("completedStepOrder must be an integer")
	ErrMissingSearchTerm = errors.New("title query parameter is required")
)

type (
	IngredientRequest struct {
		Name     string  `json:"name" validate:"required,max=255"`
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"max=64"`
	}

	RecipeStepRequest struct {
		StepOrder       int                 `json:"stepOrder" validate:"required,min=1"`
		Title           string              `json:"title" validate:"max=255"`
		Description     string              `json:"description" validate:"max=1000"`
		DurationMinutes int                 `json:"durationMinutes" validate:"min=0"`
		ImageURL        string              `json:"imageUrl,omitempty"`
		Ingredients     []IngredientRequest `json:"ingredients,omitempty" validate:"omitempty,dive"`
	}

	// RecipeRequest is the body of create and update calls. A nil Ingredients
	// or Steps slice means "not supplied"; an empty one means "none".
	RecipeRequest struct {
		Title           string              `json:"title" validate:"required,max=255"`
		Difficulty      entities.Difficulty `json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
		Category        entities.Category   `json:"category" validate:"omitempty,oneof=PASTA MEAT VEGETARIAN DESSERT SOUP SALAD"`
		PrepTimeMinutes *int                `json:"prepTimeMinutes,omitempty" validate:"omitempty,min=0"`
		ImageURLs       []string            `json:"imageUrls,omitempty"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"omitempty,dive"`
		Steps           []RecipeStepRequest `json:"steps" validate:"omitempty,dive"`
	}

	IngredientResponse struct {
		ID       uint    `json:"id"`
		RecipeID uint    `json:"recipeId"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	RecipeStepResponse struct {
		ID              uint                 `json:"id"`
		RecipeID        uint                 `json:"recipeId"`
		StepOrder       int                  `json:"stepOrder"`
		Title           string               `json:"title"`
		Description     string               `json:"description"`
		DurationMinutes int                  `json:"durationMinutes"`
		ImageURL        string               `json:"imageUrl,omitempty"`
		Ingredients     []IngredientResponse `json:"ingredients"`
	}

	RecipeResponse struct {
		ID               uint                 `json:"id"`
		Title            string               `json:"title"`
		Difficulty       entities.Difficulty  `json:"difficulty,omitempty"`
		Category         entities.Category    `json:"category,omitempty"`
		PrepTimeMinutes  *int                 `json:"prepTimeMinutes,omitempty"`
		TotalTimeMinutes int                  `json:"totalTimeMinutes"`
		DateCreated      time.Time            `json:"dateCreated"`
		Ingredients      []IngredientResponse `json:"ingredients"`
		Steps            []RecipeStepResponse `json:"steps"`
		ImageURLs        []string             `json:"imageUrls"`
	}
)
