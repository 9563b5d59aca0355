package recipe

import (
	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"context"
	"errors"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		SearchRecipes(ctx context.Context, keyword string) ([]*entities.Recipe, error)
		GetRecipesByCategory(ctx context.Context, category entities.Category) ([]*entities.Recipe, error)
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, details *entities.Recipe) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
		RecipeExists(ctx context.Context, id uint) (bool, error)
		CountRecipes(ctx context.Context) (int64, error)
		CalculateProgress(recipe *entities.Recipe, lastCompletedStepOrder int) float64
		GetProgress(ctx context.Context, id uint, lastCompletedStepOrder int) (float64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepository.FindAll(ctx)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, keyword string) ([]*entities.Recipe, error) {
	return s.recipeRepository.FindByTitleContaining(ctx, keyword)
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, category entities.Category) ([]*entities.Recipe, error) {
	return s.recipeRepository.FindByCategory(ctx, category)
}

// SaveRecipe links every child to recipe, resolves step ingredients against
// the recipe's own ingredient list and derives TotalTimeMinutes before
// persisting.
func (s *recipeService) SaveRecipe(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	recipe.LinkChildren()
	unifyStepIngredients(recipe)
	recipe.TotalTimeMinutes = totalTime(recipe.Steps)

	saved, err := s.recipeRepository.Save(ctx, recipe)
	if err != nil {
		log.Errorw("save recipe", "recipe_id", recipe.ID, "error", err)
		return nil, err
	}
	return saved, nil
}

// UpdateRecipe overwrites title, difficulty, category and image list.
// Ingredients and steps are replaced only when details carries a non-nil
// collection; the previous rows are deleted.
func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, details *entities.Recipe) (*entities.Recipe, error) {
	existing, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = details.Title
	existing.Difficulty = details.Difficulty
	existing.Category = details.Category
	existing.SetImageURLs(details.ImageURLs())

	if details.Ingredients != nil {
		existing.ClearIngredients()
		for _, i := range details.Ingredients {
			i.ID = 0
			existing.AddIngredient(i)
		}
	}

	if details.Steps != nil {
		existing.ClearSteps()
		for _, step := range details.Steps {
			step.ID = 0
			existing.AddStep(step)
		}
	}

	return s.SaveRecipe(ctx, existing)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	exists, err := s.recipeRepository.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	if err := s.recipeRepository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) RecipeExists(ctx context.Context, id uint) (bool, error) {
	return s.recipeRepository.ExistsByID(ctx, id)
}

func (s *recipeService) CountRecipes(ctx context.Context) (int64, error) {
	return s.recipeRepository.Count(ctx)
}

// CalculateProgress returns the share of TotalTimeMinutes covered by every
// step ordered at or before lastCompletedStepOrder, as a percentage capped
// at 100.
func (s *recipeService) CalculateProgress(recipe *entities.Recipe, lastCompletedStepOrder int) float64 {
	if len(recipe.Steps) == 0 || recipe.TotalTimeMinutes == 0 {
		return 0
	}

	completed := 0
	for _, step := range recipe.Steps {
		if step.StepOrder <= lastCompletedStepOrder {
			completed += step.DurationMinutes
		}
	}

	progress := float64(completed) / float64(recipe.TotalTimeMinutes) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

func (s *recipeService) GetProgress(ctx context.Context, id uint, lastCompletedStepOrder int) (float64, error) {
	recipe, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.CalculateProgress(recipe, lastCompletedStepOrder), nil
}

func totalTime(steps []*entities.RecipeStep) int {
	total := 0
	for _, step := range steps {
		total += step.DurationMinutes
	}
	return total
}

// unifyStepIngredients swaps each step ingredient for the recipe ingredient
// with the same name, quantity and unit. Step ingredients without an exact
// match are dropped.
func unifyStepIngredients(recipe *entities.Recipe) {
	for _, step := range recipe.Steps {
		if len(step.Ingredients) == 0 {
			continue
		}

		resolved := make([]*entities.Ingredient, 0, len(step.Ingredients))
		for _, wanted := range step.Ingredients {
			if match := findIngredient(recipe.Ingredients, wanted); match != nil {
				resolved = append(resolved, match)
			}
		}
		step.Ingredients = resolved
	}
}

func findIngredient(ingredients []*entities.Ingredient, wanted *entities.Ingredient) *entities.Ingredient {
	for _, i := range ingredients {
		if i.Name == wanted.Name && i.Quantity == wanted.Quantity && i.Unit == wanted.Unit {
			return i
		}
	}
	return nil
}
