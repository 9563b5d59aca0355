package recipe

import (
	"Recipe-Book/domain"
	"Recipe-Book/entities"
)

// NewRecipeFromRequest builds an unsaved recipe. Nil request collections stay
// nil on the entity so updates can tell "absent" from "empty".
func NewRecipeFromRequest(req domain.RecipeRequest) *entities.Recipe {
	recipe := &entities.Recipe{
		Title:           req.Title,
		Difficulty:      req.Difficulty,
		Category:        req.Category,
		PrepTimeMinutes: req.PrepTimeMinutes,
	}
	recipe.SetImageURLs(req.ImageURLs)

	if req.Ingredients != nil {
		recipe.Ingredients = make([]*entities.Ingredient, 0, len(req.Ingredients))
		for _, i := range req.Ingredients {
			recipe.AddIngredient(newIngredient(i))
		}
	}

	if req.Steps != nil {
		recipe.Steps = make([]*entities.RecipeStep, 0, len(req.Steps))
		for _, s := range req.Steps {
			step := &entities.RecipeStep{
				StepOrder:       s.StepOrder,
				Title:           s.Title,
				Description:     s.Description,
				DurationMinutes: s.DurationMinutes,
				ImageURL:        s.ImageURL,
			}
			for _, i := range s.Ingredients {
				step.Ingredients = append(step.Ingredients, newIngredient(i))
			}
			recipe.AddStep(step)
		}
	}

	return recipe
}

func newIngredient(req domain.IngredientRequest) *entities.Ingredient {
	return &entities.Ingredient{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	}
}

func ToRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:               recipe.ID,
		Title:            recipe.Title,
		Difficulty:       recipe.Difficulty,
		Category:         recipe.Category,
		PrepTimeMinutes:  recipe.PrepTimeMinutes,
		TotalTimeMinutes: recipe.TotalTimeMinutes,
		DateCreated:      recipe.DateCreated,
		Ingredients:      toIngredientResponses(recipe.Ingredients),
		Steps:            make([]domain.RecipeStepResponse, 0, len(recipe.Steps)),
		ImageURLs:        recipe.ImageURLs(),
	}

	for _, s := range recipe.Steps {
		res.Steps = append(res.Steps, domain.RecipeStepResponse{
			ID:              s.ID,
			RecipeID:        s.RecipeID,
			StepOrder:       s.StepOrder,
			Title:           s.Title,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			ImageURL:        s.ImageURL,
			Ingredients:     toIngredientResponses(s.Ingredients),
		})
	}

	return res
}

func ToRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, ToRecipeResponse(r))
	}
	return res
}

func toIngredientResponses(ingredients []*entities.Ingredient) []domain.IngredientResponse {
	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, domain.IngredientResponse{
			ID:       i.ID,
			RecipeID: i.RecipeID,
			Name:     i.Name,
			Quantity: i.Quantity,
			Unit:     i.Unit,
		})
	}
	return res
}
