package seed

import (
	"Recipe-Book/entities"
	"Recipe-Book/pkg/recipe"
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
)

type (
	ingredientSeed struct {
		name     string
		quantity float64
		unit     string
	}

	stepSeed struct {
		title       string
		description string
		duration    int
	}

	recipeSeed struct {
		title       string
		difficulty  entities.Difficulty
		category    entities.Category
		prepTime    int
		ingredients []ingredientSeed
		steps       []stepSeed
	}
)

var demoCatalog = []recipeSeed{
	{
		title:      "Spaghetti Carbonara",
		difficulty: entities.DifficultyMedium,
		category:   entities.CategoryPasta,
		prepTime:   15,
		ingredients: []ingredientSeed{
			{"Spaghetti", 400, "gr"},
			{"Eggs", 4, "pieces"},
			{"Pancetta", 200, "gr"},
			{"Parmesan Cheese", 100, "gr"},
		},
		steps: []stepSeed{
			{"Boil the pasta", "Bring a large pot of salted water to a boil. Add spaghetti and cook until al dente.", 10},
			{"Cook the pancetta", "While pasta is cooking, fry pancetta in a large pan until crispy.", 5},
			{"Mix everything", "Drain pasta, reserving some pasta water. Mix pasta with pancetta, eggs, and cheese. Add pasta water if needed.", 5},
		},
	},
	{
		title:      "Greek Salad",
		difficulty: entities.DifficultyEasy,
		category:   entities.CategorySalad,
		prepTime:   10,
		ingredients: []ingredientSeed{
			{"Tomatoes", 4, "pieces"},
			{"Cucumber", 1, "piece"},
			{"Feta Cheese", 200, "gr"},
			{"Olives", 100, "gr"},
			{"Olive Oil", 3, "tablespoons"},
		},
		steps: []stepSeed{
			{"Chop vegetables", "Chop tomatoes, cucumber, and onion into bite-sized pieces.", 5},
			{"Add cheese and olives", "Add feta cheese and olives. Drizzle with olive oil and season with salt and oregano.", 5},
		},
	},
	{
		title:      "Chocolate Cake",
		difficulty: entities.DifficultyMedium,
		category:   entities.CategoryDessert,
		prepTime:   20,
		ingredients: []ingredientSeed{
			{"Flour", 200, "gr"},
			{"Sugar", 200, "gr"},
			{"Cocoa Powder", 50, "gr"},
			{"Eggs", 3, "pieces"},
			{"Butter", 150, "gr"},
		},
		steps: []stepSeed{
			{"Mix dry ingredients", "Sift flour, sugar, and cocoa powder together in a large bowl.", 5},
			{"Mix wet ingredients", "Melt butter and mix with eggs. Combine with dry ingredients.", 10},
			{"Bake", "Pour into greased pan and bake at 180°C for 40 minutes.", 40},
		},
	},
	{
		title:      "Grilled Chicken Breast",
		difficulty: entities.DifficultyEasy,
		category:   entities.CategoryMeat,
		prepTime:   10,
		ingredients: []ingredientSeed{
			{"Chicken Breast", 500, "gr"},
			{"Olive Oil", 2, "tablespoons"},
			{"Lemon", 1, "piece"},
			{"Garlic", 2, "cloves"},
		},
		steps: []stepSeed{
			{"Marinate", "Mix olive oil, lemon juice, and minced garlic. Marinate chicken for at least 30 minutes.", 5},
			{"Grill", "Grill chicken on medium-high heat for 6-7 minutes per side until cooked through.", 15},
		},
	},
	{
		title:      "Vegetable Soup",
		difficulty: entities.DifficultyEasy,
		category:   entities.CategorySoup,
		prepTime:   15,
		ingredients: []ingredientSeed{
			{"Carrots", 2, "pieces"},
			{"Potatoes", 3, "pieces"},
			{"Onion", 1, "piece"},
			{"Vegetable Broth", 1, "liter"},
		},
		steps: []stepSeed{
			{"Chop vegetables", "Chop all vegetables into small cubes.", 10},
			{"Cook", "Sauté onions, add vegetables and broth. Simmer for 30 minutes until vegetables are tender.", 30},
		},
	},
}

func (s recipeSeed) build() *entities.Recipe {
	prepTime := s.prepTime
	r := &entities.Recipe{
		Title:           s.title,
		Difficulty:      s.difficulty,
		Category:        s.category,
		PrepTimeMinutes: &prepTime,
	}
	for _, i := range s.ingredients {
		r.AddIngredient(&entities.Ingredient{Name: i.name, Quantity: i.quantity, Unit: i.unit})
	}
	for idx, st := range s.steps {
		r.AddStep(&entities.RecipeStep{
			StepOrder:       idx + 1,
			Title:           st.title,
			Description:     st.description,
			DurationMinutes: st.duration,
		})
	}
	return r
}

// SeedRecipes inserts the demo catalog when no recipe exists yet and
// returns how many recipes were added.
func SeedRecipes(ctx context.Context, recipeService recipe.RecipeService) (int, error) {
	count, err := recipeService.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	if count > 0 {
		log.Infow("catalog not empty, skipping seed", "recipes", count)
		return 0, nil
	}

	for _, s := range demoCatalog {
		if _, err := recipeService.SaveRecipe(ctx, s.build()); err != nil {
			return 0, fmt.Errorf("seed %q: %w", s.title, err)
		}
	}

	log.Infow("demo catalog seeded", "recipes", len(demoCatalog))
	return len(demoCatalog), nil
}
