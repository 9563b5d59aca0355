package main

import (
	"Recipe-Book/entities"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestRenderRecipes(t *testing.T) {
	r := &entities.Recipe{
		ID:               3,
		Title:            "Vegetable Soup",
		Category:         entities.CategorySoup,
		Difficulty:       entities.DifficultyEasy,
		TotalTimeMinutes: 40,
	}
	r.AddIngredient(&entities.Ingredient{Name: "Carrots"})
	r.AddStep(&entities.RecipeStep{StepOrder: 1})

	out := renderRecipes([]*entities.Recipe{r})

	assert.Contains(t, out, "Vegetable Soup")
	assert.Contains(t, out, "SOUP")
	assert.Contains(t, out, "40")
	assert.True(t, strings.Contains(strings.ToUpper(out), "TOTAL (MIN)"))
}

func TestRenderRecipes_NoRows(t *testing.T) {
	out := renderRecipes(nil)

	assert.True(t, strings.Contains(strings.ToUpper(out), "TITLE"))
	assert.NotContains(t, out, "SOUP")
}
