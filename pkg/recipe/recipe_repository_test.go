package recipe

import (
	"Recipe-Book/entities"
	"Recipe-Book/internal/testsupport"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"testing"
)

func carbonara() *entities.Recipe {
	r := &entities.Recipe{
		Title:      "Spaghetti Carbonara",
		Difficulty: entities.DifficultyMedium,
		Category:   entities.CategoryPasta,
	}
	spaghetti := &entities.Ingredient{Name: "Spaghetti", Quantity: 400, Unit: "gr"}
	eggs := &entities.Ingredient{Name: "Eggs", Quantity: 4, Unit: "pieces"}
	r.AddIngredient(spaghetti)
	r.AddIngredient(eggs)
	r.AddIngredient(&entities.Ingredient{Name: "Pancetta", Quantity: 200, Unit: "gr"})
	r.AddStep(&entities.RecipeStep{
		StepOrder:       1,
		Title:           "Boil the pasta",
		DurationMinutes: 10,
		Ingredients:     []*entities.Ingredient{spaghetti},
	})
	r.AddStep(&entities.RecipeStep{
		StepOrder:       2,
		Title:           "Mix everything",
		DurationMinutes: 5,
		Ingredients:     []*entities.Ingredient{spaghetti, eggs},
	})
	r.SetImageURLs([]string{"first.jpg", "second.jpg"})
	return r
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, recipeID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where("recipe_id = ?", recipeID).Count(&n).Error)
	return n
}

func TestRecipeRepository_SaveAndFindByID(t *testing.T) {
	db := testsupport.NewTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, carbonara())
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	assert.Equal(t, "Spaghetti Carbonara", got.Title)
	assert.Equal(t, entities.CategoryPasta, got.Category)
	assert.False(t, got.DateCreated.IsZero())

	require.Len(t, got.Ingredients, 3)
	for _, i := range got.Ingredients {
		assert.Equal(t, got.ID, i.RecipeID)
	}
	require.Len(t, got.Steps, 2)
	for _, s := range got.Steps {
		assert.Equal(t, got.ID, s.RecipeID)
	}

	require.Len(t, got.Steps[1].Ingredients, 2)
	assert.Equal(t, got.Ingredients[0].ID, got.Steps[1].Ingredients[0].ID)
	assert.Equal(t, got.Ingredients[1].ID, got.Steps[1].Ingredients[1].ID)

	assert.Equal(t, []string{"first.jpg", "second.jpg"}, got.ImageURLs())
}

func TestRecipeRepository_FindByIDMissing(t *testing.T) {
	repo := NewRecipeRepository(testsupport.NewTestDB(t))

	_, err := repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecipeRepository_UpdateRemovesOrphans(t *testing.T) {
	db := testsupport.NewTestDB(t)
	svc := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	created, err := svc.SaveRecipe(ctx, carbonara())
	require.NoError(t, err)
	oldStepIDs := []uint{created.Steps[0].ID, created.Steps[1].ID}

	details := &entities.Recipe{Title: "Carbonara v2", Category: entities.CategoryPasta}
	details.Steps = []*entities.RecipeStep{
		{StepOrder: 1, Title: "Just mix", DurationMinutes: 3},
	}
	_, err = svc.UpdateRecipe(ctx, created.ID, details)
	require.NoError(t, err)

	got, err := svc.GetRecipeByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Steps, 1)
	assert.Equal(t, "Just mix", got.Steps[0].Title)
	assert.Equal(t, 3, got.TotalTimeMinutes)
	assert.Len(t, got.Ingredients, 3)

	assert.Equal(t, int64(1), countRows(t, db, &entities.RecipeStep{}, created.ID))
	for _, id := range oldStepIDs {
		err := db.First(&entities.RecipeStep{}, id).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		var links int64
		require.NoError(t, db.Raw("SELECT COUNT(*) FROM step_ingredients WHERE step_id = ?", id).Scan(&links).Error)
		assert.Zero(t, links)
	}
}

func TestRecipeRepository_UpdateReplacesIngredientsAndKeepsStepLinks(t *testing.T) {
	db := testsupport.NewTestDB(t)
	svc := NewRecipeService(NewRecipeRepository(db))
	ctx := context.Background()

	created, err := svc.SaveRecipe(ctx, carbonara())
	require.NoError(t, err)

	details := &entities.Recipe{Title: "Carbonara"}
	details.Ingredients = []*entities.Ingredient{
		{Name: "Spaghetti", Quantity: 400, Unit: "gr"},
		{Name: "Guanciale", Quantity: 150, Unit: "gr"},
	}
	_, err = svc.UpdateRecipe(ctx, created.ID, details)
	require.NoError(t, err)

	got, err := svc.GetRecipeByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, int64(2), countRows(t, db, &entities.Ingredient{}, created.ID))

	// eggs no longer exist, spaghetti resolves to the new row
	require.Len(t, got.Steps, 2)
	require.Len(t, got.Steps[1].Ingredients, 1)
	assert.Equal(t, "Spaghetti", got.Steps[1].Ingredients[0].Name)
	assert.Equal(t, got.Ingredients[0].ID, got.Steps[1].Ingredients[0].ID)
}

func TestRecipeRepository_ImageListRewrite(t *testing.T) {
	db := testsupport.NewTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, carbonara())
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, got.RemoveImageURL("first.jpg"))
	got.AddImageURL("third.jpg")
	_, err = repo.Save(ctx, got)
	require.NoError(t, err)

	again, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"second.jpg", "third.jpg"}, again.ImageURLs())
	assert.Equal(t, int64(2), countRows(t, db, &entities.RecipeImage{}, saved.ID))
}

func TestRecipeRepository_Queries(t *testing.T) {
	repo := NewRecipeRepository(testsupport.NewTestDB(t))
	ctx := context.Background()

	for _, r := range []*entities.Recipe{
		carbonara(),
		{Title: "Greek Salad", Category: entities.CategorySalad},
		{Title: "100% Orange Juice", Category: entities.CategoryDessert},
	} {
		_, err := repo.Save(ctx, r)
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := repo.FindByTitleContaining(ctx, "CARBON")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Spaghetti Carbonara", found[0].Title)

	found, err = repo.FindByTitleContaining(ctx, "%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "100% Orange Juice", found[0].Title)

	found, err = repo.FindByTitleContaining(ctx, "pizza")
	require.NoError(t, err)
	assert.Empty(t, found)

	salads, err := repo.FindByCategory(ctx, entities.CategorySalad)
	require.NoError(t, err)
	require.Len(t, salads, 1)
	assert.Equal(t, "Greek Salad", salads[0].Title)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRecipeRepository_DeleteByIDCascades(t *testing.T) {
	db := testsupport.NewTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, carbonara())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	exists, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Zero(t, countRows(t, db, &entities.Ingredient{}, saved.ID))
	assert.Zero(t, countRows(t, db, &entities.RecipeStep{}, saved.ID))
	assert.Zero(t, countRows(t, db, &entities.RecipeImage{}, saved.ID))

	var links int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM step_ingredients").Scan(&links).Error)
	assert.Zero(t, links)

	assert.ErrorIs(t, repo.DeleteByID(ctx, saved.ID), gorm.ErrRecordNotFound)
}
