package recipe

import (
	"Recipe-Book/entities"
	"context"
	"gorm.io/gorm"
	"strings"
)

const deleteStepIngredientsQuery = `DELETE FROM step_ingredients
WHERE step_id IN (SELECT id FROM recipe_steps WHERE recipe_id = ?)`

type (
	RecipeRepository interface {
		FindAll(ctx context.Context) ([]*entities.Recipe, error)
		FindByID(ctx context.Context, id uint) (*entities.Recipe, error)
		FindByCategory(ctx context.Context, category entities.Category) ([]*entities.Recipe, error)
		FindByTitleContaining(ctx context.Context, title string) ([]*entities.Recipe, error)
		Save(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error)
		DeleteByID(ctx context.Context, id uint) error
		ExistsByID(ctx context.Context, id uint) (bool, error)
		Count(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Steps.Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func (r *recipeRepository) FindAll(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := withChildren(r.db.WithContext(ctx)).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) FindByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withChildren(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindByCategory(ctx context.Context, category entities.Category) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := withChildren(r.db.WithContext(ctx)).
		Where("category = ?", category).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindByTitleContaining matches title as a case-insensitive substring.
// LIKE wildcards in title are matched literally.
func (r *recipeRepository) FindByTitleContaining(ctx context.Context, title string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	pattern := "%" + escapeLike(strings.ToLower(title)) + "%"
	if err := withChildren(r.db.WithContext(ctx)).
		Where("LOWER(title) LIKE ? ESCAPE '\\'", pattern).
		Order("id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Save inserts recipe when it has no id yet, otherwise it rewrites the row
// and its children. Children missing from the collections are deleted.
func (r *recipeRepository) Save(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if recipe.ID == 0 {
			return tx.Create(recipe).Error
		}

		if err := removeOrphans(tx, recipe); err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func removeOrphans(tx *gorm.DB, recipe *entities.Recipe) error {
	// step/ingredient links are rebuilt from the step collections on save
	if err := tx.Exec(deleteStepIngredientsQuery, recipe.ID).Error; err != nil {
		return err
	}

	keptIngredients := make([]uint, 0, len(recipe.Ingredients))
	for _, i := range recipe.Ingredients {
		if i.ID != 0 {
			keptIngredients = append(keptIngredients, i.ID)
		}
	}
	if err := deleteChildrenExcept(tx, &entities.Ingredient{}, recipe.ID, keptIngredients); err != nil {
		return err
	}

	keptSteps := make([]uint, 0, len(recipe.Steps))
	for _, s := range recipe.Steps {
		if s.ID != 0 {
			keptSteps = append(keptSteps, s.ID)
		}
	}
	if err := deleteChildrenExcept(tx, &entities.RecipeStep{}, recipe.ID, keptSteps); err != nil {
		return err
	}

	// image rows carry a position, so the list is rewritten as a whole
	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeImage{}).Error; err != nil {
		return err
	}
	for _, img := range recipe.Images {
		img.ID = 0
	}
	return nil
}

func deleteChildrenExcept(tx *gorm.DB, model interface{}, recipeID uint, keep []uint) error {
	q := tx.Where("recipe_id = ?", recipeID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	return q.Delete(model).Error
}

func (r *recipeRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(deleteStepIngredientsQuery, id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeImage{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&entities.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
