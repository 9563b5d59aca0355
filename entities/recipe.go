package entities

import (
	"time"
)

// Recipe owns its ingredients, steps and images. Children point back at the
// recipe through RecipeID only; AddIngredient/AddStep keep both sides in step.
type Recipe struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Title            string     `gorm:"type:varchar(255)" json:"title"`
	Difficulty       Difficulty `gorm:"type:varchar(16)" json:"difficulty"`
	Category         Category   `gorm:"type:varchar(32);index" json:"category"`
	PrepTimeMinutes  *int       `json:"prepTimeMinutes,omitempty"`
	TotalTimeMinutes int        `json:"totalTimeMinutes"`
	DateCreated      time.Time  `gorm:"autoCreateTime" json:"dateCreated"`

	Ingredients []*Ingredient  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps       []*RecipeStep  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps"`
	Images      []*RecipeImage `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

type Ingredient struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	RecipeID uint    `gorm:"index" json:"recipeId"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // "gr", "ml", "pieces"
}

type RecipeStep struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	RecipeID        uint   `gorm:"index" json:"recipeId"`
	StepOrder       int    `gorm:"not null" json:"stepOrder"`
	Title           string `json:"title"`
	Description     string `gorm:"type:varchar(1000)" json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	ImageURL        string `json:"imageUrl,omitempty"`

	Ingredients []*Ingredient `gorm:"many2many:step_ingredients;joinForeignKey:StepID;joinReferences:IngredientID" json:"ingredients"`
}

// RecipeImage is one entry of a recipe's ordered photo list.
type RecipeImage struct {
	ID       uint   `gorm:"primaryKey"`
	RecipeID uint   `gorm:"index"`
	Position int    `gorm:"not null"`
	ImageURL string `gorm:"type:varchar(255);not null"`
}

// AddIngredient appends i and points its back-reference at r.
func (r *Recipe) AddIngredient(i *Ingredient) {
	i.RecipeID = r.ID
	r.Ingredients = append(r.Ingredients, i)
}

// AddStep appends s and points its back-reference at r.
func (r *Recipe) AddStep(s *RecipeStep) {
	s.RecipeID = r.ID
	r.Steps = append(r.Steps, s)
}

// ClearIngredients drops every ingredient; the rows are deleted on the next save.
func (r *Recipe) ClearIngredients() {
	r.Ingredients = []*Ingredient{}
}

// ClearSteps drops every step; the rows are deleted on the next save.
func (r *Recipe) ClearSteps() {
	r.Steps = []*RecipeStep{}
}

// LinkChildren re-points every child back-reference at r.
func (r *Recipe) LinkChildren() {
	for _, i := range r.Ingredients {
		i.RecipeID = r.ID
	}
	for _, s := range r.Steps {
		s.RecipeID = r.ID
	}
	for _, img := range r.Images {
		img.RecipeID = r.ID
	}
}

// FindStep returns the step with the given id, or nil.
func (r *Recipe) FindStep(stepID uint) *RecipeStep {
	for _, s := range r.Steps {
		if s.ID == stepID {
			return s
		}
	}
	return nil
}

func (r *Recipe) ImageURLs() []string {
	urls := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		urls = append(urls, img.ImageURL)
	}
	return urls
}

func (r *Recipe) SetImageURLs(urls []string) {
	r.Images = make([]*RecipeImage, 0, len(urls))
	for _, u := range urls {
		r.AddImageURL(u)
	}
}

func (r *Recipe) AddImageURL(url string) {
	r.Images = append(r.Images, &RecipeImage{
		RecipeID: r.ID,
		Position: len(r.Images),
		ImageURL: url,
	})
}

// RemoveImageURL removes the first occurrence of url and reports whether one was found.
func (r *Recipe) RemoveImageURL(url string) bool {
	for idx, img := range r.Images {
		if img.ImageURL == url {
			r.Images = append(r.Images[:idx], r.Images[idx+1:]...)
			for pos, rest := range r.Images {
				rest.Position = pos
			}
			return true
		}
	}
	return false
}
