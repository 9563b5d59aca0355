package entities

import (
	"encoding/json"
	"errors"
	"strings"
)

type (
	Difficulty string
	Category   string
)

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"

	CategoryPasta      Category = "PASTA"
	CategoryMeat       Category = "MEAT"
	CategoryVegetarian Category = "VEGETARIAN"
	CategoryDessert    Category = "DESSERT"
	CategorySoup       Category = "SOUP"
	CategorySalad      Category = "SALAD"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty level")
	ErrUnknownCategory   = errors.New("unknown recipe category")

	Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	Categories   = []Category{
		CategoryPasta, CategoryMeat, CategoryVegetarian,
		CategoryDessert, CategorySoup, CategorySalad,
	}
)

// ParseDifficulty accepts any letter case.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", ErrUnknownDifficulty
}

// ParseCategory accepts any letter case.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

func (d *Difficulty) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = ""
		return nil
	}
	parsed, err := ParseDifficulty(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*c = ""
		return nil
	}
	parsed, err := ParseCategory(*s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
