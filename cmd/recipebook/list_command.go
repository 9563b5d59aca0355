package main

import (
	"Recipe-Book/entities"
	"Recipe-Book/pkg/recipe"
	"fmt"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var category string
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the recipe catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, recipeService, err := openRecipeService()
			if err != nil {
				return err
			}
			defer closeDB(db)

			recipes, err := findRecipes(cmd, recipeService, category, search)
			if err != nil {
				return err
			}

			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRecipes(recipes))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list recipes of this category")
	cmd.Flags().StringVar(&search, "search", "", "Only list recipes whose title contains this text")
	return cmd
}

func findRecipes(cmd *cobra.Command, recipeService recipe.RecipeService, category, search string) ([]*entities.Recipe, error) {
	ctx := commandContext(cmd)
	switch {
	case category != "":
		c, err := entities.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, category)
		}
		return recipeService.GetRecipesByCategory(ctx, c)
	case search != "":
		return recipeService.SearchRecipes(ctx, search)
	default:
		return recipeService.GetAllRecipes(ctx)
	}
}

func renderRecipes(recipes []*entities.Recipe) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Title", "Category", "Difficulty", "Ingredients", "Steps", "Total (min)"})

	for _, r := range recipes {
		tw.AppendRow(table.Row{
			r.ID,
			r.Title,
			string(r.Category),
			string(r.Difficulty),
			len(r.Ingredients),
			len(r.Steps),
			r.TotalTimeMinutes,
		})
	}

	// numbers right, headers left
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
