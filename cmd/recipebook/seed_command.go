package main

import (
	migration "Recipe-Book/cmd/database/migrate"
	"Recipe-Book/cmd/database/seed"
	"fmt"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo catalog into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, recipeService, err := openRecipeService()
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := migration.Migrate(db); err != nil {
				return err
			}

			added, err := seed.SeedRecipes(commandContext(cmd), recipeService)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d recipes added\n", added)
			return nil
		},
	}
}
