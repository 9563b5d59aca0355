package main

import (
	migration "Recipe-Book/cmd/database/migrate"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openRecipeService()
			if err != nil {
				return err
			}
			defer closeDB(db)

			return migration.Migrate(db)
		},
	}
}
