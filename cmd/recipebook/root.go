package main

import (
	"Recipe-Book/cmd/config"
	"Recipe-Book/internal/utils"
	"Recipe-Book/pkg/recipe"
	"context"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "recipebook",
		Short:         "Recipe catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utils.LoadConfig(configFlag)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.yaml", "Configuration file path")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newListCommand())

	return rootCmd
}

// openRecipeService connects to the configured database and returns the
// recipe service on top of it.
func openRecipeService() (*gorm.DB, recipe.RecipeService, error) {
	db, err := config.ConnectDB()
	if err != nil {
		return nil, nil, err
	}
	return db, recipe.NewRecipeService(recipe.NewRecipeRepository(db)), nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
