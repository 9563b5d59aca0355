package main

import (
	"Recipe-Book/cmd/config"
	migration "Recipe-Book/cmd/database/migrate"
	"Recipe-Book/cmd/database/seed"
	"Recipe-Book/internal/utils"
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func newServeCommand() *cobra.Command {
	var withSeed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, recipeService, err := openRecipeService()
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := migration.Migrate(db); err != nil {
				return err
			}
			if withSeed {
				if _, err := seed.SeedRecipes(ctx, recipeService); err != nil {
					return err
				}
			}

			store, err := config.NewPhotoStore(ctx)
			if err != nil {
				return err
			}

			app, err := config.NewApp(db, store)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- app.Listen(":" + utils.GetConfig("APP_PORT"))
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := app.ShutdownWithContext(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&withSeed, "seed", false, "Insert the demo catalog when the database is empty")
	return cmd
}
