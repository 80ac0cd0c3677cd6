package main

import (
	"fmt"
	"ride-plan-service/internal/adapters/repositories"
	"ride-plan-service/internal/config"

	"github.com/spf13/cobra"
)

var seedPath string

// Seeding upserts by ride ID, so re-running it restores the seed values.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load rides from a JSON seed file (default: built-in park catalog)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dialect, err := cfg.DB.Dialect()
		if err != nil {
			return err
		}

		rides, err := repositories.LoadSeed(seedPath)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		if err := repositories.SeedRides(ctx, conn, dialect, rides); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d rides.\n", len(rides))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedPath, "file", config.Get("SEED_PATH", ""), "seed JSON file (env SEED_PATH)")
}
