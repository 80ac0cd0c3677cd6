package main

import (
	"fmt"
	"ride-plan-service/internal/adapters/repositories"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the ride catalog schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dialect, err := cfg.DB.Dialect()
		if err != nil {
			return err
		}

		if err := repositories.InitSchema(cmd.Context(), conn, dialect); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Schema ready.")
		return nil
	},
}
