package main

import (
	"errors"
	"fmt"
	"ride-plan-service/internal/services"

	"github.com/spf13/cobra"
)

var restrictDefaults bool

var restrictCmd = &cobra.Command{
	Use:   "restrict [ride-id...]",
	Short: "Replace the set of restricted rides",
	Long: `Marks exactly the given rides as restricted and clears the flag on
every other ride. With no arguments all restrictions are lifted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := restrictIDs(args, restrictDefaults)
		if err != nil {
			return err
		}

		repo, err := openRepository()
		if err != nil {
			return err
		}

		n, err := services.RestrictRides(cmd.Context(), ids, repo)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d rides restricted.\n", n)
		return nil
	},
}

func init() {
	restrictCmd.Flags().BoolVar(&restrictDefaults, "defaults", false, "restrict the default park closures")
}

// restrictIDs picks the rides to restrict from the arguments or the defaults.
func restrictIDs(args []string, defaults bool) ([]string, error) {
	if !defaults {
		return args, nil
	}
	if len(args) > 0 {
		return nil, errors.New("restrict: --defaults cannot be combined with ride ids")
	}
	return services.DefaultRestrictedRides, nil
}
