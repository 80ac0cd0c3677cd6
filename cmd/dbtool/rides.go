package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var ridesCmd = &cobra.Command{
	Use:   "rides",
	Short: "List the ride catalog in planning order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepository()
		if err != nil {
			return err
		}

		rides, err := repo.LoadRides(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tTHRILL\tDURATION\tQUEUE\tVIP\tWEATHER\tRESTRICTED\tAGE\tWEIGHT")
		for _, r := range rides {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%t\t%t\t%t\t%d-%d\t%d-%d\n",
				r.ID, r.Name, r.Type, r.Thrill, r.Duration, r.QueueTime,
				r.VIPAccess, r.AffectedByWeather, r.Restricted,
				r.MinAge, r.MaxAge, r.MinWeight, r.MaxWeight,
			)
		}
		return tw.Flush()
	},
}
