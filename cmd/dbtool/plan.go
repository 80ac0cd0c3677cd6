package main

import (
	"ride-plan-service/internal/api/dto"
	"ride-plan-service/internal/domain"
	"ride-plan-service/internal/platform/validation"
	"ride-plan-service/internal/services"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var planFlags struct {
	totalTime  int
	userAge    int
	userWeight int
	isVIP      bool
	badWeather bool
	preference string
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a ride plan against the stored catalog and print it as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := dto.GeneratePlanRequest{
			TotalTime:      &planFlags.totalTime,
			IsVIP:          planFlags.isVIP,
			BadWeather:     planFlags.badWeather,
			UserAge:        &planFlags.userAge,
			UserWeight:     &planFlags.userWeight,
			RidePreference: planFlags.preference,
		}
		if err := validation.Struct(req); err != nil {
			return err
		}

		repo, err := openRepository()
		if err != nil {
			return err
		}

		c := domain.Constraints{
			TotalTime:      planFlags.totalTime,
			IsVIP:          planFlags.isVIP,
			BadWeather:     planFlags.badWeather,
			UserAge:        planFlags.userAge,
			UserWeight:     planFlags.userWeight,
			RidePreference: domain.ParseRidePreference(planFlags.preference),
		}

		details, err := services.PlanVisit(cmd.Context(), c, repo)
		if err != nil {
			return err
		}

		res := dto.NewGeneratePlanResponse(details, planFlags.preference)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	},
}

func init() {
	f := planCmd.Flags()
	f.IntVar(&planFlags.totalTime, "time", 120, "minutes available in the park")
	f.IntVar(&planFlags.userAge, "age", 25, "visitor age in years")
	f.IntVar(&planFlags.userWeight, "weight", 70, "visitor weight in kg")
	f.BoolVar(&planFlags.isVIP, "vip", false, "visitor holds a VIP pass")
	f.BoolVar(&planFlags.badWeather, "bad-weather", false, "weather-sensitive rides are closed")
	f.StringVar(&planFlags.preference, "preference", "", "dry_only, wet_only, dry_first or empty")
}
