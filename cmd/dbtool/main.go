// Command dbtool manages the ride catalog database and runs plans against it.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"ride-plan-service/internal/adapters/repositories"
	"ride-plan-service/internal/config"
	"ride-plan-service/internal/platform/db"
	"ride-plan-service/internal/platform/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg  *config.Config
	conn *sql.DB
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dbtool",
	Short:         "Manage the ride catalog database",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		log, err := logging.New("local", cfg.Log.Level)
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(log)

		dialect, err := cfg.DB.Dialect()
		if err != nil {
			return err
		}
		conn, err = db.Open(dialect, cfg.DB.DSN())
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		_ = zap.L().Sync()
		if conn != nil {
			return conn.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(restrictCmd)
	rootCmd.AddCommand(ridesCmd)
	rootCmd.AddCommand(planCmd)
}

// openRepository returns the ride repository for the configured database.
func openRepository() (*repositories.SQLRideRepository, error) {
	dialect, err := cfg.DB.Dialect()
	if err != nil {
		return nil, err
	}
	return repositories.NewSQLRideRepository(conn, dialect), nil
}
