package cmd

import (
	"errors"

	"create2earn/config"
	pgStorage "create2earn/internal/adapter/storage/postgres"

	"github.com/spf13/cobra"
)

var Migrate = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Storage.Driver != config.DriverPostgres {
			return errors.New("migrate requires storage.driver=postgres")
		}
		ctx := cmd.Context()

		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := pgStorage.Migrate(ctx, pool, log)
		if err != nil {
			return err
		}
		log.Info().Int("applied", applied).Msg("migrations complete")
		return nil
	},
}
