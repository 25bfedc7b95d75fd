package cmd

import (
	"context"
	"fmt"

	"create2earn/config"
	"create2earn/internal/adapter/storage/memory"
	pgStorage "create2earn/internal/adapter/storage/postgres"
	"create2earn/internal/app"
	"create2earn/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
)

var RootCmd = &cobra.Command{
	Use:          "cte",
	Short:        "Create2Earn token ledger",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log = logger.New(cfg.Log.Level, cfg.Log.Pretty)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml or ./config/config.yaml)")
}

// openBackend connects the configured storage driver. Postgres schemas are
// migrated before use. The returned func releases the connection.
func openBackend(ctx context.Context) (app.Backend, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn().Msg("memory storage: state is lost on exit")
		return app.MemoryBackend(memory.NewStore()), func() {}, nil
	default:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return app.Backend{}, nil, err
		}
		if _, err := pgStorage.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return app.Backend{}, nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info().Msg("PostgreSQL connected")
		return app.PostgresBackend(pool), pool.Close, nil
	}
}
