package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	redisStorage "create2earn/internal/adapter/storage/redis"
	"create2earn/internal/app"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var Serve = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info().
			Str("mode", cfg.Server.Mode).
			Str("storage", cfg.Storage.Driver).
			Int("port", cfg.Server.Port).
			Msg("Starting Create2Earn ledger")

		backend, closeBackend, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeBackend()

		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		a, err := app.New(app.Options{
			Config:  cfg,
			Backend: backend,
			Redis:   rdb,
			Logger:  log,
		})
		if err != nil {
			return err
		}

		if cfg.Token.AutoDeploy {
			token, err := a.DeployFromConfig(ctx, cfg.Token, true)
			if err != nil {
				return fmt.Errorf("auto deploy: %w", err)
			}
			log.Info().Str("symbol", token.Symbol).Str("supply", token.TotalSupply.Dec()).Msg("token ready")
		}

		srv := &http.Server{
			Addr:    cfg.Server.Addr(),
			Handler: a.Router,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info().Msg("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Server forced to shutdown")
				return err
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	},
}
