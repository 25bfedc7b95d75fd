package cmd

import (
	"errors"
	"fmt"

	"create2earn/config"
	"create2earn/internal/app"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var Deploy = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the token: mint the supply to the deployer and grant it ADMIN_ROLE",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Storage.Driver != config.DriverPostgres {
			return errors.New("deploy requires storage.driver=postgres; use token.auto_deploy with the memory driver")
		}
		ctx := cmd.Context()

		token := cfg.Token
		flags := cmd.Flags()
		for flag, dst := range map[string]*string{
			"name":     &token.Name,
			"symbol":   &token.Symbol,
			"supply":   &token.InitialSupply,
			"deployer": &token.Deployer,
		} {
			if flags.Changed(flag) {
				*dst, _ = flags.GetString(flag)
			}
		}

		backend, closeBackend, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeBackend()

		// Deploy never touches Redis; the client connects lazily.
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		a, err := app.New(app.Options{
			Config:  cfg,
			Backend: backend,
			Redis:   rdb,
			Logger:  log,
		})
		if err != nil {
			return err
		}

		deployed, err := a.DeployFromConfig(ctx, token, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deployed %s (%s) supply=%s deployer=%s\n",
			deployed.Name, deployed.Symbol, deployed.TotalSupply.Dec(), deployed.Deployer.Hex())
		return nil
	},
}

func init() {
	Deploy.Flags().String("name", "", "token name (default token.name)")
	Deploy.Flags().String("symbol", "", "token symbol (default token.symbol)")
	Deploy.Flags().String("supply", "", "initial supply in whole tokens (default token.initial_supply)")
	Deploy.Flags().String("deployer", "", "deployer address (default token.deployer)")
}
