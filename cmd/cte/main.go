package main

import (
	"os"

	"create2earn/cmd/cte/cmd"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.Serve,
		cmd.Migrate,
		cmd.Deploy,
		cmd.Version,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
