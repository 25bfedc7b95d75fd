package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildVersion is set at link time with -ldflags "-X create2earn/cmd/cte/cmd.BuildVersion=...".
var BuildVersion = "dev"

var Version = &cobra.Command{
	Use:   "version",
	Short: "Show the build version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), BuildVersion)
		return nil
	},
}
