package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set with -ldflags "-X github.com/nfrund/hireboard/cmd/hireboard-cli/cmd.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "hireboard-cli", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
