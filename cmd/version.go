package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X github.com/keycoach/keycoach/cmd.keycoachVersion=x.y.z"
var keycoachVersion = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the keycoach version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "keycoach version %s\n", keycoachVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
