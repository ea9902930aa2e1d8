package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.2"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "subriptext version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
