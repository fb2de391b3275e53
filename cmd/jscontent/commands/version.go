package commands

import (
	"fmt"

	"github.com/jackchuka/jscontent/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jscontent",
	Long:  `Print the version number of jscontent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
