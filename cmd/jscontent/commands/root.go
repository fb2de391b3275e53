package commands

import (
	"fmt"
	"os"

	"github.com/jackchuka/jscontent/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jscontent",
	Short: "Work with JavaScript wiki pages",
	Long: `JavaScript page content tool

Builds script redirects, runs the pre-save transform a wiki applies to
JavaScript pages, and checks script pages for syntax errors and redirects.

Examples:
  jscontent redirect "User:Example/common.js"
  jscontent pst --page "MediaWiki:Common.js" --user Example common.js
  jscontent validate common.js
  jscontent version`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

var globalOpts siteOptions

func init() {
	rootCmd.Version = version.Short()
	globalOpts.InitFlags(rootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
