package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List registered content models",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := globalOpts.load(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, model := range env.registry.Models() {
			h, err := env.registry.Get(model)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\tredirects=%t\n", model, strings.Join(h.SupportedFormats(), ","), h.SupportsRedirects())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
