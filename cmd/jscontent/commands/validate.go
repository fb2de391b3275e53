package commands

import (
	"fmt"

	"github.com/jackchuka/jscontent/internal/content"
	"github.com/jackchuka/jscontent/internal/wiki"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Check a script page for syntax errors and redirects",
	Long: `Parse a script page without running it.

Reports syntax errors and, for redirect pages, the destination they load.
Reads from stdin when no file is given.

Examples:
  jscontent validate common.js
  cat common.js | jscontent validate --server https://wiki.example.org`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

type redirectResolver interface {
	RedirectTarget(c content.Content) (wiki.Title, bool)
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	env, err := globalOpts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	script := content.NewScript(string(input))
	if err := script.CheckSyntax(); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "❌ Syntax error\n   %v\n", err)
		return fmt.Errorf("validation failed")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✅ Valid JavaScript (%d bytes)\n", script.Size())

	h, err := env.registry.Get(content.ModelJavaScript)
	if err != nil {
		return err
	}

	if resolver, ok := h.(redirectResolver); ok {
		if target, ok := resolver.RedirectTarget(script); ok {
			fmt.Fprintf(out, "   ↪ Redirects to: %s\n", target.PrefixedText())
		} else if content.HasRedirectMarker(script.Text()) {
			fmt.Fprintf(out, "   ⚠️  Redirect marker present but content is not a redirect for %s\n", env.site.Host())
		}
	}

	return nil
}
