package commands

import (
	"fmt"
	"path/filepath"

	"github.com/jackchuka/jscontent/internal/content"
	"github.com/jackchuka/jscontent/internal/export"
	"github.com/jackchuka/jscontent/internal/wiki"
	"github.com/spf13/cobra"
)

var redirectCmd = &cobra.Command{
	Use:   "redirect <destination>",
	Short: "Create redirect content pointing at another script page",
	Long: `Create the content of a JavaScript page that redirects to another page.

The result is valid JavaScript that loads the destination's raw script.

Examples:
  # Print redirect content
  jscontent redirect "User:Example/common.js" --server https://wiki.example.org

  # Write it to a directory, named after the destination
  jscontent redirect "MediaWiki:Gadget-foo.js" -o ./pages

  # Custom file name
  jscontent redirect "MediaWiki:Gadget-foo.js" -o ./pages --name-template "{{ .SlugTitle }}.redirect"`,
	Args: cobra.ExactArgs(1),
	RunE: runRedirect,
}

var redirectOpts struct {
	outputDir    string
	nameTemplate string
	model        string
}

func init() {
	redirectCmd.Flags().StringVarP(&redirectOpts.outputDir, "output-dir", "o", "", "Directory to write the redirect into (default: stdout)")
	redirectCmd.Flags().StringVar(&redirectOpts.nameTemplate, "name-template", "", "text/template for the output file name")
	redirectCmd.Flags().StringVar(&redirectOpts.model, "model", content.ModelJavaScript, "Content model of the redirect page")

	rootCmd.AddCommand(redirectCmd)
}

func runRedirect(cmd *cobra.Command, args []string) error {
	env, err := globalOpts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	dest, err := wiki.NewTitle(args[0])
	if err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}

	h, err := env.registry.Get(redirectOpts.model)
	if err != nil {
		return err
	}
	if !h.SupportsRedirects() {
		return fmt.Errorf("content model %s does not support redirects", h.ModelID())
	}

	redirect := h.MakeRedirectContent(dest)

	if redirectOpts.outputDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), redirect.Text())
		return nil
	}

	var namer export.OutputNamer
	if redirectOpts.nameTemplate != "" {
		namer, err = export.NewTemplateOutputNamer(redirectOpts.nameTemplate)
		if err != nil {
			return err
		}
	}

	name, err := export.GenerateFileName(dest, namer)
	if err != nil {
		return fmt.Errorf("failed to name output file: %w", err)
	}

	outputPath := filepath.Join(redirectOpts.outputDir, name)
	if err := export.SaveContent(redirect, outputPath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Redirect to %s written to: %s\n", dest.PrefixedText(), outputPath)
	return nil
}
