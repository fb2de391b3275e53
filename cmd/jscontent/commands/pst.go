package commands

import (
	"fmt"

	"github.com/jackchuka/jscontent/internal/content"
	"github.com/jackchuka/jscontent/internal/export"
	"github.com/jackchuka/jscontent/internal/handler"
	"github.com/jackchuka/jscontent/internal/parser"
	"github.com/jackchuka/jscontent/internal/wiki"
	"github.com/spf13/cobra"
)

var pstCmd = &cobra.Command{
	Use:   "pst [input-file]",
	Short: "Apply the pre-save transform to a script page",
	Long: `Apply the pre-save transform a wiki runs when a script page is saved.

Signatures (~~~, ~~~~, ~~~~~) are expanded for the acting user unless the
user's pst-cssjs preference is false. Reads from stdin when no file is given.

Examples:
  # Transform a file as user Example
  jscontent pst --page "User:Example/common.js" --user Example common.js

  # As a bot that opted out in the config file
  cat common.js | jscontent pst -c jscontent.yaml --page "MediaWiki:Common.js" --user MaintenanceBot

  # Save the result
  jscontent pst --page "MediaWiki:Common.js" --user Example common.js -o out/common.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPST,
}

var pstOpts struct {
	page   string
	user   string
	userID int
	bot    bool
	model  string
	output string
}

func init() {
	pstCmd.Flags().StringVar(&pstOpts.page, "page", "", "Title of the page being saved")
	pstCmd.Flags().StringVarP(&pstOpts.user, "user", "u", "", "Name of the acting user")
	pstCmd.Flags().IntVar(&pstOpts.userID, "user-id", 1, "ID of the acting user (0 for anonymous)")
	pstCmd.Flags().BoolVar(&pstOpts.bot, "bot", false, "Acting user is a bot")
	pstCmd.Flags().StringVar(&pstOpts.model, "model", content.ModelJavaScript, "Content model of the page")
	pstCmd.Flags().StringVarP(&pstOpts.output, "output", "o", "", "Output file (default: stdout)")

	_ = pstCmd.MarkFlagRequired("page")
	_ = pstCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(pstCmd)
}

func runPST(cmd *cobra.Command, args []string) error {
	env, err := globalOpts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	page, err := wiki.NewTitle(pstOpts.page)
	if err != nil {
		return fmt.Errorf("invalid page: %w", err)
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	h, err := env.registry.Get(pstOpts.model)
	if err != nil {
		return err
	}

	original, err := h.UnserializeContent(string(input), h.DefaultFormat())
	if err != nil {
		return err
	}

	params := handler.PreSaveParams{
		Page:    page,
		User:    wiki.User{ID: pstOpts.userID, Name: pstOpts.user, Bot: pstOpts.bot},
		Options: parser.NewOptions(),
	}

	transformed, err := h.PreSaveTransform(original, params)
	if err != nil {
		return fmt.Errorf("failed to transform %s: %w", page.PrefixedText(), err)
	}

	if pstOpts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), transformed.Text())
		return nil
	}

	if err := export.SaveContent(transformed, pstOpts.output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "✅ Transformed successfully to: %s\n", pstOpts.output)
	return nil
}
