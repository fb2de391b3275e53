package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jackchuka/jscontent/internal/config"
	"github.com/jackchuka/jscontent/internal/handler"
	"github.com/jackchuka/jscontent/internal/parser"
	"github.com/jackchuka/jscontent/internal/wiki"
	"github.com/spf13/cobra"
)

type siteOptions struct {
	ConfigPath string
	Server     string
	ScriptPath string
	Verbose    bool
}

func (o *siteOptions) InitFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&o.Server, "server", "", "Wiki server, e.g. https://wiki.example.org (overrides config)")
	cmd.PersistentFlags().StringVar(&o.ScriptPath, "script-path", "", "Path of index.php on the server, e.g. /w (overrides config)")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false, "Log debug output to stderr")
}

// environment is everything a command needs to reach the handlers.
type environment struct {
	site     *wiki.Site
	registry *handler.Registry
	logger   *slog.Logger
}

func (o *siteOptions) load(stderr io.Writer) (*environment, error) {
	logger := newLogger(stderr, o.Verbose)

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.Server != "" {
		cfg.Site.Server = o.Server
	}
	if o.ScriptPath != "" {
		cfg.Site.ScriptPath = o.ScriptPath
	}

	site, err := cfg.NewSite()
	if err != nil {
		return nil, fmt.Errorf("invalid site configuration: %w", err)
	}
	logger.Debug("site configured", "server", site.Server(wiki.ProtoServer), "script", site.Script())

	registry := handler.NewDefaultRegistry(site, parser.NewSignatureParser(), cfg.NewPreferences(), logger)

	return &environment{
		site:     site,
		registry: registry,
		logger:   logger,
	}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readInput reads the named file, or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return data, nil
}
