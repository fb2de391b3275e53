// Package config loads the jscontent configuration file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jackchuka/jscontent/internal/userprefs"
	"github.com/jackchuka/jscontent/internal/wiki"
	"gopkg.in/yaml.v3"
)

// Config is the root of the configuration file.
type Config struct {
	Site        SiteConfig     `yaml:"site"`
	Preferences userprefs.File `yaml:"preferences"`
}

// SiteConfig describes where the wiki is served.
type SiteConfig struct {
	Server     string `yaml:"server"`
	ScriptPath string `yaml:"scriptPath"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Site: SiteConfig{
			Server:     wiki.DefaultServer,
			ScriptPath: wiki.DefaultScriptPath,
		},
	}
}

// Load reads a YAML configuration file. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// NewSite builds the site described by the configuration.
func (c Config) NewSite() (*wiki.Site, error) {
	return wiki.NewSite(c.Site.Server, c.Site.ScriptPath)
}

// NewPreferences builds the preference lookup described by the configuration.
func (c Config) NewPreferences() *userprefs.StaticLookup {
	return c.Preferences.Build()
}
