package userprefs

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of preferences.
type File struct {
	Defaults map[string]bool            `yaml:"defaults"`
	Users    map[string]map[string]bool `yaml:"users"`
}

// Build turns the file contents into a lookup.
func (f File) Build() *StaticLookup {
	lookup := NewStaticLookup(f.Defaults)
	for userName, opts := range f.Users {
		for name, value := range opts {
			lookup.SetOption(userName, name, value)
		}
	}
	return lookup
}

// Decode reads preferences YAML from r.
func Decode(r io.Reader) (*StaticLookup, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return f.Build(), nil
}

// Load reads a preferences YAML file.
func Load(path string) (*StaticLookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	return Decode(bytes.NewReader(data))
}
