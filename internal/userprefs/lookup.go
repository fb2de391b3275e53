// Package userprefs resolves per-user preferences.
package userprefs

import (
	"sync"

	"github.com/jackchuka/jscontent/internal/wiki"
)

//go:generate go tool mockgen -source=lookup.go -destination=mock/lookup.go

// OptionPSTCodeContent toggles the pre-save transform for script and style pages.
const OptionPSTCodeContent = "pst-cssjs"

// DefaultOptions are the values used when a user has not set a preference.
var DefaultOptions = map[string]bool{
	OptionPSTCodeContent: true,
}

// Lookup reads user preferences.
type Lookup interface {
	GetBoolOption(user wiki.User, name string) bool
}

// StaticLookup serves preferences from memory.
type StaticLookup struct {
	mu       sync.RWMutex
	defaults map[string]bool
	users    map[string]map[string]bool
}

// NewStaticLookup creates a lookup seeded with DefaultOptions and the given overrides.
func NewStaticLookup(defaults map[string]bool) *StaticLookup {
	merged := make(map[string]bool, len(DefaultOptions)+len(defaults))
	for name, value := range DefaultOptions {
		merged[name] = value
	}
	for name, value := range defaults {
		merged[name] = value
	}

	return &StaticLookup{
		defaults: merged,
		users:    make(map[string]map[string]bool),
	}
}

// SetOption stores a preference for a user name.
func (l *StaticLookup) SetOption(userName, name string, value bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	opts, ok := l.users[userName]
	if !ok {
		opts = make(map[string]bool)
		l.users[userName] = opts
	}
	opts[name] = value
}

// GetBoolOption returns the user's value, then the default, then false.
func (l *StaticLookup) GetBoolOption(user wiki.User, name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if opts, ok := l.users[user.Name]; ok {
		if value, ok := opts[name]; ok {
			return value
		}
	}
	return l.defaults[name]
}
