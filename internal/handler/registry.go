package handler

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jackchuka/jscontent/internal/content"
	"github.com/jackchuka/jscontent/internal/parser"
	"github.com/jackchuka/jscontent/internal/userprefs"
	"github.com/jackchuka/jscontent/internal/wiki"
)

// Registry maps content model identifiers to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// NewDefaultRegistry creates a registry with the built-in handlers.
func NewDefaultRegistry(site *wiki.Site, p parser.Parser, prefs userprefs.Lookup, logger *slog.Logger) *Registry {
	r := NewRegistry()
	// A fresh registry cannot hold a duplicate.
	_ = r.Register(NewJavaScriptHandler(site, p, prefs, WithLogger(logger)))
	return r
}

// Register adds a handler under its model identifier.
func (r *Registry) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	model := h.ModelID()
	if _, exists := r.handlers[model]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateModel, model)
	}
	r.handlers[model] = h
	return nil
}

// Get returns the handler for a model.
func (r *Registry) Get(model string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[model]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	return h, nil
}

// ForContent returns the handler for the model of c.
func (r *Registry) ForContent(c content.Content) (Handler, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: content is nil", ErrUnknownModel)
	}
	return r.Get(c.Model())
}

// Models lists the registered model identifiers in sorted order.
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]string, 0, len(r.handlers))
	for model := range r.handlers {
		models = append(models, model)
	}
	slices.Sort(models)
	return models
}
