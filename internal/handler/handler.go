// Package handler implements content handlers, which know how pages of a
// content model are serialized, redirected and transformed before saving.
package handler

import (
	"errors"

	"github.com/jackchuka/jscontent/internal/content"
	"github.com/jackchuka/jscontent/internal/parser"
	"github.com/jackchuka/jscontent/internal/wiki"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported content format")
	ErrModelMismatch     = errors.New("content model mismatch")
	ErrUnknownModel      = errors.New("unknown content model")
	ErrDuplicateModel    = errors.New("content model already registered")
	ErrNoTransformer     = errors.New("pre-save transform needs a parser and a preference lookup")
)

// PreSaveParams is the context of one pre-save transform call.
type PreSaveParams struct {
	Page    wiki.Title
	User    wiki.User
	Options *parser.Options
}

// Handler is implemented by every content model.
type Handler interface {
	ModelID() string
	SupportedFormats() []string
	IsSupportedFormat(format string) bool
	DefaultFormat() string
	SerializeContent(c content.Content, format string) (string, error)
	UnserializeContent(text, format string) (content.Content, error)
	MakeEmptyContent() content.Content
	SupportsRedirects() bool
	// MakeRedirectContent returns nil when the model has no redirects.
	MakeRedirectContent(dest wiki.Title) content.Content
	PreSaveTransform(c content.Content, params PreSaveParams) (content.Content, error)
}

// LegacyTransform replaces the built-in pre-save transform of a handler.
// It exists for integrations written against the old per-content hook.
type LegacyTransform interface {
	PreSaveTransform(c content.Content, params PreSaveParams) (content.Content, error)
}

// LegacyTransformFunc adapts a function to LegacyTransform.
type LegacyTransformFunc func(c content.Content, params PreSaveParams) (content.Content, error)

func (f LegacyTransformFunc) PreSaveTransform(c content.Content, params PreSaveParams) (content.Content, error) {
	return f(c, params)
}
