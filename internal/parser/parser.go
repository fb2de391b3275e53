// Package parser contains the text transform service used when saving pages.
package parser

import (
	"github.com/jackchuka/jscontent/internal/wiki"
)

//go:generate go tool mockgen -source=parser.go -destination=mock/parser.go

// Parser rewrites page text before it is stored.
type Parser interface {
	PreSaveTransform(text string, page wiki.Title, user wiki.User, opts *Options) (string, error)
}
