package handler

import (
	"fmt"
	"slices"

	"github.com/jackchuka/jscontent/internal/content"
)

// CodeHandler carries what all code models (scripts, styles) share.
// Concrete handlers embed it and add redirects and transforms.
type CodeHandler struct {
	modelID string
	formats []string
	class   content.Class
}

// NewCodeHandler creates the shared part of a code content handler.
func NewCodeHandler(modelID string, formats []string, class content.Class) *CodeHandler {
	return &CodeHandler{
		modelID: modelID,
		formats: formats,
		class:   class,
	}
}

func (h *CodeHandler) ModelID() string {
	return h.modelID
}

func (h *CodeHandler) SupportedFormats() []string {
	return slices.Clone(h.formats)
}

func (h *CodeHandler) IsSupportedFormat(format string) bool {
	return format == "" || slices.Contains(h.formats, format)
}

func (h *CodeHandler) DefaultFormat() string {
	if len(h.formats) == 0 {
		return ""
	}
	return h.formats[0]
}

func (h *CodeHandler) SerializeContent(c content.Content, format string) (string, error) {
	if err := h.checkFormat(format); err != nil {
		return "", err
	}
	if err := h.checkModel(c); err != nil {
		return "", err
	}
	return c.Text(), nil
}

func (h *CodeHandler) UnserializeContent(text, format string) (content.Content, error) {
	if err := h.checkFormat(format); err != nil {
		return nil, err
	}
	return h.class(text), nil
}

func (h *CodeHandler) MakeEmptyContent() content.Content {
	return h.class("")
}

// PageLanguage is the language code pages are written in. Code is always English.
func (h *CodeHandler) PageLanguage() string {
	return "en"
}

func (h *CodeHandler) SupportsSections() bool {
	return false
}

func (h *CodeHandler) SupportsRedirects() bool {
	return false
}

func (h *CodeHandler) checkFormat(format string) error {
	if !h.IsSupportedFormat(format) {
		return fmt.Errorf("%w: %s does not support %s", ErrUnsupportedFormat, h.modelID, format)
	}
	return nil
}

func (h *CodeHandler) checkModel(c content.Content) error {
	if c == nil {
		return fmt.Errorf("%w: content is nil", ErrModelMismatch)
	}
	if c.Model() != h.modelID {
		return fmt.Errorf("%w: expected %s, got %s", ErrModelMismatch, h.modelID, c.Model())
	}
	return nil
}
