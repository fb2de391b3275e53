// Package content defines page content values and the models they belong to.
package content

// Content model identifiers.
const (
	ModelWikitext   = "wikitext"
	ModelJavaScript = "javascript"
	ModelText       = "text"
)

// Serialization formats.
const (
	FormatWikitext   = "text/x-wiki"
	FormatJavaScript = "text/javascript"
	FormatText       = "text/plain"
)

// Content is an immutable page body tagged with its content model.
type Content interface {
	Text() string
	Model() string
	IsValid() bool
	Equals(other Content) bool
}

// Class constructs the concrete Content variant a handler produces.
type Class func(text string) Content

// TextContent is plain text of any model.
type TextContent struct {
	text  string
	model string
}

// NewText creates text content of the given model.
func NewText(text, model string) *TextContent {
	if model == "" {
		model = ModelText
	}
	return &TextContent{text: text, model: model}
}

func (c *TextContent) Text() string  { return c.text }
func (c *TextContent) Model() string { return c.model }

// IsValid accepts any text.
func (c *TextContent) IsValid() bool { return true }

// Equals reports whether other has the same model and text.
func (c *TextContent) Equals(other Content) bool {
	if other == nil {
		return false
	}
	return c.model == other.Model() && c.text == other.Text()
}

// Size returns the length of the text in bytes.
func (c *TextContent) Size() int {
	return len(c.text)
}
