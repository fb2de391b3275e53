package content

import (
	"fmt"

	"github.com/dop251/goja/parser"
)

// ScriptContent is the body of a JavaScript page.
type ScriptContent struct {
	TextContent
}

// NewJavaScript creates JavaScript content.
func NewJavaScript(text string) Content {
	return NewScript(text)
}

// NewScript is NewJavaScript returning the concrete type.
func NewScript(text string) *ScriptContent {
	return &ScriptContent{TextContent: TextContent{text: text, model: ModelJavaScript}}
}

// ScriptClass returns a Class producing script content tagged with model.
// Derived script models registered under another identifier use it.
func ScriptClass(model string) Class {
	return func(text string) Content {
		return &ScriptContent{TextContent: TextContent{text: text, model: model}}
	}
}

// CheckSyntax parses the text as ECMAScript without running it.
func (c *ScriptContent) CheckSyntax() error {
	return CheckScriptSyntax(c.Text())
}

// CheckScriptSyntax parses text as ECMAScript without running it.
func CheckScriptSyntax(text string) error {
	if _, err := parser.ParseFile(nil, "", text, 0); err != nil {
		return fmt.Errorf("invalid javascript: %w", err)
	}
	return nil
}
