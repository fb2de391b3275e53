package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/gosimple/slug"
	"github.com/jackchuka/jscontent/internal/wiki"
)

// DefaultExtension is appended to generated names that have none.
const DefaultExtension = ".js"

// OutputNamer generates a filename for a page.
type OutputNamer interface {
	FileName(title wiki.Title) (string, error)
}

type outputNamerFunc func(wiki.Title) (string, error)

func (f outputNamerFunc) FileName(title wiki.Title) (string, error) {
	return f(title)
}

// DefaultOutputNamer returns the built-in filename generator.
func DefaultOutputNamer() OutputNamer {
	return outputNamerFunc(defaultFileName)
}

// GenerateFileName resolves the filename for a page using the provided namer or the default.
func GenerateFileName(title wiki.Title, namer OutputNamer) (string, error) {
	if namer == nil {
		namer = DefaultOutputNamer()
	}

	name, err := namer.FileName(title)
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("generated filename is empty")
	}

	// Normalise to a base filename to avoid introducing directory traversal.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")

	if name == "." || name == ".." {
		return "", fmt.Errorf("generated filename %q is invalid", name)
	}

	if filepath.Ext(name) == "" {
		name += DefaultExtension
	}

	return name, nil
}

func slugTitle(title wiki.Title) string {
	base := strings.TrimSuffix(title.PrefixedText(), DefaultExtension)
	return slug.MakeLang(base, "en")
}

func defaultFileName(title wiki.Title) (string, error) {
	slugified := slugTitle(title)
	if slugified == "" {
		slugified = "untitled"
	}
	return slugified + DefaultExtension, nil
}

var templateFuncMap = template.FuncMap{
	"slug": func(value string) string {
		return slug.MakeLang(value, "en")
	},
}

// TemplateOutputNamer renders filenames from a text/template string.
type TemplateOutputNamer struct {
	tmpl *template.Template
}

// NewTemplateOutputNamer creates a template-driven output namer.
func NewTemplateOutputNamer(tmpl string) (OutputNamer, error) {
	if strings.TrimSpace(tmpl) == "" {
		return nil, fmt.Errorf("template cannot be empty")
	}

	parsed, err := template.New("output_name").Funcs(templateFuncMap).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse output name template: %w", err)
	}

	return &TemplateOutputNamer{tmpl: parsed}, nil
}

func (n *TemplateOutputNamer) FileName(title wiki.Title) (string, error) {
	data := outputTemplateData{
		Title:     title,
		Namespace: title.NamespaceName(),
		SlugTitle: slugTitle(title),
	}

	var builder strings.Builder
	if err := n.tmpl.Execute(&builder, data); err != nil {
		return "", fmt.Errorf("failed to execute output name template: %w", err)
	}

	return builder.String(), nil
}

type outputTemplateData struct {
	Title     wiki.Title
	Namespace string
	SlugTitle string
}
