package wiki

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonical namespace indexes.
const (
	NamespaceMain          = 0
	NamespaceTalk          = 1
	NamespaceUser          = 2
	NamespaceUserTalk      = 3
	NamespaceProject       = 4
	NamespaceProjectTalk   = 5
	NamespaceFile          = 6
	NamespaceFileTalk      = 7
	NamespaceMediaWiki     = 8
	NamespaceMediaWikiTalk = 9
	NamespaceTemplate      = 10
	NamespaceTemplateTalk  = 11
	NamespaceHelp          = 12
	NamespaceHelpTalk      = 13
	NamespaceCategory      = 14
	NamespaceCategoryTalk  = 15
)

var namespaceNames = map[int]string{
	NamespaceTalk:          "Talk",
	NamespaceUser:          "User",
	NamespaceUserTalk:      "User_talk",
	NamespaceProject:       "Project",
	NamespaceProjectTalk:   "Project_talk",
	NamespaceFile:          "File",
	NamespaceFileTalk:      "File_talk",
	NamespaceMediaWiki:     "MediaWiki",
	NamespaceMediaWikiTalk: "MediaWiki_talk",
	NamespaceTemplate:      "Template",
	NamespaceTemplateTalk:  "Template_talk",
	NamespaceHelp:          "Help",
	NamespaceHelpTalk:      "Help_talk",
	NamespaceCategory:      "Category",
	NamespaceCategoryTalk:  "Category_talk",
}

var namespaceIndex = func() map[string]int {
	index := make(map[string]int, len(namespaceNames))
	for ns, name := range namespaceNames {
		index[strings.ToLower(name)] = ns
	}
	return index
}()

var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrInvalidTitle = errors.New("title contains illegal characters")
)

const illegalTitleChars = "#<>[]|{}"

// Title identifies a page by namespace and DB key (underscores instead of spaces).
type Title struct {
	Namespace int
	DBKey     string
}

// NewTitle parses a page name such as "User:Example/common.js".
func NewTitle(text string) (Title, error) {
	key := normalizeKey(text)
	if key == "" {
		return Title{}, ErrEmptyTitle
	}
	if strings.ContainsAny(key, illegalTitleChars) {
		return Title{}, fmt.Errorf("%w: %q", ErrInvalidTitle, text)
	}

	ns := NamespaceMain
	if prefix, rest, ok := strings.Cut(key, ":"); ok {
		if idx, known := namespaceIndex[strings.ToLower(prefix)]; known {
			ns = idx
			key = strings.TrimLeft(rest, "_")
		}
	}

	if key == "" {
		return Title{}, ErrEmptyTitle
	}

	return Title{Namespace: ns, DBKey: ucfirst(key)}, nil
}

// MustTitle is like NewTitle but panics on error.
func MustTitle(text string) Title {
	t, err := NewTitle(text)
	if err != nil {
		panic(err)
	}
	return t
}

// NamespaceName returns the canonical DB-key name of the title's namespace.
func (t Title) NamespaceName() string {
	return namespaceNames[t.Namespace]
}

// PrefixedDBKey returns the namespace-qualified DB key, e.g. "User:Example/common.js".
func (t Title) PrefixedDBKey() string {
	if name := t.NamespaceName(); name != "" {
		return name + ":" + t.DBKey
	}
	return t.DBKey
}

// PrefixedText is PrefixedDBKey with spaces instead of underscores.
func (t Title) PrefixedText() string {
	return strings.ReplaceAll(t.PrefixedDBKey(), "_", " ")
}

// Text returns the title text without namespace, with spaces.
func (t Title) Text() string {
	return strings.ReplaceAll(t.DBKey, "_", " ")
}

func (t Title) String() string {
	return t.PrefixedText()
}

func normalizeKey(text string) string {
	key := strings.TrimSpace(text)
	key = strings.ReplaceAll(key, " ", "_")
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	return strings.Trim(key, "_")
}

func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
