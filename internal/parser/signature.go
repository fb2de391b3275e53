package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/jackchuka/jscontent/internal/wiki"
)

// TimestampLayout is the format of signature timestamps.
const TimestampLayout = "15:04, 2 January 2006 (UTC)"

// ErrMissingUser is returned when text needs a signature but no user is known.
var ErrMissingUser = errors.New("cannot sign without a user name")

var (
	protectedRegex = regexp.MustCompile(`(?is)<nowiki>.*?</nowiki>|<pre>.*?</pre>`)
	tildeRegex     = regexp.MustCompile(`~{3,5}`)
)

// SignatureParser normalises line endings, expands ~~~ / ~~~~ / ~~~~~ and
// strips trailing whitespace.
type SignatureParser struct {
	now func() time.Time
}

// NewSignatureParser creates a parser using the system clock.
func NewSignatureParser() *SignatureParser {
	return &SignatureParser{now: time.Now}
}

// PreSaveTransform implements Parser.
func (p *SignatureParser) PreSaveTransform(text string, page wiki.Title, user wiki.User, opts *Options) (string, error) {
	if opts == nil {
		opts = NewOptions()
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if opts.PreSaveTransform {
		ts := opts.Timestamp
		if ts.IsZero() {
			ts = p.now()
		}

		var err error
		text, err = p.expandSignatures(text, user, ts)
		if err != nil {
			return "", fmt.Errorf("failed to transform %s: %w", page.PrefixedText(), err)
		}
	}

	return strings.TrimRightFunc(text, unicode.IsSpace), nil
}

func (p *SignatureParser) expandSignatures(text string, user wiki.User, ts time.Time) (string, error) {
	if !strings.Contains(text, "~~~") {
		return text, nil
	}

	var builder strings.Builder
	last := 0
	for _, loc := range protectedRegex.FindAllStringIndex(text, -1) {
		expanded, err := signSegment(text[last:loc[0]], user, ts)
		if err != nil {
			return "", err
		}
		builder.WriteString(expanded)
		builder.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}

	expanded, err := signSegment(text[last:], user, ts)
	if err != nil {
		return "", err
	}
	builder.WriteString(expanded)

	return builder.String(), nil
}

func signSegment(segment string, user wiki.User, ts time.Time) (string, error) {
	if !strings.Contains(segment, "~~~") {
		return segment, nil
	}
	if strings.TrimSpace(user.Name) == "" {
		return "", ErrMissingUser
	}

	stamp := ts.UTC().Format(TimestampLayout)
	sig := Signature(user)

	return tildeRegex.ReplaceAllStringFunc(segment, func(tildes string) string {
		switch len(tildes) {
		case 5:
			return stamp
		case 4:
			return sig + " " + stamp
		default:
			return sig
		}
	}), nil
}

// Signature returns the default wikitext signature of a user.
func Signature(user wiki.User) string {
	if user.IsAnonymous() {
		return fmt.Sprintf("[[Special:Contributions/%s|%s]] ([[User talk:%s|talk]])", user.Name, user.Name, user.Name)
	}
	return fmt.Sprintf("[[User:%s|%s]] ([[User talk:%s|talk]])", user.Name, user.Name, user.Name)
}
