package handler

import (
	"log/slog"

	"github.com/jackchuka/jscontent/internal/content"
	"github.com/jackchuka/jscontent/internal/parser"
	"github.com/jackchuka/jscontent/internal/userprefs"
	"github.com/jackchuka/jscontent/internal/wiki"
)

// RawScriptQuery asks index.php for the raw page text served as JavaScript.
// It is kept as a string so the "/" in the content type is not escaped.
const RawScriptQuery = "action=raw&ctype=" + content.FormatJavaScript

var _ Handler = (*JavaScriptHandler)(nil)

// JavaScriptHandler handles pages of the javascript content model.
type JavaScriptHandler struct {
	*CodeHandler
	site   *wiki.Site
	parser parser.Parser
	prefs  userprefs.Lookup
	legacy LegacyTransform
	logger *slog.Logger
}

// Option configures a JavaScriptHandler.
type Option func(*JavaScriptHandler)

// WithModelID registers the handler under another model identifier.
func WithModelID(modelID string) Option {
	return func(h *JavaScriptHandler) {
		h.modelID = modelID
	}
}

// WithContentClass overrides the concrete content type produced by the handler.
func WithContentClass(class content.Class) Option {
	return func(h *JavaScriptHandler) {
		h.class = class
	}
}

// WithLegacyTransform routes every pre-save transform to the given hook.
func WithLegacyTransform(legacy LegacyTransform) Option {
	return func(h *JavaScriptHandler) {
		h.legacy = legacy
	}
}

// WithLogger sets the logger for dispatch decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(h *JavaScriptHandler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewJavaScriptHandler creates the handler. The site builds redirect URLs, the
// parser and preference lookup serve the pre-save transform. Without them (and
// without a legacy hook) PreSaveTransform returns ErrNoTransformer.
func NewJavaScriptHandler(site *wiki.Site, p parser.Parser, prefs userprefs.Lookup, opts ...Option) *JavaScriptHandler {
	h := &JavaScriptHandler{
		CodeHandler: NewCodeHandler(content.ModelJavaScript, []string{content.FormatJavaScript}, nil),
		site:        site,
		parser:      p,
		prefs:       prefs,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.class == nil {
		h.class = content.ScriptClass(h.modelID)
	}

	return h
}

func (h *JavaScriptHandler) SupportsRedirects() bool {
	return true
}

// MakeRedirectContent creates a redirect that is also valid JavaScript: a
// marker comment followed by a loader call for the destination's raw script.
func (h *JavaScriptHandler) MakeRedirectContent(dest wiki.Title) content.Content {
	url := h.site.FullURL(dest, RawScriptQuery, wiki.ProtoRelative)
	return h.class(content.RedirectMarker + content.EncodeJsCall(content.RedirectLoader, url))
}

// RedirectTarget returns the destination of redirect content. Content only
// counts as a redirect when it is exactly what MakeRedirectContent would
// produce for that destination.
func (h *JavaScriptHandler) RedirectTarget(c content.Content) (wiki.Title, bool) {
	if c == nil || c.Model() != h.modelID || !content.HasRedirectMarker(c.Text()) {
		return wiki.Title{}, false
	}

	rawURL, ok := content.RedirectURL(c.Text())
	if !ok {
		return wiki.Title{}, false
	}

	info, err := wiki.ParseRawURL(rawURL)
	if err != nil {
		h.logger.Debug("redirect marker without usable url", "url", rawURL, "error", err)
		return wiki.Title{}, false
	}
	if info.Action != "raw" || info.ContentType != content.FormatJavaScript {
		return wiki.Title{}, false
	}

	if !h.MakeRedirectContent(info.Title).Equals(c) {
		return wiki.Title{}, false
	}
	return info.Title, true
}

// PreSaveTransform rewrites content before it is saved. A configured legacy
// hook takes over completely. Otherwise the parser transform runs, switched
// off for users whose pst-cssjs preference is false.
func (h *JavaScriptHandler) PreSaveTransform(c content.Content, params PreSaveParams) (content.Content, error) {
	if h.legacy != nil {
		h.logger.Debug("delegating pre-save transform to legacy hook",
			"model", h.modelID, "page", params.Page.PrefixedDBKey())
		return h.legacy.PreSaveTransform(c, params)
	}

	if h.parser == nil || h.prefs == nil {
		return nil, ErrNoTransformer
	}

	opts := params.Options
	if opts == nil {
		opts = parser.NewOptions()
	}

	if !h.prefs.GetBoolOption(params.User, userprefs.OptionPSTCodeContent) {
		h.logger.Debug("pre-save transform disabled by user preference",
			"user", params.User.Name, "page", params.Page.PrefixedDBKey())
		opts = opts.Clone()
		opts.PreSaveTransform = false
	}

	text, err := h.parser.PreSaveTransform(c.Text(), params.Page, params.User, opts)
	if err != nil {
		return nil, err
	}

	return h.class(text), nil
}
