package wiki

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// Protocol selects the scheme of generated full URLs.
type Protocol int

const (
	// ProtoRelative yields "//host/..." URLs.
	ProtoRelative Protocol = iota
	ProtoHTTP
	ProtoHTTPS
	// ProtoServer keeps whatever the configured server uses.
	ProtoServer
)

const (
	DefaultServer      = "//localhost"
	DefaultScriptPath  = "/w"
	DefaultArticlePath = "/wiki/$1"
)

// Site builds URLs for pages of one wiki.
type Site struct {
	scheme      string
	host        string
	scriptPath  string
	articlePath string
}

// NewSite creates a Site from a server such as "https://wiki.example.org" or
// "//wiki.example.org" and a script path such as "/w".
func NewSite(server, scriptPath string) (*Site, error) {
	if strings.TrimSpace(server) == "" {
		server = DefaultServer
	}

	u, err := url.Parse(strings.TrimSuffix(strings.TrimSpace(server), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server %q: missing host", server)
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server %q: unsupported scheme %s", server, u.Scheme)
	}

	host, err := asciiHost(u.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid server host %q: %w", u.Host, err)
	}

	scriptPath = strings.TrimSuffix(strings.TrimSpace(scriptPath), "/")
	if scriptPath != "" && !strings.HasPrefix(scriptPath, "/") {
		scriptPath = "/" + scriptPath
	}

	return &Site{
		scheme:      u.Scheme,
		host:        host,
		scriptPath:  scriptPath,
		articlePath: DefaultArticlePath,
	}, nil
}

// Host returns the ASCII host (and port) of the site.
func (s *Site) Host() string {
	return s.host
}

// Script returns the path of the entry point script, e.g. "/w/index.php".
func (s *Site) Script() string {
	return s.scriptPath + "/index.php"
}

// Server returns the server prefix for the given protocol.
func (s *Site) Server(proto Protocol) string {
	switch proto {
	case ProtoHTTP:
		return "http://" + s.host
	case ProtoHTTPS:
		return "https://" + s.host
	case ProtoServer:
		if s.scheme != "" {
			return s.scheme + "://" + s.host
		}
	}
	return "//" + s.host
}

// LocalURL returns the server-relative URL of a page. The query is appended
// verbatim so callers control its encoding.
func (s *Site) LocalURL(t Title, query string) string {
	dbkey := Urlencode(t.PrefixedDBKey())
	if query == "" {
		return strings.Replace(s.articlePath, "$1", dbkey, 1)
	}
	return s.Script() + "?title=" + dbkey + "&" + query
}

// FullURL returns LocalURL prefixed with the server for the given protocol.
func (s *Site) FullURL(t Title, query string, proto Protocol) string {
	return s.Server(proto) + s.LocalURL(t, query)
}

var urlencodeUnescaper = strings.NewReplacer(
	"%3B", ";",
	"%40", "@",
	"%24", "$",
	"%21", "!",
	"%2A", "*",
	"%28", "(",
	"%29", ")",
	"%2C", ",",
	"%2F", "/",
	"%7E", "~",
	"%3A", ":",
)

// Urlencode escapes a page name for use in a URL, leaving the characters that
// are safe in titles readable.
func Urlencode(s string) string {
	return urlencodeUnescaper.Replace(url.QueryEscape(s))
}

func asciiHost(hostport string) (string, error) {
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host, port = hostport, ""
	}
	if strings.HasPrefix(host, "[") || net.ParseIP(host) != nil {
		return hostport, nil
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", err
	}
	if port != "" {
		return net.JoinHostPort(ascii, port), nil
	}
	return ascii, nil
}
