package wiki

import (
	"fmt"
	"net/url"
	"strings"
)

// RawURLInfo describes an index.php URL such as
// //wiki.example.org/w/index.php?title=User:Example/common.js&action=raw&ctype=text/javascript
type RawURLInfo struct {
	Host        string
	Path        string
	Title       Title
	Action      string
	ContentType string
}

// ParseRawURL extracts the page title and raw-action parameters from an index.php URL.
func ParseRawURL(rawURL string) (RawURLInfo, error) {
	if rawURL == "" {
		return RawURLInfo{}, fmt.Errorf("URL is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return RawURLInfo{}, fmt.Errorf("invalid URL: %w", err)
	}

	query, err := parseQuery(u.RawQuery)
	if err != nil {
		return RawURLInfo{}, fmt.Errorf("invalid query: %w", err)
	}

	name := query.Get("title")
	if name == "" {
		return RawURLInfo{}, fmt.Errorf("could not extract title from URL")
	}

	title, err := NewTitle(name)
	if err != nil {
		return RawURLInfo{}, fmt.Errorf("invalid title in URL: %w", err)
	}

	return RawURLInfo{
		Host:        u.Host,
		Path:        u.Path,
		Title:       title,
		Action:      query.Get("action"),
		ContentType: query.Get("ctype"),
	}, nil
}

// parseQuery splits on "&" only. Urlencode leaves ";" readable in titles,
// which url.ParseQuery rejects as a separator.
func parseQuery(raw string) (url.Values, error) {
	values := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		values.Add(k, v)
	}
	return values, nil
}
