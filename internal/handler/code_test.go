package handler

import (
	"errors"
	"testing"

	"github.com/jackchuka/jscontent/internal/content"
)

func TestCodeHandlerSerialization(t *testing.T) {
	h := NewCodeHandler(content.ModelJavaScript, []string{content.FormatJavaScript}, content.NewJavaScript)

	tests := []struct {
		name    string
		content content.Content
		format  string
		want    string
		wantErr error
	}{
		{
			name:    "default format",
			content: content.NewJavaScript("a();"),
			want:    "a();",
		},
		{
			name:    "explicit format",
			content: content.NewJavaScript("b();"),
			format:  content.FormatJavaScript,
			want:    "b();",
		},
		{
			name:    "unsupported format",
			content: content.NewJavaScript("c();"),
			format:  content.FormatWikitext,
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "wrong model",
			content: content.NewText("d", content.ModelWikitext),
			wantErr: ErrModelMismatch,
		},
		{
			name:    "nil content",
			wantErr: ErrModelMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.SerializeContent(tt.content, tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("SerializeContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeHandlerUnserialize(t *testing.T) {
	h := NewCodeHandler(content.ModelJavaScript, []string{content.FormatJavaScript}, content.NewJavaScript)

	c, err := h.UnserializeContent("x();", content.FormatJavaScript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != content.ModelJavaScript || c.Text() != "x();" {
		t.Fatalf("unexpected content: %s %q", c.Model(), c.Text())
	}

	if _, err := h.UnserializeContent("x();", "text/css"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestCodeHandlerProperties(t *testing.T) {
	h := NewCodeHandler(content.ModelJavaScript, []string{content.FormatJavaScript}, content.NewJavaScript)

	formats := h.SupportedFormats()
	formats[0] = "mutated"
	if h.DefaultFormat() != content.FormatJavaScript {
		t.Fatalf("SupportedFormats must return a copy")
	}
	if h.PageLanguage() != "en" {
		t.Fatalf("unexpected page language: %s", h.PageLanguage())
	}
	if h.SupportsSections() || h.SupportsRedirects() {
		t.Fatalf("code handlers support neither sections nor redirects by default")
	}
	if h.MakeEmptyContent().Text() != "" {
		t.Fatalf("expected empty content")
	}
	if NewCodeHandler("none", nil, content.NewJavaScript).DefaultFormat() != "" {
		t.Fatalf("expected no default format")
	}
}
