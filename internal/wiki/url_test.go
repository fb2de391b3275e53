package wiki

import (
	"strings"
	"testing"
)

func TestParseRawURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RawURLInfo
		wantErr string
	}{
		{
			name:  "protocol relative raw url",
			input: "//wiki.example.org/w/index.php?title=User:Example/common.js&action=raw&ctype=text/javascript",
			want: RawURLInfo{
				Host:        "wiki.example.org",
				Path:        "/w/index.php",
				Title:       Title{Namespace: NamespaceUser, DBKey: "Example/common.js"},
				Action:      "raw",
				ContentType: "text/javascript",
			},
		},
		{
			name:  "encoded title",
			input: "https://wiki.example.org/w/index.php?title=A%26B.js&action=raw",
			want: RawURLInfo{
				Host:   "wiki.example.org",
				Path:   "/w/index.php",
				Title:  Title{Namespace: NamespaceMain, DBKey: "A&B.js"},
				Action: "raw",
			},
		},
		{
			name:  "semicolon in title",
			input: "//wiki.example.org/w/index.php?title=User:Example/a;b.js&action=raw&ctype=text/javascript",
			want: RawURLInfo{
				Host:        "wiki.example.org",
				Path:        "/w/index.php",
				Title:       Title{Namespace: NamespaceUser, DBKey: "Example/a;b.js"},
				Action:      "raw",
				ContentType: "text/javascript",
			},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: "URL is empty",
		},
		{
			name:    "invalid",
			input:   "://bad url",
			wantErr: "invalid URL",
		},
		{
			name:    "missing title",
			input:   "//wiki.example.org/w/index.php?action=raw",
			wantErr: "could not extract title",
		},
		{
			name:    "bad title",
			input:   "//wiki.example.org/w/index.php?title=%5B%5D",
			wantErr: "invalid title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRawURL(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("unexpected info: %#v want %#v", got, tt.want)
			}
		})
	}
}
