package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackchuka/jscontent/internal/content"
	"github.com/jackchuka/jscontent/internal/version"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	globalOpts = siteOptions{}
	redirectOpts.outputDir = ""
	redirectOpts.nameTemplate = ""
	redirectOpts.model = content.ModelJavaScript
	pstOpts.output = ""
	pstOpts.userID = 1
	pstOpts.bot = false
	pstOpts.model = content.ModelJavaScript
	if f := rootCmd.Flags().Lookup("version"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRedirectCommand(t *testing.T) {
	out, err := runCommand(t, "", "redirect", "User:Example/common.js", "--server", "https://wiki.example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `/* #REDIRECT */mw.loader.load("//wiki.example.org/w/index.php?title=User:Example/common.js\u0026action=raw\u0026ctype=text/javascript");` + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestRedirectCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	out, err := runCommand(t, "", "redirect", "MediaWiki:Gadget-foo.js", "--server", "//wiki.example.org", "-o", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "✅ Redirect to MediaWiki:Gadget-foo.js written to:") {
		t.Fatalf("unexpected output: %s", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "mediawiki-gadget-foo.js"))
	if err != nil {
		t.Fatalf("failed to read redirect file: %v", err)
	}
	if !strings.HasPrefix(string(data), content.RedirectMarker) {
		t.Fatalf("unexpected file content: %s", data)
	}
}

func TestRedirectCommandErrors(t *testing.T) {
	if _, err := runCommand(t, "", "redirect", "[[bad]]"); err == nil || !strings.Contains(err.Error(), "invalid destination") {
		t.Fatalf("expected invalid destination error, got %v", err)
	}
	if _, err := runCommand(t, "", "redirect", "Foo.js", "--model", "css"); err == nil || !strings.Contains(err.Error(), "unknown content model") {
		t.Fatalf("expected unknown model error, got %v", err)
	}
	if _, err := runCommand(t, "", "redirect", "Foo.js", "--server", "ftp://x"); err == nil || !strings.Contains(err.Error(), "invalid site configuration") {
		t.Fatalf("expected site error, got %v", err)
	}
}

func TestPSTCommand(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "jscontent.yaml")
	config := "preferences:\n  users:\n    MaintenanceBot:\n      pst-cssjs: false\n"
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	input := "// by ~~~\r\nvar x = 1;  \n"

	out, err := runCommand(t, input, "pst", "-c", configPath, "--page", "MediaWiki:Common.js", "--user", "Example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "// by [[User:Example|Example]] ([[User talk:Example|talk]])\nvar x = 1;\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = runCommand(t, input, "pst", "-c", configPath, "--page", "MediaWiki:Common.js", "--user", "MaintenanceBot", "--bot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "// by ~~~\nvar x = 1;\n" {
		t.Fatalf("expected transform to be skipped for bot, got %q", out)
	}
}

func TestPSTCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "common.js")
	if err := os.WriteFile(inputPath, []byte("init();\n\n"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	outputPath := filepath.Join(dir, "out", "common.js")

	if _, err := runCommand(t, "", "pst", "--page", "Common.js", "--user", "Example", "-o", outputPath, inputPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(got) != "init();" {
		t.Fatalf("unexpected output file: %q", got)
	}
}

func TestValidateCommand(t *testing.T) {
	redirect, err := runCommand(t, "", "redirect", "Foo.js", "--server", "https://wiki.example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		args     []string
		wantOut  string
		wantFail bool
	}{
		{
			name:    "plain script",
			input:   "var x = 1;",
			wantOut: "✅ Valid JavaScript (10 bytes)",
		},
		{
			name:    "redirect",
			input:   redirect,
			args:    []string{"--server", "https://wiki.example.org"},
			wantOut: "↪ Redirects to: Foo.js",
		},
		{
			name:    "redirect for another site",
			input:   redirect,
			args:    []string{"--server", "https://other.example.org"},
			wantOut: "not a redirect for other.example.org",
		},
		{
			name:     "syntax error",
			input:    "function (",
			wantOut:  "❌ Syntax error",
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"validate"}, tt.args...)
			out, err := runCommand(t, strings.TrimSuffix(tt.input, "\n"), args...)
			if tt.wantFail != (err != nil) {
				t.Fatalf("unexpected error state: %v", err)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Fatalf("expected output containing %q, got %q", tt.wantOut, out)
			}
		})
	}
}

func TestModelsCommand(t *testing.T) {
	out, err := runCommand(t, "", "models")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "javascript\ttext/javascript\tredirects=true\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "jscontent ") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCommand(t, "", "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "jscontent version "+version.Short()+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
