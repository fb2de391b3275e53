// Package export writes generated page content to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackchuka/jscontent/internal/content"
)

// SaveContent writes the content text to outputPath, creating parent directories.
func SaveContent(c content.Content, outputPath string) error {
	if c == nil {
		return fmt.Errorf("content cannot be nil")
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(c.Text()), 0644); err != nil {
		return fmt.Errorf("failed to write content file: %w", err)
	}

	return nil
}
