package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnippetFile is the name of the diagnostic capture file.
const SnippetFile = "debug_html.txt"

// Capture handles writing diagnostic page-text snapshots
type Capture struct {
	dataDir string
}

// New creates a new Capture instance rooted at dataDir
func New(dataDir string) (*Capture, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Capture{
		dataDir: dataDir,
	}, nil
}

// WriteSnippet saves the first limit runes of text to the capture file and
// returns its path.
func (c *Capture) WriteSnippet(text string, limit int) (string, error) {
	runes := []rune(text)
	if limit > 0 && len(runes) > limit {
		runes = runes[:limit]
	}

	path := filepath.Join(c.dataDir, SnippetFile)
	if err := os.WriteFile(path, []byte(string(runes)), 0644); err != nil {
		return "", fmt.Errorf("writing capture: %w", err)
	}

	return path, nil
}
