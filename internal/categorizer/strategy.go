// Package categorizer provides functionality to categorize files by extension:
// 1. Direct extension-to-category lookup from the YAML category table
// 2. AI-based category suggestion using a Gemini model as an optional fallback
// 3. A configured fallback category for everything else
package categorizer

import (
	"context"
	"path/filepath"

	"fjacquet/autokit/internal/models"
)

// File represents a file to be categorized.
type File struct {
	Name      string
	Extension string
}

// FileFromName builds a File from a bare filename. Dotfiles like
// .gitignore have no extension.
func FileFromName(name string) File {
	ext := filepath.Ext(name)
	if ext == name {
		ext = ""
	}
	return File{
		Name:      name,
		Extension: ext,
	}
}

// Strategy is a single categorization approach. Strategies are tried in
// order; the first one that reports a match wins.
type Strategy interface {
	// Name identifies the strategy for logging and debugging.
	Name() string

	// Categorize attempts to categorize a file. The boolean reports whether
	// a category was found; errors are reserved for unexpected failures.
	Categorize(ctx context.Context, file File) (models.Category, bool, error)
}
