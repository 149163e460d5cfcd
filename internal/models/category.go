// Package models provides the data structures used throughout the application.
package models

import "strings"

// Category represents a file category with its destination folder name
type Category struct {
	Name        string
	Description string
}

// CategoryRule represents one category entry in the YAML configuration file
type CategoryRule struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}

// CategoryTable is a lookup from normalized file extension to category name.
// It is built once at startup and read-only afterwards.
type CategoryTable struct {
	byExtension map[string]string
	names       []string
}

// NewCategoryTable builds a lookup table from category rules.
// Extensions are normalized to lower case with a leading dot.
func NewCategoryTable(rules []CategoryRule) *CategoryTable {
	table := &CategoryTable{
		byExtension: make(map[string]string),
	}
	for _, rule := range rules {
		table.names = append(table.names, rule.Name)
		for _, ext := range rule.Extensions {
			table.byExtension[NormalizeExtension(ext)] = rule.Name
		}
	}
	return table
}

// Lookup returns the category name for an extension, case-insensitively.
func (t *CategoryTable) Lookup(extension string) (string, bool) {
	name, ok := t.byExtension[NormalizeExtension(extension)]
	return name, ok
}

// Names returns the category names in rule order.
func (t *CategoryTable) Names() []string {
	return t.names
}

// HasCategory reports whether name is one of the table's categories.
func (t *CategoryTable) HasCategory(name string) bool {
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}

// NormalizeExtension lower-cases an extension and ensures a leading dot.
// An empty extension stays empty so extension-less files fall through to
// the fallback category.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
