// Package store provides functionality for storing and retrieving application data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/autokit/internal/config"
	"fjacquet/autokit/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryStore manages loading and saving of the category table
type CategoryStore struct {
	CategoriesFile string
}

// NewCategoryStore creates a new store for the category table
func NewCategoryStore(categoriesFile string) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/autokit/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "autokit", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the category table from the YAML file. With no
// file configured, the default categories.yaml is searched in standard
// locations and the built-in table is the fallback. An explicitly
// configured file that cannot be found is an error.
func (s *CategoryStore) LoadCategories() ([]models.CategoryRule, error) {
	filename := s.CategoriesFile
	explicit := filename != ""
	if !explicit {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, fmt.Errorf("categories file not found: %s", filename)
			}
			log.Debugf("Categories file not found: %s, using built-in table", filename)
			return DefaultCategories(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Proper YAML structure: "categories: [...]"
	var categoriesConfig models.CategoriesConfig
	err = yaml.Unmarshal(data, &categoriesConfig)
	if err == nil && len(categoriesConfig.Categories) > 0 {
		log.Debugf("Loaded %d categories from %s", len(categoriesConfig.Categories), filePath)
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare array without the top-level key
	var categories []models.CategoryRule
	err = yaml.Unmarshal(data, &categories)
	if err == nil && len(categories) > 0 {
		log.Debugf("Loaded %d categories from %s using direct array", len(categories), filePath)
		return categories, nil
	}

	return nil, fmt.Errorf("could not parse categories file %s: %w", filePath, err)
}

// SaveCategories writes the category table to the YAML file.
func (s *CategoryStore) SaveCategories(categories []models.CategoryRule) error {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	log.Debugf("Saved %d categories to %s", len(categories), filename)
	return nil
}

// DefaultCategories returns the built-in extension-to-category table.
func DefaultCategories() []models.CategoryRule {
	return []models.CategoryRule{
		{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".xlsx", ".xls", ".ppt", ".pptx", ".odt", ".ods"}},
		{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".ico"}},
		{Name: "Videos", Extensions: []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm"}},
		{Name: "Audio", Extensions: []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".wma"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"}},
		{Name: "Code", Extensions: []string{".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".php", ".rb", ".go"}},
		{Name: "Executables", Extensions: []string{".exe", ".msi", ".app", ".dmg", ".deb", ".rpm"}},
	}
}
