package categorizer

import (
	"context"

	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
)

// ExtensionStrategy implements categorization using the static
// extension-to-category table loaded from YAML configuration.
type ExtensionStrategy struct {
	table  *models.CategoryTable
	logger logging.Logger
}

// NewExtensionStrategy creates a new ExtensionStrategy instance.
func NewExtensionStrategy(table *models.CategoryTable, logger logging.Logger) *ExtensionStrategy {
	return &ExtensionStrategy{
		table:  table,
		logger: logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *ExtensionStrategy) Name() string {
	return "Extension"
}

// Categorize looks the file extension up in the category table,
// case-insensitively. Extension-less files never match.
func (s *ExtensionStrategy) Categorize(ctx context.Context, file File) (models.Category, bool, error) {
	if file.Extension == "" {
		return models.Category{}, false, nil
	}

	name, ok := s.table.Lookup(file.Extension)
	if !ok {
		return models.Category{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: logging.FieldFile, Value: file.Name},
		logging.Field{Key: logging.FieldExtension, Value: file.Extension},
		logging.Field{Key: logging.FieldCategory, Value: name},
	).Debug("File categorized by extension table")

	return models.Category{Name: name}, true, nil
}
