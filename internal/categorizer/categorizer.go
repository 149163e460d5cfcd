package categorizer

import (
	"context"

	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
)

// Categorizer runs a chain of strategies over a file and falls back to a
// configured category when none of them match.
type Categorizer struct {
	strategies []Strategy
	fallback   string
	logger     logging.Logger
}

// NewCategorizer creates a categorizer from an ordered strategy chain.
func NewCategorizer(strategies []Strategy, fallback string, logger logging.Logger) *Categorizer {
	if fallback == "" {
		fallback = "Other"
	}
	return &Categorizer{
		strategies: strategies,
		fallback:   fallback,
		logger:     logger,
	}
}

// Categorize returns the category for a file. It never fails: strategy
// errors are logged and the chain continues, ending at the fallback.
func (c *Categorizer) Categorize(ctx context.Context, file File) models.Category {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, file)
		if err != nil {
			c.logger.WithError(err).WithFields(
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: logging.FieldFile, Value: file.Name},
			).Warn("Categorization strategy failed")
			continue
		}
		if found {
			return category
		}
	}

	c.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: file.Name},
		logging.Field{Key: logging.FieldCategory, Value: c.fallback},
	).Debug("No strategy matched, using fallback category")

	return models.Category{Name: c.fallback}
}

// Fallback returns the fallback category name.
func (c *Categorizer) Fallback() string {
	return c.fallback
}
