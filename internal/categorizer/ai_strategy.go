package categorizer

import (
	"context"
	"strings"

	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
)

// AIStrategy implements categorization using an AI service. It only runs
// for files the extension table could not place, and any failure falls
// through to the next strategy rather than aborting the run.
type AIStrategy struct {
	aiClient AIClient
	table    *models.CategoryTable
	logger   logging.Logger
}

// NewAIStrategy creates a new AIStrategy instance.
func NewAIStrategy(aiClient AIClient, table *models.CategoryTable, logger logging.Logger) *AIStrategy {
	return &AIStrategy{
		aiClient: aiClient,
		table:    table,
		logger:   logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize asks the AI client to suggest one of the known category names.
// Suggestions outside the table are rejected.
func (s *AIStrategy) Categorize(ctx context.Context, file File) (models.Category, bool, error) {
	if s.aiClient == nil {
		s.logger.WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: logging.FieldFile, Value: file.Name},
		).Debug("AI client not available, skipping AI categorization")
		return models.Category{}, false, nil
	}

	suggestion, err := s.aiClient.SuggestCategory(ctx, file, s.table.Names())
	if err != nil {
		s.logger.WithError(err).WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: logging.FieldFile, Value: file.Name},
		).Warn("AI categorization failed")
		return models.Category{}, false, nil
	}

	suggestion = strings.TrimSpace(suggestion)
	if suggestion == "" || !s.table.HasCategory(suggestion) {
		s.logger.WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: logging.FieldFile, Value: file.Name},
			logging.Field{Key: "ai_category", Value: suggestion},
		).Debug("AI returned an unknown category")
		return models.Category{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: logging.FieldFile, Value: file.Name},
		logging.Field{Key: logging.FieldCategory, Value: suggestion},
	).Debug("File categorized using AI")

	return models.Category{Name: suggestion}, true, nil
}
