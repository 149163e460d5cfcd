// Package organizer moves the direct children of a directory into
// category folders derived from their file extensions.
package organizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/autokit/internal/categorizer"
	"fjacquet/autokit/internal/fileutils"
	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
)

// Organizer classifies and moves files. It mutates the filesystem; no
// rollback is attempted if interrupted mid-run, so partial completion is
// an accepted, visible end state.
type Organizer struct {
	categorizer *categorizer.Categorizer
	logger      logging.Logger
	dryRun      bool
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithDryRun makes the organizer report planned moves without touching
// the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(o *Organizer) {
		o.dryRun = dryRun
	}
}

// New creates an Organizer.
func New(cat *categorizer.Categorizer, logger logging.Logger, opts ...Option) *Organizer {
	o := &Organizer{
		categorizer: cat,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Organize scans the direct children of dir, classifies each regular file
// by extension and moves it into its category folder, creating the folder
// if absent. Directories are skipped, which makes re-runs idempotent:
// already-organized files live inside category folders and are no longer
// direct children. Per-file failures are recorded and the run continues.
func (o *Organizer) Organize(ctx context.Context, dir string) (*models.OrganizeReport, error) {
	if !fileutils.DirectoryExists(dir) {
		return nil, fmt.Errorf("directory does not exist: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	o.logger.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "organize"},
		logging.Field{Key: logging.FieldDirectory, Value: dir},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	).Info("Organizing directory")

	report := &models.OrganizeReport{Directory: dir}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Results = append(report.Results, o.organizeEntry(ctx, dir, entry))
	}

	o.logger.WithFields(
		logging.Field{Key: logging.FieldDirectory, Value: dir},
		logging.Field{Key: "moved", Value: report.Moved()},
		logging.Field{Key: "skipped", Value: report.Skipped()},
		logging.Field{Key: "failed", Value: report.Failed()},
	).Info("Organization complete")

	return report, nil
}

func (o *Organizer) organizeEntry(ctx context.Context, dir string, entry os.DirEntry) models.MoveResult {
	name := entry.Name()

	if entry.IsDir() {
		o.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: name},
			logging.Field{Key: logging.FieldReason, Value: "directory"},
		).Debug("Skipping entry")
		return models.MoveResult{File: name, Status: models.StatusSkipped, Reason: "directory"}
	}
	if !entry.Type().IsRegular() {
		o.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: name},
			logging.Field{Key: logging.FieldReason, Value: "not a regular file"},
		).Debug("Skipping entry")
		return models.MoveResult{File: name, Status: models.StatusSkipped, Reason: "not a regular file"}
	}

	category := o.categorizer.Categorize(ctx, categorizer.FileFromName(name))
	categoryDir := filepath.Join(dir, category.Name)

	if o.dryRun {
		destination := filepath.Join(categoryDir, name)
		o.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: name},
			logging.Field{Key: logging.FieldDestination, Value: destination},
		).Info("Dry run, not moving")
		return models.MoveResult{
			File:        name,
			Category:    category.Name,
			Destination: destination,
			Status:      models.StatusSkipped,
			Reason:      "dry run",
		}
	}

	if err := fileutils.EnsureDirectoryExists(categoryDir); err != nil {
		o.logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldFile, Value: name},
			logging.Field{Key: logging.FieldCategory, Value: category.Name},
		).Error("Failed to create category folder")
		return models.MoveResult{
			File:     name,
			Category: category.Name,
			Status:   models.StatusFailed,
			Reason:   err.Error(),
		}
	}

	destination := fileutils.UniqueDestination(categoryDir, name)
	if err := fileutils.MoveFile(filepath.Join(dir, name), destination); err != nil {
		o.logger.WithError(err).WithFields(
			logging.Field{Key: logging.FieldFile, Value: name},
			logging.Field{Key: logging.FieldDestination, Value: destination},
		).Error("Failed to move file")
		return models.MoveResult{
			File:        name,
			Category:    category.Name,
			Destination: destination,
			Status:      models.StatusFailed,
			Reason:      err.Error(),
		}
	}

	o.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: name},
		logging.Field{Key: logging.FieldCategory, Value: category.Name},
		logging.Field{Key: logging.FieldDestination, Value: destination},
		logging.Field{Key: logging.FieldStatus, Value: string(models.StatusMoved)},
	).Info("Moved file")

	return models.MoveResult{
		File:        name,
		Category:    category.Name,
		Destination: destination,
		Status:      models.StatusMoved,
	}
}
