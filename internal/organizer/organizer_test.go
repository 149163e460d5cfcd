package organizer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/autokit/internal/categorizer"
	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
	"fjacquet/autokit/internal/organizer"
	"fjacquet/autokit/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrganizer(opts ...organizer.Option) *organizer.Organizer {
	logger := &logging.MockLogger{}
	table := models.NewCategoryTable(store.DefaultCategories())
	cat := categorizer.NewCategorizer([]categorizer.Strategy{
		categorizer.NewExtensionStrategy(table, logger),
	}, "Other", logger)
	return organizer.New(cat, logger, opts...)
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content"), 0600))
	}
}

func TestOrganize_KnownAndUnknownExtensions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.jpg", "b.txt", "c.unknownext")

	report, err := newOrganizer().Organize(context.Background(), tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Moved())
	assert.Equal(t, 0, report.Failed())

	assert.FileExists(t, filepath.Join(tmpDir, "Images", "a.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "Documents", "b.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "Other", "c.unknownext"))

	// Files are never left at the top level or duplicated
	assert.NoFileExists(t, filepath.Join(tmpDir, "a.jpg"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "b.txt"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "c.unknownext"))
}

func TestOrganize_CreatesDestinationFolder(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "song.mp3")

	assert.NoDirExists(t, filepath.Join(tmpDir, "Audio"))

	_, err := newOrganizer().Organize(context.Background(), tmpDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tmpDir, "Audio", "song.mp3"))
}

func TestOrganize_CaseInsensitiveExtensions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "PHOTO.JPG")

	_, err := newOrganizer().Organize(context.Background(), tmpDir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tmpDir, "Images", "PHOTO.JPG"))
}

func TestOrganize_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.jpg", "b.txt")

	org := newOrganizer()
	first, err := org.Organize(context.Background(), tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Moved())

	// Second run sees only the category folders, nothing moves
	second, err := org.Organize(context.Background(), tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Moved())
	assert.Equal(t, 0, second.Failed())
	for _, result := range second.Results {
		assert.Equal(t, models.StatusSkipped, result.Status)
		assert.Equal(t, "directory", result.Reason)
	}

	assert.FileExists(t, filepath.Join(tmpDir, "Images", "a.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "Documents", "b.txt"))
}

func TestOrganize_NameCollisionGetsSuffix(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "Images"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Images", "a.jpg"), []byte("old"), 0600))
	writeFiles(t, tmpDir, "a.jpg")

	report, err := newOrganizer().Organize(context.Background(), tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Moved())

	assert.FileExists(t, filepath.Join(tmpDir, "Images", "a.jpg"))
	assert.FileExists(t, filepath.Join(tmpDir, "Images", "a_1.jpg"))
}

func TestOrganize_SkipsDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested"), 0755))
	writeFiles(t, filepath.Join(tmpDir, "nested"), "inner.jpg")

	report, err := newOrganizer().Organize(context.Background(), tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Moved())
	assert.Equal(t, 1, report.Skipped())

	// Nested content is untouched: only direct children are organized
	assert.FileExists(t, filepath.Join(tmpDir, "nested", "inner.jpg"))
}

func TestOrganize_DryRunMutatesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.jpg")

	report, err := newOrganizer(organizer.WithDryRun(true)).Organize(context.Background(), tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Moved())
	require.Len(t, report.Results, 1)
	assert.Equal(t, models.StatusSkipped, report.Results[0].Status)
	assert.Equal(t, "dry run", report.Results[0].Reason)
	assert.Equal(t, "Images", report.Results[0].Category)

	assert.FileExists(t, filepath.Join(tmpDir, "a.jpg"))
	assert.NoDirExists(t, filepath.Join(tmpDir, "Images"))
}

func TestOrganize_MissingDirectory(t *testing.T) {
	_, err := newOrganizer().Organize(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestOrganize_EmptyDirectory(t *testing.T) {
	report, err := newOrganizer().Organize(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, report.Results)
}
