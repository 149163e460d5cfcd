package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/autokit/internal/fileutils"
	"fjacquet/autokit/internal/models"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/gocarina/gocsv"
)

// Formats supported by WriteReport.
const (
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// WriteReport renders the report in the requested format and writes it to
// outputPath. The content is built in memory first so a failed run never
// leaves a partial output file behind.
func WriteReport(report *models.PageReport, page *Page, format, outputPath string) error {
	var (
		content []byte
		err     error
	)

	switch format {
	case FormatJSON:
		content, err = renderJSON(report)
	case FormatCSV:
		content, err = renderCSV(report)
	case FormatMarkdown:
		content, err = renderMarkdown(report, page)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := fileutils.EnsureDirectoryExists(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func renderJSON(report *models.PageReport) ([]byte, error) {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return append(content, '\n'), nil
}

func renderCSV(report *models.PageReport) ([]byte, error) {
	records := report.Flatten()
	content, err := gocsv.MarshalString(&records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report as CSV: %w", err)
	}
	return []byte(content), nil
}

func renderMarkdown(report *models.PageReport, page *Page) ([]byte, error) {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	body := page.Doc.Find("body")
	markdown := converter.Convert(body)

	header := fmt.Sprintf("# %s\n\n<%s>\n\n", report.Title, report.URL)
	return []byte(header + markdown + "\n"), nil
}
