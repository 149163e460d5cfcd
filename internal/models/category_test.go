package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase with dot", input: ".jpg", expected: ".jpg"},
		{name: "uppercase", input: ".JPG", expected: ".jpg"},
		{name: "missing dot", input: "png", expected: ".png"},
		{name: "surrounding whitespace", input: " .PDF ", expected: ".pdf"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeExtension(tt.input))
		})
	}
}

func TestCategoryTable_Lookup(t *testing.T) {
	table := NewCategoryTable([]CategoryRule{
		{Name: "Images", Extensions: []string{".jpg", ".png"}},
		{Name: "Documents", Extensions: []string{".txt", "pdf"}},
	})

	tests := []struct {
		ext      string
		expected string
		found    bool
	}{
		{ext: ".jpg", expected: "Images", found: true},
		{ext: ".JPG", expected: "Images", found: true},
		{ext: ".pdf", expected: "Documents", found: true},
		{ext: ".unknownext", found: false},
		{ext: "", found: false},
	}

	for _, tt := range tests {
		name, ok := table.Lookup(tt.ext)
		assert.Equal(t, tt.found, ok, "extension %q", tt.ext)
		if tt.found {
			assert.Equal(t, tt.expected, name)
		}
	}

	assert.Equal(t, []string{"Images", "Documents"}, table.Names())
	assert.True(t, table.HasCategory("Images"))
	assert.False(t, table.HasCategory("Videos"))
}

func TestPageReport_Flatten(t *testing.T) {
	report := &PageReport{
		Links:    []Link{{Text: "home", URL: "https://example.com/"}},
		Images:   []Image{{Alt: "logo", URL: "https://example.com/logo.png"}},
		Extracts: []Extract{{Rule: "h1", Value: "Welcome"}},
	}

	records := report.Flatten()
	assert.Len(t, records, 3)
	assert.Equal(t, ScrapeRecord{Kind: "link", Text: "home", Value: "https://example.com/"}, records[0])
	assert.Equal(t, ScrapeRecord{Kind: "image", Text: "logo", Value: "https://example.com/logo.png"}, records[1])
	assert.Equal(t, ScrapeRecord{Kind: "extract", Text: "h1", Value: "Welcome"}, records[2])
}

func TestOrganizeReport_Counts(t *testing.T) {
	report := &OrganizeReport{
		Results: []MoveResult{
			{File: "a.jpg", Status: StatusMoved},
			{File: "b.txt", Status: StatusMoved},
			{File: "locked.bin", Status: StatusFailed},
			{File: "sub", Status: StatusSkipped},
		},
	}

	assert.Equal(t, 2, report.Moved())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 1, report.Skipped())
}
