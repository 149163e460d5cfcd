package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "scraped_data.json", defaultOutput("json"))
	assert.Equal(t, "scraped_data.csv", defaultOutput("csv"))
	assert.Equal(t, "scraped_data.md", defaultOutput("markdown"))
	// Unknown formats fall back to the JSON filename; WriteReport rejects
	// the format itself before anything is written.
	assert.Equal(t, "scraped_data.json", defaultOutput(""))
}
