package scrape_test

import (
	"testing"

	"fjacquet/autokit/cmd/scrape"

	"github.com/stretchr/testify/assert"
)

func TestScrapeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "scrape URL", scrape.Cmd.Use)
	assert.Contains(t, scrape.Cmd.Short, "Fetch a web page")
	assert.Contains(t, scrape.Cmd.Long, "exponential backoff")
	assert.Contains(t, scrape.Cmd.Long, "no output")
	assert.NotNil(t, scrape.Cmd.Run)
}

func TestScrapeCommand_Flags(t *testing.T) {
	for _, name := range []string{"selector", "xpath", "format", "timeout", "retries"} {
		assert.NotNil(t, scrape.Cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestScrapeCommand_RequiresURL(t *testing.T) {
	assert.Error(t, scrape.Cmd.Args(scrape.Cmd, nil))
	assert.NoError(t, scrape.Cmd.Args(scrape.Cmd, []string{"https://example.com"}))
	assert.Error(t, scrape.Cmd.Args(scrape.Cmd, []string{"https://example.com", "extra"}))
}
