package root_test

import (
	"testing"

	"fjacquet/autokit/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "autokit", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "CLI toolkit")
	assert.Contains(t, root.Cmd.Long, "organize")
	assert.Contains(t, root.Cmd.Long, "scrape")
	assert.Contains(t, root.Cmd.Long, "notify")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	if assert.NotNil(t, outputFlag) {
		assert.Equal(t, "o", outputFlag.Shorthand)
	}
}

func TestRootCommand_SharedFlagsDefaults(t *testing.T) {
	assert.Empty(t, root.SharedFlags.Output)
}
