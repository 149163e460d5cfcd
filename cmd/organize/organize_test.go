package organize_test

import (
	"testing"

	"fjacquet/autokit/cmd/organize"

	"github.com/stretchr/testify/assert"
)

func TestOrganizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "organize [directory]", organize.Cmd.Use)
	assert.Contains(t, organize.Cmd.Short, "Organize files")
	assert.Contains(t, organize.Cmd.Long, "extension")
	assert.Contains(t, organize.Cmd.Long, "fallback")
	assert.NotNil(t, organize.Cmd.Run)
}

func TestOrganizeCommand_Flags(t *testing.T) {
	dryRunFlag := organize.Cmd.Flags().Lookup("dry-run")
	if assert.NotNil(t, dryRunFlag) {
		assert.Equal(t, "false", dryRunFlag.DefValue)
	}

	categoriesFlag := organize.Cmd.Flags().Lookup("categories")
	assert.NotNil(t, categoriesFlag)

	initFlag := organize.Cmd.Flags().Lookup("init-categories")
	if assert.NotNil(t, initFlag) {
		assert.Equal(t, "false", initFlag.DefValue)
	}
}

func TestOrganizeCommand_ArgLimits(t *testing.T) {
	assert.NoError(t, organize.Cmd.Args(organize.Cmd, nil))
	assert.NoError(t, organize.Cmd.Args(organize.Cmd, []string{"./downloads"}))
	assert.Error(t, organize.Cmd.Args(organize.Cmd, []string{"a", "b"}))
}
