package notify_test

import (
	"testing"

	"fjacquet/autokit/cmd/notify"

	"github.com/stretchr/testify/assert"
)

func TestNotifyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "notify", notify.Cmd.Use)
	assert.Contains(t, notify.Cmd.Short, "email notification")
	assert.Contains(t, notify.Cmd.Long, "condition expression")
	assert.Contains(t, notify.Cmd.Long, "exits cleanly")
	assert.NotNil(t, notify.Cmd.Run)
}

func TestNotifyCommand_Flags(t *testing.T) {
	conditionFlag := notify.Cmd.Flags().Lookup("condition")
	if assert.NotNil(t, conditionFlag) {
		assert.Equal(t, "always", conditionFlag.DefValue)
	}

	for _, name := range []string{"to", "subject", "message", "detail", "html"} {
		assert.NotNil(t, notify.Cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}
