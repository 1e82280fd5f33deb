package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveState(key string) *SetupState {
	state := NewSetupState()
	state.EnvVars["BEE_API_KEY"] = key
	state.EnvVars["BEEDIARY_TIMEZONE"] = "Europe/Warsaw"
	return state
}

func runSave(t *testing.T, state *SetupState) *SaveEnvStep {
	t.Helper()
	step := NewSaveEnvStep().(*SaveEnvStep)
	next, _ := step.Update(nextMsg{}, state, 80, 24)
	require.Nil(t, next, "save step should report completion")
	require.NoError(t, step.err)
	return step
}

func TestSaveEnvStep_WritesEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BEEDIARY_RUNTIME_PATH", dir)

	step := runSave(t, saveState("first-key"))
	assert.False(t, step.backedUp)

	content, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "BEE_API_KEY=first-key")
	assert.Contains(t, string(content), "BEEDIARY_TIMEZONE=Europe/Warsaw")
}

func TestSaveEnvStep_RerunKeepsPreviousConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BEEDIARY_RUNTIME_PATH", dir)

	runSave(t, saveState("old-key"))
	step := runSave(t, saveState("rotated-key"))
	assert.True(t, step.backedUp)

	current, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(current), "BEE_API_KEY=rotated-key")

	backup, err := os.ReadFile(filepath.Join(dir, ".env.bak"))
	require.NoError(t, err)
	assert.Contains(t, string(backup), "BEE_API_KEY=old-key")
}
