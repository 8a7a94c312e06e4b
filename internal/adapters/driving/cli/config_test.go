package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/cantolabs/fourcorner-cli/internal/adapters/driven/config/file"
)

// setupTestConfigStore backs the config command with a store in a temp
// directory and returns a cleanup.
func setupTestConfigStore(t *testing.T) func() {
	t.Helper()
	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	SetConfigStore(store)
	return func() {
		configStore = nil
	}
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range configCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "show")
	assert.Contains(t, names, "get")
	assert.Contains(t, names, "set")
}

func TestConfigCmd_ErrorsWithoutStore(t *testing.T) {
	oldStore := configStore
	configStore = nil
	defer func() { configStore = oldStore }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config store not configured")
}

func TestConfigShowCmd_ListsSections(t *testing.T) {
	cleanup := setupTestConfigStore(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "[Dataset]")
	assert.Contains(t, output, "[Cache]")
	assert.Contains(t, output, "Config file:")
}

func TestConfigSetThenGet(t *testing.T) {
	cleanup := setupTestConfigStore(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "dataset.delimiter", ","})
	require.NoError(t, rootCmd.Execute())

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "get", "dataset.delimiter"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), ",")
}

func TestConfigSetCmd_ParsesBooleans(t *testing.T) {
	cleanup := setupTestConfigStore(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "cache.enabled", "false"})
	require.NoError(t, rootCmd.Execute())

	value, ok := configStore.Get("cache.enabled")
	require.True(t, ok)
	assert.Equal(t, false, value)

	rootCmd.SetArgs(nil)
}

func TestConfigGetCmd_UnknownKey(t *testing.T) {
	cleanup := setupTestConfigStore(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "get", "no.such.key"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}
