package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetString(t *testing.T) {
	t.Setenv("PORTLOG_TEST_STRING", "value")

	assert.Equal(t, "value", GetString("PORTLOG_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetString("PORTLOG_TEST_MISSING", "fallback"))
}

func TestGetBool(t *testing.T) {
	t.Setenv("PORTLOG_TEST_TRUE", "true")
	t.Setenv("PORTLOG_TEST_GARBAGE", "maybe")

	assert.True(t, GetBool("PORTLOG_TEST_TRUE", false))
	assert.True(t, GetBool("PORTLOG_TEST_GARBAGE", true))
	assert.False(t, GetBool("PORTLOG_TEST_MISSING", false))
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("PORTLOG_TEST_A=from-file\nPORTLOG_TEST_B=from-file\n"), 0o644))

	t.Setenv("PORTLOG_TEST_A", "from-env")
	t.Setenv("PORTLOG_TEST_B", "")
	os.Unsetenv("PORTLOG_TEST_B")
	t.Cleanup(func() { os.Unsetenv("PORTLOG_TEST_B") })

	require.NoError(t, Load(file))

	assert.Equal(t, "from-env", os.Getenv("PORTLOG_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("PORTLOG_TEST_B"))
}

func TestLoad_SkipsMissingFiles(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env"), ""))
}

func TestIsSet(t *testing.T) {
	t.Setenv("PORTLOG_TEST_EMPTY", "")
	t.Setenv("PORTLOG_TEST_FULL", "1:2")

	assert.False(t, IsSet("PORTLOG_TEST_EMPTY"))
	assert.True(t, IsSet("PORTLOG_TEST_FULL"))
}
