package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("loads file from ENV_PATH", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("RANK_METRICS_DOTENV_TEST=loaded\n"), 0644))
		t.Setenv("ENV_PATH", path)
		t.Cleanup(func() { _ = os.Unsetenv("RANK_METRICS_DOTENV_TEST") })

		require.NoError(t, LoadDotEnv("local", ""))
		assert.Equal(t, "loaded", os.Getenv("RANK_METRICS_DOTENV_TEST"))
	})

	t.Run("missing file in local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		err := LoadDotEnv("local", filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})

	t.Run("missing file outside local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		err := LoadDotEnv("production", filepath.Join(t.TempDir(), "missing.env"))
		assert.NoError(t, err)
	})
}

func TestString(t *testing.T) {
	t.Setenv("RANK_METRICS_STRING_TEST", "")
	assert.Equal(t, "fallback", String("RANK_METRICS_STRING_TEST", "fallback"))

	t.Setenv("RANK_METRICS_STRING_TEST", "set")
	assert.Equal(t, "set", String("RANK_METRICS_STRING_TEST", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("RANK_METRICS_INT_TEST", "")
	n, err := Int("RANK_METRICS_INT_TEST", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("RANK_METRICS_INT_TEST", "12")
	n, err = Int("RANK_METRICS_INT_TEST", 7)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	t.Setenv("RANK_METRICS_INT_TEST", "twelve")
	_, err = Int("RANK_METRICS_INT_TEST", 7)
	assert.ErrorContains(t, err, "RANK_METRICS_INT_TEST must be a number")
}
