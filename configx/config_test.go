package configx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		c, err := New(DisableEnvLoading())
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL)
		assert.Equal(t, time.Second, c.PollInterval)
		assert.Equal(t, 10*time.Second, c.RequestTimeout)
		assert.Equal(t, time.Second, c.RedirectDelay)
	})

	t.Run("should load a yaml file over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: http://topics.internal:9000\npoll_interval: 250ms\n"), 0o600))

		c, err := New(WithConfigFiles(path), DisableEnvLoading())
		require.NoError(t, err)
		assert.Equal(t, "http://topics.internal:9000", c.BaseURL)
		assert.Equal(t, 250*time.Millisecond, c.PollInterval)
		assert.Equal(t, 10*time.Second, c.RequestTimeout)
	})

	t.Run("should let env vars override the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: http://topics.internal:9000\n"), 0o600))
		t.Setenv("TOPICBOARD_BASE_URL", "http://override:8000")

		c, err := New(WithConfigFiles(path))
		require.NoError(t, err)
		assert.Equal(t, "http://override:8000", c.BaseURL)
	})

	t.Run("should let forced values win", func(t *testing.T) {
		c, err := New(DisableEnvLoading(), WithValue("poll_interval", 50*time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, 50*time.Millisecond, c.PollInterval)
	})

	t.Run("should reject a non-positive poll interval", func(t *testing.T) {
		_, err := New(DisableEnvLoading(), WithValue("poll_interval", "0s"))
		assert.Error(t, err)
	})

	t.Run("should reject an empty base url", func(t *testing.T) {
		_, err := New(DisableEnvLoading(), WithValue("base_url", ""))
		assert.Error(t, err)
	})
}
