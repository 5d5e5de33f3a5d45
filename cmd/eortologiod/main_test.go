package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCLI(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		cli, err := parseCLI(nil, &stdout, &stderr)
		require.NoError(t, err)

		assert.Equal(t, ":8000", cli.Addr)
		assert.Equal(t, "https://www.eortologio.net", cli.BaseURL)
		assert.Equal(t, 15*time.Second, cli.Timeout)
		assert.Equal(t, 6*time.Hour, cli.CacheTTL)
		assert.Equal(t, 2.0, cli.RPS)
		assert.False(t, cli.Warm)
	})

	t.Run("overrides from flags", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		cli, err := parseCLI([]string{"--addr", ":9000", "--cache-ttl", "1h", "--warm"}, &stdout, &stderr)
		require.NoError(t, err)

		assert.Equal(t, ":9000", cli.Addr)
		assert.Equal(t, time.Hour, cli.CacheTTL)
		assert.True(t, cli.Warm)
	})

	t.Run("rejects unknown flags", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		_, err := parseCLI([]string{"--nope"}, &stdout, &stderr)
		assert.Error(t, err)
	})
}
