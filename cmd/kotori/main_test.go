package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"kotori", "routes", "--tree"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Equal(t, "GET/hello\nPOST/hello/world\n\n/\n\tGET/hello *\n\tPOST/hello/world *\n", stdout.String())
}

func TestRoutesFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kotori.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[route]]
method = "GET"
path = "/hello/world"

[[route]]
method = "GET"
path = "/hello/you"
`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"kotori", "routes", "-c", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "GET/hello/world\nGET/hello/you\n", stdout.String())
}

func TestRoutesDuplicateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kotori.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[route]]
method = "GET"
path = "/a"

[[route]]
method = "GET"
path = "a"
`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"kotori", "routes", "--config", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "duplicate route")
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"kotori", "serve", "--listen", "127.0.0.1:0", "--log-level", "debug"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stderr.String(), "routes installed")
	assert.Contains(t, stderr.String(), "server stopped")
}

func TestServeInvalidLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"kotori", "serve", "--log-level", "loud"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid log level")
}
