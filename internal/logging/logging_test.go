package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingTail(t *testing.T) {
	r := NewRing(3)
	for _, line := range []string{"a", "b", "c", "d"} {
		r.append(line)
	}

	// Oldest line fell off the ring.
	assert.Equal(t, []string{"b", "c", "d"}, r.Tail(10))
	assert.Equal(t, []string{"d"}, r.Tail(1))
	assert.Empty(t, NewRing(3).Tail(5))
}

func TestRingHandlerFormatsRecords(t *testing.T) {
	r := NewRing(10)
	logger, closer, err := New("", r)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("page loaded", "path", "/tmp/index.html")
	logger.Warn("resource failed to load", "src", "a.png")

	lines := r.Tail(10)
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO page loaded path=/tmp/index.html", lines[0])
	assert.Equal(t, "WARN resource failed to load src=a.png", lines[1])
}

func TestRingHandlerCarriesWithAttrs(t *testing.T) {
	r := NewRing(10)
	logger, closer, err := New("", r)
	require.NoError(t, err)
	defer closer.Close()

	logger.With("component", "nav").Debug("opened")

	lines := r.Tail(1)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG opened component=nav", lines[0])
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "folio.log")
	r := NewRing(10)

	logger, closer, err := New(path, r)
	require.NoError(t, err)

	logger.Info("hello", "n", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "n=1")

	// The ring saw the same record.
	assert.Equal(t, []string{"INFO hello n=1"}, r.Tail(1))
}
