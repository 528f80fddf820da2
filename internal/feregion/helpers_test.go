package feregion

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const fixtureDir = "testdata/synthetic"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadFixture(t *testing.T) *Index {
	t.Helper()
	idx, err := LoadDir(fixtureDir)
	require.NoError(t, err)
	return idx
}

// fixtureFS copies the synthetic dataset into memory so tests can damage it.
func fixtureFS(t *testing.T) fstest.MapFS {
	t.Helper()
	entries, err := os.ReadDir(fixtureDir)
	require.NoError(t, err)

	fsys := fstest.MapFS{}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(fixtureDir, e.Name()))
		require.NoError(t, err)
		fsys[e.Name()] = &fstest.MapFile{Data: data}
	}
	return fsys
}

func mustCoords(t *testing.T, lat, lon float64) Coordinates {
	t.Helper()
	c, err := NewCoordinates(lat, lon)
	require.NoError(t, err)
	return c
}
