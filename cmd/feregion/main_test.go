package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../internal/feregion/testdata/synthetic"

// execute runs the CLI against the synthetic dataset and captures its output.
func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("FEREGION_DATA_DIR", fixtureDir)
	t.Setenv("LOG_LEVEL", "error")
	extentGeoJSON = false

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"regions", "extent", "validate", "classify", "serve"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, flag, "serve command should have --addr flag")
	assert.Empty(t, flag.DefValue)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-122.5", "36.2"}, "Low northwest west"},
		{[]string{"122.5W", "36.2N"}, "Low northwest west"},
		{[]string{"0", "0"}, "Low northeast west"},
		{[]string{"170e", "50.5n"}, "Northern dateline"},
		{[]string{"-170", "-70"}, "Southern dateline"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, stderr, code := execute(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestLookup_WrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{nil, {"10"}, {"1", "2", "3"}} {
		stdout, stderr, code := execute(t, args...)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Usage:  feregion  <lon> <lat>")
		assert.Contains(t, stderr, "As In:  feregion   122.5W 36.2N")
	}
}

func TestHelpFlag(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		stdout, stderr, code := execute(t, flag)

		assert.Equal(t, 0, code, flag)
		assert.Empty(t, stderr, flag)
		assert.Contains(t, stdout, "Flinn-Engdahl", flag)
		assert.Contains(t, stdout, "regions", flag)
	}
}

func TestLookup_IllegalCoordinate(t *testing.T) {
	stdout, stderr, code := execute(t, "abc", "10")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "illegal longitude")
	assert.NotContains(t, stderr, "Usage")
}

func TestLookup_MissingDataset(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FEREGION_DATA_DIR", filepath.Join(t.TempDir(), "missing"))

	var out, errOut bytes.Buffer
	code := run([]string{"1", "1"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "load dataset")
	assert.Contains(t, errOut.String(), "set FEREGION_DATA_DIR")
	assert.Contains(t, errOut.String(), "quadsidx.asc")
	assert.Empty(t, out.String())
}

func TestLookup_IncompleteDataset(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FEREGION_DATA_DIR", t.TempDir())

	var out, errOut bytes.Buffer
	code := run([]string{"1", "1"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "names.asc")
	assert.Contains(t, errOut.String(), "set FEREGION_DATA_DIR")
}

func TestRegions(t *testing.T) {
	stdout, _, code := execute(t, "regions")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 20)
	assert.Equal(t, "   1   1  Low northeast west", lines[0])
	assert.Equal(t, "  20  10  High southwest central", lines[19])
}

func TestExtent(t *testing.T) {
	stdout, _, code := execute(t, "extent", "15")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 46)
	assert.Equal(t, "15 Southern dateline", lines[0])
	assert.Equal(t, " -90  [120, 180] [-120, -180]", lines[1])
	assert.Equal(t, " -46  [120, 180] [-120, -180]", lines[45])
}

func TestExtent_GeoJSON(t *testing.T) {
	stdout, _, code := execute(t, "extent", "5", "--geojson")
	require.Equal(t, 0, code)

	var feature struct {
		Type     string `json:"type"`
		Geometry struct {
			Type        string          `json:"type"`
			Coordinates [][][][]float64 `json:"coordinates"`
		} `json:"geometry"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &feature))
	assert.Equal(t, "Feature", feature.Type)
	assert.Equal(t, "MultiPolygon", feature.Geometry.Type)
	assert.Len(t, feature.Geometry.Coordinates, 90)
}

func TestExtent_UnknownRegion(t *testing.T) {
	_, stderr, code := execute(t, "extent", "21")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "index out of range")

	_, stderr, code = execute(t, "extent", "five")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "not an integer")
}

func TestValidate(t *testing.T) {
	stdout, stderr, code := execute(t, "validate")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "20 regions")
	assert.Contains(t, stdout, "NE 226 entries")
	assert.Contains(t, stdout, "PASS  Phase 1")
	assert.Contains(t, stdout, "PASS  Phase 2")
	assert.NotContains(t, stdout, "FAIL")
}

func TestClassify(t *testing.T) {
	stdout, stderr, code := execute(t, "classify", "../../internal/pipeline/testdata/bulletin.jsonl")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 5)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "gfz2024aaaa", first["id"])
	assert.Equal(t, "Low northwest west", first["region_name"])
	assert.EqualValues(t, 8, first["region_number"])
	assert.Equal(t, "fe1995", first["region_source"])

	var offGlobe map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &offGlobe))
	assert.Equal(t, "gfz2024aaad", offGlobe["id"])
	assert.Equal(t, "failed", offGlobe["region_source"])
	assert.NotContains(t, offGlobe, "geo")
	assert.NotEmpty(t, offGlobe["coordinate_error"])
}

func TestClassify_MissingFile(t *testing.T) {
	_, _, code := execute(t, "classify", filepath.Join(os.TempDir(), "no-such-bulletin.jsonl"))
	assert.Equal(t, 1, code)
}
