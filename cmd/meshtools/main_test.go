package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/meshtools/geom"
	"github.com/osuushi/meshtools/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cube = `# unit cube with its center
0 0 0
1 0 0
0 1 0
1 1 0

0 0 1
1 0 1
0 1 1
1 1 1
0.5 0.5 0.5
`

func runCommand(t *testing.T, input string, args ...string) (string, string) {
	var stdout, stderr bytes.Buffer
	args = append([]string{"--no-color"}, args...)
	require.NoError(t, run(args, strings.NewReader(input), &stdout, &stderr))
	return stdout.String(), stderr.String()
}

func TestReadPoints(t *testing.T) {
	points, err := readPoints(strings.NewReader("1 2 3\n\n  # comment\n4,5,6\n-1e3 0.5 .25\n"))
	require.NoError(t, err)
	assert.Equal(t, []geom.Vector{{1, 2, 3}, {4, 5, 6}, {-1000, 0.5, 0.25}}, points)

	_, err = readPoints(strings.NewReader("1 2 3\n1 2\n"))
	assert.ErrorContains(t, err, "line 2")
	_, err = readPoints(strings.NewReader("1 2 x\n"))
	assert.ErrorContains(t, err, "line 1")
}

func TestHullOBJ(t *testing.T) {
	stdout, stderr := runCommand(t, cube, "hull", "--validate")
	assert.True(t, strings.HasPrefix(stdout, "o hull\n"))
	assert.Equal(t, 8, strings.Count(stdout, "\nv "))
	assert.Equal(t, 12, strings.Count(stdout, "\nf "))
	assert.Contains(t, stderr, "9 points, 8 hull vertices, 12 faces, volume 1")
}

func TestHullJSON(t *testing.T) {
	stdout, _ := runCommand(t, cube, "--format", "json", "hull")
	var m mesh.Mesh
	require.NoError(t, json.Unmarshal([]byte(stdout), &m))
	assert.Equal(t, "hull", m.Name)
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.TriangleCount())
}

func TestHullError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"hull"}, strings.NewReader("0 0 0\n1 1 1\n2 2 2\n"), &stdout, &stderr)
	assert.ErrorContains(t, err, "degenerate")
	assert.Empty(t, stdout.String())
}

func TestDelaunay(t *testing.T) {
	_, stderr := runCommand(t, "1 2 3\n", "delaunay", "--max", "100")
	assert.Contains(t, stderr, "1 points, 5 tetras, 4 leaves, 0 exported, 0 skipped")

	stdout, _ := runCommand(t, "1 2 3\n", "--format", "json", "delaunay", "--max", "100", "--with-bounds")
	var m mesh.Mesh
	require.NoError(t, json.Unmarshal([]byte(stdout), &m))
	assert.Equal(t, 16, m.TriangleCount())
	assert.Equal(t, 5, m.VertexCount())
}

func TestDelaunayStrict(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"delaunay", "--max", "1", "--strict"}, strings.NewReader("0.3 0.1 0\n2 0.5 0.2\n"), &stdout, &stderr)
	assert.ErrorContains(t, err, "outside")

	// Without a bound, the largest coordinate is used
	_, log := runCommand(t, "0.3 0.1 0\n2 0.5 0.2\n", "delaunay", "--strict")
	assert.Contains(t, log, "0 skipped")
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hull.png")
	runCommand(t, cube, "--png", path, "--size", "64", "hull")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	var stdout, stderr bytes.Buffer
	err = run([]string{"--imgcat", "hull"}, strings.NewReader(cube), &stdout, &stderr)
	assert.ErrorContains(t, err, "--png")
}

func TestImgcatKeepsStdoutClean(t *testing.T) {
	plain, _ := runCommand(t, cube, "hull")

	path := filepath.Join(t.TempDir(), "hull.png")
	stdout, stderr := runCommand(t, cube, "--png", path, "--size", "64", "--imgcat", "hull")
	assert.Equal(t, plain, stdout)
	assert.NotContains(t, stdout, "\033]1337")
	assert.Contains(t, stderr, "\033]1337;File=;inline=1:")
}
