package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadGraph_RoundTrip verifies the loader closes the node set: a pure
// target like a2 still gets an (empty) adjacency row.
func TestLoadGraph_RoundTrip(t *testing.T) {
	path := writeGraph(t, `
edges:
  - {from: a0, to: a1, weight: 1, cost: 1, time: 1}
  - {from: a1, to: a2, weight: 1, cost: 1, time: 1}
`)

	g, err := loadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order(), "a2 must get an adjacency row of its own")
	assert.Equal(t, 1.0, g["a0"]["a1"].Weight)
}

// TestLoadGraph_DuplicateEdge verifies multigraph input is rejected rather
// than silently flattened.
func TestLoadGraph_DuplicateEdge(t *testing.T) {
	path := writeGraph(t, `
edges:
  - {from: a0, to: a1, weight: 1}
  - {from: a0, to: a1, weight: 2}
`)

	_, err := loadGraph(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate edge a0→a1")
}

// TestLoadGraph_Empty rejects an edgeless document.
func TestLoadGraph_Empty(t *testing.T) {
	path := writeGraph(t, "edges: []\n")

	_, err := loadGraph(path)
	assert.Error(t, err)
}
