package skilltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsEmbeddedTree(t *testing.T) {
	tree := Get()

	assert.NotEmpty(t, tree.Title)
	require.NotEmpty(t, tree.Nodes)

	ids := map[string]bool{}
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			assert.NotEmpty(t, n.ID)
			assert.NotEmpty(t, n.Title)
			assert.False(t, ids[n.ID], "duplicate node id %q", n.ID)
			ids[n.ID] = true
			walk(n.Children)
		}
	}
	walk(tree.Nodes)
}

func TestGetIsStable(t *testing.T) {
	first := Get()
	second := Get()
	assert.Equal(t, first, second)
}
