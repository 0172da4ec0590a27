package adjacency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddRemove(t *testing.T) {
	env := New(4)

	assert.True(t, env.Add(0, 1), "first add must report a change")
	assert.False(t, env.Add(0, 1), "re-adding an existing edge reports no change")

	assert.Contains(t, env.Neighbors(0), int64(1))
	assert.Contains(t, env.Neighbors(1), int64(0))

	assert.True(t, env.Remove(0, 1), "first remove must report a change")
	assert.False(t, env.Remove(0, 1), "removing an absent edge reports no change")

	assert.Empty(t, env.Neighbors(0))
	assert.Empty(t, env.Neighbors(1))
}

func TestAllEdgesOrder(t *testing.T) {
	env := New(4)
	env.Add(2, 1)
	env.Add(0, 3)
	env.Add(0, 1)

	got := env.AllEdges()
	want := []Edge{{0, 1}, {0, 3}, {1, 2}}
	assert.Equal(t, want, got, "AllEdges must emit lower-id-first, ascending by (lower, higher)")
}

func TestAllEdgesNoDuplicates(t *testing.T) {
	env := New(3)
	env.Add(0, 1)
	env.Add(1, 2)
	env.Add(0, 2)

	got := env.AllEdges()
	assert.Len(t, got, 3)
	seen := make(map[Edge]bool)
	for _, e := range got {
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
		assert.True(t, e.A < e.B, "edge %v must have A < B", e)
	}
}
