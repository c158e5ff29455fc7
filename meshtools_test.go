package meshtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.
func TestConvexHull(t *testing.T) {
	points := []Vector{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.1, 0.1, 0.1},
	}

	faces, vertices, err := ConvexHull(points)
	require.NoError(t, err)
	assert.Len(t, faces, 4)
	assert.Equal(t, points[:4], vertices)
}

func TestConvexHullErrors(t *testing.T) {
	_, _, err := ConvexHull([]Vector{{0, 0, 0}, {1, 1, 1}})
	assert.True(t, IsInsufficient(err))
	assert.False(t, IsDegenerate(err))

	_, _, err = ConvexHull([]Vector{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}})
	assert.True(t, IsDegenerate(err))
	assert.False(t, IsInsufficient(err))
}

func TestTetrahedralize(t *testing.T) {
	points := []Vector{{1, 2, 3}}
	d, err := Tetrahedralize(points, 100)
	require.NoError(t, err)
	assert.Len(t, d.Tetras(), 5)
	assert.Len(t, d.Leaves(), 4)
	assert.Equal(t, points, d.OrigVertices())

	_, err = Tetrahedralize(points, 0)
	assert.True(t, IsDegenerate(err))
}
