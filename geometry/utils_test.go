package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircleAABBIntersect(t *testing.T) {
	box := NewAABB2D(Vec2f{X: 0, Y: 0}, Vec2f{X: 10, Y: 10})

	t.Run("center inside", func(t *testing.T) {
		require.True(t, CircleAABBIntersect(Vec2f{X: 5, Y: 5}, 1, box))
	})

	t.Run("overlapping an edge", func(t *testing.T) {
		require.True(t, CircleAABBIntersect(Vec2f{X: 12, Y: 5}, 3, box))
	})

	t.Run("touching counts as intersecting", func(t *testing.T) {
		require.True(t, CircleAABBIntersect(Vec2f{X: 12, Y: 5}, 2, box))
	})

	t.Run("outside", func(t *testing.T) {
		require.False(t, CircleAABBIntersect(Vec2f{X: 12, Y: 5}, 1.9, box))
		// close to a corner but not quite: the corner distance is
		// sqrt(2) > 1.4
		require.False(t, CircleAABBIntersect(Vec2f{X: 11, Y: 11}, 1.4, box))
		require.True(t, CircleAABBIntersect(Vec2f{X: 11, Y: 11}, 1.5, box))
	})
}

func TestPointToAABBDistance(t *testing.T) {
	box := NewAABB2D(Vec2f{X: 0, Y: 0}, Vec2f{X: 10, Y: 10})

	require.Equal(t, float32(0), PointToAABBDistance(Vec2f{X: 5, Y: 5}, box))
	require.Equal(t, float32(0), PointToAABBDistance(Vec2f{X: 10, Y: 10}, box))
	require.Equal(t, float32(2), PointToAABBDistance(Vec2f{X: 12, Y: 5}, box))
	require.InDelta(t, 1.4142135, PointToAABBDistance(Vec2f{X: 11, Y: 11}, box), 1e-5)
}

func TestAABBToAABBDistance(t *testing.T) {
	a := NewAABB2D(Vec2f{X: 0, Y: 0}, Vec2f{X: 10, Y: 10})

	require.Equal(t, float32(0), AABBToAABBDistance(a, NewAABB2D(Vec2f{X: 5, Y: 5}, Vec2f{X: 15, Y: 15})))
	require.Equal(t, float32(0), AABBToAABBDistance(a, NewAABB2D(Vec2f{X: 10, Y: 0}, Vec2f{X: 20, Y: 10})))
	require.Equal(t, float32(5), AABBToAABBDistance(a, NewAABB2D(Vec2f{X: 15, Y: 0}, Vec2f{X: 20, Y: 10})))
	require.InDelta(t, 7.0710678, AABBToAABBDistance(a, NewAABB2D(Vec2f{X: 15, Y: 15}, Vec2f{X: 20, Y: 20})), 1e-5)
}

func TestRayAABBIntersect(t *testing.T) {
	box := NewAABB2D(Vec2f{X: 0, Y: 0}, Vec2f{X: 10, Y: 10})

	t.Run("hit", func(t *testing.T) {
		tMin, tMax, ok := RayAABBIntersect(Vec2f{X: -5, Y: 5}, Vec2f{X: 1, Y: 0}, box)
		require.True(t, ok)
		require.Equal(t, float32(5), tMin)
		require.Equal(t, float32(15), tMax)
	})

	t.Run("origin inside hits at zero", func(t *testing.T) {
		tMin, tMax, ok := RayAABBIntersect(Vec2f{X: 5, Y: 5}, Vec2f{X: 1, Y: 0}, box)
		require.True(t, ok)
		require.Equal(t, float32(0), tMin)
		require.Equal(t, float32(5), tMax)
	})

	t.Run("box behind the origin misses", func(t *testing.T) {
		_, _, ok := RayAABBIntersect(Vec2f{X: -5, Y: 5}, Vec2f{X: -1, Y: 0}, box)
		require.False(t, ok)
	})

	t.Run("parallel miss", func(t *testing.T) {
		_, _, ok := RayAABBIntersect(Vec2f{X: -5, Y: 20}, Vec2f{X: 1, Y: 0}, box)
		require.False(t, ok)
	})

	t.Run("diagonal hit", func(t *testing.T) {
		tMin, _, ok := RayAABBIntersect(Vec2f{X: -1, Y: -1}, Vec2f{X: 1, Y: 1}, box)
		require.True(t, ok)
		require.Equal(t, float32(1), tMin)
	})
}

func TestLineAABBIntersect(t *testing.T) {
	box := NewAABB2D(Vec2f{X: 0, Y: 0}, Vec2f{X: 10, Y: 10})

	require.True(t, LineAABBIntersect(Vec2f{X: -5, Y: 5}, Vec2f{X: 5, Y: 5}, box))
	require.True(t, LineAABBIntersect(Vec2f{X: 2, Y: 2}, Vec2f{X: 8, Y: 8}, box), "segment fully inside")
	require.False(t, LineAABBIntersect(Vec2f{X: -5, Y: 5}, Vec2f{X: -1, Y: 5}, box), "segment stops short")
	require.False(t, LineAABBIntersect(Vec2f{X: -5, Y: 20}, Vec2f{X: 15, Y: 20}, box))
}

func TestAABB2DConstructors(t *testing.T) {
	t.Run("from center and size", func(t *testing.T) {
		box := AABB2DFromCenterSize(Vec2f{X: 5, Y: 5}, Vec2f{X: 4, Y: 2})
		require.Equal(t, NewAABB2D(Vec2f{X: 3, Y: 4}, Vec2f{X: 7, Y: 6}), box)
	})

	t.Run("from circle", func(t *testing.T) {
		box := AABB2DFromCircle(Vec2f{X: 0, Y: 0}, 3)
		require.Equal(t, NewAABB2D(Vec2f{X: -3, Y: -3}, Vec2f{X: 3, Y: 3}), box)
	})

	t.Run("from points", func(t *testing.T) {
		box := AABB2DFromPoints([]Vec2f{{X: 3, Y: -1}, {X: -2, Y: 4}, {X: 1, Y: 1}})
		require.Equal(t, NewAABB2D(Vec2f{X: -2, Y: -1}, Vec2f{X: 3, Y: 4}), box)

		require.Equal(t, AABB2D{}, AABB2DFromPoints(nil))
	})
}
