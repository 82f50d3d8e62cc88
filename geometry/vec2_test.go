package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2fArithmetic(t *testing.T) {
	a := NewVec2f(1, 2)
	b := NewVec2f(3, -4)

	require.Equal(t, NewVec2f(4, -2), a.Add(b))
	require.Equal(t, NewVec2f(-2, 6), a.Sub(b))
	require.Equal(t, NewVec2f(2, 4), a.Mul(2))
	require.Equal(t, NewVec2f(0.5, 1), a.Div(2))
	require.Equal(t, float32(-5), a.Dot(b))
}

func TestVec2fLength(t *testing.T) {
	v := NewVec2f(3, 4)

	require.Equal(t, float32(25), v.LengthSquared())
	require.Equal(t, float32(5), v.Length())
	require.Equal(t, float32(5), v.Distance(Vec2f{}))
	require.Equal(t, float32(25), v.DistanceSquared(Vec2f{}))
}

func TestVec2fNormalized(t *testing.T) {
	v := NewVec2f(3, 4).Normalized()
	require.True(t, v.EqualWithEpsilon(NewVec2f(0.6, 0.8), 1e-6))

	require.Equal(t, Vec2f{}, Vec2f{}.Normalized(), "zero vector stays zero")
}

func TestVec2fEqual(t *testing.T) {
	require.True(t, NewVec2f(1, 2).Equal(NewVec2f(1, 2)))
	require.False(t, NewVec2f(1, 2).Equal(NewVec2f(1, 2.1)))
	require.True(t, NewVec2f(1, 2).EqualWithEpsilon(NewVec2f(1.05, 1.95), 0.1))
	require.False(t, NewVec2f(1, 2).EqualWithEpsilon(NewVec2f(1.2, 2), 0.1))
}
