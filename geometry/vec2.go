package geometry

import (
	"github.com/chewxy/math32"
)

// Vec2f is a 2D point or vector with float32 components.
type Vec2f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func NewVec2f(x, y float32) Vec2f {
	return Vec2f{X: x, Y: y}
}

func (v Vec2f) Add(o Vec2f) Vec2f {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v Vec2f) Sub(o Vec2f) Vec2f {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v Vec2f) Mul(factor float32) Vec2f {
	v.X *= factor
	v.Y *= factor
	return v
}

func (v Vec2f) Div(divisor float32) Vec2f {
	return v.Mul(1.0 / divisor)
}

func (v Vec2f) Dot(o Vec2f) float32 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2f) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vec2f) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

func (v Vec2f) DistanceSquared(o Vec2f) float32 {
	return v.Sub(o).LengthSquared()
}

func (v Vec2f) Distance(o Vec2f) float32 {
	return v.Sub(o).Length()
}

// Normalized returns a unit-length copy of v, or the zero vector if v
// has no length.
func (v Vec2f) Normalized() Vec2f {
	length := v.Length()
	if length == 0 {
		return Vec2f{}
	}
	return v.Div(length)
}

func (v Vec2f) Equal(o Vec2f) bool {
	return v.X == o.X && v.Y == o.Y
}

func (v Vec2f) EqualWithEpsilon(o Vec2f, epsilon float32) bool {
	return math32.Abs(v.X-o.X) <= epsilon && math32.Abs(v.Y-o.Y) <= epsilon
}
