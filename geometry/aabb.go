package geometry

// AABB2D is a 2D axis-aligned bounding box given by its min and max
// corners. Callers are expected to construct boxes with Min.X <= Max.X
// and Min.Y <= Max.Y; the type does not enforce it. All containment and
// intersection checks use inclusive boundaries.
type AABB2D struct {
	Min Vec2f `json:"min"`
	Max Vec2f `json:"max"`
}

func NewAABB2D(min, max Vec2f) AABB2D {
	return AABB2D{Min: min, Max: max}
}

// AABB2DFromRect builds a box from a corner position and a size.
func AABB2DFromRect(x, y, width, height float32) AABB2D {
	return AABB2D{
		Min: Vec2f{X: x, Y: y},
		Max: Vec2f{X: x + width, Y: y + height},
	}
}

func (a AABB2D) Center() Vec2f {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB2D) Size() Vec2f {
	return a.Max.Sub(a.Min)
}

func (a AABB2D) Width() float32 {
	return a.Max.X - a.Min.X
}

func (a AABB2D) Height() float32 {
	return a.Max.Y - a.Min.Y
}

func (a AABB2D) Area() float32 {
	return a.Width() * a.Height()
}

func (a AABB2D) IsValid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y
}

// ContainsPoint reports whether p lies within a, boundaries included.
func (a AABB2D) ContainsPoint(p Vec2f) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Contains reports whether b lies fully inside a, boundaries included.
func (a AABB2D) Contains(b AABB2D) bool {
	return b.Min.X >= a.Min.X && b.Max.X <= a.Max.X &&
		b.Min.Y >= a.Min.Y && b.Max.Y <= a.Max.Y
}

// Intersects reports whether a and b overlap. Touching edges count as
// intersecting.
func (a AABB2D) Intersects(b AABB2D) bool {
	return !(b.Min.X > a.Max.X || b.Max.X < a.Min.X ||
		b.Min.Y > a.Max.Y || b.Max.Y < a.Min.Y)
}

// IntersectsCircle reports whether the circle at center with the given
// radius overlaps a. Touching counts as intersecting.
func (a AABB2D) IntersectsCircle(center Vec2f, radius float32) bool {
	return CircleAABBIntersect(center, radius, a)
}

// ExpandPoint grows a in place so that it contains p.
func (a *AABB2D) ExpandPoint(p Vec2f) {
	a.Min.X = min(a.Min.X, p.X)
	a.Min.Y = min(a.Min.Y, p.Y)
	a.Max.X = max(a.Max.X, p.X)
	a.Max.Y = max(a.Max.Y, p.Y)
}

// Expand grows a in place so that it contains b.
func (a *AABB2D) Expand(b AABB2D) {
	a.ExpandPoint(b.Min)
	a.ExpandPoint(b.Max)
}

// Union returns the smallest box containing both a and b.
func (a AABB2D) Union(b AABB2D) AABB2D {
	return AABB2D{
		Min: Vec2f{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y)},
		Max: Vec2f{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y)},
	}
}

// Intersection returns the component-wise overlap of a and b. When the
// boxes do not overlap the result is inverted (Min > Max); it is the
// caller's job to treat such a box as empty.
func (a AABB2D) Intersection(b AABB2D) AABB2D {
	return AABB2D{
		Min: Vec2f{X: max(a.Min.X, b.Min.X), Y: max(a.Min.Y, b.Min.Y)},
		Max: Vec2f{X: min(a.Max.X, b.Max.X), Y: min(a.Max.Y, b.Max.Y)},
	}
}

// Subdivide splits a at its center into four quadrants, in the order
// bottom-left, bottom-right, top-left, top-right. Neighboring quadrants
// share their boundary lines.
func (a AABB2D) Subdivide() [4]AABB2D {
	center := a.Center()
	return [4]AABB2D{
		{Min: a.Min, Max: center},
		{Min: Vec2f{X: center.X, Y: a.Min.Y}, Max: Vec2f{X: a.Max.X, Y: center.Y}},
		{Min: Vec2f{X: a.Min.X, Y: center.Y}, Max: Vec2f{X: center.X, Y: a.Max.Y}},
		{Min: center, Max: a.Max},
	}
}
