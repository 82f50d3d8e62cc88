package geometry

import (
	"github.com/chewxy/math32"
)

// AABB2DFromCenterSize builds a box centered on center with the given
// full size.
func AABB2DFromCenterSize(center, size Vec2f) AABB2D {
	half := size.Mul(0.5)
	return AABB2D{Min: center.Sub(half), Max: center.Add(half)}
}

// AABB2DFromCircle builds the tightest box around a circle.
func AABB2DFromCircle(center Vec2f, radius float32) AABB2D {
	extent := Vec2f{X: radius, Y: radius}
	return AABB2D{Min: center.Sub(extent), Max: center.Add(extent)}
}

// AABB2DFromPoints builds the tightest box around the given points.
// Returns a zero box when points is empty.
func AABB2DFromPoints(points []Vec2f) AABB2D {
	if len(points) == 0 {
		return AABB2D{}
	}
	box := AABB2D{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.ExpandPoint(p)
	}
	return box
}

// CircleAABBIntersect reports whether a circle overlaps a box by
// clamping the circle center onto the box and comparing the remaining
// distance against the radius. Touching counts as intersecting.
func CircleAABBIntersect(center Vec2f, radius float32, box AABB2D) bool {
	closest := Vec2f{
		X: clamp(center.X, box.Min.X, box.Max.X),
		Y: clamp(center.Y, box.Min.Y, box.Max.Y),
	}
	return center.DistanceSquared(closest) <= radius*radius
}

// PointToAABBDistance returns the distance from p to the closest point
// on the box, 0 when p is inside.
func PointToAABBDistance(p Vec2f, box AABB2D) float32 {
	closest := Vec2f{
		X: clamp(p.X, box.Min.X, box.Max.X),
		Y: clamp(p.Y, box.Min.Y, box.Max.Y),
	}
	return p.Distance(closest)
}

// AABBToAABBDistance returns the gap between two boxes, 0 when they
// intersect.
func AABBToAABBDistance(a, b AABB2D) float32 {
	dx := max(0, b.Min.X-a.Max.X, a.Min.X-b.Max.X)
	dy := max(0, b.Min.Y-a.Max.Y, a.Min.Y-b.Max.Y)
	return math32.Sqrt(dx*dx + dy*dy)
}

// RayAABBIntersect performs a slab test of the ray origin+t*dir against
// box. On a hit it returns the entry and exit parameters; tMin is 0
// when the origin is inside the box. Distances are in units of dir's
// length.
func RayAABBIntersect(origin, dir Vec2f, box AABB2D) (tMin, tMax float32, ok bool) {
	tMin = 0
	tMax = math32.Inf(1)

	mins := [2]float32{box.Min.X, box.Min.Y}
	maxs := [2]float32{box.Max.X, box.Max.Y}
	origins := [2]float32{origin.X, origin.Y}
	dirs := [2]float32{dir.X, dir.Y}

	for axis := 0; axis < 2; axis++ {
		if dirs[axis] == 0 {
			if origins[axis] < mins[axis] || origins[axis] > maxs[axis] {
				return 0, 0, false
			}
			continue
		}

		t1 := (mins[axis] - origins[axis]) / dirs[axis]
		t2 := (maxs[axis] - origins[axis]) / dirs[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, 0, false
		}
	}

	return tMin, tMax, true
}

// LineAABBIntersect reports whether the segment from start to end
// crosses or touches the box.
func LineAABBIntersect(start, end Vec2f, box AABB2D) bool {
	tMin, _, ok := RayAABBIntersect(start, end.Sub(start), box)
	return ok && tMin <= 1
}

func clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}
