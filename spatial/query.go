package spatial

import (
	"sort"

	"github.com/SeraphWedd/novage-spatial/geometry"
)

// QueryAABB returns every object in the subtree whose bounds intersect
// the region, by inclusive intersection semantics. Children whose
// bounds cannot contain a match are pruned. Result order follows the
// tree traversal and is unspecified; no duplicates occur because each
// entity lives at exactly one node.
func (q *Quadtree) QueryAABB(region geometry.AABB2D) []Object {
	var results []Object
	q.QueryAABBFunc(region, func(obj Object) {
		results = append(results, obj)
	})
	return results
}

// QueryAABBFunc is the callback form of QueryAABB, avoiding the result
// slice allocation for large result sets.
func (q *Quadtree) QueryAABBFunc(region geometry.AABB2D, fn func(Object)) {
	for _, obj := range q.objects {
		if region.Intersects(obj.Bounds) {
			fn(obj)
		}
	}

	if q.children[0] == nil {
		return
	}
	for _, child := range q.children {
		if child.bounds.Intersects(region) {
			child.QueryAABBFunc(region, fn)
		}
	}
}

// QueryPoint returns every object whose bounds contain the point.
func (q *Quadtree) QueryPoint(point geometry.Vec2f) []Object {
	var results []Object
	q.QueryPointFunc(point, func(obj Object) {
		results = append(results, obj)
	})
	return results
}

func (q *Quadtree) QueryPointFunc(point geometry.Vec2f, fn func(Object)) {
	for _, obj := range q.objects {
		if obj.Bounds.ContainsPoint(point) {
			fn(obj)
		}
	}

	if q.children[0] == nil {
		return
	}
	for _, child := range q.children {
		if child.bounds.ContainsPoint(point) {
			child.QueryPointFunc(point, fn)
		}
	}
}

// QueryCircle returns every object whose bounds intersect the circle.
func (q *Quadtree) QueryCircle(center geometry.Vec2f, radius float32) []Object {
	var results []Object
	q.QueryCircleFunc(center, radius, func(obj Object) {
		results = append(results, obj)
	})
	return results
}

func (q *Quadtree) QueryCircleFunc(center geometry.Vec2f, radius float32, fn func(Object)) {
	for _, obj := range q.objects {
		if obj.Bounds.IntersectsCircle(center, radius) {
			fn(obj)
		}
	}

	if q.children[0] == nil {
		return
	}
	for _, child := range q.children {
		if child.bounds.IntersectsCircle(center, radius) {
			child.QueryCircleFunc(center, radius, fn)
		}
	}
}

// RayHit is one object crossed by a ray.
type RayHit struct {
	Object   Object
	Point    geometry.Vec2f
	Distance float32
}

// Raycast returns every object whose bounds the ray crosses within
// maxDistance, closest first. Distances are in units of dir's length,
// so pass a normalized direction for world-unit distances.
func (q *Quadtree) Raycast(origin, dir geometry.Vec2f, maxDistance float32) []RayHit {
	var hits []RayHit
	q.raycast(origin, dir, maxDistance, func(hit RayHit) {
		hits = append(hits, hit)
	})
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// RaycastFirst returns the closest object crossed by the ray within
// maxDistance.
func (q *Quadtree) RaycastFirst(origin, dir geometry.Vec2f, maxDistance float32) (RayHit, bool) {
	var closest RayHit
	found := false
	q.raycast(origin, dir, maxDistance, func(hit RayHit) {
		if !found || hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	})
	return closest, found
}

func (q *Quadtree) raycast(origin, dir geometry.Vec2f, maxDistance float32, fn func(RayHit)) {
	for _, obj := range q.objects {
		if tMin, _, ok := geometry.RayAABBIntersect(origin, dir, obj.Bounds); ok && tMin <= maxDistance {
			fn(RayHit{
				Object:   obj,
				Point:    origin.Add(dir.Mul(tMin)),
				Distance: tMin,
			})
		}
	}

	if q.children[0] == nil {
		return
	}
	for _, child := range q.children {
		if tMin, _, ok := geometry.RayAABBIntersect(origin, dir, child.bounds); ok && tMin <= maxDistance {
			child.raycast(origin, dir, maxDistance, fn)
		}
	}
}

// Stats summarizes a subtree.
type Stats struct {
	Objects int
	Nodes   int
	Depth   int
}

// Stats walks the subtree once and returns object count, node count and
// the deepest node's depth.
func (q *Quadtree) Stats() Stats {
	var stats Stats
	q.VisitNodes(func(_ geometry.AABB2D, depth int, objects []Object) {
		stats.Nodes++
		stats.Objects += len(objects)
		stats.Depth = max(stats.Depth, depth)
	})
	return stats
}

// VisitNodes calls the visitor for every node in the subtree, parents
// before children, with the node's bounds, depth and locally stored
// objects. The visitor must not mutate the slice.
func (q *Quadtree) VisitNodes(visit func(bounds geometry.AABB2D, depth int, objects []Object)) {
	visit(q.bounds, q.depth, q.objects)
	for _, child := range q.children {
		if child != nil {
			child.VisitNodes(visit)
		}
	}
}

// AllBounds returns the bounds of every node, for debug drawing.
func (q *Quadtree) AllBounds() []geometry.AABB2D {
	bounds := make([]geometry.AABB2D, 0, q.NodeCount())
	q.VisitNodes(func(b geometry.AABB2D, _ int, _ []Object) {
		bounds = append(bounds, b)
	})
	return bounds
}

// Objects returns every object stored in the subtree, in traversal
// order.
func (q *Quadtree) Objects() []Object {
	objects := make([]Object, 0, q.ObjectCount())
	q.VisitNodes(func(_ geometry.AABB2D, _ int, local []Object) {
		objects = append(objects, local...)
	})
	return objects
}
