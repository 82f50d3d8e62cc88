package spatial

import (
	"github.com/SeraphWedd/novage-spatial/geometry"
	"github.com/SeraphWedd/novage-spatial/models"
)

const (
	// DefaultMaxObjects is the per-node object count above which a leaf
	// subdivides.
	DefaultMaxObjects = 8

	// DefaultMaxDepth caps subdivision depth.
	DefaultMaxDepth = 8
)

// Quadrant indices, matching the order of geometry.AABB2D.Subdivide.
const (
	quadBottomLeft = iota
	quadBottomRight
	quadTopLeft
	quadTopRight
	quadNone = -1
)

// Quadtree is a recursive spatial index over bounding-box tagged
// entities. A node starts as a leaf storing objects directly; once its
// object count exceeds maxObjects it subdivides into four children and
// pushes down every object that fits entirely inside one quadrant.
// Objects straddling the center stay at the node. Subdivision is
// one-way: emptied children are never merged back.
//
// The tree is not safe for concurrent mutation.
type Quadtree struct {
	bounds     geometry.AABB2D
	maxObjects int
	maxDepth   int
	depth      int

	objects  []Object
	children [4]*Quadtree
}

// NewQuadtree creates a quadtree over the given bounds. Non-positive
// maxObjects and negative maxDepth fall back to the defaults.
func NewQuadtree(bounds geometry.AABB2D, maxObjects, maxDepth int) *Quadtree {
	if maxObjects <= 0 {
		maxObjects = DefaultMaxObjects
	}
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Quadtree{
		bounds:     bounds,
		maxObjects: maxObjects,
		maxDepth:   maxDepth,
	}
}

func (q *Quadtree) Bounds() geometry.AABB2D {
	return q.bounds
}

func (q *Quadtree) MaxObjects() int {
	return q.maxObjects
}

func (q *Quadtree) MaxDepth() int {
	return q.maxDepth
}

func (q *Quadtree) IsEmpty() bool {
	return len(q.objects) == 0 && q.children[0] == nil
}

func (q *Quadtree) InsertObject(obj Object) {
	q.Insert(obj.Entity, obj.Bounds, obj.Data)
}

// Insert adds an object to the subtree. It never fails: objects that do
// not fit a single child quadrant are stored at the node itself, and
// maxDepth bounds the recursion.
func (q *Quadtree) Insert(entity models.EntityID, bounds geometry.AABB2D, data any) {
	if q.children[0] != nil {
		if index := q.childIndex(bounds); index != quadNone {
			q.children[index].Insert(entity, bounds, data)
			return
		}
	}

	q.objects = append(q.objects, Object{Entity: entity, Bounds: bounds, Data: data})

	if q.children[0] == nil && q.depth < q.maxDepth && len(q.objects) > q.maxObjects {
		q.subdivide()
	}
}

// Remove erases the object stored for entity anywhere in the subtree.
// Emptied children are not pruned.
func (q *Quadtree) Remove(entity models.EntityID) bool {
	_, ok := q.take(entity)
	return ok
}

// Update moves the object stored for entity to new bounds, keeping its
// payload. Reports false if the entity is not in the subtree.
func (q *Quadtree) Update(entity models.EntityID, bounds geometry.AABB2D) bool {
	obj, ok := q.take(entity)
	if !ok {
		return false
	}

	q.Insert(entity, bounds, obj.Data)
	return true
}

// Clear empties the subtree, returning the node to leaf state.
func (q *Quadtree) Clear() {
	q.objects = nil
	q.children = [4]*Quadtree{}
}

// ObjectCount returns the number of objects in the subtree.
func (q *Quadtree) ObjectCount() int {
	count := len(q.objects)
	for _, child := range q.children {
		if child != nil {
			count += child.ObjectCount()
		}
	}
	return count
}

// NodeCount returns the number of nodes in the subtree, including q.
func (q *Quadtree) NodeCount() int {
	count := 1
	for _, child := range q.children {
		if child != nil {
			count += child.NodeCount()
		}
	}
	return count
}

// take removes and returns the object stored for entity. The node's own
// list is scanned first, then the children in creation order.
func (q *Quadtree) take(entity models.EntityID) (Object, bool) {
	for i, obj := range q.objects {
		if obj.Entity == entity {
			last := len(q.objects) - 1
			q.objects[i] = q.objects[last]
			q.objects[last] = Object{} // drop payload reference
			q.objects = q.objects[:last]
			return obj, true
		}
	}

	if q.children[0] != nil {
		for _, child := range q.children {
			if obj, ok := child.take(entity); ok {
				return obj, true
			}
		}
	}

	return Object{}, false
}

// subdivide turns a leaf into an internal node and redistributes every
// locally held object that fits a single child quadrant.
func (q *Quadtree) subdivide() {
	childBounds := q.bounds.Subdivide()
	for i := range q.children {
		q.children[i] = &Quadtree{
			bounds:     childBounds[i],
			maxObjects: q.maxObjects,
			maxDepth:   q.maxDepth,
			depth:      q.depth + 1,
		}
	}

	remaining := q.objects[:0]
	for _, obj := range q.objects {
		if index := q.childIndex(obj.Bounds); index != quadNone {
			q.children[index].InsertObject(obj)
		} else {
			remaining = append(remaining, obj)
		}
	}
	for i := len(remaining); i < len(q.objects); i++ {
		q.objects[i] = Object{}
	}
	q.objects = remaining
}

// childIndex classifies a box against the node center. A box maps to a
// quadrant only when that quadrant fully contains it; boxes straddling
// the center on either axis yield quadNone and stay at the node. Boxes
// degenerated onto the center lines resolve in the order bottom-right,
// bottom-left, top-right, top-left.
func (q *Quadtree) childIndex(bounds geometry.AABB2D) int {
	center := q.bounds.Center()
	bottom := bounds.Max.Y <= center.Y
	top := bounds.Min.Y >= center.Y
	left := bounds.Max.X <= center.X
	right := bounds.Min.X >= center.X

	switch {
	case bottom && right:
		return quadBottomRight
	case bottom && left:
		return quadBottomLeft
	case top && right:
		return quadTopRight
	case top && left:
		return quadTopLeft
	}
	return quadNone
}

// DebugInfo reports the subtree's shape. Occupancy holds the local
// object count of every node in visit order.
func (q *Quadtree) DebugInfo() DebugInfo {
	stats := q.Stats()
	info := DebugInfo{
		Kind:      "quadtree",
		Bounds:    q.bounds,
		Objects:   stats.Objects,
		Nodes:     stats.Nodes,
		Depth:     stats.Depth,
		Occupancy: make([]int, 0, stats.Nodes),
	}
	q.VisitNodes(func(_ geometry.AABB2D, _ int, objects []Object) {
		info.Occupancy = append(info.Occupancy, len(objects))
	})
	return info
}
