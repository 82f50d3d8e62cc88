package spatial

import (
	"github.com/SeraphWedd/novage-spatial/geometry"
	"github.com/SeraphWedd/novage-spatial/models"
)

// DebugInfo is a snapshot of a partition's shape, meant for debug
// surfaces and tooling.
type DebugInfo struct {
	Kind      string          `json:"kind"`
	Name      string          `json:"name,omitempty"`
	Bounds    geometry.AABB2D `json:"bounds"`
	Objects   int             `json:"objects"`
	Nodes     int             `json:"nodes"`
	Depth     int             `json:"depth"`
	Occupancy []int           `json:"occupancy,omitempty"`
}

// Partition is the broad-phase contract shared by the spatial index
// implementations. Implementations are not safe for concurrent
// mutation; the embedding application serializes access.
type Partition interface {
	// InsertObject and Insert add an object. Insertion is
	// unconditional and never fails.
	InsertObject(obj Object)
	Insert(entity models.EntityID, bounds geometry.AABB2D, data any)

	// Remove erases the object stored for entity, reporting whether it
	// was present.
	Remove(entity models.EntityID) bool

	// Update moves the object stored for entity to new bounds,
	// reporting whether it was present. The object's payload is kept.
	Update(entity models.EntityID, bounds geometry.AABB2D) bool

	// Clear empties the partition.
	Clear()

	// QueryAABB returns every stored object whose bounds intersect the
	// region, in unspecified order and without duplicates.
	QueryAABB(region geometry.AABB2D) []Object

	ObjectCount() int
	Bounds() geometry.AABB2D
	DebugInfo() DebugInfo
}

var (
	_ Partition = (*Quadtree)(nil)
	_ Partition = (*HashGrid)(nil)
	_ Partition = (*Manager)(nil)
)
