package spatial

import (
	"github.com/chewxy/math32"

	"github.com/SeraphWedd/novage-spatial/geometry"
	"github.com/SeraphWedd/novage-spatial/models"
)

// DefaultCellSize is the HashGrid cell edge length in world units.
const DefaultCellSize = 10.0

type cellKey struct {
	X int32
	Y int32
}

// HashGrid is a uniform-cell broad phase: each object is recorded in
// every cell its bounds touch, and a per-entity map keeps removal and
// update proportional to the touched cells. It trades the quadtree's
// adaptivity for cheap constant-factor updates, which suits worlds with
// evenly spread, frequently moving content.
//
// The grid is unbounded; its Bounds report the extent of the content
// seen so far. Not safe for concurrent mutation.
type HashGrid struct {
	cellSize float32
	cells    map[cellKey][]Object
	stored   map[models.EntityID]Object
	bounds   geometry.AABB2D
}

// NewHashGrid creates a grid with the given cell edge length.
// Non-positive sizes fall back to DefaultCellSize.
func NewHashGrid(cellSize float32) *HashGrid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &HashGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]Object),
		stored:   make(map[models.EntityID]Object),
	}
}

func (g *HashGrid) CellSize() float32 {
	return g.cellSize
}

// Bounds returns the extent of all content inserted so far. It only
// grows; removals do not shrink it.
func (g *HashGrid) Bounds() geometry.AABB2D {
	return g.bounds
}

func (g *HashGrid) ObjectCount() int {
	return len(g.stored)
}

func (g *HashGrid) InsertObject(obj Object) {
	g.Insert(obj.Entity, obj.Bounds, obj.Data)
}

// Insert adds an object to every cell its bounds touch. Re-inserting an
// entity replaces its previous entry.
func (g *HashGrid) Insert(entity models.EntityID, bounds geometry.AABB2D, data any) {
	if _, ok := g.stored[entity]; ok {
		g.Remove(entity)
	}

	obj := Object{Entity: entity, Bounds: bounds, Data: data}
	minCell, maxCell := g.cellRange(bounds)
	for y := minCell.Y; y <= maxCell.Y; y++ {
		for x := minCell.X; x <= maxCell.X; x++ {
			key := cellKey{X: x, Y: y}
			g.cells[key] = append(g.cells[key], obj)
		}
	}

	if len(g.stored) == 0 {
		g.bounds = bounds
	} else {
		g.bounds.Expand(bounds)
	}
	g.stored[entity] = obj
}

// Remove erases the object stored for entity from every cell it
// touches.
func (g *HashGrid) Remove(entity models.EntityID) bool {
	obj, ok := g.stored[entity]
	if !ok {
		return false
	}

	minCell, maxCell := g.cellRange(obj.Bounds)
	for y := minCell.Y; y <= maxCell.Y; y++ {
		for x := minCell.X; x <= maxCell.X; x++ {
			g.removeFromCell(entity, cellKey{X: x, Y: y})
		}
	}

	delete(g.stored, entity)
	return true
}

// Update moves the object stored for entity to new bounds, keeping its
// payload.
func (g *HashGrid) Update(entity models.EntityID, bounds geometry.AABB2D) bool {
	obj, ok := g.stored[entity]
	if !ok {
		return false
	}

	g.Remove(entity)
	g.Insert(entity, bounds, obj.Data)
	return true
}

// Clear empties the grid.
func (g *HashGrid) Clear() {
	g.cells = make(map[cellKey][]Object)
	g.stored = make(map[models.EntityID]Object)
	g.bounds = geometry.AABB2D{}
}

// QueryAABB returns every object whose bounds intersect the region.
// Each object is reported once even when it spans several cells.
func (g *HashGrid) QueryAABB(region geometry.AABB2D) []Object {
	clamped := region.Intersection(g.bounds)
	if !clamped.IsValid() {
		return nil
	}

	var results []Object
	seen := make(map[models.EntityID]struct{})

	minCell, maxCell := g.cellRange(clamped)
	for y := minCell.Y; y <= maxCell.Y; y++ {
		for x := minCell.X; x <= maxCell.X; x++ {
			for _, obj := range g.cells[cellKey{X: x, Y: y}] {
				if _, ok := seen[obj.Entity]; ok {
					continue
				}
				if region.Intersects(obj.Bounds) {
					seen[obj.Entity] = struct{}{}
					results = append(results, obj)
				}
			}
		}
	}
	return results
}

// DebugInfo reports the grid's shape. Occupancy holds the object count
// of every non-empty cell, in unspecified order.
func (g *HashGrid) DebugInfo() DebugInfo {
	info := DebugInfo{
		Kind:      "hashgrid",
		Bounds:    g.bounds,
		Objects:   len(g.stored),
		Nodes:     len(g.cells),
		Occupancy: make([]int, 0, len(g.cells)),
	}
	for _, objects := range g.cells {
		if len(objects) > 0 {
			info.Occupancy = append(info.Occupancy, len(objects))
		}
	}
	return info
}

func (g *HashGrid) cellRange(bounds geometry.AABB2D) (minCell, maxCell cellKey) {
	minCell = g.cellAt(bounds.Min)
	maxCell = g.cellAt(bounds.Max)
	return minCell, maxCell
}

func (g *HashGrid) cellAt(p geometry.Vec2f) cellKey {
	return cellKey{
		X: int32(math32.Floor(p.X / g.cellSize)),
		Y: int32(math32.Floor(p.Y / g.cellSize)),
	}
}

func (g *HashGrid) removeFromCell(entity models.EntityID, key cellKey) {
	objects := g.cells[key]
	for i, obj := range objects {
		if obj.Entity != entity {
			continue
		}

		last := len(objects) - 1
		objects[i] = objects[last]
		objects[last] = Object{}
		objects = objects[:last]

		if len(objects) == 0 {
			delete(g.cells, key)
		} else {
			g.cells[key] = objects
		}
		return
	}
}
