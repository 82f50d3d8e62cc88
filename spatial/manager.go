package spatial

import (
	"github.com/google/uuid"

	"github.com/SeraphWedd/novage-spatial/geometry"
	"github.com/SeraphWedd/novage-spatial/models"
)

// Manager is the scene-facing façade over a Quadtree. It tracks the set
// of registered entities and, when auto-expansion is on, grows the
// world bounds as content lands outside them. Because a quadtree's root
// bounds are fixed at construction, growing the world rebuilds the tree
// over the union of the old bounds and the incoming box and swaps the
// new root in.
//
// Like the tree it owns, a Manager is not safe for concurrent mutation.
type Manager struct {
	name       string
	maxObjects int
	maxDepth   int
	autoExpand bool

	tree       *Quadtree
	registered map[models.EntityID]struct{}
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithName sets the label under which the manager's metrics are
// reported. Unnamed managers get a generated one.
func WithName(name string) Option {
	return func(m *Manager) {
		m.name = name
	}
}

// WithMaxObjects sets the per-node subdivision threshold.
func WithMaxObjects(n int) Option {
	return func(m *Manager) {
		m.maxObjects = n
	}
}

// WithMaxDepth sets the quadtree depth cap.
func WithMaxDepth(n int) Option {
	return func(m *Manager) {
		m.maxDepth = n
	}
}

// WithAutoExpand toggles automatic world growth. It is on by default.
func WithAutoExpand(enabled bool) Option {
	return func(m *Manager) {
		m.autoExpand = enabled
	}
}

// NewManager creates a manager over the given initial world bounds.
func NewManager(worldBounds geometry.AABB2D, opts ...Option) *Manager {
	m := &Manager{
		maxObjects: DefaultMaxObjects,
		maxDepth:   DefaultMaxDepth,
		autoExpand: true,
		registered: make(map[models.EntityID]struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.name == "" {
		m.name = uuid.NewString()
	}

	m.tree = NewQuadtree(worldBounds, m.maxObjects, m.maxDepth)
	return m
}

func (m *Manager) Name() string {
	return m.name
}

// Bounds returns the current world bounds.
func (m *Manager) Bounds() geometry.AABB2D {
	return m.tree.Bounds()
}

func (m *Manager) ObjectCount() int {
	return m.tree.ObjectCount()
}

// Registered reports whether entity is currently registered.
func (m *Manager) Registered(entity models.EntityID) bool {
	_, ok := m.registered[entity]
	return ok
}

func (m *Manager) SetAutoExpand(enabled bool) {
	m.autoExpand = enabled
}

func (m *Manager) AutoExpand() bool {
	return m.autoExpand
}

func (m *Manager) InsertObject(obj Object) {
	m.Insert(obj.Entity, obj.Bounds, obj.Data)
}

// Insert registers an entity under the given bounds, growing the world
// first when needed. Insertion is unconditional.
func (m *Manager) Insert(entity models.EntityID, bounds geometry.AABB2D, data any) {
	m.ensureBounds(bounds)
	m.tree.Insert(entity, bounds, data)
	m.registered[entity] = struct{}{}
	instrumentInsert(m.name, len(m.registered))
}

// Remove unregisters an entity. The registered set is cleaned up even
// when the tree reports the entity as absent.
func (m *Manager) Remove(entity models.EntityID) bool {
	removed := m.tree.Remove(entity)
	delete(m.registered, entity)
	instrumentRemove(m.name, len(m.registered))
	return removed
}

// Update moves a registered entity to new bounds, growing the world
// first when needed. The object's payload is kept.
func (m *Manager) Update(entity models.EntityID, bounds geometry.AABB2D) bool {
	m.ensureBounds(bounds)
	ok := m.tree.Update(entity, bounds)
	instrumentUpdate(m.name)
	return ok
}

// Clear empties both the tree and the registered set.
func (m *Manager) Clear() {
	m.tree.Clear()
	clear(m.registered)
	instrumentClear(m.name)
}

// ClearAll is an alias for Clear.
func (m *Manager) ClearAll() {
	m.Clear()
}

// ExpandWorldBounds grows the world to contain the given bounds,
// regardless of the auto-expand setting.
func (m *Manager) ExpandWorldBounds(bounds geometry.AABB2D) {
	m.rebuild(m.tree.Bounds().Union(bounds))
}

func (m *Manager) QueryAABB(region geometry.AABB2D) []Object {
	instrumentQuery(m.name, "aabb")
	return m.tree.QueryAABB(region)
}

func (m *Manager) QueryAABBFunc(region geometry.AABB2D, fn func(Object)) {
	instrumentQuery(m.name, "aabb")
	m.tree.QueryAABBFunc(region, fn)
}

func (m *Manager) QueryPoint(point geometry.Vec2f) []Object {
	instrumentQuery(m.name, "point")
	return m.tree.QueryPoint(point)
}

func (m *Manager) QueryPointFunc(point geometry.Vec2f, fn func(Object)) {
	instrumentQuery(m.name, "point")
	m.tree.QueryPointFunc(point, fn)
}

func (m *Manager) QueryCircle(center geometry.Vec2f, radius float32) []Object {
	instrumentQuery(m.name, "circle")
	return m.tree.QueryCircle(center, radius)
}

func (m *Manager) QueryCircleFunc(center geometry.Vec2f, radius float32, fn func(Object)) {
	instrumentQuery(m.name, "circle")
	m.tree.QueryCircleFunc(center, radius, fn)
}

func (m *Manager) Raycast(origin, dir geometry.Vec2f, maxDistance float32) []RayHit {
	instrumentQuery(m.name, "raycast")
	return m.tree.Raycast(origin, dir, maxDistance)
}

func (m *Manager) RaycastFirst(origin, dir geometry.Vec2f, maxDistance float32) (RayHit, bool) {
	instrumentQuery(m.name, "raycast")
	return m.tree.RaycastFirst(origin, dir, maxDistance)
}

// DebugInfo reports the backing tree's shape under the manager's name.
func (m *Manager) DebugInfo() DebugInfo {
	info := m.tree.DebugInfo()
	info.Name = m.name
	return info
}

// ensureBounds grows the world when an incoming box lands outside it.
func (m *Manager) ensureBounds(bounds geometry.AABB2D) {
	if !m.autoExpand {
		return
	}
	if m.tree.Bounds().Contains(bounds) {
		return
	}
	m.rebuild(m.tree.Bounds().Union(bounds))
}

// rebuild replaces the root with a tree over newBounds, re-inserting
// every stored object. Collection walks the whole tree rather than
// querying the old bounds, so objects already outside them survive the
// rebuild.
func (m *Manager) rebuild(newBounds geometry.AABB2D) {
	objects := m.tree.Objects()

	tree := NewQuadtree(newBounds, m.maxObjects, m.maxDepth)
	for _, obj := range objects {
		tree.InsertObject(obj)
	}
	m.tree = tree
	instrumentRebuild(m.name, tree.NodeCount())
}
