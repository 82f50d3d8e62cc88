package models

import "sync"

// A sequential entity id generator. Released ids are handed out again
// with a bumped generation, in priority over fresh ids.
type EntityIDGenerator struct {
	mutex     sync.Mutex
	currentID uint32
	released  map[uint32]uint16
}

// New returns an entity id that is not currently in use.
func (g *EntityIDGenerator) New() EntityID {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	for id, generation := range g.released {
		delete(g.released, id)
		return EntityID{ID: id, Generation: generation + 1}
	}

	g.currentID++
	return EntityID{ID: g.currentID}
}

// Release marks the given id as reusable. The id slot is returned by a
// later New with its generation increased, which invalidates copies of
// the released id.
func (g *EntityIDGenerator) Release(id EntityID) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.released == nil {
		g.released = make(map[uint32]uint16)
	}

	g.released[id.ID] = id.Generation
}
