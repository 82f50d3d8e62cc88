package models

import "fmt"

// EntityID identifies an entity owned by the embedding application. The
// spatial index never allocates or frees entities; it only keys objects
// by their id. The generation counter distinguishes reuses of the same
// numeric slot so stale references can be told apart.
type EntityID struct {
	ID         uint32
	Generation uint16
}

func NewEntityID(id uint32, generation uint16) EntityID {
	return EntityID{ID: id, Generation: generation}
}

// IsValid reports whether e refers to an entity. The zero EntityID is
// the nil reference.
func (e EntityID) IsValid() bool {
	return e.ID != 0
}

func (e *EntityID) Invalidate() {
	*e = EntityID{}
}

func (e EntityID) String() string {
	return fmt.Sprintf("%d.%d", e.ID, e.Generation)
}
