package spatial

import (
	"github.com/SeraphWedd/novage-spatial/geometry"
	"github.com/SeraphWedd/novage-spatial/models"
)

// Object associates an entity with its bounding box. Data is an
// optional caller-managed payload that the index carries around but
// never inspects.
type Object struct {
	Entity models.EntityID
	Bounds geometry.AABB2D
	Data   any
}

func NewObject(entity models.EntityID, bounds geometry.AABB2D, data any) Object {
	return Object{Entity: entity, Bounds: bounds, Data: data}
}

func (o Object) IsValid() bool {
	return o.Entity.IsValid() && o.Bounds.IsValid()
}
