package system

import (
	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

// MovementSystem moves entities speed units per tick along their current
// direction. Speed is already per tick so no frame time is involved.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, motion *component.Motion, t *component.Transform) {
		d, ok := motion.Current()
		if !ok {
			return
		}
		*t = t.Offset(Step(d, motion.Speed))
	})
}

// Step returns the position delta for one tick.
func Step(d component.Direction, speed int) (dx, dy int) {
	ux, uy := d.Delta()
	return ux * speed, uy * speed
}
