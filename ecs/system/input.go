package system

import (
	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

// InputSystem applies the events queued since the last tick, in arrival
// order, to every keyboard controlled entity.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}

	entities := w.Query(
		component.KeyboardControlledComponent.Kind(),
		component.MotionComponent.Kind(),
	)
	for _, evt := range events {
		if evt.Kind == component.InputQuit {
			w.RequestQuit()
			continue
		}
		for _, e := range entities {
			motion, ok := ecs.Get(w, e, component.MotionComponent.Kind())
			if !ok {
				continue
			}
			player := component.DefaultPlayer()
			if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
				player = *p
			}
			ApplyInput(motion, player, evt)
		}
	}
}

// ApplyInput resolves one raw event against m. Auto-repeat events, unknown
// kinds and invalid directions leave m untouched. It reports whether m
// changed.
func ApplyInput(m *component.Motion, p component.Player, evt component.InputEvent) bool {
	if m == nil || evt.Repeat || !evt.Direction.Valid() {
		return false
	}
	switch evt.Kind {
	case component.InputKeyDown:
		return Press(m, p, evt.Direction)
	case component.InputKeyUp:
		return Release(m, p, evt.Direction)
	}
	return false
}

// Press records d as held and sets the movement speed. Under
// PolicyCancelOpposite, pressing the opposite of the current direction
// records d but stops the entity.
func Press(m *component.Motion, p component.Player, d component.Direction) bool {
	if m == nil || !d.Valid() || m.Stack.Contains(d) {
		return false
	}

	speed := p.MoveSpeed
	if p.Policy == component.PolicyCancelOpposite {
		if cur, ok := m.Stack.Current(); ok && cur == d.Opposite() {
			speed = 0
		}
	}

	m.Stack.Push(d)
	m.Speed = speed
	return true
}

// Release drops d from wherever it sits in the stack. Emptying the stack
// stops the entity and remembers d for the idle row; otherwise motion
// continues toward the new tail.
func Release(m *component.Motion, p component.Player, d component.Direction) bool {
	if m == nil || !m.Stack.Remove(d) {
		return false
	}
	if m.Stack.Len() == 0 {
		m.LastDirection = d
		m.Speed = 0
		return true
	}
	m.Speed = p.MoveSpeed
	return true
}
