// Package input supplies the raw events fed to the simulation each tick.
package input

import "github.com/milk9111/spritewalk/ecs/component"

// Source yields the raw input events gathered for a tick, in arrival order.
type Source interface {
	Events(tick uint64) ([]component.InputEvent, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(tick uint64) ([]component.InputEvent, error)

func (f SourceFunc) Events(tick uint64) ([]component.InputEvent, error) {
	return f(tick)
}
