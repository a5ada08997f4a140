package system

import (
	"image"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

// Frame is everything the renderer needs to draw one entity for a tick.
type Frame struct {
	Entity   ecs.Entity
	Position component.Transform
	Sheet    string
	Region   image.Rectangle
}

// Sink receives the frames of every tick. Implementations own all drawing.
type Sink interface {
	Present(tick uint64, frames []Frame)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(tick uint64, frames []Frame)

func (f SinkFunc) Present(tick uint64, frames []Frame) {
	f(tick, frames)
}

// RenderSystem collects positioned sprite regions after movement and
// animation have run. It makes no drawing calls.
type RenderSystem struct {
	sink   Sink
	frames []Frame
}

func NewRenderSystem(sink Sink) *RenderSystem {
	return &RenderSystem{sink: sink}
}

func (r *RenderSystem) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}

	r.frames = r.frames[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if s.Region.Empty() {
			return
		}
		r.frames = append(r.frames, Frame{
			Entity:   e,
			Position: *t,
			Sheet:    s.Sheet,
			Region:   s.Region,
		})
	})

	if r.sink != nil {
		r.sink.Present(w.Tick(), r.Frames())
	}
}

// Frames returns a copy of the frames collected on the last update.
func (r *RenderSystem) Frames() []Frame {
	if r == nil {
		return nil
	}
	return append([]Frame(nil), r.frames...)
}
