package system

import (
	"image"
	"testing"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

func TestRenderSystemCollectsDrawableSprites(t *testing.T) {
	w := ecs.NewWorld()

	drawn := ecs.CreateEntity(w)
	_ = ecs.Add(w, drawn, component.TransformComponent.Kind(), &component.Transform{X: 3, Y: 4})
	_ = ecs.Add(w, drawn, component.SpriteComponent.Kind(), &component.Sprite{Sheet: "a.png", Region: image.Rect(0, 0, 2, 2)})

	blank := ecs.CreateEntity(w)
	_ = ecs.Add(w, blank, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(w, blank, component.SpriteComponent.Kind(), &component.Sprite{Sheet: "a.png"})

	var got []Frame
	r := NewRenderSystem(SinkFunc(func(tick uint64, frames []Frame) {
		got = frames
	}))
	r.Update(w)

	if len(got) != 1 || got[0].Entity != drawn || got[0].Position != (component.Transform{X: 3, Y: 4}) {
		t.Fatalf("sink frames = %+v", got)
	}

	got[0].Sheet = "mutated"
	if r.Frames()[0].Sheet != "a.png" {
		t.Fatalf("sink should receive a copy")
	}
}
