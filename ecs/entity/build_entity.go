package entity

import (
	"fmt"
	"image"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
	"github.com/milk9111/spritewalk/prefabs"
)

// CharacterAnimationFrames cuts count frames from one sheet row. The row is
// offset from the top-left frame by whole frame heights and columns step by
// the frame width.
func CharacterAnimationFrames(topLeft image.Rectangle, row, count int) []image.Rectangle {
	w, h := topLeft.Dx(), topLeft.Dy()
	y := topLeft.Min.Y + h*row

	frames := make([]image.Rectangle, 0, count)
	for i := 0; i < count; i++ {
		x := topLeft.Min.X + w*i
		frames = append(frames, image.Rect(x, y, x+w, y+h))
	}
	return frames
}

// BuildAnimation derives the four direction rows from an animation spec.
func BuildAnimation(spec prefabs.AnimationSpec) (*component.Animation, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rows, err := spec.RowOrder()
	if err != nil {
		return nil, err
	}
	defaultRow, err := component.ParseDirection(spec.DefaultRow)
	if err != nil {
		return nil, fmt.Errorf("animation: default row: %w", err)
	}

	topLeft := spec.Frame.Rect()
	anim := &component.Animation{
		Sheet:      spec.Sheet,
		FrameCount: spec.FrameCount,
		Frames:     make(map[component.Direction][]image.Rectangle, len(component.Directions)),
		DefaultRow: defaultRow,
	}
	for _, d := range component.Directions {
		anim.Frames[d] = CharacterAnimationFrames(topLeft, rows.Index(d), spec.FrameCount)
	}
	return anim, nil
}

func addComponent[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], value *T, name string) error {
	if err := ecs.Add(w, e, handle.Kind(), value); err != nil {
		return fmt.Errorf("entity: add %s: %w", name, err)
	}
	return nil
}
