package system

import (
	"image"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.MotionComponent.Kind(), component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, motion *component.Motion, anim *component.Animation, sprite *component.Sprite) {
		AdvanceFrame(anim, motion.Moving())

		region, ok := SelectFrame(anim, motion)
		if !ok {
			return
		}
		sprite.Sheet = anim.Sheet
		sprite.Region = region
	})
}

// AdvanceFrame steps the column counter on moving ticks. A stopped entity
// holds its last frame.
func AdvanceFrame(anim *component.Animation, moving bool) {
	if anim == nil || !moving || anim.FrameCount <= 0 {
		return
	}
	anim.CurrentFrame = (anim.CurrentFrame + 1) % anim.FrameCount
}

// FacingDirection picks the row direction: the held direction, else the
// last released one, else down.
func FacingDirection(current, last component.Direction) component.Direction {
	if current.Valid() {
		return current
	}
	if last.Valid() {
		return last
	}
	return component.DirectionDown
}

// FacingRow returns the sheet row index for the given directions.
func FacingRow(rows component.RowOrder, current, last component.Direction) int {
	return rows.Index(FacingDirection(current, last))
}

// SelectFrame returns the region for the entity's facing row at the current
// column. It only reports false when the animation holds no frames at all.
func SelectFrame(anim *component.Animation, motion *component.Motion) (image.Rectangle, bool) {
	if anim == nil {
		return image.Rectangle{}, false
	}

	var current, last component.Direction
	if motion != nil {
		current, _ = motion.Current()
		last = motion.LastDirection
	}

	frames := anim.Row(FacingDirection(current, last))
	if len(frames) == 0 {
		return image.Rectangle{}, false
	}
	return frames[anim.CurrentFrame%len(frames)], true
}
