package entity

import (
	"fmt"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
	"github.com/milk9111/spritewalk/prefabs"
)

// NewPlayer creates an idle keyboard controlled entity at the spec's spawn
// position.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	anim, err := BuildAnimation(spec.Animation)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	e := ecs.CreateEntity(w)
	player := spec.Player()

	sprite := &component.Sprite{Sheet: anim.Sheet}
	if frames := anim.Row(anim.DefaultRow); len(frames) > 0 {
		sprite.Region = frames[0]
	}

	steps := []error{
		addComponent(w, e, component.PlayerTagComponent, &component.PlayerTag{}, "player_tag"),
		addComponent(w, e, component.KeyboardControlledComponent, &component.KeyboardControlled{}, "keyboard_controlled"),
		addComponent(w, e, component.PlayerComponent, &player, "player"),
		addComponent(w, e, component.TransformComponent, &component.Transform{X: spec.Transform.X, Y: spec.Transform.Y}, "transform"),
		addComponent(w, e, component.MotionComponent, &component.Motion{}, "motion"),
		addComponent(w, e, component.AnimationComponent, anim, "animation"),
		addComponent(w, e, component.SpriteComponent, sprite, "sprite"),
	}
	for _, err := range steps {
		if err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}

// ApplyPlayerSpec swaps in a reloaded spec. Position, held directions and
// the frame counter survive; a moving entity picks up the new speed.
func ApplyPlayerSpec(w *ecs.World, e ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: nil spec")
	}
	if !ecs.IsAlive(w, e) {
		return fmt.Errorf("player: %w", component.ErrEntityNotAlive)
	}
	anim, err := BuildAnimation(spec.Animation)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	player := spec.Player()
	if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
		*p = player
	} else if err := addComponent(w, e, component.PlayerComponent, &player, "player"); err != nil {
		return fmt.Errorf("player: %w", err)
	}

	if motion, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok && motion.Moving() {
		motion.Speed = player.MoveSpeed
	}

	if old, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.CurrentFrame = old.CurrentFrame % anim.FrameCount
		*old = *anim
		return nil
	}
	if err := addComponent(w, e, component.AnimationComponent, anim, "animation"); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}
