package system

import (
	"image"
	"testing"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

func TestAdvanceFrame(t *testing.T) {
	anim := walkerAnimation()

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		AdvanceFrame(anim, true)
		if anim.CurrentFrame != w {
			t.Fatalf("moving tick %d: frame = %d, want %d", i, anim.CurrentFrame, w)
		}
	}

	AdvanceFrame(anim, false)
	AdvanceFrame(anim, false)
	if anim.CurrentFrame != 1 {
		t.Fatalf("stopped entity should hold its frame, got %d", anim.CurrentFrame)
	}

	AdvanceFrame(&component.Animation{}, true)
	AdvanceFrame(nil, true)
}

func TestFacingRow(t *testing.T) {
	none := component.DirectionNone
	cases := []struct {
		name          string
		current, last component.Direction
		want          int
	}{
		{"held_left", component.DirectionLeft, none, 1},
		{"held_beats_last", component.DirectionRight, component.DirectionUp, 2},
		{"stopped_up", none, component.DirectionUp, 3},
		{"never_moved", none, none, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FacingRow(component.DefaultRowOrder, c.current, c.last); got != c.want {
				t.Fatalf("FacingRow(%v, %v) = %d, want %d", c.current, c.last, got, c.want)
			}
		})
	}
}

func TestSelectFrame(t *testing.T) {
	anim := walkerAnimation()

	region, ok := SelectFrame(anim, &component.Motion{})
	if !ok || region != image.Rect(0, 0, 26, 36) {
		t.Fatalf("never-moved region = %v ok=%v, want the first down frame", region, ok)
	}

	anim.CurrentFrame = 2
	stopped := &component.Motion{LastDirection: component.DirectionRight}
	if region, _ := SelectFrame(anim, stopped); region != image.Rect(52, 72, 78, 108) {
		t.Fatalf("stopped right region = %v", region)
	}

	if _, ok := SelectFrame(&component.Animation{}, stopped); ok {
		t.Fatalf("animation without frames should report false")
	}
}

func TestAnimationSystemWritesSprite(t *testing.T) {
	w := ecs.NewWorld()
	e := newWalker(t, w)

	m, _ := ecs.Get(w, e, component.MotionComponent.Kind())
	Press(m, walker, component.DirectionUp)

	NewAnimationSystem().Update(w)

	s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if s.Sheet != "bardo.png" || s.Region != image.Rect(26, 108, 52, 144) {
		t.Fatalf("sprite = %+v, want up row column 1", *s)
	}
}
