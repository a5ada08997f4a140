package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
)

var walker = component.Player{MoveSpeed: 20, Policy: component.PolicyLastPressed}

func stackOf(m *component.Motion) []component.Direction {
	return m.Stack.Directions()
}

func sameDirections(a, b []component.Direction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPressRelease(t *testing.T) {
	up, down, left, right := component.DirectionUp, component.DirectionDown, component.DirectionLeft, component.DirectionRight

	cases := []struct {
		name      string
		events    []component.InputEvent
		wantStack []component.Direction
		wantCur   component.Direction
		wantSpeed int
		wantLast  component.Direction
	}{
		{
			name:      "press_moves",
			events:    []component.InputEvent{component.KeyDown(right)},
			wantStack: []component.Direction{right},
			wantCur:   right,
			wantSpeed: 20,
		},
		{
			name:      "second_press_overrides_without_cancelling",
			events:    []component.InputEvent{component.KeyDown(up), component.KeyDown(left)},
			wantStack: []component.Direction{up, left},
			wantCur:   left,
			wantSpeed: 20,
		},
		{
			name:      "release_tail_reverts",
			events:    []component.InputEvent{component.KeyDown(up), component.KeyDown(left), component.KeyUp(left)},
			wantStack: []component.Direction{up},
			wantCur:   up,
			wantSpeed: 20,
		},
		{
			name:      "release_head_keeps_tail",
			events:    []component.InputEvent{component.KeyDown(up), component.KeyDown(left), component.KeyUp(up)},
			wantStack: []component.Direction{left},
			wantCur:   left,
			wantSpeed: 20,
		},
		{
			name:      "release_last_stops_and_remembers",
			events:    []component.InputEvent{component.KeyDown(down), component.KeyUp(down)},
			wantSpeed: 0,
			wantLast:  down,
		},
		{
			name:      "release_unpressed_is_noop",
			events:    []component.InputEvent{component.KeyDown(down), component.KeyUp(up)},
			wantStack: []component.Direction{down},
			wantCur:   down,
			wantSpeed: 20,
		},
		{
			name:      "duplicate_press_is_noop",
			events:    []component.InputEvent{component.KeyDown(up), component.KeyDown(left), component.KeyDown(up)},
			wantStack: []component.Direction{up, left},
			wantCur:   left,
			wantSpeed: 20,
		},
		{
			name: "repeat_events_ignored",
			events: []component.InputEvent{
				component.KeyDown(up),
				{Kind: component.InputKeyDown, Direction: right, Repeat: true},
				{Kind: component.InputKeyUp, Direction: up, Repeat: true},
			},
			wantStack: []component.Direction{up},
			wantCur:   up,
			wantSpeed: 20,
		},
		{
			name: "garbled_events_ignored",
			events: []component.InputEvent{
				component.KeyDown(left),
				{Kind: component.InputUnknown, Direction: up},
				{Kind: component.InputKeyDown, Direction: component.Direction(42)},
				{Kind: component.InputKeyUp},
			},
			wantStack: []component.Direction{left},
			wantCur:   left,
			wantSpeed: 20,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var m component.Motion
			for _, evt := range c.events {
				ApplyInput(&m, walker, evt)
			}
			if !sameDirections(stackOf(&m), c.wantStack) {
				t.Fatalf("stack = %v, want %v", stackOf(&m), c.wantStack)
			}
			cur, _ := m.Current()
			if cur != c.wantCur {
				t.Fatalf("current = %v, want %v", cur, c.wantCur)
			}
			if m.Speed != c.wantSpeed {
				t.Fatalf("speed = %d, want %d", m.Speed, c.wantSpeed)
			}
			if m.LastDirection != c.wantLast {
				t.Fatalf("last = %v, want %v", m.LastDirection, c.wantLast)
			}
		})
	}
}

// TestRandomSequencesKeepInvariants drives long random press/release runs
// and checks the stack against a simple model after every event.
func TestRandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dirs := component.Directions

	for run := 0; run < 200; run++ {
		var m component.Motion
		lastReleased := component.DirectionNone

		for step := 0; step < 50; step++ {
			d := dirs[rng.Intn(len(dirs))]
			before := stackOf(&m)
			beforeSpeed := m.Speed

			if rng.Intn(2) == 0 {
				Press(&m, walker, d)
			} else {
				held := m.Stack.Contains(d)
				Release(&m, walker, d)
				if !held {
					if !sameDirections(before, stackOf(&m)) || m.Speed != beforeSpeed {
						t.Fatalf("run %d: releasing unheld %v changed state", run, d)
					}
				} else {
					lastReleased = d
				}
			}

			seen := map[component.Direction]bool{}
			for _, held := range stackOf(&m) {
				if seen[held] {
					t.Fatalf("run %d: duplicate %v in %v", run, held, stackOf(&m))
				}
				seen[held] = true
			}

			if m.Stack.Len() > 0 {
				if m.Speed != walker.MoveSpeed {
					t.Fatalf("run %d: speed %d with held keys %v", run, m.Speed, stackOf(&m))
				}
			} else {
				if m.Speed != 0 {
					t.Fatalf("run %d: speed %d with nothing held", run, m.Speed)
				}
				if m.LastDirection != lastReleased {
					t.Fatalf("run %d: last = %v, want %v", run, m.LastDirection, lastReleased)
				}
			}
		}
	}
}

func TestCancelOppositePolicy(t *testing.T) {
	p := component.Player{MoveSpeed: 20, Policy: component.PolicyCancelOpposite}
	var m component.Motion

	Press(&m, p, component.DirectionRight)
	if m.Speed != 20 {
		t.Fatalf("speed after first press = %d, want 20", m.Speed)
	}

	Press(&m, p, component.DirectionLeft)
	if m.Speed != 0 {
		t.Fatalf("opposite press should stop, speed = %d", m.Speed)
	}
	if cur, _ := m.Current(); cur != component.DirectionLeft {
		t.Fatalf("cancelled press should still be recorded, current = %v", cur)
	}

	Release(&m, p, component.DirectionLeft)
	if cur, _ := m.Current(); cur != component.DirectionRight || m.Speed != 20 {
		t.Fatalf("releasing the cancelling key should resume right at 20, got %v at %d", cur, m.Speed)
	}

	Press(&m, p, component.DirectionUp)
	if m.Speed != 20 {
		t.Fatalf("perpendicular press should move, speed = %d", m.Speed)
	}

	// The default policy never cancels.
	var d component.Motion
	Press(&d, walker, component.DirectionRight)
	Press(&d, walker, component.DirectionLeft)
	if d.Speed != 20 {
		t.Fatalf("last_pressed policy should keep moving, speed = %d", d.Speed)
	}
}

func TestInputSystemAppliesQueuedEventsInOrder(t *testing.T) {
	w := ecs.NewWorld()
	e := newWalker(t, w)

	w.Events().Push(
		component.KeyDown(component.DirectionUp),
		component.KeyDown(component.DirectionLeft),
		component.KeyUp(component.DirectionLeft),
		component.Quit(),
	)
	NewInputSystem().Update(w)

	m, _ := ecs.Get(w, e, component.MotionComponent.Kind())
	if cur, _ := m.Current(); cur != component.DirectionUp || m.Speed != 20 {
		t.Fatalf("expected up at 20, got %v at %d", cur, m.Speed)
	}
	if !w.QuitRequested() {
		t.Fatalf("quit event should be recorded on the world")
	}
	if w.Events().Len() != 0 {
		t.Fatalf("input system should drain the queue")
	}
}

func TestInputSystemIgnoresUncontrolledEntities(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{}); err != nil {
		t.Fatal(err)
	}

	w.Events().Push(component.KeyDown(component.DirectionUp))
	NewInputSystem().Update(w)

	m, _ := ecs.Get(w, e, component.MotionComponent.Kind())
	if m.Stack.Len() != 0 || m.Speed != 0 {
		t.Fatalf("entity without KeyboardControlled should not react, got %v at %d", stackOf(m), m.Speed)
	}
}

func TestInputSystemUsesDefaultSpeedWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.KeyboardControlledComponent.Kind(), &component.KeyboardControlled{})
	_ = ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{})

	w.Events().Push(component.KeyDown(component.DirectionDown))
	NewInputSystem().Update(w)

	m, _ := ecs.Get(w, e, component.MotionComponent.Kind())
	if m.Speed != component.DefaultMoveSpeed {
		t.Fatalf("speed = %d, want %d", m.Speed, component.DefaultMoveSpeed)
	}
}
