// Package platform adapts ebiten to the simulation and draws the frames it
// produces.
package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritewalk/ecs/component"
)

type keyBinding struct {
	key ebiten.Key
	dir component.Direction
}

var arrowBindings = []keyBinding{
	{ebiten.KeyArrowUp, component.DirectionUp},
	{ebiten.KeyArrowDown, component.DirectionDown},
	{ebiten.KeyArrowLeft, component.DirectionLeft},
	{ebiten.KeyArrowRight, component.DirectionRight},
}

// Keyboard turns ebiten key state into press, auto-repeat and release
// events. Escape produces Quit.
type Keyboard struct {
	// RepeatDelay and RepeatInterval are in ticks.
	RepeatDelay    int
	RepeatInterval int
}

func NewKeyboard() *Keyboard {
	return &Keyboard{RepeatDelay: 10, RepeatInterval: 2}
}

func (k *Keyboard) Events(tick uint64) ([]component.InputEvent, error) {
	var events []component.InputEvent
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, component.Quit())
	}

	for _, b := range arrowBindings {
		switch {
		case inpututil.IsKeyJustPressed(b.key):
			events = append(events, component.KeyDown(b.dir))
		case inpututil.IsKeyJustReleased(b.key):
			events = append(events, component.KeyUp(b.dir))
		case k.repeatDue(inpututil.KeyPressDuration(b.key)):
			evt := component.KeyDown(b.dir)
			evt.Repeat = true
			events = append(events, evt)
		}
	}
	return events, nil
}

// repeatDue reports whether a key held for duration ticks emits an
// auto-repeat press this tick.
func (k *Keyboard) repeatDue(duration int) bool {
	if k == nil || k.RepeatInterval <= 0 || duration <= k.RepeatDelay {
		return false
	}
	return (duration-k.RepeatDelay)%k.RepeatInterval == 0
}
