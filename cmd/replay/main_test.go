package main

import (
	"errors"
	"testing"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/component"
	"github.com/milk9111/spritewalk/ecs/entity"
	"github.com/milk9111/spritewalk/ecs/system"
	"github.com/milk9111/spritewalk/input"
	"github.com/milk9111/spritewalk/prefabs"
)

func newPipeline(t *testing.T) *system.Pipeline {
	t.Helper()
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := entity.NewPlayer(w, spec); err != nil {
		t.Fatalf("new player: %v", err)
	}
	return system.NewPipeline(w, nil)
}

func TestRunStopsOnQuit(t *testing.T) {
	source := input.SourceFunc(func(tick uint64) ([]component.InputEvent, error) {
		switch tick {
		case 0:
			return []component.InputEvent{component.KeyDown(component.DirectionRight)}, nil
		case 4:
			return []component.InputEvent{component.Quit()}, nil
		}
		return nil, nil
	})

	res, err := Run(newPipeline(t), source, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Quit || res.Tick != 4 {
		t.Fatalf("result = %+v, want quit at tick 4", res)
	}
	if got := res.Frames[0].Position; got != (component.Transform{X: 100}) {
		t.Fatalf("position = %+v, want (100,0)", got)
	}
}

func TestRunStopsAtMaxTicks(t *testing.T) {
	res, err := Run(newPipeline(t), input.SourceFunc(func(uint64) ([]component.InputEvent, error) {
		return nil, nil
	}), 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Quit || res.Tick != 2 {
		t.Fatalf("result = %+v, want last tick 2 without quit", res)
	}
}

func TestRunReturnsSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(newPipeline(t), input.SourceFunc(func(uint64) ([]component.InputEvent, error) {
		return nil, boom
	}), 3)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRunSquareScript(t *testing.T) {
	source, err := input.LoadScriptSource("square.tengo")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(newPipeline(t), source, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Quit {
		t.Fatalf("square.tengo should quit")
	}
	if got := res.Frames[0].Position; got != (component.Transform{}) {
		t.Fatalf("square walk should return to the origin, got %+v", got)
	}
}
