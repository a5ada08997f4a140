package input

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spritewalk/ecs/component"
	"github.com/milk9111/spritewalk/prefabs"
)

// ScriptSource replays input from a tengo script. The script runs once per
// tick with the global `tick` set and leaves its events, as strings such as
// "down:left" or "quit", in the global `events`.
type ScriptSource struct {
	name     string
	compiled *tengo.Compiled
}

func LoadScriptSource(name string) (*ScriptSource, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return NewScriptSource(name, src)
}

func NewScriptSource(name string, src []byte) (*ScriptSource, error) {
	script := tengo.NewScript(src)
	if err := script.Add("tick", 0); err != nil {
		return nil, fmt.Errorf("script: %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &ScriptSource{name: name, compiled: compiled}, nil
}

// Events runs the script for tick. Entries that do not parse are logged and
// skipped.
func (s *ScriptSource) Events(tick uint64) ([]component.InputEvent, error) {
	if s == nil || s.compiled == nil {
		return nil, nil
	}
	if err := s.compiled.Set("tick", int64(tick)); err != nil {
		return nil, fmt.Errorf("script: %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: run %s at tick %d: %w", s.name, tick, err)
	}
	if !s.compiled.IsDefined("events") {
		return nil, nil
	}

	raw := s.compiled.Get("events").Array()
	events := make([]component.InputEvent, 0, len(raw))
	for _, v := range raw {
		text, ok := v.(string)
		if !ok {
			log.Printf("script %s: tick %d: ignoring non-string event %v", s.name, tick, v)
			continue
		}
		evt, err := component.ParseInputEvent(text)
		if err != nil {
			log.Printf("script %s: tick %d: ignoring event: %v", s.name, tick, err)
			continue
		}
		events = append(events, evt)
	}
	return events, nil
}
