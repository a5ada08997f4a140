// Command replay runs the simulation headless from a tengo input script and
// logs every tick's frames.
package main

import (
	"flag"
	"log"

	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/entity"
	"github.com/milk9111/spritewalk/ecs/system"
	"github.com/milk9111/spritewalk/input"
	"github.com/milk9111/spritewalk/prefabs"
)

func main() {
	scriptName := flag.String("script", "square.tengo", "input script in prefabs/scripts")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose yaml files override the embedded prefabs")
	maxTicks := flag.Uint64("ticks", 1000, "stop after this many ticks if the script never quits")
	quiet := flag.Bool("q", false, "only log the final frame")
	flag.Parse()

	prefabs.Dir = *prefabDir

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	source, err := input.LoadScriptSource(*scriptName)
	if err != nil {
		log.Fatal(err)
	}

	w := ecs.NewWorld()
	if _, err := entity.NewPlayer(w, spec); err != nil {
		log.Fatal(err)
	}

	sink := system.SinkFunc(func(tick uint64, frames []system.Frame) {
		if *quiet {
			return
		}
		logFrames(tick, frames)
	})

	final, err := Run(system.NewPipeline(w, sink), source, *maxTicks)
	if err != nil {
		log.Fatal(err)
	}
	logFrames(final.Tick, final.Frames)
	log.Printf("replay: %s finished after %d ticks (quit=%v)", *scriptName, final.Tick+1, final.Quit)
}

// Run steps the pipeline until the source asks to quit or maxTicks ticks
// have run, returning the last result.
func Run(p *system.Pipeline, source input.Source, maxTicks uint64) (system.Result, error) {
	var res system.Result
	for tick := uint64(0); tick < maxTicks; tick++ {
		events, err := source.Events(p.World().Tick())
		if err != nil {
			return res, err
		}
		res = p.Step(events)
		if res.Quit {
			break
		}
	}
	return res, nil
}

func logFrames(tick uint64, frames []system.Frame) {
	for _, f := range frames {
		log.Printf("tick %4d  entity %v  pos (%d,%d)  sheet %s  region %v", tick, f.Entity, f.Position.X, f.Position.Y, f.Sheet, f.Region)
	}
}
