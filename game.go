package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritewalk/assets"
	"github.com/milk9111/spritewalk/ecs"
	"github.com/milk9111/spritewalk/ecs/entity"
	"github.com/milk9111/spritewalk/ecs/system"
	"github.com/milk9111/spritewalk/input"
	"github.com/milk9111/spritewalk/platform"
	"github.com/milk9111/spritewalk/prefabs"
	"github.com/milk9111/spritewalk/view"
)

type Game struct {
	spec     *prefabs.PlayerSpec
	source   input.Source
	pipeline *system.Pipeline
	player   ecs.Entity
	renderer *platform.Renderer
	watcher  *prefabs.Watcher
}

func NewGame(spec *prefabs.PlayerSpec, source input.Source, watcher *prefabs.Watcher, debug bool) (*Game, error) {
	renderer := platform.NewRenderer(spec.Game.Background, view.NewCamera(float32(spec.Game.CameraSmoothing)), spec.Game.TPS)
	renderer.SetDebug(debug)

	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w, spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:     spec,
		source:   source,
		pipeline: system.NewPipeline(w, renderer),
		player:   player,
		renderer: renderer,
		watcher:  watcher,
	}
	if err := g.loadSheet(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	g.reloadPrefabs()

	events, err := g.source.Events(g.pipeline.World().Tick())
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}

	if res := g.pipeline.Step(events); res.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Game.Width, g.spec.Game.Height
}

func (g *Game) loadSheet() error {
	rows, err := g.spec.Animation.RowOrder()
	if err != nil {
		return err
	}
	sheet := assets.LoadSheet(g.spec.Animation.Sheet, g.spec.Animation.Frame.Rect(), g.spec.Animation.FrameCount, rows)
	g.renderer.SetSheet(g.spec.Animation.Sheet, sheet)
	return nil
}

// reloadPrefabs applies player.yaml edits between ticks. A broken edit is
// logged and the running spec kept.
func (g *Game) reloadPrefabs() {
	names, err := g.watcher.Poll()
	if err != nil {
		log.Printf("prefabs: watch: %v", err)
	}
	for _, name := range names {
		if name != prefabs.PlayerSpecFile {
			continue
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("prefabs: reload: %v", err)
			continue
		}
		if err := entity.ApplyPlayerSpec(g.pipeline.World(), g.player, spec); err != nil {
			log.Printf("prefabs: apply %s: %v", name, err)
			continue
		}
		g.spec = spec
		g.renderer.SetBackground(spec.Game.Background)
		g.renderer.Camera().SetDuration(float32(spec.Game.CameraSmoothing))
		ebiten.SetTPS(spec.Game.TPS)
		if err := g.loadSheet(); err != nil {
			log.Printf("prefabs: sheet: %v", err)
		}
		log.Printf("prefabs: reloaded %s", name)
	}
}
