package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritewalk/input"
	"github.com/milk9111/spritewalk/platform"
	"github.com/milk9111/spritewalk/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw tick and position overlay")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose yaml files override the embedded prefabs")
	watch := flag.Bool("watch", true, "reload player.yaml when it changes on disk")
	scriptName := flag.String("script", "", "drive the player from a tengo input script instead of the keyboard")
	flag.Parse()

	prefabs.Dir = *prefabDir

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}

	var source input.Source = platform.NewKeyboard()
	if *scriptName != "" {
		script, err := input.LoadScriptSource(*scriptName)
		if err != nil {
			log.Fatal(err)
		}
		source = script
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s disabled: %v", prefabs.Dir, err)
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(spec, source, watcher, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(spec.Game.Width, spec.Game.Height)
	ebiten.SetWindowTitle(spec.Game.Title)
	ebiten.SetTPS(spec.Game.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
