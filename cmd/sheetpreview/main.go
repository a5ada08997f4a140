// Command sheetpreview shows the player's four direction rows side by side,
// cycling their columns the way a walking entity does.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/spritewalk/assets"
	"github.com/milk9111/spritewalk/ecs/component"
	"github.com/milk9111/spritewalk/ecs/entity"
	"github.com/milk9111/spritewalk/ecs/system"
	"github.com/milk9111/spritewalk/prefabs"
)

const (
	previewScale = 3
	previewPad   = 16
)

type previewGame struct {
	sheet      *ebiten.Image
	background color.Color
	anim       *component.Animation
	w, h       int
}

func (g *previewGame) Update() error {
	system.AdvanceFrame(g.anim, true)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	x := previewPad
	for _, d := range component.Directions {
		frames := g.anim.Row(d)
		if len(frames) == 0 {
			continue
		}
		region := frames[g.anim.CurrentFrame%len(frames)]
		sub := g.sheet.SubImage(region).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(previewScale, previewScale)
		op.GeoM.Translate(float64(x), previewPad*2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(sub, op)

		ebitenutil.DebugPrintAt(screen, d.String(), x, previewPad/2)
		x += region.Dx()*previewScale + previewPad
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func main() {
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose yaml files override the embedded prefabs")
	fps := flag.Int("fps", 6, "column changes per second")
	flag.Parse()

	prefabs.Dir = *prefabDir

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	anim, err := entity.BuildAnimation(spec.Animation)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := spec.Animation.RowOrder()
	if err != nil {
		log.Fatal(err)
	}

	frame := spec.Animation.Frame
	g := &previewGame{
		sheet:      assets.LoadSheet(spec.Animation.Sheet, frame.Rect(), spec.Animation.FrameCount, rows),
		background: spec.Game.Background,
		anim:       anim,
		w:          len(component.Directions)*(frame.W*previewScale+previewPad) + previewPad,
		h:          frame.H*previewScale + previewPad*3,
	}

	ebiten.SetWindowSize(g.w*2, g.h*2)
	ebiten.SetWindowTitle("Sheet Preview")
	if *fps > 0 {
		ebiten.SetTPS(*fps)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
