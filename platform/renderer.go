package platform

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/spritewalk/ecs/system"
	"github.com/milk9111/spritewalk/view"
)

// Renderer is the system.Sink that draws with ebiten. Present only stores
// the frames; Draw runs on ebiten's draw callback.
type Renderer struct {
	sheets     map[string]*ebiten.Image
	background color.Color
	camera     *view.Camera
	tickDelta  float32
	debug      bool

	tick   uint64
	frames []system.Frame
}

func NewRenderer(background color.Color, camera *view.Camera, tps int) *Renderer {
	if background == nil {
		background = color.Black
	}
	if camera == nil {
		camera = view.NewCamera(0)
	}
	dt := float32(1)
	if tps > 0 {
		dt = 1 / float32(tps)
	}
	return &Renderer{
		sheets:     map[string]*ebiten.Image{},
		background: background,
		camera:     camera,
		tickDelta:  dt,
	}
}

func (r *Renderer) SetSheet(id string, img *ebiten.Image) {
	if r == nil || id == "" || img == nil {
		return
	}
	r.sheets[id] = img
}

func (r *Renderer) SetBackground(c color.Color) {
	if r == nil || c == nil {
		return
	}
	r.background = c
}

func (r *Renderer) SetDebug(debug bool) {
	if r == nil {
		return
	}
	r.debug = debug
}

func (r *Renderer) Camera() *view.Camera {
	if r == nil {
		return nil
	}
	return r.camera
}

func (r *Renderer) Present(tick uint64, frames []system.Frame) {
	if r == nil {
		return
	}
	r.tick = tick
	r.frames = append(r.frames[:0], frames...)
	if len(frames) > 0 {
		p := frames[0].Position
		r.camera.Follow(float64(p.X), float64(p.Y))
	}
	r.camera.Update(r.tickDelta)
}

// Draw places the world origin at the screen centre, offset by the camera,
// and centres each sprite on its position.
func (r *Renderer) Draw(screen *ebiten.Image) {
	if r == nil || screen == nil {
		return
	}
	screen.Fill(r.background)

	bounds := screen.Bounds()
	cx := float64(bounds.Dx())/2 - r.camera.X
	cy := float64(bounds.Dy())/2 - r.camera.Y

	for _, f := range r.frames {
		sheet, ok := r.sheets[f.Sheet]
		if !ok {
			continue
		}
		sub, ok := sheet.SubImage(f.Region).(*ebiten.Image)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(f.Region.Dx())/2, -float64(f.Region.Dy())/2)
		op.GeoM.Translate(cx+float64(f.Position.X), cy+float64(f.Position.Y))
		screen.DrawImage(sub, op)
	}

	if r.debug {
		msg := fmt.Sprintf("Tick: %d    TPS: %.2f", r.tick, ebiten.ActualTPS())
		for _, f := range r.frames {
			msg += fmt.Sprintf("\n%v at (%d,%d) region %v", f.Entity, f.Position.X, f.Position.Y, f.Region)
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}
