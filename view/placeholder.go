package view

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/milk9111/spritewalk/ecs/component"
	"golang.org/x/image/colornames"
)

// rowColors tints placeholder rows so each facing is recognisable.
var rowColors = map[component.Direction]color.RGBA{
	component.DirectionDown:  colornames.Steelblue,
	component.DirectionLeft:  colornames.Seagreen,
	component.DirectionRight: colornames.Goldenrod,
	component.DirectionUp:    colornames.Indianred,
}

// PlaceholderSheet draws one tinted cell per frame, lighter toward the right
// so the cycling column is visible.
func PlaceholderSheet(frame image.Rectangle, cols int, rows component.RowOrder) *image.RGBA {
	maxRow := 0
	for _, row := range rows {
		if row > maxRow {
			maxRow = row
		}
	}
	w, h := frame.Dx(), frame.Dy()
	sheet := image.NewRGBA(image.Rect(0, 0, frame.Min.X+w*cols, frame.Min.Y+h*(maxRow+1)))

	for d, row := range rows {
		base, ok := rowColors[d]
		if !ok {
			base = colornames.Gray
		}
		for col := 0; col < cols; col++ {
			cell := image.Rect(0, 0, w, h).Add(image.Pt(frame.Min.X+w*col, frame.Min.Y+h*row))
			draw.Draw(sheet, cell, image.NewUniform(colornames.Black), image.Point{}, draw.Src)
			draw.Draw(sheet, cell.Inset(2), image.NewUniform(lighten(base, col, cols)), image.Point{}, draw.Src)
		}
	}
	return sheet
}

func lighten(c color.RGBA, step, steps int) color.RGBA {
	if steps <= 1 {
		return c
	}
	mix := func(v uint8) uint8 {
		return uint8(int(v) + (255-int(v))*step/(2*steps))
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
