package view

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/spritewalk/ecs/component"
	"golang.org/x/image/colornames"
)

func TestPlaceholderSheet(t *testing.T) {
	sheet := PlaceholderSheet(image.Rect(0, 0, 26, 36), 3, component.DefaultRowOrder)

	if got := sheet.Bounds(); got != image.Rect(0, 0, 78, 144) {
		t.Fatalf("bounds = %v, want 78x144", got)
	}

	// Border pixel, then the first column of each row in its base colour.
	if got := sheet.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("border = %v, want black", got)
	}
	for d, row := range component.DefaultRowOrder {
		got := sheet.RGBAAt(13, 36*row+18)
		if got != rowColors[d] {
			t.Fatalf("%v row colour = %v, want %v", d, got, rowColors[d])
		}
	}
	if got := sheet.RGBAAt(26*2+13, 18); got == colornames.Steelblue {
		t.Fatalf("later columns should be lighter")
	}
}
