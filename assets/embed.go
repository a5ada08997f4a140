package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritewalk/ecs/component"
	"github.com/milk9111/spritewalk/view"
)

//go:embed *.png
var assetsFS embed.FS

// DecodeImage loads an image from the embedded assets, then from disk.
func DecodeImage(path string) (image.Image, error) {
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		var diskErr error
		b, diskErr = os.ReadFile(path)
		if diskErr != nil {
			b, diskErr = os.ReadFile(filepath.Join("assets", cleanAssetPath(path)))
		}
		if diskErr != nil {
			return nil, diskErr
		}
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadSheet returns the named sprite sheet, or a generated placeholder laid
// out with the given frame, column count and row order when the file is
// missing.
func LoadSheet(path string, frame image.Rectangle, cols int, rows component.RowOrder) *ebiten.Image {
	img, err := DecodeImage(path)
	if err != nil {
		log.Printf("assets: load %s: %v; using placeholder sheet", path, err)
		img = view.PlaceholderSheet(frame, cols, rows)
	}
	return ebiten.NewImageFromImage(img)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
