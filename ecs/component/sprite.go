package component

import "image"

// Sprite is the sheet region selected for the current tick.
type Sprite struct {
	Sheet  string
	Region image.Rectangle
}

var SpriteComponent = NewComponent[Sprite]()
