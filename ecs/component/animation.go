package component

import "image"

// Animation holds one row of frames per direction and the cycling column
// counter shared by all rows.
type Animation struct {
	Sheet        string
	CurrentFrame int
	FrameCount   int
	Frames       map[Direction][]image.Rectangle
	// DefaultRow is used before the entity has ever moved.
	DefaultRow Direction
}

// Row returns the frames for d, falling back to the default row.
func (a *Animation) Row(d Direction) []image.Rectangle {
	if a == nil {
		return nil
	}
	if frames, ok := a.Frames[d]; ok && len(frames) > 0 {
		return frames
	}
	return a.Frames[a.DefaultRow]
}

var AnimationComponent = NewComponent[Animation]()

// RowOrder maps a facing direction to its sprite sheet row.
type RowOrder map[Direction]int

// DefaultRowOrder is the sheet layout of the walking character sheets:
// down, left, right, up from top to bottom.
var DefaultRowOrder = RowOrder{
	DirectionDown:  0,
	DirectionLeft:  1,
	DirectionRight: 2,
	DirectionUp:    3,
}

// Index returns the row for d, or the down row when d is not mapped.
func (o RowOrder) Index(d Direction) int {
	if i, ok := o[d]; ok {
		return i
	}
	return o[DirectionDown]
}
