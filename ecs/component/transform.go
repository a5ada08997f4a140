package component

// Transform is an integer world position. The origin is the centre of the
// screen and y grows downward.
type Transform struct {
	X int
	Y int
}

func (t Transform) Offset(dx, dy int) Transform {
	return Transform{X: t.X + dx, Y: t.Y + dy}
}

var TransformComponent = NewComponent[Transform]()
