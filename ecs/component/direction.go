package component

import (
	"fmt"
	"strings"
)

// Direction is one of the four screen directions. The zero value means no
// direction is known.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions lists every valid direction in sprite sheet row order.
var Directions = [...]Direction{DirectionDown, DirectionLeft, DirectionRight, DirectionUp}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

// Opposite returns the direction on the same axis pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

// Delta returns the unit step for d with y growing downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	}
	return DirectionNone, fmt.Errorf("unknown direction %q", s)
}
