package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera eases toward the followed position. With a zero duration it stays
// on the world origin, which draws the origin at the centre of the screen.
type Camera struct {
	X, Y float64

	duration         float32
	targetX, targetY float64
	tweenX, tweenY   *gween.Tween
}

// NewCamera creates a camera that reaches a new target over duration
// seconds.
func NewCamera(duration float32) *Camera {
	return &Camera{duration: duration}
}

func (c *Camera) SetDuration(duration float32) {
	if c == nil {
		return
	}
	c.duration = duration
	if duration <= 0 {
		c.X, c.Y = 0, 0
		c.targetX, c.targetY = 0, 0
		c.tweenX, c.tweenY = nil, nil
	}
}

// Follow retargets the camera when the position changes.
func (c *Camera) Follow(x, y float64) {
	if c == nil || c.duration <= 0 {
		return
	}
	if x == c.targetX && y == c.targetY {
		return
	}
	c.targetX, c.targetY = x, y
	c.tweenX = gween.New(float32(c.X), float32(x), c.duration, ease.OutQuad)
	c.tweenY = gween.New(float32(c.Y), float32(y), c.duration, ease.OutQuad)
}

// Update advances the easing by dt seconds.
func (c *Camera) Update(dt float32) {
	if c == nil {
		return
	}
	if c.tweenX != nil {
		v, done := c.tweenX.Update(dt)
		c.X = float64(v)
		if done {
			c.X = c.targetX
			c.tweenX = nil
		}
	}
	if c.tweenY != nil {
		v, done := c.tweenY.Update(dt)
		c.Y = float64(v)
		if done {
			c.Y = c.targetY
			c.tweenY = nil
		}
	}
}
