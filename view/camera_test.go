package view

import "testing"

func TestCameraWithoutSmoothingStaysOnOrigin(t *testing.T) {
	c := NewCamera(0)
	c.Follow(100, -40)
	c.Update(1)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("camera moved to (%v,%v)", c.X, c.Y)
	}
}

func TestCameraEasesToTarget(t *testing.T) {
	c := NewCamera(0.5)
	c.Follow(100, -40)

	c.Update(0.1)
	if c.X <= 0 || c.X >= 100 || c.Y >= 0 || c.Y <= -40 {
		t.Fatalf("camera should be part way, got (%v,%v)", c.X, c.Y)
	}

	c.Update(1)
	if c.X != 100 || c.Y != -40 {
		t.Fatalf("camera should snap to target, got (%v,%v)", c.X, c.Y)
	}

	c.SetDuration(0)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("disabling smoothing should recentre, got (%v,%v)", c.X, c.Y)
	}
}

func TestNilCamera(t *testing.T) {
	var c *Camera
	c.Follow(1, 1)
	c.Update(1)
	c.SetDuration(1)
}
