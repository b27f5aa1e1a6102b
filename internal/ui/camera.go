package ui

import (
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// Camera maps schematic pixel space onto the screen with pan and zoom.
// The view transform never touches placement coordinates; layout state and
// presentation stay strictly separate.
type Camera struct {
	// Center position in world coordinates
	CenterX float64
	CenterY float64

	// Zoom level (screen pixels per world pixel)
	Zoom float64

	// Screen dimensions
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera with a 1:1 default zoom.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         1.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(pos schematic.Point) (float64, float64) {
	x := (pos.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	y := (pos.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	return x, y
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float64) schematic.Point {
	return schematic.Point{
		X: (screenX-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX,
		Y: (screenY-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY,
	}
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms in/out keeping the point under the cursor stationary.
// factor > 1 zooms in, factor < 1 zooms out.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 0.05 {
		c.Zoom = 0.05
	}
	if c.Zoom > 50.0 {
		c.Zoom = 50.0
	}

	after := c.ScreenToWorld(screenX, screenY)
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit adjusts the camera to show the whole bounding box with padding.
func (c *Camera) Fit(min, max schematic.Point) {
	width := max.X - min.X
	height := max.Y - min.Y
	if width <= 0 || height <= 0 {
		return
	}

	c.CenterX = (min.X + max.X) / 2.0
	c.CenterY = (min.Y + max.Y) / 2.0

	zoomX := float64(c.ScreenWidth) * 0.9 / width
	zoomY := float64(c.ScreenHeight) * 0.9 / height
	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}
