// Package interact handles view interactions: pan and zoom over the
// board.
package interact

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

// Camera manages the view transform from board world coordinates to
// screen pixels.
type Camera struct {
	OffsetX float32 // Pan offset in screen pixels
	OffsetY float32
	Zoom    float32 // Zoom level (1.0 = 100%)

	dragging bool
	lastX    float32
	lastY    float32
}

// NewCamera creates a camera with the default view.
func NewCamera() *Camera {
	return &Camera{OffsetX: 40, OffsetY: 40, Zoom: 1.0}
}

// Reset resets the camera to the default view.
func (c *Camera) Reset() {
	c.OffsetX = 40
	c.OffsetY = 40
	c.Zoom = 1.0
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float32) {
	screenX = float32(worldX)*c.Zoom + c.OffsetX
	screenY = float32(worldY)*c.Zoom + c.OffsetY
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float64) {
	worldX = float64((screenX - c.OffsetX) / c.Zoom)
	worldY = float64((screenY - c.OffsetY) / c.Zoom)
	return
}

// HandleEvent processes pointer events for pan and zoom.
func (c *Camera) HandleEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary) {
			c.dragging = true
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			c.OffsetX += ev.Position.X - c.lastX
			c.OffsetY += ev.Position.Y - c.lastY
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Release:
		c.dragging = false

	case pointer.Scroll:
		if ev.Scroll.Y != 0 {
			factor := float32(1.1)
			if ev.Scroll.Y > 0 {
				factor = 1 / factor
			}
			c.ZoomBy(factor, ev.Position.X, ev.Position.Y)
		}
	}
}

// ZoomBy zooms by a factor, keeping the given screen point fixed.
func (c *Camera) ZoomBy(factor float32, centerX, centerY float32) {
	worldX, worldY := c.ScreenToWorld(centerX, centerY)

	c.Zoom *= factor
	if c.Zoom < 0.1 {
		c.Zoom = 0.1
	}
	if c.Zoom > 10 {
		c.Zoom = 10
	}

	newScreenX, newScreenY := c.WorldToScreen(worldX, worldY)
	c.OffsetX += centerX - newScreenX
	c.OffsetY += centerY - newScreenY
}

// FitBoard adjusts the camera so a square board of the given world side
// length fills the available screen area with a margin.
func (c *Camera) FitBoard(side float64, screenWidth, screenHeight, margin float32) {
	if side <= 0 {
		return
	}

	availW := screenWidth - 2*margin
	availH := screenHeight - 2*margin
	zoom := availW / float32(side)
	if z := availH / float32(side); z < zoom {
		zoom = z
	}
	if zoom < 0.1 {
		zoom = 0.1
	}
	if zoom > 10 {
		zoom = 10
	}
	c.Zoom = zoom

	center := side / 2
	c.OffsetX = screenWidth/2 - float32(center)*c.Zoom
	c.OffsetY = screenHeight/2 - float32(center)*c.Zoom
}
