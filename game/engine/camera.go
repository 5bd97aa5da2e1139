package engine

import "math"

// Zoom limits and per-wheel-step factor
const (
	MinZoom        = 0.3
	MaxZoom        = 4.0
	ZoomStepFactor = 1.1
)

// Camera maps world space to screen space: screen = (world - offset) * zoom
type Camera struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// NewCamera returns a camera at the world origin with zoom 1
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Apply converts a world rectangle to screen space
func (c *Camera) Apply(r Rect) Rect {
	return Rect{
		X: (r.X - c.X) * c.Zoom,
		Y: (r.Y - c.Y) * c.Zoom,
		W: r.W * c.Zoom,
		H: r.H * c.Zoom,
	}
}

// WorldToScreen converts a world point to screen space
func (c *Camera) WorldToScreen(p Point) Point {
	return Point{X: (p.X - c.X) * c.Zoom, Y: (p.Y - c.Y) * c.Zoom}
}

// ScreenToWorld converts a screen point to world space
func (c *Camera) ScreenToWorld(p Point) Point {
	return Point{X: p.X/c.Zoom + c.X, Y: p.Y/c.Zoom + c.Y}
}

// ZoomAt scales the zoom by ZoomStepFactor^steps, clamped to [MinZoom, MaxZoom],
// keeping the world point under the screen anchor fixed.
func (c *Camera) ZoomAt(steps float64, anchor Point) {
	oldZoom := c.Zoom
	c.Zoom = clamp(oldZoom*math.Pow(ZoomStepFactor, steps), MinZoom, MaxZoom)

	c.X = (c.X + anchor.X/oldZoom) - anchor.X/c.Zoom
	c.Y = (c.Y + anchor.Y/oldZoom) - anchor.Y/c.Zoom
}

// Pan drags the view so the world point under from ends up under to
func (c *Camera) Pan(from, to Point) {
	c.X += (from.X - to.X) / c.Zoom
	c.Y += (from.Y - to.Y) / c.Zoom
}

// Finite reports whether the offset and zoom are all finite numbers
func (c *Camera) Finite() bool {
	return finite(c.X) && finite(c.Y) && finite(c.Zoom)
}

// Reset restores the origin and zoom 1
func (c *Camera) Reset() {
	c.X, c.Y, c.Zoom = 0, 0, 1
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
