package instructions

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Point represents a 2D coordinate used while building a Line's path.
type Point struct {
	X, Y float64
}

// NewPoint creates a new Point at (x, y).
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Fixed converts the Point to a fixed-point coordinate (26.6 format).
// Commonly used for subpixel-accurate rendering and rasterization.
func (p *Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X*64 + 0.5),
		Y: fixed.Int26_6(p.Y*64 + 0.5),
	}
}

// Distance returns the Euclidean distance between p and q.
func (p *Point) Distance(q *Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Hypot(dx, dy)
}

// Interpolate returns a linearly interpolated point between p and q.
// The parameter t (0-1) determines the position: t=0 -> p, t=1 -> q.
func (p *Point) Interpolate(q *Point, t float64) *Point {
	return &Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}
