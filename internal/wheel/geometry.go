package wheel

import "math"

// Logical canvas the wheel is laid out in. Real pointer coordinates must be
// mapped into it with a Viewport before hit-testing.
const (
	CanvasSize   = 260.0
	Center       = CanvasSize / 2
	Radius       = 100 * 0.8
	HitRadius    = 35.0
	BubbleRadius = 24.0

	// NoLetter is returned by HitTest when the point is not over a letter.
	NoLetter = -1
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (that Point) distance(other Point) float64 {
	return math.Hypot(that.X-other.X, that.Y-other.Y)
}

// Viewport is the size the wheel is actually rendered at on the client.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToLogical - maps a point relative to the rendered wheel's top-left corner into canvas space.
// A zero-sized viewport is treated as already logical.
func (that Viewport) ToLogical(p Point) Point {
	if that.Width <= 0 || that.Height <= 0 {
		return p
	}

	return Point{
		X: p.X * (CanvasSize / that.Width),
		Y: p.Y * (CanvasSize / that.Height),
	}
}

// PositionOf - returns the canvas position of letter index out of total, clockwise from the top.
func PositionOf(index, total int) Point {
	if total <= 0 {
		return Point{X: Center, Y: Center}
	}

	angle := float64(index)*(360/float64(total)) - 90
	radian := angle * math.Pi / 180

	return Point{
		X: Center + Radius*math.Cos(radian),
		Y: Center + Radius*math.Sin(radian),
	}
}

// HitTest - returns the index of the letter under p, or NoLetter.
func HitTest(p Point, total int) int {
	hit := NoLetter
	best := HitRadius

	for i := 0; i < total; i++ {
		// nearest wins if bubbles ever overlap
		if dist := p.distance(PositionOf(i, total)); dist < best {
			hit = i
			best = dist
		}
	}

	return hit
}
