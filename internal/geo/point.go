package geo

import "math"

// Point is a position on the flat 2D plane that centers and adopters live on.
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Distance returns the straight-line distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
