package turtle

import "math"

// Point is a position in the drawing plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BuildPath integrates turtle commands into a polyline starting at the
// origin. The turtle begins at (0,0) heading along (1,0); for each command
// the heading is rotated by the command angle and the position advanced by
// distance along the new heading. The returned slice has len(cmds)+1 points,
// the origin first.
//
// Rotation is the standard 2D matrix applied to the heading vector, so the
// heading keeps unit norm throughout (up to floating-point error). BuildPath
// has no failure modes.
func BuildPath(cmds []Command) []Point {
	pts := make([]Point, 0, len(cmds)+1)
	pts = append(pts, Point{})

	hx, hy := 1.0, 0.0
	x, y := 0.0, 0.0
	for _, c := range cmds {
		sin, cos := math.Sincos(c.Angle)
		hx, hy = cos*hx-sin*hy, sin*hx+cos*hy
		x += c.Distance * hx
		y += c.Distance * hy
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}

// Bounds returns the bounding box of pts. Degenerate boxes (a single point,
// or all points collinear on an axis) are returned as-is; callers pad as
// needed for display.
func Bounds(pts []Point) (minX, minY, maxX, maxY float64) {
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = pts[0].X, pts[0].X
	minY, maxY = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
