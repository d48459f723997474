package turtle

import (
	"math"
	"testing"
)

func TestBuildPath_Empty(t *testing.T) {
	pts := BuildPath(nil)
	if len(pts) != 1 {
		t.Fatalf("expected just the origin, got %d points", len(pts))
	}
	if pts[0].X != 0 || pts[0].Y != 0 {
		t.Errorf("path must start at origin, got %v", pts[0])
	}
}

func TestBuildPath_Length(t *testing.T) {
	cmds := []Command{
		{Distance: 1},
		{Distance: 1, Angle: math.Pi / 2},
		{Distance: 1, Angle: math.Pi / 2},
	}
	pts := BuildPath(cmds)
	if len(pts) != len(cmds)+1 {
		t.Errorf("expected %d points, got %d", len(cmds)+1, len(pts))
	}
}

// Unit square walk: three quarter turns retrace the square's edges.
func TestBuildPath_Square(t *testing.T) {
	turn := math.Pi / 2
	cmds := []Command{
		{Distance: 1},
		{Distance: 1, Angle: turn},
		{Distance: 1, Angle: turn},
		{Distance: 1, Angle: turn},
	}
	pts := BuildPath(cmds)

	expected := []Point{
		{0, 0},
		{1, 0},
		{1, 1},
		{0, 1},
		{0, 0},
	}
	for i, want := range expected {
		if math.Abs(pts[i].X-want.X) > 1e-12 || math.Abs(pts[i].Y-want.Y) > 1e-12 {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, pts[i].X, pts[i].Y, want.X, want.Y)
		}
	}
}

// Koch n=1 path computed by hand: d=1/3, turns +60, -120, +60 degrees.
func TestBuildPath_KochN1(t *testing.T) {
	d := 1.0 / 3.0
	cmds := []Command{
		{Distance: d},
		{Distance: d, Angle: math.Pi / 3},
		{Distance: d, Angle: -2 * math.Pi / 3},
		{Distance: d, Angle: math.Pi / 3},
	}
	pts := BuildPath(cmds)

	s := math.Sqrt(3) / 6
	expected := []Point{
		{0, 0},
		{1.0 / 3.0, 0},
		{0.5, s},
		{2.0 / 3.0, 0},
		{1, 0},
	}

	if len(pts) != len(expected) {
		t.Fatalf("expected %d points, got %d", len(expected), len(pts))
	}
	for i, want := range expected {
		if math.Abs(pts[i].X-want.X) > 1e-12 || math.Abs(pts[i].Y-want.Y) > 1e-12 {
			t.Errorf("point %d = (%.12f, %.12f), want (%.12f, %.12f)",
				i, pts[i].X, pts[i].Y, want.X, want.Y)
		}
	}
}

// Rotation matrices are orthonormal, so the heading keeps unit norm and
// every segment has exactly the command distance.
func TestBuildPath_SegmentLengthInvariant(t *testing.T) {
	d := 0.25
	cmds := make([]Command, 0, 50)
	cmds = append(cmds, Command{Distance: d})
	angle := 0.37 // deliberately irrational-ish turn
	for i := 0; i < 49; i++ {
		cmds = append(cmds, Command{Distance: d, Angle: angle})
	}

	pts := BuildPath(cmds)
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		seg := math.Hypot(dx, dy)
		if math.Abs(seg-d) > 1e-10 {
			t.Fatalf("segment %d length = %.15f, want %.15f", i, seg, d)
		}
	}
}

func TestBounds(t *testing.T) {
	pts := []Point{{0, 0}, {1, -2}, {-0.5, 3}}
	minX, minY, maxX, maxY := Bounds(pts)
	if minX != -0.5 || maxX != 1 || minY != -2 || maxY != 3 {
		t.Errorf("Bounds = (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}

	minX, minY, maxX, maxY = Bounds(nil)
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Error("empty Bounds should be all zeros")
	}
}
