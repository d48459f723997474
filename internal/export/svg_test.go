package export

import (
	"strings"
	"testing"

	"github.com/san-kum/lindsim/internal/turtle"
	"github.com/san-kum/lindsim/internal/viz"
)

func TestPathToSVG(t *testing.T) {
	points := []turtle.Point{
		{X: 0, Y: 0},
		{X: 1.0 / 3.0, Y: 0},
		{X: 0.5, Y: 0.288},
		{X: 2.0 / 3.0, Y: 0},
		{X: 1, Y: 0},
	}

	svg := PathToSVG(points, 800, 600, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, `width="800" height="600"`) {
		t.Error("missing dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("missing stroke color")
	}
	if !strings.Contains(svg, `d="M`) {
		t.Error("missing path data")
	}
	if got := strings.Count(svg, " L"); got != len(points)-1 {
		t.Errorf("expected %d line segments, got %d", len(points)-1, got)
	}
}

func TestPathToSVG_TooFewPoints(t *testing.T) {
	if svg := PathToSVG([]turtle.Point{{X: 1, Y: 1}}, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty string for a single point")
	}
	if svg := PathToSVG(nil, 100, 100, "#fff"); svg != "" {
		t.Error("expected empty string for nil points")
	}
}

func TestPathToSVG_DegenerateRange(t *testing.T) {
	// Horizontal segment: zero y-range must not divide by zero.
	points := []turtle.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	svg := PathToSVG(points, 100, 100, "#fff")
	if svg == "" {
		t.Fatal("expected output for a horizontal segment")
	}
	if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
		t.Error("degenerate range produced non-finite coordinates")
	}
}

func TestCanvasToSVG(t *testing.T) {
	canvas := viz.NewCanvas(4, 2)
	canvas.Set(0, 0)
	canvas.Set(3, 5)

	svg := CanvasToSVG(canvas, 4)

	if !strings.Contains(svg, "<circle") {
		t.Error("expected circles for lit pixels")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 circles, got %d", got)
	}
}

func TestCanvasToSVG_Nil(t *testing.T) {
	if svg := CanvasToSVG(nil, 4); svg != "" {
		t.Error("expected empty string for nil canvas")
	}
}
