package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/lindsim/internal/turtle"
)

func TestCanvas_SetAndString(t *testing.T) {
	c := NewCanvas(2, 1)

	// Top-left dot of the first cell.
	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %#x", c.Grid[0][0])
	}

	s := c.String()
	if !strings.HasSuffix(s, "\n") {
		t.Error("String should end rows with newline")
	}
	if len([]rune(s)) != 3 { // 2 cells + newline
		t.Errorf("unexpected rendered length: %q", s)
	}
}

func TestCanvas_SetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	// None of these may panic or light a cell.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("out-of-bounds Set modified the grid")
			}
		}
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("Clear left a lit pixel")
			}
		}
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)

	// A horizontal line along sub-pixel row 0 lights the top dots of all
	// four cells.
	for col := 0; col < 4; col++ {
		if c.Grid[0][col] == 0x2800 {
			t.Errorf("cell %d not lit", col)
		}
	}
}

func TestCanvas_DrawPath(t *testing.T) {
	c := NewCanvas(20, 5)
	pts := []turtle.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
	}
	c.DrawPath(pts)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawPath lit no cells")
	}
}

func TestCanvas_DrawPath_Degenerate(t *testing.T) {
	c := NewCanvas(10, 4)

	// Single point and flat horizontal path must not panic or divide by zero.
	c.DrawPath([]turtle.Point{{X: 0.5, Y: 0.5}})
	c.DrawPath([]turtle.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	c.DrawPath(nil)
}
