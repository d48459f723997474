package viz

import (
	"strings"

	"github.com/san-kum/lindsim/internal/turtle"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights a pixel at (x, y) in sub-pixel coordinates. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawPath scales a curve into the sub-pixel grid and draws it as a
// connected polyline. The world y-axis points up, the canvas y-axis down,
// so y is flipped. Aspect ratio is not preserved; the curve fills the
// canvas with a small margin.
func (c *Canvas) DrawPath(pts []turtle.Point) {
	if len(pts) == 0 {
		return
	}

	minX, minY, maxX, maxY := turtle.Bounds(pts)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	subW := c.Width*2 - 1
	subH := c.Height*4 - 1
	margin := 0.04
	minX -= rangeX * margin
	maxX += rangeX * margin
	minY -= rangeY * margin
	maxY += rangeY * margin
	rangeX = maxX - minX
	rangeY = maxY - minY

	toPixel := func(p turtle.Point) (int, int) {
		px := int(float64(subW) * (p.X - minX) / rangeX)
		py := subH - int(float64(subH)*(p.Y-minY)/rangeY)
		return px, py
	}

	x0, y0 := toPixel(pts[0])
	for _, p := range pts[1:] {
		x1, y1 := toPixel(p)
		c.DrawLine(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
