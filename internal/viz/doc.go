// Package viz renders generated curves in the terminal.
//
// [Canvas] is a braille-cell raster: each character cell carries a 2x4 dot
// grid, giving sub-character resolution for polylines. [Canvas.DrawPath]
// scales a point sequence into the grid and connects it with Bresenham
// lines.
package viz
