// Package layout maps grid cells to screen coordinates. Grid y grows upward,
// screen y grows downward.
package layout

import (
	"snake-classic/config"
	"snake-classic/game/types"
)

type Rect struct {
	X, Y          int32
	Width, Height int32
}

// Pixels places the field in the centre of a window
type Pixels struct {
	left, top int32
	size      int32
	cell      int32
	border    int32
}

func NewPixels(g config.Geometry) Pixels {
	size := int32(g.FieldCells * g.CellSize)
	return Pixels{
		left:   int32(g.WindowWidth)/2 - size/2,
		top:    int32(g.WindowHeight)/2 - size/2,
		size:   size,
		cell:   int32(g.CellSize),
		border: int32(g.BorderWidth),
	}
}

// Cell returns the pixel rectangle of grid cell p
func (l Pixels) Cell(p types.Point) Rect {
	return Rect{
		X:      l.left + int32(p.X)*l.cell,
		Y:      l.top + (l.size - int32(p.Y+1)*l.cell),
		Width:  l.cell,
		Height: l.cell,
	}
}

func (l Pixels) Field() Rect {
	return Rect{X: l.left, Y: l.top, Width: l.size, Height: l.size}
}

// Border is the field grown by the border width on every side
func (l Pixels) Border() Rect {
	return Rect{
		X:      l.left - l.border,
		Y:      l.top - l.border,
		Width:  l.size + 2*l.border,
		Height: l.size + 2*l.border,
	}
}

// ColumnsPerCell keeps terminal cells roughly square
const ColumnsPerCell = 2

// Terminal places the field on a character grid, one row and two columns
// per cell, inside a one-character border.
type Terminal struct {
	left, top int
	grid      types.Grid
}

func NewTerminal(grid types.Grid, left, top int) Terminal {
	return Terminal{left: left, top: top, grid: grid}
}

// Cell returns the column and row of the first character of cell p
func (l Terminal) Cell(p types.Point) (col, row int) {
	col = l.left + 1 + p.X*ColumnsPerCell
	row = l.top + 1 + (l.grid.Height - 1 - p.Y)
	return col, row
}

// Size is the width and height of the field including its border
func (l Terminal) Size() (width, height int) {
	return l.grid.Width*ColumnsPerCell + 2, l.grid.Height + 2
}

func (l Terminal) Contains(p types.Point) bool {
	return l.grid.Contains(p)
}

func (l Terminal) Origin() (left, top int) {
	return l.left, l.top
}
