package entity

import (
	"fmt"
	"iter"
)

// CellKind classifies one position of the level grid
type CellKind int

const (
	CellEmpty CellKind = iota
	CellWall
	CellBrick
)

// String returns the string representation of the cell kind
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellWall:
		return "Wall"
	case CellBrick:
		return "Brick"
	default:
		return "Unknown"
	}
}

// Cell is one non-empty grid position yielded by Level.Cells
type Cell struct {
	Row  int
	Col  int
	Kind CellKind
}

// Level is the immutable tile grid of the arena.
// Cells are stored row-major: index = row*Width + col.
type Level struct {
	Name   string
	Width  int // columns (W)
	Height int // rows (H)
	cells  []CellKind
}

// NewLevel creates a level from row-major cell data.
// The slice is copied so the level cannot be mutated afterwards.
func NewLevel(name string, width, height int, cells []CellKind) (*Level, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid level size %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("level %q: expected %d cells, got %d", name, width*height, len(cells))
	}

	data := make([]CellKind, len(cells))
	copy(data, cells)

	return &Level{
		Name:   name,
		Width:  width,
		Height: height,
		cells:  data,
	}, nil
}

// CellAt returns the cell kind at the given grid coordinates.
// Positions outside the grid are reported as walls.
func (l *Level) CellAt(row, col int) CellKind {
	if row < 0 || row >= l.Height || col < 0 || col >= l.Width {
		return CellWall
	}
	return l.cells[row*l.Width+col]
}

// Cells returns a sequence of every non-empty cell in row-major order.
// The sequence can be ranged over any number of times.
func (l *Level) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := 0; row < l.Height; row++ {
			for col := 0; col < l.Width; col++ {
				kind := l.cells[row*l.Width+col]
				if kind == CellEmpty {
					continue
				}
				if !yield(Cell{Row: row, Col: col, Kind: kind}) {
					return
				}
			}
		}
	}
}

// Count returns the number of cells of the given kind
func (l *Level) Count(kind CellKind) int {
	n := 0
	for _, k := range l.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Bounds returns the arena bounds derived from the grid size
func (l *Level) Bounds(insets BoundsInsets) ArenaBounds {
	return NewArenaBounds(l.Width, l.Height, insets)
}
