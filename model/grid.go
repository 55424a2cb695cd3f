package model

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-gol/rules"
)

const (
	// MaxWidth is the default upper bound for a grid's width
	MaxWidth = 10
	// MaxHeight is the default upper bound for a grid's height
	MaxHeight = 10

	// border is the number of always-dead padding cells on each side
	border = 1
)

var (
	// ErrInvalidSize is returned when a grid is requested with dimensions outside [1, max]
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidCoordinates is returned when a cell coordinate falls outside the accepted range
	ErrInvalidCoordinates = errors.New("invalid cell coordinates")
)

// GameOfLife is the set of operations a Game of Life board exposes
type GameOfLife interface {
	NextGeneration()
	SetCellStatus(x, y, status int) error
	PrintCurrentState()
}

// ColumnBound selects which dimension the column coordinate is checked against
type ColumnBound int

const (
	// ColumnBoundHeight checks columns against the grid height, like rows.
	// On non-square grids this is not the logical width.
	ColumnBoundHeight ColumnBound = iota
	// ColumnBoundWidth checks columns against the grid width
	ColumnBoundWidth
)

// Option configures a Grid at construction time
type Option func(*gridOptions)

type gridOptions struct {
	maxWidth    int
	maxHeight   int
	columnBound ColumnBound
}

// WithMaxSize overrides the MaxWidth and MaxHeight limits for one grid
func WithMaxSize(maxWidth, maxHeight int) Option {
	return func(o *gridOptions) {
		o.maxWidth = maxWidth
		o.maxHeight = maxHeight
	}
}

// WithColumnBound selects how SetCellStatus validates the column coordinate
func WithColumnBound(b ColumnBound) Option {
	return func(o *gridOptions) {
		o.columnBound = b
	}
}

// Grid is a bounded Game of Life board.
//
// Cells are stored with a one-cell dead border on every side, so the logical
// range is rows 1..height and columns 1..width. The border is never written.
type Grid struct {
	width       int
	height      int
	columnBound ColumnBound

	cells     [][]uint8
	nextCells [][]uint8
}

var _ GameOfLife = (*Grid)(nil)

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	o := gridOptions{
		maxWidth:    MaxWidth,
		maxHeight:   MaxHeight,
		columnBound: ColumnBoundHeight,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 || width > o.maxWidth || height > o.maxHeight {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] %dx%d outside 1x1..%dx%d",
			width, height, o.maxWidth, o.maxHeight)
	}

	return &Grid{
		width:       width,
		height:      height,
		columnBound: o.columnBound,
		cells:       newMatrix(width, height),
		nextCells:   newMatrix(width, height),
	}, nil
}

func newMatrix(width, height int) [][]uint8 {
	m := make([][]uint8, height+2*border)
	for i := range m {
		m[i] = make([]uint8, width+2*border)
	}
	return m
}

// Width returns the logical width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the logical height of the grid
func (g *Grid) Height() int {
	return g.height
}

// SetCellStatus marks the cell at row x, column y alive when status is
// positive and dead otherwise. Coordinates are 1-based.
//
// With the default ColumnBoundHeight the column is validated against the
// height. A column past the width but within the height is accepted and
// leaves the grid unchanged.
func (g *Grid) SetCellStatus(x, y, status int) error {
	if err := g.checkCoordinates(x, y); err != nil {
		return errors.Wrap(err, "[SetCellStatus]")
	}
	if y > g.width {
		return nil
	}

	if status > 0 {
		g.cells[x][y] = rules.Alive
	} else {
		g.cells[x][y] = rules.Dead
	}
	return nil
}

// checkCoordinates applies the SetCellStatus bounds without touching any cell
func (g *Grid) checkCoordinates(x, y int) error {
	maxY := g.height
	if g.columnBound == ColumnBoundWidth {
		maxY = g.width
	}
	if x < 1 || x > g.height || y < 1 || y > maxY {
		return errors.Wrapf(ErrInvalidCoordinates, "(%d, %d) on %dx%d grid", x, y, g.width, g.height)
	}
	return nil
}

// CellStatus returns the state (0 or 1) of the cell at row x, column y
func (g *Grid) CellStatus(x, y int) (int, error) {
	if x < 1 || x > g.height || y < 1 || y > g.width {
		return 0, errors.Wrapf(ErrInvalidCoordinates, "[CellStatus] (%d, %d) on %dx%d grid",
			x, y, g.width, g.height)
	}
	return int(g.cells[x][y]), nil
}

// countAliveNeighbours sums the eight cells around (x, y). The border makes
// every logical cell safe to index without bounds checks.
func (g *Grid) countAliveNeighbours(x, y int) int {
	up, row, down := g.cells[x-1], g.cells[x], g.cells[x+1]
	return int(up[y-1]) + int(up[y]) + int(up[y+1]) +
		int(row[y-1]) + int(row[y+1]) +
		int(down[y-1]) + int(down[y]) + int(down[y+1])
}

// NextGeneration advances the grid by one synchronous generation
func (g *Grid) NextGeneration() {
	for x := 1; x <= g.height; x++ {
		for y := 1; y <= g.width; y++ {
			g.nextCells[x][y] = rules.NextState(g.countAliveNeighbours(x, y), g.cells[x][y])
		}
	}

	// Commit only after every cell has been computed from the old state
	for x := 1; x <= g.height; x++ {
		copy(g.cells[x][border:g.width+border], g.nextCells[x][border:g.width+border])
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for x := 1; x <= g.height; x++ {
		for y := 1; y <= g.width; y++ {
			g.cells[x][y] = rules.Dead
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for x := 1; x <= g.height; x++ {
		for y := 1; y <= g.width; y++ {
			count += int(g.cells[x][y])
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for x := 1; x <= g.height; x++ {
		h.Write(g.cells[x][border : g.width+border])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// WriteState writes the logical cells row by row, each value followed by a space
func (g *Grid) WriteState(w io.Writer) error {
	if _, err := io.WriteString(w, g.String()); err != nil {
		return errors.Wrap(err, "[WriteState] failed to write grid state")
	}
	return nil
}

// PrintCurrentState prints the grid to standard output
func (g *Grid) PrintCurrentState() {
	// Stdout failures have nowhere better to go
	_ = g.WriteState(os.Stdout)
}

func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (2*g.width + 1))
	for x := 1; x <= g.height; x++ {
		for y := 1; y <= g.width; y++ {
			sb.WriteByte('0' + g.cells[x][y])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
