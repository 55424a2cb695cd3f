package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-gol/rules"
)

// Cell is a 1-based (row, column) coordinate
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ApplyCells marks every listed cell alive
func (g *Grid) ApplyCells(cells []Cell) error {
	for _, c := range cells {
		if err := g.SetCellStatus(c.Row, c.Col, 1); err != nil {
			return errors.Wrap(err, "[ApplyCells] failed to seed cell")
		}
	}
	return nil
}

// addPattern writes pattern with its top-left corner at (row, col). Nothing
// is written unless every cell of the pattern passes validation.
func (g *Grid) addPattern(row, col int, pattern [][]uint8) error {
	for dx, line := range pattern {
		for dy := range line {
			if err := g.checkCoordinates(row+dx, col+dy); err != nil {
				return err
			}
		}
	}
	for dx, line := range pattern {
		for dy, v := range line {
			if err := g.SetCellStatus(row+dx, col+dy, int(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddGlider adds a glider whose 3x3 bounding box starts at (row, col)
func (g *Grid) AddGlider(row, col int) error {
	pattern := [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
	return errors.Wrap(g.addPattern(row, col, pattern), "[AddGlider] pattern does not fit")
}

// AddBlinker adds a horizontal blinker oscillator starting at (row, col)
func (g *Grid) AddBlinker(row, col int) error {
	return errors.Wrap(g.addPattern(row, col, [][]uint8{{1, 1, 1}}), "[AddBlinker] pattern does not fit")
}

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func (g *Grid) AddBlock(row, col int) error {
	pattern := [][]uint8{
		{1, 1},
		{1, 1},
	}
	return errors.Wrap(g.addPattern(row, col, pattern), "[AddBlock] pattern does not fit")
}

// Randomize fills the grid with living cells at the given density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for x := 1; x <= g.height; x++ {
		for y := 1; y <= g.width; y++ {
			if rng.Float64() < density {
				g.cells[x][y] = rules.Alive
			} else {
				g.cells[x][y] = rules.Dead
			}
		}
	}
}
