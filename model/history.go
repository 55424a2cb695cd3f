package model

// historySize is how many recent states are kept for cycle detection
const historySize = 5

// History tracks recent grid hashes to spot static states and short cycles
type History struct {
	hashes []string
}

// Update adds the grid's current state to the history and maintains its size
func (h *History) Update(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether the grid's current state matches one of the
// last three recorded states, i.e. it is static or cycling with period <= 3
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 1 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
