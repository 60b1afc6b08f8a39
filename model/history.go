package model

// historySize is the number of recent grid hashes kept for cycle detection
const historySize = 5

// History remembers recent generations so static states and short cycles can be detected
type History struct {
	hashes []string
}

// UpdateHistory adds the grid's state to history and maintains size
func (h *History) UpdateHistory(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant checks if the grid repeats one of the last three recorded states
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.GetGridHash()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}
