package life

import "fmt"

// History stores every computed generation alongside its population
// percentage. Generations are 1-based: Get(1) is the seeded grid.
type History struct {
	grids  []*Grid
	series []float64
}

// Seed discards everything and starts over from g.
func (h *History) Seed(g *Grid) {
	h.grids = []*Grid{g}
	h.series = []float64{g.Population()}
}

// Append stores g as the generation after the last one.
func (h *History) Append(g *Grid) {
	h.grids = append(h.grids, g)
	h.series = append(h.series, g.Population())
}

// Len is the number of stored generations.
func (h *History) Len() int { return len(h.grids) }

// Last returns the most recent generation.
func (h *History) Last() *Grid {
	return h.grids[len(h.grids)-1]
}

// Get returns the grid for a 1-based generation number.
func (h *History) Get(gen int) (*Grid, error) {
	if gen < 1 || gen > len(h.grids) {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, gen, len(h.grids))
	}
	return h.grids[gen-1], nil
}

// Recount refreshes the population entry of gen after its grid was edited.
func (h *History) Recount(gen int) error {
	g, err := h.Get(gen)
	if err != nil {
		return err
	}
	h.series[gen-1] = g.Population()
	return nil
}

// TruncateAfter drops every generation past gen.
func (h *History) TruncateAfter(gen int) error {
	if _, err := h.Get(gen); err != nil {
		return err
	}
	for i := gen; i < len(h.grids); i++ {
		h.grids[i] = nil
	}
	h.grids = h.grids[:gen]
	h.series = h.series[:gen]
	return nil
}

// SeriesTo returns a copy of the first n population entries, so generations
// cached ahead of the cursor are not shown. n is clamped to the stored range.
func (h *History) SeriesTo(n int) []float64 {
	if n > len(h.series) {
		n = len(h.series)
	}
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	copy(out, h.series[:n])
	return out
}
