package bot

import "github.com/mcoot/broadside/internal/model"

const (
	// HitBoost is added to each open neighbour of a hit
	HitBoost = 2.0
	// MissDecay is removed from each open neighbour of a miss
	MissDecay = 0.5
)

// ProbabilityMap is a heuristic per-cell weight grid used by the hard tier.
// It is not a posterior: hits raise their neighbours, misses lower them.
type ProbabilityMap struct {
	weights [model.BoardSize][model.BoardSize]float64
}

// NewProbabilityMap seeds weight 1 on the even checkerboard class and 0 elsewhere
func NewProbabilityMap() *ProbabilityMap {
	m := &ProbabilityMap{}
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if (model.Position{Row: row, Col: col}).IsParity() {
				m.weights[row][col] = 1
			}
		}
	}
	return m
}

// Weight returns the weight of a cell, or 0 if out of bounds
func (m *ProbabilityMap) Weight(pos model.Position) float64 {
	if !pos.InBounds() {
		return 0
	}
	return m.weights[pos.Row][pos.Col]
}

// Update folds in the result of a shot. The shot cell drops to 0 and its
// unshot neighbours are raised on a hit or lowered (not below 0) on a miss.
func (m *ProbabilityMap) Update(pos model.Position, hit bool, shots *ShotRecord) {
	if !pos.InBounds() {
		return
	}
	m.weights[pos.Row][pos.Col] = 0

	for _, n := range pos.Neighbors() {
		if shots.Has(n) {
			continue
		}
		w := &m.weights[n.Row][n.Col]
		if hit {
			*w += HitBoost
		} else {
			*w = max(0, *w-MissDecay)
		}
	}
}

// MaxUnshot returns every unshot cell sharing the highest weight, row-major
func (m *ProbabilityMap) MaxUnshot(shots *ShotRecord) []model.Position {
	return m.Best(shots.Unshot())
}

// Best returns the candidates sharing the highest weight, preserving order
func (m *ProbabilityMap) Best(candidates []model.Position) []model.Position {
	var best []model.Position
	bestWeight := -1.0
	for _, pos := range candidates {
		w := m.Weight(pos)
		switch {
		case w > bestWeight:
			bestWeight = w
			best = []model.Position{pos}
		case w == bestWeight:
			best = append(best, pos)
		}
	}
	return best
}
