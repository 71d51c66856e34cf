package placement

import (
	"math"
	"slices"

	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
)

// maxNearestDistance caps the spacing term, and is used when the board is still empty
const maxNearestDistance = 10

// DispersedStrategy greedily spreads the fleet out: for each ship it samples
// random valid placements and keeps the one furthest from the ships already
// placed, preferring central, edge-free spots
type DispersedStrategy struct {
	random random.Random
}

// NewDispersedStrategy creates a new DispersedStrategy
func NewDispersedStrategy(rnd random.Random) *DispersedStrategy {
	return &DispersedStrategy{random: rnd}
}

func (s *DispersedStrategy) Name() string { return "dispersed" }

// Order places the largest ships first
func (s *DispersedStrategy) Order(lengths []int) []int {
	ordered := append([]int(nil), lengths...)
	slices.SortStableFunc(ordered, func(a, b int) int { return b - a })
	return ordered
}

// PlaceShip places the best of CandidateSamples random valid placements
func (s *DispersedStrategy) PlaceShip(board *model.Board, length int) bool {
	var (
		found     bool
		bestScore float64
		bestPos   model.Position
		bestOrien model.Orientation
	)

	for range CandidateSamples {
		pos, o := randomDraw(s.random, 0, model.BoardSize)
		if !board.CanPlace(pos, length, o) {
			continue
		}
		score := Score(board, pos, length, o)
		if !found || score > bestScore {
			found = true
			bestScore = score
			bestPos = pos
			bestOrien = o
		}
	}

	if !found {
		return false
	}
	return board.PlaceShip(bestPos, length, bestOrien)
}

// Score rates a candidate placement; higher is better.
//
//	score = nearestDistance - edgePenalty - 0.5*centerDistance
func Score(board *model.Board, anchor model.Position, length int, o model.Orientation) float64 {
	cells := model.ShipCells(anchor, length, o)
	return float64(nearestDistance(board, cells)) -
		float64(edgePenalty(anchor, length, o)) -
		0.5*centerDistance(anchor, length, o)
}

// nearestDistance is the smallest Manhattan distance between the candidate
// and any ship segment already on the board
func nearestDistance(board *model.Board, cells []model.Position) int {
	best := maxNearestDistance
	for _, ship := range board.Ships() {
		for _, placed := range ship.Cells() {
			for _, c := range cells {
				if d := manhattan(placed, c); d < best {
					best = d
				}
			}
		}
	}
	return best
}

// edgePenalty charges 2 for running along an edge and 1 per segment
// sitting on a perpendicular edge
func edgePenalty(anchor model.Position, length int, o model.Orientation) int {
	last := model.BoardSize - 1
	penalty := 0
	if o == model.Horizontal {
		if anchor.Row == 0 || anchor.Row == last {
			penalty += 2
		}
		for i := 0; i < length; i++ {
			if c := anchor.Col + i; c == 0 || c == last {
				penalty++
			}
		}
		return penalty
	}

	if anchor.Col == 0 || anchor.Col == last {
		penalty += 2
	}
	for i := 0; i < length; i++ {
		if r := anchor.Row + i; r == 0 || r == last {
			penalty++
		}
	}
	return penalty
}

// centerDistance measures from the ship's midpoint to the board centre
func centerDistance(anchor model.Position, length int, o model.Orientation) float64 {
	center := float64(model.BoardSize-1) / 2
	half := float64(length) / 2
	row, col := float64(anchor.Row), float64(anchor.Col)
	if o == model.Horizontal {
		col += half
	} else {
		row += half
	}
	return math.Abs(row-center) + math.Abs(col-center)
}

func manhattan(a, b model.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
