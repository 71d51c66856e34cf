package placement

import (
	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
)

const (
	// MaxAttemptsPerShip bounds the random draws spent on a single ship
	MaxAttemptsPerShip = 100
	// CandidateSamples is how many placements the dispersed strategy scores per ship
	CandidateSamples = 100
)

// Strategy defines how a fleet is laid out on a board
type Strategy interface {
	// Name identifies the strategy in logs and errors
	Name() string
	// Order returns the sequence in which ship lengths are placed
	Order(lengths []int) []int
	// PlaceShip attempts to place one ship, returning false if no spot was found
	PlaceShip(board *model.Board, length int) bool
}

// ForDifficulty returns the placement strategy bound to a difficulty
func ForDifficulty(d model.Difficulty, rnd random.Random) Strategy {
	switch d {
	case model.DifficultyEasy:
		return NewRandomStrategy(rnd)
	case model.DifficultyMedium:
		return NewInteriorStrategy(rnd)
	default:
		return NewDispersedStrategy(rnd)
	}
}

// randomDraw picks an anchor and orientation; the row is drawn before the column
func randomDraw(rnd random.Random, lo, span int) (model.Position, model.Orientation) {
	row := lo + rnd.Intn(span)
	col := lo + rnd.Intn(span)
	o := model.Horizontal
	if rnd.Intn(2) == 1 {
		o = model.Vertical
	}
	return model.Position{Row: row, Col: col}, o
}

// RandomStrategy places ships anywhere they fit
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

func (s *RandomStrategy) Name() string { return "random" }

// Order keeps the fleet order
func (s *RandomStrategy) Order(lengths []int) []int {
	return append([]int(nil), lengths...)
}

// PlaceShip draws uniformly random anchors until one fits
func (s *RandomStrategy) PlaceShip(board *model.Board, length int) bool {
	for range MaxAttemptsPerShip {
		pos, o := randomDraw(s.random, 0, model.BoardSize)
		if board.PlaceShip(pos, length, o) {
			return true
		}
	}
	return false
}

// InteriorStrategy keeps ships off the outer ring of the board
type InteriorStrategy struct {
	random random.Random
}

// NewInteriorStrategy creates a new InteriorStrategy
func NewInteriorStrategy(rnd random.Random) *InteriorStrategy {
	return &InteriorStrategy{random: rnd}
}

func (s *InteriorStrategy) Name() string { return "interior" }

// Order keeps the fleet order
func (s *InteriorStrategy) Order(lengths []int) []int {
	return append([]int(nil), lengths...)
}

// PlaceShip draws anchors from rows and columns 1-8, pulling the anchor back
// so the far end of the ship also stays at index 8 or below
func (s *InteriorStrategy) PlaceShip(board *model.Board, length int) bool {
	limit := model.BoardSize - 1
	for range MaxAttemptsPerShip {
		pos, o := randomDraw(s.random, 1, model.BoardSize-2)
		if o == model.Horizontal && pos.Col+length > limit {
			pos.Col = limit - length
		}
		if o == model.Vertical && pos.Row+length > limit {
			pos.Row = limit - length
		}
		if board.PlaceShip(pos, length, o) {
			return true
		}
	}
	return false
}
