package bot

import "github.com/mcoot/broadside/internal/model"

// Tunable policy constants
const (
	// EasyFollowUpChance is how often the easy tier fires next to its latest hit
	EasyFollowUpChance = 0.3
	// DefaultParityRatio is the share of medium-tier search shots drawn from
	// the checkerboard parity class
	DefaultParityRatio = 0.5
)

// Strategy picks the next cell to fire at. ok is false when the strategy has
// no suggestion, in which case the caller falls back to a random unshot cell.
type Strategy interface {
	Name() string
	NextShot(st *State) (pos model.Position, ok bool)
}

// ForDifficulty returns the targeting strategy bound to a difficulty.
// view is only consulted by the oracle tier.
func ForDifficulty(d model.Difficulty, view model.BoardView, parityRatio float64) Strategy {
	switch d {
	case model.DifficultyEasy:
		return EasyStrategy{}
	case model.DifficultyMedium:
		return ParityStrategy{ParityRatio: parityRatio}
	case model.DifficultyHard:
		return ProbabilityStrategy{}
	default:
		return OracleStrategy{View: view}
	}
}

// EasyStrategy fires at random, occasionally following up on its latest hit
type EasyStrategy struct{}

func (EasyStrategy) Name() string { return "easy" }

func (EasyStrategy) NextShot(st *State) (model.Position, bool) {
	if last, ok := st.LastHit(); ok && st.random.Float64() < EasyFollowUpChance {
		if candidates := st.openNeighbors(last); len(candidates) > 0 {
			return st.pick(candidates), true
		}
	}
	return st.randomUnshot()
}

// ParityStrategy hunts damaged ships along a direction and otherwise biases
// its search toward the checkerboard parity class
type ParityStrategy struct {
	ParityRatio float64
}

func (ParityStrategy) Name() string { return "parity" }

func (s ParityStrategy) NextShot(st *State) (model.Position, bool) {
	if pos, ok := huntShot(st, randomCandidate); ok {
		return pos, true
	}

	if st.random.Float64() < s.ParityRatio {
		if candidates := st.Shots.UnshotWhere(model.Position.IsParity); len(candidates) > 0 {
			return st.pick(candidates), true
		}
	}
	return st.randomUnshot()
}

// ProbabilityStrategy hunts like ParityStrategy but always prefers the
// highest weighted cell on the probability map
type ProbabilityStrategy struct{}

func (ProbabilityStrategy) Name() string { return "probability" }

func (ProbabilityStrategy) NextShot(st *State) (model.Position, bool) {
	if st.Probability == nil {
		return st.randomUnshot()
	}

	if pos, ok := huntShot(st, heaviestCandidate); ok {
		return pos, true
	}

	if best := st.Probability.MaxUnshot(&st.Shots); len(best) > 0 {
		return st.pick(best), true
	}
	return st.randomUnshot()
}

// OracleStrategy reads the opponent's real board and fires at the first
// unshot ship cell in row-major order
type OracleStrategy struct {
	View model.BoardView
}

func (OracleStrategy) Name() string { return "oracle" }

func (s OracleStrategy) NextShot(st *State) (model.Position, bool) {
	if s.View != nil {
		for row := 0; row < model.BoardSize; row++ {
			for col := 0; col < model.BoardSize; col++ {
				pos := model.Position{Row: row, Col: col}
				if st.Shots.Open(pos) && s.View.CellState(pos) == model.CellShip {
					return pos, true
				}
			}
		}
	}
	return st.randomUnshot()
}
