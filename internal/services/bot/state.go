package bot

import (
	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
)

// ShotRecord is the set of cells this engine has fired at, with the result of each
type ShotRecord struct {
	cells [model.BoardSize][model.BoardSize]model.CellState // CellEmpty means not yet fired
	count int
}

// Has returns true if the cell has been fired at
func (r *ShotRecord) Has(pos model.Position) bool {
	return pos.InBounds() && r.cells[pos.Row][pos.Col] != model.CellEmpty
}

// IsHit returns true if the cell was fired at and hit a ship
func (r *ShotRecord) IsHit(pos model.Position) bool {
	return pos.InBounds() && r.cells[pos.Row][pos.Col] == model.CellHit
}

// Open returns true for an in-bounds cell that has not been fired at
func (r *ShotRecord) Open(pos model.Position) bool {
	return pos.InBounds() && r.cells[pos.Row][pos.Col] == model.CellEmpty
}

// Count returns how many shots have been recorded
func (r *ShotRecord) Count() int {
	return r.count
}

// Remaining returns how many cells are still unshot
func (r *ShotRecord) Remaining() int {
	return model.BoardSize*model.BoardSize - r.count
}

// Unshot returns every unshot cell in row-major order
func (r *ShotRecord) Unshot() []model.Position {
	return r.UnshotWhere(nil)
}

// UnshotWhere returns the unshot cells accepted by keep, in row-major order.
// A nil keep accepts every cell.
func (r *ShotRecord) UnshotWhere(keep func(model.Position) bool) []model.Position {
	result := make([]model.Position, 0, r.Remaining())
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if r.cells[row][col] != model.CellEmpty {
				continue
			}
			if keep == nil || keep(pos) {
				result = append(result, pos)
			}
		}
	}
	return result
}

// Positions returns every fired cell in row-major order
func (r *ShotRecord) Positions() []model.Position {
	result := make([]model.Position, 0, r.count)
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if r.cells[row][col] != model.CellEmpty {
				result = append(result, model.Position{Row: row, Col: col})
			}
		}
	}
	return result
}

func (r *ShotRecord) record(pos model.Position, hit bool) {
	state := model.CellMiss
	if hit {
		state = model.CellHit
	}
	r.cells[pos.Row][pos.Col] = state
	r.count++
}

// HuntState tracks the damaged ship currently being finished off.
// Direction is only set while Active; Origin is the hit that started the hunt.
type HuntState struct {
	Active    bool
	Origin    *model.Position
	Direction *model.Direction
}

// State is everything a targeting strategy may read or update
type State struct {
	Shots ShotRecord
	// Hits holds hits not yet resolved into a sunk ship, oldest first
	Hits        []model.Position
	Hunt        HuntState
	Probability *ProbabilityMap // nil unless the difficulty uses one

	random random.Random
}

// NewState creates an empty targeting state
func NewState(rnd random.Random) *State {
	return &State{random: rnd}
}

// LastHit returns the most recent unresolved hit
func (st *State) LastHit() (model.Position, bool) {
	if len(st.Hits) == 0 {
		return model.Position{}, false
	}
	return st.Hits[len(st.Hits)-1], true
}

// ResetHunt returns targeting to search mode
func (st *State) ResetHunt() {
	st.Hunt = HuntState{}
}

// openNeighbors returns the unshot orthogonal neighbours of pos
func (st *State) openNeighbors(pos model.Position) []model.Position {
	var result []model.Position
	for _, n := range pos.Neighbors() {
		if st.Shots.Open(n) {
			result = append(result, n)
		}
	}
	return result
}

// pick returns a uniformly random element of a non-empty slice
func (st *State) pick(candidates []model.Position) model.Position {
	return candidates[st.random.Intn(len(candidates))]
}

// randomUnshot picks uniformly among every unshot cell
func (st *State) randomUnshot() (model.Position, bool) {
	open := st.Shots.Unshot()
	if len(open) == 0 {
		return model.Position{}, false
	}
	return st.pick(open), true
}
