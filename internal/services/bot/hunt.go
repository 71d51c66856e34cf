package bot

import "github.com/mcoot/broadside/internal/model"

type huntCandidate struct {
	pos model.Position
	dir model.Direction
}

// chooser selects one of several non-empty hunt candidates
type chooser func(st *State, candidates []huntCandidate) huntCandidate

func randomCandidate(st *State, candidates []huntCandidate) huntCandidate {
	return candidates[st.random.Intn(len(candidates))]
}

// heaviestCandidate picks the candidate with the highest probability weight,
// breaking ties at random
func heaviestCandidate(st *State, candidates []huntCandidate) huntCandidate {
	positions := make([]model.Position, len(candidates))
	for i, c := range candidates {
		positions[i] = c.pos
	}
	best := st.Probability.Best(positions)
	chosen := st.pick(best)
	for _, c := range candidates {
		if c.pos == chosen {
			return c
		}
	}
	return candidates[0]
}

// huntShot continues an active hunt.
//
// With a committed direction it steps on from the latest hit. Once that is
// blocked the direction flips and the walk restarts from the hunt origin,
// passing over cells already hit. Failing both, it probes an unshot
// neighbour of the latest hit, committing to that direction if none is set.
// When no neighbour is left the hunt ends and ok is false.
func huntShot(st *State, choose chooser) (model.Position, bool) {
	if !st.Hunt.Active {
		return model.Position{}, false
	}

	last, ok := st.LastHit()
	if !ok {
		st.ResetHunt()
		return model.Position{}, false
	}

	if st.Hunt.Direction != nil {
		if next := last.Add(*st.Hunt.Direction); st.Shots.Open(next) {
			return next, true
		}
		if st.Hunt.Origin != nil {
			reversed := st.Hunt.Direction.Opposite()
			st.Hunt.Direction = &reversed
			if next, ok := walkFrom(st, *st.Hunt.Origin, reversed); ok {
				return next, true
			}
		}
	}

	var candidates []huntCandidate
	for _, d := range model.Directions() {
		if next := last.Add(d); st.Shots.Open(next) {
			candidates = append(candidates, huntCandidate{pos: next, dir: d})
		}
	}

	if len(candidates) == 0 {
		st.ResetHunt()
		return model.Position{}, false
	}

	c := choose(st, candidates)
	if st.Hunt.Direction == nil {
		dir, origin := c.dir, last
		st.Hunt.Direction = &dir
		st.Hunt.Origin = &origin
	}
	return c.pos, true
}

// walkFrom steps from start in direction d over hit cells and returns the
// first unshot cell. A miss or the board edge ends the walk.
func walkFrom(st *State, start model.Position, d model.Direction) (model.Position, bool) {
	pos := start
	for {
		pos = pos.Add(d)
		if st.Shots.Open(pos) {
			return pos, true
		}
		if !st.Shots.IsHit(pos) {
			return model.Position{}, false
		}
	}
}
