package bot

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
	"github.com/mcoot/broadside/internal/services/placement"
)

// Config configures a computer opponent for a single game
type Config struct {
	// Name labels the opponent in logs and match results (optional)
	// If empty, defaults to "<Difficulty> bot"
	Name       string
	Difficulty model.Difficulty
	// Random drives every decision; inject a seeded source for reproducible games
	Random random.Random
	// Board is the opponent's own board (optional, defaults to a new empty board)
	Board *model.Board
	// Logger is the component logger (optional)
	Logger *slog.Logger
	// OpponentBoard is the read-only view of the other side's board.
	// Required for DifficultyOracle and ignored otherwise.
	OpponentBoard model.BoardView
	// Fleet is the set of ships to place (optional, defaults to model.StandardFleet())
	Fleet []model.ShipClass
	// ParityRatio overrides DefaultParityRatio for the medium tier (optional).
	// Zero is a valid ratio and disables the parity bias.
	ParityRatio *float64
}

// Opponent is the computer player for one game: it owns its own board,
// places a fleet on it, and picks shots against the other side.
//
// An Opponent is not safe for concurrent use. NextShot and RecordResult are
// expected to be called alternately from a single game loop.
type Opponent struct {
	name       string
	difficulty model.Difficulty
	board      *model.Board
	fleet      []model.ShipClass
	placer     *placement.Placer
	strategy   Strategy
	state      *State
	logger     *slog.Logger
}

// NewOpponent creates an opponent with an empty board
func NewOpponent(cfg Config) (*Opponent, error) {
	if !cfg.Difficulty.Valid() {
		return nil, fmt.Errorf("difficulty %d: %w", int(cfg.Difficulty), model.ErrUnknownDifficulty)
	}
	if cfg.Difficulty == model.DifficultyOracle && cfg.OpponentBoard == nil {
		return nil, model.ErrOracleNeedsBoard
	}

	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	fleet := cfg.Fleet
	if len(fleet) == 0 {
		fleet = model.StandardFleet()
	}
	parityRatio := DefaultParityRatio
	if cfg.ParityRatio != nil {
		parityRatio = *cfg.ParityRatio
	}
	board := cfg.Board
	if board == nil {
		board = model.NewBoard()
	}
	name := cfg.Name
	if name == "" {
		name = cfg.Difficulty.DisplayName() + " bot"
	}

	state := NewState(rnd)
	if cfg.Difficulty == model.DifficultyHard {
		state.Probability = NewProbabilityMap()
	}

	placer := placement.NewPlacer(placement.ForDifficulty(cfg.Difficulty, rnd), logger)
	logger = logger.With(
		slog.String("component", "bot"),
		slog.String("bot_name", name),
		slog.String("difficulty", cfg.Difficulty.String()),
	)

	return &Opponent{
		name:       name,
		difficulty: cfg.Difficulty,
		board:      board,
		fleet:      fleet,
		placer:     placer,
		strategy:   ForDifficulty(cfg.Difficulty, cfg.OpponentBoard, parityRatio),
		state:      state,
		logger:     logger,
	}, nil
}

// Name returns the opponent's label
func (o *Opponent) Name() string {
	return o.name
}

// Difficulty returns the opponent's tier
func (o *Opponent) Difficulty() model.Difficulty {
	return o.difficulty
}

// Board returns the opponent's own board, which the other side fires at
func (o *Opponent) Board() *model.Board {
	return o.board
}

// PlaceFleet lays out the opponent's fleet using its difficulty's placement strategy
func (o *Opponent) PlaceFleet() error {
	if err := o.placer.PlaceFleet(o.board, model.FleetLengths(o.fleet)); err != nil {
		o.logger.Error("fleet placement failed", slog.String("error", err.Error()))
		return err
	}
	o.logger.Info("fleet placed",
		slog.String("placement", o.placer.Strategy().Name()),
		slog.Int("ships", len(o.board.Ships())),
	)
	return nil
}

// NextShot returns a cell that has not been fired at yet
func (o *Opponent) NextShot() (model.Position, error) {
	if o.state.Shots.Remaining() == 0 {
		return model.Position{}, model.ErrNoShotsRemaining
	}

	pos, ok := o.strategy.NextShot(o.state)
	if !ok || !o.state.Shots.Open(pos) {
		// Any unshot cell will do; the board is not full so one exists
		pos, _ = o.state.randomUnshot()
	}

	o.logger.Debug("shot chosen",
		slog.String("target", pos.String()),
		slog.Bool("hunting", o.state.Hunt.Active),
	)
	return pos, nil
}

// RecordResult feeds back the outcome of a shot returned by NextShot.
// Out-of-bounds or repeated cells are rejected and leave the state unchanged.
func (o *Opponent) RecordResult(pos model.Position, hit, sunk bool) error {
	if !pos.InBounds() {
		return fmt.Errorf("record %s: %w", pos, model.ErrOutOfBounds)
	}
	if o.state.Shots.Has(pos) {
		return fmt.Errorf("record %s: %w", pos, model.ErrShotAlreadyRecorded)
	}

	st := o.state
	st.Shots.record(pos, hit)

	if hit {
		st.Hits = append(st.Hits, pos)
		if o.difficulty != model.DifficultyOracle && !st.Hunt.Active {
			origin := pos
			st.Hunt = HuntState{Active: true, Origin: &origin}
		}
	}

	if sunk {
		st.ResetHunt()
		st.Hits = nil
		o.logger.Debug("ship sunk", slog.String("target", pos.String()))
	}

	if st.Probability != nil {
		st.Probability.Update(pos, hit, &st.Shots)
	}
	return nil
}

// Hunt returns a copy of the current hunt state
func (o *Opponent) Hunt() HuntState {
	h := HuntState{Active: o.state.Hunt.Active}
	if o.state.Hunt.Origin != nil {
		origin := *o.state.Hunt.Origin
		h.Origin = &origin
	}
	if o.state.Hunt.Direction != nil {
		dir := *o.state.Hunt.Direction
		h.Direction = &dir
	}
	return h
}

// Hunting returns true while a damaged ship is being finished off
func (o *Opponent) Hunting() bool {
	return o.state.Hunt.Active
}

// Shots returns every fired cell in row-major order
func (o *Opponent) Shots() []model.Position {
	return o.state.Shots.Positions()
}

// UnresolvedHits returns hits not yet attributed to a sunk ship, oldest first
func (o *Opponent) UnresolvedHits() []model.Position {
	return append([]model.Position(nil), o.state.Hits...)
}

// Probability returns the weight map, or nil below the hard tier
func (o *Opponent) Probability() *ProbabilityMap {
	return o.state.Probability
}
