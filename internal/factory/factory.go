package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/broadside/internal/dependencies/clock"
	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
	"github.com/mcoot/broadside/internal/services/bot"
	"github.com/mcoot/broadside/internal/services/match"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	MatchController *match.Controller

	parityRatio *float64
	fleet       []model.ShipClass
}

// Config holds configuration for the application factory
type Config struct {
	// Seed makes every decision reproducible (optional)
	// If zero, a crypto/rand source is used
	Seed uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Match holds turn controller settings (optional)
	// A zero MaxTurns falls back to match.DefaultConfig()
	Match match.Config
	// ParityRatio overrides the medium tier's parity search share (optional)
	// If nil, bot.DefaultParityRatio is used
	ParityRatio *float64
	// Fleet overrides the ships each side places (optional)
	Fleet []model.ShipClass
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if r := cfg.ParityRatio; r != nil && (*r < 0 || *r > 1) {
		return nil, errors.New("invalid ParityRatio: must be between 0 and 1")
	}

	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	app := newWithDependencies(clock.New(), rnd, cfg.Match, logger)
	app.parityRatio = cfg.ParityRatio
	app.fleet = cfg.Fleet
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, matchCfg match.Config, logger *slog.Logger) *App {
	return &App{
		Clock:           clk,
		Random:          rnd,
		Logger:          logger,
		MatchController: match.NewController(matchCfg, clk, rnd, logger),
	}
}

// NewOpponent creates a computer opponent that owns board and fires at view.
// view is only required for the oracle tier.
func (a *App) NewOpponent(name string, d model.Difficulty, board *model.Board, view model.BoardView) (*bot.Opponent, error) {
	return bot.NewOpponent(bot.Config{
		Name:          name,
		Difficulty:    d,
		Random:        a.Random,
		Board:         board,
		OpponentBoard: view,
		Logger:        a.Logger,
		Fleet:         a.fleet,
		ParityRatio:   a.parityRatio,
	})
}

// NewPairing returns a match.Pairing that builds two opponents with placed
// fleets, each able to see the other's board
func (a *App) NewPairing(da, db model.Difficulty) match.Pairing {
	return func() (match.Side, match.Side, error) {
		boardA, boardB := model.NewBoard(), model.NewBoard()

		sideA, err := a.NewOpponent(fmt.Sprintf("%s bot A", da.DisplayName()), da, boardA, boardB)
		if err != nil {
			return nil, nil, err
		}
		sideB, err := a.NewOpponent(fmt.Sprintf("%s bot B", db.DisplayName()), db, boardB, boardA)
		if err != nil {
			return nil, nil, err
		}

		if err := sideA.PlaceFleet(); err != nil {
			return nil, nil, err
		}
		if err := sideB.PlaceFleet(); err != nil {
			return nil, nil, err
		}
		return sideA, sideB, nil
	}
}
