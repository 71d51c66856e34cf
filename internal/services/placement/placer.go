package placement

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/broadside/internal/model"
)

// MaxRestarts bounds how many times a whole fleet is re-laid after a ship
// could not be placed
const MaxRestarts = 20

// Placer lays out a complete fleet with a strategy, restarting from an
// empty board when a ship runs out of attempts
type Placer struct {
	strategy Strategy
	logger   *slog.Logger
}

// NewPlacer creates a new Placer
func NewPlacer(strategy Strategy, logger *slog.Logger) *Placer {
	return &Placer{
		strategy: strategy,
		logger:   logger.With(slog.String("component", "placement"), slog.String("strategy", strategy.Name())),
	}
}

// Strategy returns the strategy in use
func (p *Placer) Strategy() Strategy {
	return p.strategy
}

// PlaceFleet places every ship length onto the board. The board is reset
// first and left empty if placement is exhausted.
func (p *Placer) PlaceFleet(board *model.Board, lengths []int) error {
	for _, l := range lengths {
		if l < model.MinShipLength || l > model.MaxShipLength {
			return fmt.Errorf("ship length %d: %w", l, model.ErrInvalidShipLength)
		}
	}

	order := p.strategy.Order(lengths)

	for attempt := 0; attempt <= MaxRestarts; attempt++ {
		board.Reset()
		if p.placeAll(board, order) {
			p.logger.Debug("fleet placed",
				slog.Int("ships", len(order)),
				slog.Int("restarts", attempt),
			)
			return nil
		}
		p.logger.Debug("fleet placement restarting", slog.Int("attempt", attempt+1))
	}

	board.Reset()
	p.logger.Warn("fleet placement exhausted", slog.Int("restarts", MaxRestarts))
	return fmt.Errorf("%s placement after %d restarts: %w", p.strategy.Name(), MaxRestarts, model.ErrPlacementExhausted)
}

func (p *Placer) placeAll(board *model.Board, order []int) bool {
	for _, length := range order {
		if !p.strategy.PlaceShip(board, length) {
			return false
		}
	}
	return true
}
