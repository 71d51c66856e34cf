package match

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/broadside/internal/dependencies/clock"
	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
)

// Side is one participant in a match: it owns a board and fires at the other side
type Side interface {
	Name() string
	Board() *model.Board
	NextShot() (model.Position, error)
	RecordResult(pos model.Position, hit, sunk bool) error
}

// paced is implemented by sides that take a cosmetic thinking pause
type paced interface {
	Difficulty() model.Difficulty
}

// Config holds turn controller settings
type Config struct {
	// MaxTurns caps the shots each side may take
	MaxTurns int
	// Pace sleeps for the shooter's thinking time before every shot
	Pace bool
	// RecordTurns keeps a per-shot log in the Result
	RecordTurns bool
}

// DefaultConfig returns sensible defaults for the controller
func DefaultConfig() Config {
	return Config{
		MaxTurns: model.BoardSize * model.BoardSize,
	}
}

// Turn is a single resolved shot
type Turn struct {
	Side   int
	Target model.Position
	Hit    bool
	Sunk   bool
}

// Result is the outcome of one match
type Result struct {
	ID     string
	Names  [2]string
	Winner int // index into Names
	Turns  int
	Stats  [2]model.GameStats
	Log    []Turn
}

// WinnerName returns the winning side's name
func (r *Result) WinnerName() string {
	return r.Names[r.Winner]
}

// Controller runs the turn loop between two sides
type Controller struct {
	cfg    Config
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewController creates a new match Controller
func NewController(cfg Config, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Controller {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultConfig().MaxTurns
	}
	return &Controller{
		cfg:    cfg,
		clock:  clk,
		random: rnd,
		logger: logger.With(slog.String("component", "match")),
	}
}

// Play alternates shots, a first, until one side's fleet is sunk.
// Both fleets must already be placed.
func (c *Controller) Play(ctx context.Context, a, b Side) (*Result, error) {
	sides := [2]Side{a, b}
	for _, s := range sides {
		if len(s.Board().Ships()) == 0 {
			return nil, fmt.Errorf("%s: %w", s.Name(), model.ErrFleetNotPlaced)
		}
	}

	result := &Result{
		ID:    uuid.NewString(),
		Names: [2]string{a.Name(), b.Name()},
	}
	logger := c.logger.With(slog.String("match_id", result.ID))

	started := c.clock.Now()
	result.Stats[0].StartedAt = started
	result.Stats[1].StartedAt = started

	logger.Info("match started",
		slog.String("side_a", a.Name()),
		slog.String("side_b", b.Name()),
	)

	for turn := 0; turn < 2*c.cfg.MaxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idx := turn % 2
		shooter, defender := sides[idx], sides[1-idx]

		c.think(shooter)

		pos, err := shooter.NextShot()
		if err != nil {
			return nil, fmt.Errorf("%s next shot: %w", shooter.Name(), err)
		}

		hit, sunk, err := defender.Board().ReceiveShot(pos)
		if err != nil {
			return nil, fmt.Errorf("%s fired: %w", shooter.Name(), err)
		}

		if err := shooter.RecordResult(pos, hit, sunk); err != nil {
			return nil, fmt.Errorf("%s record result: %w", shooter.Name(), err)
		}

		result.Stats[idx].RecordShot(hit, sunk)
		result.Turns = turn + 1
		if c.cfg.RecordTurns {
			result.Log = append(result.Log, Turn{Side: idx, Target: pos, Hit: hit, Sunk: sunk})
		}

		if defender.Board().AllSunk() {
			ended := c.clock.Now()
			result.Stats[0].EndedAt = ended
			result.Stats[1].EndedAt = ended
			result.Winner = idx

			logger.Info("match completed",
				slog.String("winner", shooter.Name()),
				slog.Int("turns", result.Turns),
				slog.Float64("winner_accuracy", result.Stats[idx].Accuracy()),
			)
			return result, nil
		}
	}

	logger.Warn("match hit turn limit", slog.Int("max_turns", c.cfg.MaxTurns))
	return nil, fmt.Errorf("match %s after %d turns: %w", result.ID, result.Turns, model.ErrTurnLimit)
}

// think pauses for a random duration within the shooter's thinking range
func (c *Controller) think(s Side) {
	if !c.cfg.Pace {
		return
	}
	p, ok := s.(paced)
	if !ok {
		return
	}
	lo, hi := p.Difficulty().ThinkingTime()
	c.clock.Sleep(lo + time.Duration(c.random.Float64()*float64(hi-lo)))
}
