package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/broadside/internal/dependencies/mocks"
	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
	"github.com/mcoot/broadside/internal/services/bot"
	"github.com/mcoot/broadside/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
	start      time.Time
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.clock = mocks.NewMockClock(s.start)
	s.random = mocks.NewMockRandom()
	s.controller = NewController(Config{RecordTurns: true}, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// newPair builds an oracle (first) against an easy opponent with placed fleets
func (s *ControllerSuite) newPair(seed uint64) (*bot.Opponent, *bot.Opponent) {
	boardA, boardB := model.NewBoard(), model.NewBoard()

	a, err := bot.NewOpponent(bot.Config{
		Name:          "oracle",
		Difficulty:    model.DifficultyOracle,
		Random:        random.NewSeeded(seed),
		Board:         boardA,
		OpponentBoard: boardB,
	})
	s.Require().NoError(err)
	b, err := bot.NewOpponent(bot.Config{
		Name:       "easy",
		Difficulty: model.DifficultyEasy,
		Random:     random.NewSeeded(seed + 1),
		Board:      boardB,
	})
	s.Require().NoError(err)

	s.Require().NoError(a.PlaceFleet())
	s.Require().NoError(b.PlaceFleet())
	return a, b
}

// Play tests

func (s *ControllerSuite) TestPlayOracleWinsWithoutMissing() {
	a, b := s.newPair(1)

	res, err := s.controller.Play(s.ctx, a, b)
	s.Require().NoError(err)

	s.Equal(0, res.Winner)
	s.Equal("oracle", res.WinnerName())
	s.Equal([2]string{"oracle", "easy"}, res.Names)
	// 17 oracle shots interleaved with 16 replies
	s.Equal(33, res.Turns)
	s.Equal(17, res.Stats[0].ShotsFired)
	s.Equal(17, res.Stats[0].Hits)
	s.Equal(5, res.Stats[0].ShipsSunk)
	s.InDelta(100.0, res.Stats[0].Accuracy(), 0.001)
	s.Equal(16, res.Stats[1].ShotsFired)
	s.True(b.Board().AllSunk())
	s.False(a.Board().AllSunk())
}

func (s *ControllerSuite) TestPlayRecordsTurns() {
	a, b := s.newPair(2)

	res, err := s.controller.Play(s.ctx, a, b)
	s.Require().NoError(err)

	s.Require().Len(res.Log, res.Turns)
	for i, turn := range res.Log {
		s.Equal(i%2, turn.Side)
	}
	last := res.Log[len(res.Log)-1]
	s.True(last.Hit)
	s.True(last.Sunk)
}

func (s *ControllerSuite) TestPlayAssignsMatchID() {
	a, b := s.newPair(3)

	res, err := s.controller.Play(s.ctx, a, b)
	s.Require().NoError(err)

	_, err = uuid.Parse(res.ID)
	s.NoError(err)
}

func (s *ControllerSuite) TestPlayWithoutLogOmitsTurns() {
	controller := NewController(Config{}, s.clock, s.random, testutil.NopLogger())
	a, b := s.newPair(4)

	res, err := controller.Play(s.ctx, a, b)
	s.Require().NoError(err)
	s.Empty(res.Log)
}

func (s *ControllerSuite) TestPlayRequiresPlacedFleets() {
	a, err := bot.NewOpponent(bot.Config{Difficulty: model.DifficultyEasy, Random: s.random})
	s.Require().NoError(err)
	b, err := bot.NewOpponent(bot.Config{Difficulty: model.DifficultyEasy, Random: s.random})
	s.Require().NoError(err)

	_, err = s.controller.Play(s.ctx, a, b)
	s.ErrorIs(err, model.ErrFleetNotPlaced)
}

func (s *ControllerSuite) TestPlayTurnLimit() {
	controller := NewController(Config{MaxTurns: 5}, s.clock, s.random, testutil.NopLogger())
	boardA, boardB := model.NewBoard(), model.NewBoard()
	a, err := bot.NewOpponent(bot.Config{Difficulty: model.DifficultyEasy, Random: random.NewSeeded(1), Board: boardA})
	s.Require().NoError(err)
	b, err := bot.NewOpponent(bot.Config{Difficulty: model.DifficultyEasy, Random: random.NewSeeded(2), Board: boardB})
	s.Require().NoError(err)
	s.Require().NoError(a.PlaceFleet())
	s.Require().NoError(b.PlaceFleet())

	_, err = controller.Play(s.ctx, a, b)
	s.ErrorIs(err, model.ErrTurnLimit)
	s.Len(a.Shots(), 5)
	s.Len(b.Shots(), 5)
}

func (s *ControllerSuite) TestPlayStopsOnCancelledContext() {
	a, b := s.newPair(5)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.controller.Play(ctx, a, b)
	s.ErrorIs(err, context.Canceled)
	s.Empty(a.Shots())
}

func (s *ControllerSuite) TestPlayWithoutPaceNeverSleeps() {
	a, b := s.newPair(6)

	res, err := s.controller.Play(s.ctx, a, b)
	s.Require().NoError(err)

	s.Empty(s.clock.Slept)
	s.Zero(res.Stats[0].Duration())
}

func (s *ControllerSuite) TestPlayPaceSleepsWithinThinkingTime() {
	controller := NewController(Config{Pace: true}, s.clock, random.NewSeeded(9), testutil.NopLogger())
	a, b := s.newPair(7)

	res, err := controller.Play(s.ctx, a, b)
	s.Require().NoError(err)

	s.Require().Len(s.clock.Slept, res.Turns)
	var total time.Duration
	for i, d := range s.clock.Slept {
		difficulty := model.DifficultyOracle
		if i%2 == 1 {
			difficulty = model.DifficultyEasy
		}
		lo, hi := difficulty.ThinkingTime()
		s.GreaterOrEqual(d, lo)
		s.LessOrEqual(d, hi)
		total += d
	}

	s.Equal(s.start, res.Stats[0].StartedAt)
	s.Equal(total, res.Stats[0].Duration())
	s.Equal(total, res.Stats[1].Duration())
}

func (s *ControllerSuite) TestPlayPaceUsesLowerBoundForZeroDraw() {
	controller := NewController(Config{Pace: true, MaxTurns: 1}, s.clock, s.random, testutil.NopLogger())
	a, b := s.newPair(8)

	_, err := controller.Play(s.ctx, a, b)
	s.ErrorIs(err, model.ErrTurnLimit)

	s.Equal([]time.Duration{2 * time.Second, 500 * time.Millisecond}, s.clock.Slept)
}

// Series tests

func (s *ControllerSuite) TestSeries() {
	seed := uint64(10)
	pair := func() (Side, Side, error) {
		seed += 2
		a, b := s.newPair(seed)
		return a, b, nil
	}

	res, err := s.controller.Series(s.ctx, 3, pair)
	s.Require().NoError(err)

	s.Equal(3, res.Games)
	s.Equal([2]int{3, 0}, res.Wins)
	s.InDelta(33.0, res.AverageTurns(), 0.001)
	s.InDelta(100.0, res.WinRate(0), 0.001)
	s.InDelta(0.0, res.WinRate(1), 0.001)
	s.InDelta(100.0, res.Accuracy(0), 0.001)
	s.Equal(51, res.Shots[0])
}

func (s *ControllerSuite) TestSeriesPairingError() {
	setupErr := errors.New("no boards")
	pair := func() (Side, Side, error) {
		return nil, nil, setupErr
	}

	res, err := s.controller.Series(s.ctx, 2, pair)
	s.ErrorIs(err, setupErr)
	s.Zero(res.Games)
}

func (s *ControllerSuite) TestSeriesEmpty() {
	res := &SeriesResult{}
	s.Zero(res.AverageTurns())
	s.Zero(res.WinRate(0))
	s.Zero(res.Accuracy(1))
}
