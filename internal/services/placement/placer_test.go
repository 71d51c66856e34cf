package placement

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/broadside/internal/dependencies/mocks"
	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/model"
	"github.com/mcoot/broadside/internal/testutil"
)

type PlacerSuite struct {
	suite.Suite
	random *mocks.MockRandom
	board  *model.Board
}

func TestPlacerSuite(t *testing.T) {
	suite.Run(t, new(PlacerSuite))
}

func (s *PlacerSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.board = model.NewBoard()
}

// assertValidFleet checks the board holds exactly the given fleet with no overlaps
func (s *PlacerSuite) assertValidFleet(board *model.Board, lengths []int) {
	s.Require().Len(board.Ships(), len(lengths))

	seen := make(map[model.Position]bool)
	total := 0
	for _, ship := range board.Ships() {
		total += ship.Length
		for _, pos := range ship.Cells() {
			s.True(pos.InBounds(), "ship cell %s out of bounds", pos)
			s.False(seen[pos], "ship cell %s overlaps", pos)
			seen[pos] = true
			s.Equal(model.CellShip, board.CellState(pos))
		}
	}

	shipCells := 0
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			if board.Cells[row][col] == model.CellShip {
				shipCells++
			}
		}
	}
	s.Equal(total, shipCells)
}

// PlaceFleet tests

func (s *PlacerSuite) TestEveryStrategyPlacesStandardFleet() {
	lengths := model.FleetLengths(model.StandardFleet())

	for _, d := range model.ValidDifficulties() {
		for seed := uint64(1); seed <= 20; seed++ {
			board := model.NewBoard()
			placer := NewPlacer(ForDifficulty(d, random.NewSeeded(seed)), testutil.NopLogger())

			s.Require().NoError(placer.PlaceFleet(board, lengths), "%s seed %d", d, seed)
			s.assertValidFleet(board, lengths)
			s.Equal(17, board.ShipCellCount())
		}
	}
}

func (s *PlacerSuite) TestInteriorStrategyAvoidsEdges() {
	lengths := model.FleetLengths(model.StandardFleet())

	for seed := uint64(1); seed <= 50; seed++ {
		board := model.NewBoard()
		placer := NewPlacer(NewInteriorStrategy(random.NewSeeded(seed)), testutil.NopLogger())
		s.Require().NoError(placer.PlaceFleet(board, lengths))

		for _, ship := range board.Ships() {
			for _, pos := range ship.Cells() {
				s.GreaterOrEqual(pos.Row, 1, "seed %d", seed)
				s.LessOrEqual(pos.Row, 8, "seed %d", seed)
				s.GreaterOrEqual(pos.Col, 1, "seed %d", seed)
				s.LessOrEqual(pos.Col, 8, "seed %d", seed)
			}
		}
	}
}

func (s *PlacerSuite) TestPlaceFleetResetsBoardFirst() {
	s.Require().True(s.board.PlaceShip(model.Position{Row: 9, Col: 0}, 5, model.Horizontal))
	s.random.QueueIntn(2, 3, 1)

	placer := NewPlacer(NewRandomStrategy(s.random), testutil.NopLogger())
	s.Require().NoError(placer.PlaceFleet(s.board, []int{2}))

	s.Require().Len(s.board.Ships(), 1)
	s.Equal(model.CellEmpty, s.board.CellState(model.Position{Row: 9, Col: 0}))
}

func (s *PlacerSuite) TestPlaceFleetExhausted() {
	// An empty mock always draws (0,0) horizontal, so the second carrier never fits
	placer := NewPlacer(NewRandomStrategy(s.random), testutil.NopLogger())

	err := placer.PlaceFleet(s.board, []int{5, 5})
	s.ErrorIs(err, model.ErrPlacementExhausted)
	s.Empty(s.board.Ships())
	s.Equal([model.BoardSize][model.BoardSize]model.CellState{}, s.board.Cells)
}

func (s *PlacerSuite) TestPlaceFleetRejectsInvalidLength() {
	placer := NewPlacer(NewRandomStrategy(s.random), testutil.NopLogger())

	s.ErrorIs(placer.PlaceFleet(s.board, []int{3, 6}), model.ErrInvalidShipLength)
	s.ErrorIs(placer.PlaceFleet(s.board, []int{1}), model.ErrInvalidShipLength)
}

// Strategy tests

func (s *PlacerSuite) TestForDifficulty() {
	s.Equal("random", ForDifficulty(model.DifficultyEasy, s.random).Name())
	s.Equal("interior", ForDifficulty(model.DifficultyMedium, s.random).Name())
	s.Equal("dispersed", ForDifficulty(model.DifficultyHard, s.random).Name())
	s.Equal("dispersed", ForDifficulty(model.DifficultyOracle, s.random).Name())
}

func (s *PlacerSuite) TestRandomStrategyUsesDrawOrder() {
	s.random.QueueIntn(2, 3, 1)

	s.Require().True(NewRandomStrategy(s.random).PlaceShip(s.board, 4))

	ship := s.board.ShipAt(model.Position{Row: 2, Col: 3})
	s.Require().NotNil(ship)
	s.Equal(model.Vertical, ship.Orientation)
	s.Equal(model.CellShip, s.board.CellState(model.Position{Row: 5, Col: 3}))
}

func (s *PlacerSuite) TestInteriorStrategyClampsAnchor() {
	// Draws land on (8,8); a horizontal carrier is pulled back to column 4
	s.random.QueueIntn(7, 7, 0)

	s.Require().True(NewInteriorStrategy(s.random).PlaceShip(s.board, 5))

	ship := s.board.ShipAt(model.Position{Row: 8, Col: 4})
	s.Require().NotNil(ship)
	s.Equal(model.Position{Row: 8, Col: 4}, ship.Anchor)
	s.Equal(model.CellEmpty, s.board.CellState(model.Position{Row: 8, Col: 9}))
}

func (s *PlacerSuite) TestInteriorStrategyClampsVertical() {
	s.random.QueueIntn(6, 2, 1)

	s.Require().True(NewInteriorStrategy(s.random).PlaceShip(s.board, 3))

	ship := s.board.ShipAt(model.Position{Row: 6, Col: 3})
	s.Require().NotNil(ship)
	s.Equal(model.Position{Row: 6, Col: 3}, ship.Anchor)
	s.Equal(model.Vertical, ship.Orientation)
}

func (s *PlacerSuite) TestOrderPreservedExceptDispersed() {
	lengths := []int{3, 5, 2, 4}

	s.Equal(lengths, NewRandomStrategy(s.random).Order(lengths))
	s.Equal(lengths, NewInteriorStrategy(s.random).Order(lengths))
	s.Equal([]int{5, 4, 3, 2}, NewDispersedStrategy(s.random).Order(lengths))
	s.Equal([]int{3, 5, 2, 4}, lengths)
}
