package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard()
}

// Position tests

func (s *BoardSuite) TestNeighborsInCorner() {
	s.Equal([]Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, Position{Row: 0, Col: 0}.Neighbors())
}

func (s *BoardSuite) TestNeighborsOrder() {
	s.Equal([]Position{
		{Row: 3, Col: 4},
		{Row: 4, Col: 5},
		{Row: 5, Col: 4},
		{Row: 4, Col: 3},
	}, Position{Row: 4, Col: 4}.Neighbors())
}

func (s *BoardSuite) TestParity() {
	s.True(Position{Row: 0, Col: 0}.IsParity())
	s.True(Position{Row: 3, Col: 5}.IsParity())
	s.False(Position{Row: 0, Col: 1}.IsParity())
}

func (s *BoardSuite) TestOppositeDirections() {
	for _, d := range Directions() {
		s.NotEqual(d, d.Opposite())
		s.Equal(d, d.Opposite().Opposite())
	}
}

// PlaceShip tests

func (s *BoardSuite) TestPlaceShipHorizontal() {
	s.Require().True(s.board.PlaceShip(Position{Row: 2, Col: 3}, 4, Horizontal))

	for col := 3; col < 7; col++ {
		s.Equal(CellShip, s.board.CellState(Position{Row: 2, Col: col}))
	}
	s.Equal(CellEmpty, s.board.CellState(Position{Row: 2, Col: 7}))
	s.Equal(4, s.board.ShipCellCount())
}

func (s *BoardSuite) TestPlaceShipVertical() {
	s.Require().True(s.board.PlaceShip(Position{Row: 5, Col: 9}, 5, Vertical))

	s.Equal(CellShip, s.board.CellState(Position{Row: 9, Col: 9}))
	s.Len(s.board.Ships(), 1)
}

func (s *BoardSuite) TestPlaceShipOutOfBounds() {
	s.False(s.board.PlaceShip(Position{Row: 0, Col: 7}, 4, Horizontal))
	s.False(s.board.PlaceShip(Position{Row: 8, Col: 0}, 3, Vertical))
	s.False(s.board.PlaceShip(Position{Row: -1, Col: 0}, 2, Vertical))

	s.Empty(s.board.Ships())
	s.Equal([BoardSize][BoardSize]CellState{}, s.board.Cells)
}

func (s *BoardSuite) TestPlaceShipOverlapLeavesBoardUnchanged() {
	s.Require().True(s.board.PlaceShip(Position{Row: 4, Col: 4}, 3, Vertical))
	before := s.board.Cells

	s.False(s.board.PlaceShip(Position{Row: 5, Col: 2}, 4, Horizontal))
	s.Equal(before, s.board.Cells)
	s.Len(s.board.Ships(), 1)
}

func (s *BoardSuite) TestPlaceShipInvalidLength() {
	s.False(s.board.PlaceShip(Position{Row: 0, Col: 0}, 1, Horizontal))
	s.False(s.board.PlaceShip(Position{Row: 0, Col: 0}, 6, Horizontal))
}

// ReceiveShot tests

func (s *BoardSuite) TestReceiveShotMiss() {
	hit, sunk, err := s.board.ReceiveShot(Position{Row: 0, Col: 0})
	s.Require().NoError(err)
	s.False(hit)
	s.False(sunk)
	s.Equal(CellMiss, s.board.CellState(Position{Row: 0, Col: 0}))
}

func (s *BoardSuite) TestReceiveShotSinksShip() {
	s.Require().True(s.board.PlaceShip(Position{Row: 1, Col: 1}, 2, Horizontal))

	hit, sunk, err := s.board.ReceiveShot(Position{Row: 1, Col: 2})
	s.Require().NoError(err)
	s.True(hit)
	s.False(sunk)
	s.False(s.board.AllSunk())

	hit, sunk, err = s.board.ReceiveShot(Position{Row: 1, Col: 1})
	s.Require().NoError(err)
	s.True(hit)
	s.True(sunk)
	s.True(s.board.AllSunk())
	s.Equal(2, s.board.ShipAt(Position{Row: 1, Col: 1}).HitCount())
}

func (s *BoardSuite) TestReceiveShotTwiceFails() {
	_, _, err := s.board.ReceiveShot(Position{Row: 3, Col: 3})
	s.Require().NoError(err)

	_, _, err = s.board.ReceiveShot(Position{Row: 3, Col: 3})
	s.ErrorIs(err, ErrCellAlreadyShot)
}

func (s *BoardSuite) TestReceiveShotOutOfBounds() {
	_, _, err := s.board.ReceiveShot(Position{Row: 10, Col: 0})
	s.ErrorIs(err, ErrOutOfBounds)
}

func (s *BoardSuite) TestAllSunkEmptyBoard() {
	s.False(s.board.AllSunk())
}

func (s *BoardSuite) TestReset() {
	s.Require().True(s.board.PlaceShip(Position{Row: 0, Col: 0}, 5, Horizontal))
	s.board.Reset()

	s.Empty(s.board.Ships())
	s.Equal(CellEmpty, s.board.CellState(Position{Row: 0, Col: 0}))
}
