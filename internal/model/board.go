package model

import "fmt"

// BoardSize is the dimension of every board (10x10)
const BoardSize = 10

// Ship length limits
const (
	MinShipLength = 2
	MaxShipLength = 5
)

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// InBounds returns true if the position is on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Add returns the position one step away in the given direction
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Neighbors returns the in-bounds orthogonal neighbours in N, E, S, W order
func (p Position) Neighbors() []Position {
	result := make([]Position, 0, 4)
	for _, d := range Directions() {
		if n := p.Add(d); n.InBounds() {
			result = append(result, n)
		}
	}
	return result
}

// IsParity returns true if the cell is on the even checkerboard class
func (p Position) IsParity() bool {
	return (p.Row+p.Col)%2 == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellState is the state of a single board cell
type CellState int

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return fmt.Sprintf("CellState(%d)", int(c))
	}
}

// Orientation is the axis a ship extends along from its anchor
type Orientation int

const (
	Horizontal Orientation = iota // extends toward increasing Col
	Vertical                      // extends toward increasing Row
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Ship is a single vessel owned by a board
type Ship struct {
	Length      int
	Orientation Orientation
	Anchor      Position
	hits        uint8 // bit i set when segment i has been hit
}

// Cells returns the positions covered by the ship, anchor first
func (s *Ship) Cells() []Position {
	return ShipCells(s.Anchor, s.Length, s.Orientation)
}

// Occupies returns true if the ship covers the position
func (s *Ship) Occupies(pos Position) bool {
	return s.segment(pos) >= 0
}

// IsSunk returns true once every segment has been hit
func (s *Ship) IsSunk() bool {
	full := uint8(1)<<s.Length - 1
	return s.hits&full == full
}

// HitCount returns the number of damaged segments
func (s *Ship) HitCount() int {
	count := 0
	for i := 0; i < s.Length; i++ {
		if s.hits&(1<<i) != 0 {
			count++
		}
	}
	return count
}

func (s *Ship) segment(pos Position) int {
	var offset int
	if s.Orientation == Horizontal {
		if pos.Row != s.Anchor.Row {
			return -1
		}
		offset = pos.Col - s.Anchor.Col
	} else {
		if pos.Col != s.Anchor.Col {
			return -1
		}
		offset = pos.Row - s.Anchor.Row
	}
	if offset < 0 || offset >= s.Length {
		return -1
	}
	return offset
}

func (s *Ship) markHit(pos Position) {
	if i := s.segment(pos); i >= 0 {
		s.hits |= 1 << i
	}
}

// ShipCells returns the positions a ship of the given shape would cover
func ShipCells(anchor Position, length int, o Orientation) []Position {
	d := East
	if o == Vertical {
		d = South
	}
	cells := make([]Position, length)
	pos := anchor
	for i := range cells {
		cells[i] = pos
		pos = pos.Add(d)
	}
	return cells
}

// BoardView is read-only access to a board's cells
type BoardView interface {
	CellState(pos Position) CellState
}

// Board is one side's 10x10 grid and the fleet placed on it
type Board struct {
	Cells [BoardSize][BoardSize]CellState // Row-major: Cells[row][col]
	ships []*Ship
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Ensure Board satisfies BoardView
var _ BoardView = (*Board)(nil)

// CellState returns the state at the given position, or CellEmpty if out of bounds
func (b *Board) CellState(pos Position) CellState {
	if !pos.InBounds() {
		return CellEmpty
	}
	return b.Cells[pos.Row][pos.Col]
}

// CanPlace returns true if a ship of the given shape fits on empty water
func (b *Board) CanPlace(anchor Position, length int, o Orientation) bool {
	if length < MinShipLength || length > MaxShipLength {
		return false
	}
	for _, pos := range ShipCells(anchor, length, o) {
		if !pos.InBounds() || b.Cells[pos.Row][pos.Col] != CellEmpty {
			return false
		}
	}
	return true
}

// PlaceShip places a ship if every segment is in bounds and empty.
// On failure the board is left unchanged.
func (b *Board) PlaceShip(anchor Position, length int, o Orientation) bool {
	if !b.CanPlace(anchor, length, o) {
		return false
	}
	ship := &Ship{Length: length, Orientation: o, Anchor: anchor}
	for _, pos := range ship.Cells() {
		b.Cells[pos.Row][pos.Col] = CellShip
	}
	b.ships = append(b.ships, ship)
	return true
}

// ReceiveShot applies an incoming shot. sunk is true only when this shot
// completed the owning ship.
func (b *Board) ReceiveShot(pos Position) (hit bool, sunk bool, err error) {
	if !pos.InBounds() {
		return false, false, fmt.Errorf("shot at %s: %w", pos, ErrOutOfBounds)
	}

	switch b.Cells[pos.Row][pos.Col] {
	case CellHit, CellMiss:
		return false, false, fmt.Errorf("shot at %s: %w", pos, ErrCellAlreadyShot)
	case CellEmpty:
		b.Cells[pos.Row][pos.Col] = CellMiss
		return false, false, nil
	}

	b.Cells[pos.Row][pos.Col] = CellHit
	ship := b.ShipAt(pos)
	if ship == nil {
		return true, false, nil
	}
	wasSunk := ship.IsSunk()
	ship.markHit(pos)
	return true, !wasSunk && ship.IsSunk(), nil
}

// ShipAt returns the ship covering the position, or nil
func (b *Board) ShipAt(pos Position) *Ship {
	for _, s := range b.ships {
		if s.Occupies(pos) {
			return s
		}
	}
	return nil
}

// Ships returns the placed ships
func (b *Board) Ships() []*Ship {
	return b.ships
}

// AllSunk returns true if the board has ships and every one is sunk
func (b *Board) AllSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, s := range b.ships {
		if !s.IsSunk() {
			return false
		}
	}
	return true
}

// ShipCellCount returns the number of cells covered by ships
func (b *Board) ShipCellCount() int {
	count := 0
	for _, s := range b.ships {
		count += s.Length
	}
	return count
}

// Reset clears all cells and ships
func (b *Board) Reset() {
	b.Cells = [BoardSize][BoardSize]CellState{}
	b.ships = nil
}
