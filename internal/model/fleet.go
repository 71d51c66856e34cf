package model

// ShipClass names a ship and its length
type ShipClass struct {
	Name   string
	Length int
}

// StandardFleet returns the classic five-ship fleet in placement order
func StandardFleet() []ShipClass {
	return []ShipClass{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Cruiser", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Destroyer", Length: 2},
	}
}

// FleetLengths returns the ship lengths of a fleet, preserving order
func FleetLengths(classes []ShipClass) []int {
	lengths := make([]int, len(classes))
	for i, c := range classes {
		lengths[i] = c.Length
	}
	return lengths
}
