package model

import "time"

// GameStats tracks one side's shooting record for a single game
type GameStats struct {
	ShotsFired int
	Hits       int
	Misses     int
	ShipsSunk  int
	StartedAt  time.Time
	EndedAt    time.Time
}

// RecordShot tallies the outcome of a shot
func (s *GameStats) RecordShot(hit, sunk bool) {
	s.ShotsFired++
	if !hit {
		s.Misses++
		return
	}
	s.Hits++
	if sunk {
		s.ShipsSunk++
	}
}

// Accuracy returns hits as a percentage of shots fired
func (s GameStats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired) * 100
}

// Duration returns how long the game ran, or zero if it has not ended
func (s GameStats) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}
