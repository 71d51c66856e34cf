package match

import (
	"context"
	"fmt"
	"log/slog"
)

// Pairing builds two fresh sides with placed fleets for the next match
type Pairing func() (a, b Side, err error)

// SeriesResult aggregates a run of matches between the same two configurations
type SeriesResult struct {
	Games      int
	Names      [2]string
	Wins       [2]int
	TotalTurns int
	Shots      [2]int
	Hits       [2]int
}

// AverageTurns returns the mean number of shots per match
func (r *SeriesResult) AverageTurns() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Games)
}

// WinRate returns the share of matches side i won, as a percentage
func (r *SeriesResult) WinRate(i int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins[i]) / float64(r.Games) * 100
}

// Accuracy returns side i's hit percentage across the series
func (r *SeriesResult) Accuracy(i int) float64 {
	if r.Shots[i] == 0 {
		return 0
	}
	return float64(r.Hits[i]) / float64(r.Shots[i]) * 100
}

// Series plays n matches, building each pair of sides with pair
func (c *Controller) Series(ctx context.Context, n int, pair Pairing) (*SeriesResult, error) {
	summary := &SeriesResult{}

	for i := range n {
		a, b, err := pair()
		if err != nil {
			return summary, fmt.Errorf("match %d setup: %w", i+1, err)
		}

		res, err := c.Play(ctx, a, b)
		if err != nil {
			return summary, fmt.Errorf("match %d: %w", i+1, err)
		}

		summary.Games++
		summary.Names = res.Names
		summary.Wins[res.Winner]++
		summary.TotalTurns += res.Turns
		for side := range 2 {
			summary.Shots[side] += res.Stats[side].ShotsFired
			summary.Hits[side] += res.Stats[side].Hits
		}
	}

	c.logger.Info("series completed",
		slog.Int("games", summary.Games),
		slog.Int("wins_a", summary.Wins[0]),
		slog.Int("wins_b", summary.Wins[1]),
		slog.Float64("average_turns", summary.AverageTurns()),
	)
	return summary, nil
}
