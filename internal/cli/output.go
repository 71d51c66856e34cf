package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/broadside/internal/model"
	"github.com/mcoot/broadside/internal/services/match"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case FleetResult:
		o.printFleetResult(v)
	case MatchSummary:
		o.printMatchSummary(v)
	case SeriesSummary:
		o.printSeriesSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// ShipPlacement output type
type ShipPlacement struct {
	Length      int    `json:"length"`
	Orientation string `json:"orientation"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
}

// FleetResult output type for the place command
type FleetResult struct {
	Difficulty string          `json:"difficulty"`
	Ships      []ShipPlacement `json:"ships"`
	Board      []string        `json:"board"`
}

// SideSummary output type
type SideSummary struct {
	Name      string   `json:"name"`
	Shots     int      `json:"shots"`
	Hits      int      `json:"hits"`
	Misses    int      `json:"misses"`
	ShipsSunk int      `json:"ships_sunk"`
	Accuracy  float64  `json:"accuracy"`
	Board     []string `json:"board"`
}

// TurnSummary output type
type TurnSummary struct {
	Side int  `json:"side"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Hit  bool `json:"hit"`
	Sunk bool `json:"sunk"`
}

// MatchSummary output type for a single simulated game
type MatchSummary struct {
	ID     string        `json:"id"`
	Winner string        `json:"winner"`
	Turns  int           `json:"turns"`
	Sides  []SideSummary `json:"sides"`
	Log    []TurnSummary `json:"log,omitempty"`
}

// SeriesSummary output type for several simulated games
type SeriesSummary struct {
	Games        int       `json:"games"`
	Names        []string  `json:"names"`
	Wins         []int     `json:"wins"`
	WinRates     []float64 `json:"win_rates"`
	Accuracy     []float64 `json:"accuracy"`
	AverageTurns float64   `json:"average_turns"`
}

func newFleetResult(d model.Difficulty, board *model.Board) FleetResult {
	result := FleetResult{
		Difficulty: d.String(),
		Board:      renderBoard(board),
	}
	for _, s := range board.Ships() {
		result.Ships = append(result.Ships, ShipPlacement{
			Length:      s.Length,
			Orientation: s.Orientation.String(),
			Row:         s.Anchor.Row,
			Col:         s.Anchor.Col,
		})
	}
	return result
}

func newMatchSummary(res *match.Result, boardA, boardB *model.Board) MatchSummary {
	boards := [2]*model.Board{boardA, boardB}
	summary := MatchSummary{
		ID:     res.ID,
		Winner: res.WinnerName(),
		Turns:  res.Turns,
	}
	for i, st := range res.Stats {
		summary.Sides = append(summary.Sides, SideSummary{
			Name:      res.Names[i],
			Shots:     st.ShotsFired,
			Hits:      st.Hits,
			Misses:    st.Misses,
			ShipsSunk: st.ShipsSunk,
			Accuracy:  st.Accuracy(),
			Board:     renderBoard(boards[i]),
		})
	}
	for _, t := range res.Log {
		summary.Log = append(summary.Log, TurnSummary{
			Side: t.Side,
			Row:  t.Target.Row,
			Col:  t.Target.Col,
			Hit:  t.Hit,
			Sunk: t.Sunk,
		})
	}
	return summary
}

func newSeriesSummary(r *match.SeriesResult) SeriesSummary {
	return SeriesSummary{
		Games:        r.Games,
		Names:        r.Names[:],
		Wins:         r.Wins[:],
		WinRates:     []float64{r.WinRate(0), r.WinRate(1)},
		Accuracy:     []float64{r.Accuracy(0), r.Accuracy(1)},
		AverageTurns: r.AverageTurns(),
	}
}

// renderBoard draws each row as a string: . water, S ship, X hit, o miss
func renderBoard(b *model.Board) []string {
	rows := make([]string, model.BoardSize)
	for row := 0; row < model.BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < model.BoardSize; col++ {
			switch b.CellState(model.Position{Row: row, Col: col}) {
			case model.CellShip:
				sb.WriteByte('S')
			case model.CellHit:
				sb.WriteByte('X')
			case model.CellMiss:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

func (o *Output) printBoard(rows []string) {
	fmt.Fprint(o.w, "    ")
	for col := 0; col < model.BoardSize; col++ {
		fmt.Fprintf(o.w, " %d ", col)
	}
	fmt.Fprintln(o.w)

	fmt.Fprintln(o.w, "   +"+strings.Repeat("---", model.BoardSize)+"+")
	for row, line := range rows {
		fmt.Fprintf(o.w, " %d |", row)
		for _, cell := range line {
			fmt.Fprintf(o.w, " %c ", cell)
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, "   +"+strings.Repeat("---", model.BoardSize)+"+")
}

func (o *Output) printFleetResult(f FleetResult) {
	fmt.Fprintf(o.w, "Difficulty: %s\n", f.Difficulty)
	fmt.Fprintf(o.w, "Ships (%d):\n", len(f.Ships))
	for _, s := range f.Ships {
		fmt.Fprintf(o.w, "  - length %d %s at (%d,%d)\n", s.Length, s.Orientation, s.Row, s.Col)
	}
	fmt.Fprintln(o.w)
	o.printBoard(f.Board)
}

func (o *Output) printMatchSummary(m MatchSummary) {
	fmt.Fprintf(o.w, "Match: %s\n", m.ID)
	fmt.Fprintf(o.w, "Winner: %s after %d shots\n", m.Winner, m.Turns)

	for _, s := range m.Sides {
		fmt.Fprintf(o.w, "\n%s: %d shots, %d hits, %d misses, %d sunk (%.1f%%)\n",
			s.Name, s.Shots, s.Hits, s.Misses, s.ShipsSunk, s.Accuracy)
		fmt.Fprintf(o.w, "%s's board:\n", s.Name)
		o.printBoard(s.Board)
	}

	if len(m.Log) == 0 {
		return
	}
	fmt.Fprintln(o.w, "\nShot log:")
	for i, t := range m.Log {
		result := "miss"
		switch {
		case t.Sunk:
			result = "hit, sunk"
		case t.Hit:
			result = "hit"
		}
		fmt.Fprintf(o.w, "  %3d. %s -> (%d,%d) %s\n", i+1, m.Sides[t.Side].Name, t.Row, t.Col, result)
	}
}

func (o *Output) printSeriesSummary(s SeriesSummary) {
	fmt.Fprintf(o.w, "Games: %d\n", s.Games)
	for i, name := range s.Names {
		fmt.Fprintf(o.w, "  %s: %d wins (%.1f%%), accuracy %.1f%%\n", name, s.Wins[i], s.WinRates[i], s.Accuracy[i])
	}
	fmt.Fprintf(o.w, "Average shots per game: %.1f\n", s.AverageTurns)
}
