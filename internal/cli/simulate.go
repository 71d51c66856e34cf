package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/broadside/internal/factory"
	"github.com/mcoot/broadside/internal/model"
	"github.com/mcoot/broadside/internal/services/match"
)

func newSimulateCmd(cfg *Config) *cobra.Command {
	var (
		sideA    string
		sideB    string
		games    int
		pace     bool
		maxTurns int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play computer opponents against each other",
		Long: `Play one or more games between two computer opponents.

A single game prints the shot log and final boards; several games print
win rates, accuracy and average game length.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if games < 1 {
				return fmt.Errorf("games must be at least 1")
			}
			da, err := model.ParseDifficulty(sideA)
			if err != nil {
				return err
			}
			db, err := model.ParseDifficulty(sideB)
			if err != nil {
				return err
			}

			app, err := newApp(cmd, cfg, factory.Config{
				Match: match.Config{
					MaxTurns:    maxTurns,
					Pace:        pace,
					RecordTurns: games == 1,
				},
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			pairing := app.NewPairing(da, db)

			if games == 1 {
				a, b, err := pairing()
				if err != nil {
					return err
				}
				res, err := app.MatchController.Play(cmd.Context(), a, b)
				if err != nil {
					return err
				}
				out.Print(newMatchSummary(res, a.Board(), b.Board()))
				return nil
			}

			series, err := app.MatchController.Series(cmd.Context(), games, pairing)
			if err != nil {
				return err
			}
			out.Print(newSeriesSummary(series))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sideA, "first", "a", "hard", "Difficulty of the first side (fires first)")
	cmd.Flags().StringVarP(&sideB, "second", "b", "medium", "Difficulty of the second side")
	cmd.Flags().IntVarP(&games, "games", "n", 1, "Number of games to play")
	cmd.Flags().BoolVar(&pace, "pace", false, "Pause for each side's thinking time before every shot")
	cmd.Flags().IntVar(&maxTurns, "max-turns", 0, "Shot limit per side, 0 for the board size")

	return cmd
}
