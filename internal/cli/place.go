package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/broadside/internal/factory"
	"github.com/mcoot/broadside/internal/model"
)

func newPlaceCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "place <difficulty>",
		Short: "Lay out a fleet the way the given difficulty would",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulty, err := model.ParseDifficulty(args[0])
			if err != nil {
				return err
			}

			app, err := newApp(cmd, cfg, factory.Config{})
			if err != nil {
				return err
			}

			board := model.NewBoard()
			// The oracle tier needs something to look at; placement never reads it
			opponent, err := app.NewOpponent("", difficulty, board, model.NewBoard())
			if err != nil {
				return err
			}
			if err := opponent.PlaceFleet(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(newFleetResult(difficulty, board))
			return nil
		},
	}
}
