package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/shapeguess/internal/game"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval <line>...",
		Short:   "Evaluate guess lines given as arguments on a single session",
		Example: `  shapeguess eval "Line,Small,No,5" "Circle,Large,Yes,16"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := strings.NewReader(strings.Join(args, "\n"))
			return play(in, cmd.OutOrStdout(), game.New(), nil)
		},
	}
}
