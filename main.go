package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/shapeguess/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "shapeguess",
	Short:         "Shape guessing game: evaluate guesses about a shape's kind, size and parity",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
		return nil
	},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.AddCommand(newPlayCmd(), newEvalCmd(), newServeCmd())
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("shapeguess exited")
	}
}
