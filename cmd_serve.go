package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/shapeguess/internal/history"
	"github.com/robalobadob/shapeguess/internal/httpserver"
	"github.com/robalobadob/shapeguess/internal/store"
)

func newServeCmd() *cobra.Command {
	var noHistory bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP, one evaluator per session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var hist *history.Store
			if !noHistory {
				db, err := history.OpenDB(cfg.DBPath)
				if err != nil {
					return err
				}
				defer db.Close()
				hist = history.NewStore(db)
			}

			srv := httpserver.New(cfg, store.NewMemoryStore(), hist)
			addr := cfg.HTTPAddress()
			log.Info().Str("addr", addr).Bool("history", hist != nil).Msg("starting shapeguess server")
			return srv.Start(addr)
		},
	}
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record verdicts in SQLite")
	return cmd
}
