package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/shapeguess/internal/game"
	"github.com/robalobadob/shapeguess/internal/history"
)

func newPlayCmd() *cobra.Command {
	var record bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Read guess lines from stdin and print a verdict for each",
		Long: `Reads lines of the form Shape,Size,Parity,p1[,p2[,p3[,p4]]] and prints
one verdict per line. The session ends with a non-zero exit after too many
bad shape guesses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rec recorder
			if record {
				db, err := history.OpenDB(cfg.DBPath)
				if err != nil {
					return err
				}
				defer db.Close()
				rec = dbRecorder(cmd.Context(), db, cliSessionID())
			}
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), game.New(), rec)
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "write each verdict to the history database")
	return cmd
}

// recorder receives every evaluated line; nil disables recording.
type recorder func(line string, r game.Result, err error)

// play evaluates each non-blank line from in on e, writing verdicts to out.
// It returns game.ErrExhausted when the session runs out of bad guesses.
func play(in io.Reader, out io.Writer, e *game.Evaluator, rec recorder) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		r, err := e.Evaluate(line)
		if rec != nil {
			rec(line, r, err)
		}
		if err != nil {
			log.Error().Int("badGuesses", e.BadGuesses()).Msg("too many bad guesses, ending session")
			return err
		}
		log.Debug().Str("outcome", string(r.Outcome)).Int("perimeter", r.Perimeter).Msg("guess evaluated")
		if _, err := fmt.Fprintln(out, r.Verdict); err != nil {
			return err
		}
	}
	return sc.Err()
}

func dbRecorder(ctx context.Context, db *sql.DB, sessionID string) recorder {
	st := history.NewStore(db)
	if ctx == nil {
		ctx = context.Background()
	}
	return func(line string, r game.Result, err error) {
		if werr := st.Record(ctx, history.EntryFor(sessionID, line, r, err)); werr != nil {
			log.Warn().Err(werr).Msg("record verdict")
		}
	}
}

// cliSessionID names a terminal session in the history table.
func cliSessionID() string {
	return fmt.Sprintf("cli-%d", time.Now().UnixNano())
}
