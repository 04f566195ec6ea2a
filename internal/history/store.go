package history

import (
	"context"
	"database/sql"

	"github.com/robalobadob/shapeguess/internal/game"
)

// OutcomeExhausted marks the call that ended a session.
const OutcomeExhausted game.Outcome = "exhausted"

// Entry is one evaluated guess line.
type Entry struct {
	ID        int64        `json:"id"`
	SessionID string       `json:"sessionId"`
	Line      string       `json:"line"`
	Verdict   game.Verdict `json:"verdict"`
	Outcome   game.Outcome `json:"outcome"`
	Perimeter int          `json:"perimeter"`
	CreatedAt string       `json:"createdAt"`
}

// EntryFor builds an Entry from an evaluation result. err is the error
// returned alongside r; ErrExhausted is recorded as OutcomeExhausted.
func EntryFor(sessionID, line string, r game.Result, err error) Entry {
	e := Entry{
		SessionID: sessionID,
		Line:      line,
		Verdict:   r.Verdict,
		Outcome:   r.Outcome,
		Perimeter: r.Perimeter,
	}
	if err != nil {
		e.Outcome = OutcomeExhausted
	}
	return e
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO verdicts(session_id, line, verdict, outcome, perimeter)
		 VALUES(?,?,?,?,?)`, e.SessionID, e.Line, string(e.Verdict), string(e.Outcome), e.Perimeter,
	)
	return err
}

// List returns up to limit entries for a session, oldest first.
func (s *Store) List(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, line, verdict, outcome, perimeter, created_at
		 FROM verdicts
		 WHERE session_id=?
		 ORDER BY id ASC
		 LIMIT ?`, sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		var verdict, outcome string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &verdict, &outcome, &e.Perimeter, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Verdict, e.Outcome = game.Verdict(verdict), game.Outcome(outcome)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Summary counts a session's entries per outcome.
func (s *Store) Summary(ctx context.Context, sessionID string) (map[game.Outcome]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT outcome, COUNT(1) FROM verdicts WHERE session_id=? GROUP BY outcome`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[game.Outcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		out[game.Outcome(outcome)] = n
	}
	return out, rows.Err()
}
