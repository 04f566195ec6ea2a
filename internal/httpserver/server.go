// internal/httpserver/server.go
//
// HTTP host for the shape guessing game.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Session endpoints: POST /session/new, POST /session/guess,
//     GET /session/history (bearer token required except for /new).
//   - Best-effort verdict history in SQLite when a history store is wired.
//
// Notes:
//   - Each session owns one evaluator; calls on it are serialized by the
//     session lock (store.Session.Evaluate).
//   - An exhausted session answers 410 and is dropped from the store.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/shapeguess/internal/config"
	"github.com/robalobadob/shapeguess/internal/game"
	"github.com/robalobadob/shapeguess/internal/history"
	"github.com/robalobadob/shapeguess/internal/store"
)

// Server bundles router, session store, optional history and config.
type Server struct {
	r       *chi.Mux
	cfg     config.Config
	store   store.Store
	history *history.Store // nil disables recording
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, st store.Store, hist *history.Store) *Server {
	registerMetrics()
	s := &Server{r: chi.NewRouter(), cfg: cfg, store: st, history: hist}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"shapeguess","endpoints":["/health","/metrics","POST /session/new","POST /session/guess","GET /session/history"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Handle("/metrics", promhttp.Handler())

	s.r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)
		r.With(s.requireSession()).Post("/guess", s.handleGuess)
		r.With(s.requireSession()).Get("/history", s.handleHistory)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SESSION ------------------------------------

type newSessionRes struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleNewSession creates a session with a fresh evaluator and returns the
// bearer token that addresses it.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := store.NewSession()
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.signSessionToken(sess.ID)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("session", sess.ID).Msg("session started")
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Token: tok, ExpiresAt: exp})
}

type guessReq struct {
	Line string `json:"line"`
}

type guessRes struct {
	Verdict    game.Verdict `json:"verdict"`
	Outcome    game.Outcome `json:"outcome"`
	BadGuesses int          `json:"badGuesses"`
	Remaining  int          `json:"remaining"`
}

// handleGuess evaluates one guess line on the caller's session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sid := sessionID(r)
	sess, err := s.store.Get(r.Context(), sid)
	if err != nil {
		http.Error(w, `{"error":"session_gone"}`, http.StatusGone)
		return
	}

	res, bad, err := sess.Evaluate(req.Line)
	s.record(r, history.EntryFor(sid, req.Line, res, err))

	if errors.Is(err, game.ErrExhausted) {
		exhaustedSessions.Inc()
		verdictsTotal.WithLabelValues(string(history.OutcomeExhausted)).Inc()
		_ = s.store.Delete(r.Context(), sid)
		log.Warn().Str("session", sid).Int("badGuesses", bad).Msg("session exhausted")
		http.Error(w, `{"error":"exhausted"}`, http.StatusGone)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("session", sid).Msg("evaluate")
		http.Error(w, `{"error":"evaluate_failed"}`, http.StatusInternalServerError)
		return
	}

	verdictsTotal.WithLabelValues(string(res.Outcome)).Inc()
	log.Debug().
		Str("session", sid).
		Str("outcome", string(res.Outcome)).
		Str("verdict", string(res.Verdict)).
		Msg("guess evaluated")

	_ = json.NewEncoder(w).Encode(guessRes{
		Verdict:    res.Verdict,
		Outcome:    res.Outcome,
		BadGuesses: bad,
		Remaining:  game.MaxBadGuesses - bad,
	})
}

type historyRes struct {
	SessionID string               `json:"sessionId"`
	Entries   []history.Entry      `json:"entries"`
	Summary   map[game.Outcome]int `json:"summary"`
}

// handleHistory returns the recorded verdicts for the caller's session.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		http.Error(w, `{"error":"history_disabled"}`, http.StatusNotFound)
		return
	}
	sid := sessionID(r)
	entries, err := s.history.List(r.Context(), sid, 100)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	sum, err := s.history.Summary(r.Context(), sid)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(historyRes{SessionID: sid, Entries: entries, Summary: sum})
}

// record persists an entry; failures are logged, never surfaced.
func (s *Server) record(r *http.Request, e history.Entry) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(r.Context(), e); err != nil {
		log.Warn().Err(err).Str("session", e.SessionID).Msg("record verdict")
	}
}
