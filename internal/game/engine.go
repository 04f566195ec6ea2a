// internal/game/engine.go
//
// Guess evaluator for a single player session.
// Responsibilities:
//   - Parse and clamp a comma-delimited guess line.
//   - Resolve the named shape and compute its perimeter (shape package).
//   - Score size and parity guesses against the derived ground truth.
//   - Count bad shape guesses and report exhaustion as ErrExhausted.
//
// Notes:
//   - An Evaluator is not safe for concurrent use; hosts serialize calls.
//   - Malformed lines never count as bad guesses.
//   - Exhaustion is sticky: every call after the limit returns ErrExhausted.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/shapeguess/internal/shape"
)

const (
	MinParam      = 0
	MaxParam      = 4095
	MaxBadGuesses = 3

	delimiter = ","
	maxParams = 4

	smallBelow = 10
	largeAbove = 100
)

var (
	// ErrMalformed is returned by ParseGuess for lines that cannot be scored.
	ErrMalformed = errors.New("malformed guess")

	// ErrExhausted is returned by Evaluate once MaxBadGuesses shape
	// mismatches have been made on the same Evaluator.
	ErrExhausted = errors.New("too many bad guesses")
)

// Evaluator holds the bad-guess counter for one session.
type Evaluator struct {
	badGuesses int
}

// New constructs an evaluator with a zero bad-guess count.
func New() *Evaluator {
	return &Evaluator{}
}

// BadGuesses reports how many shape mismatches have been counted.
func (e *Evaluator) BadGuesses() int { return e.badGuesses }

// Exhausted reports whether the session has hit MaxBadGuesses.
func (e *Evaluator) Exhausted() bool { return e.badGuesses >= MaxBadGuesses }

// EvaluateGuess is Evaluate reduced to the verdict text.
func (e *Evaluator) EvaluateGuess(line string) (string, error) {
	r, err := e.Evaluate(line)
	if err != nil {
		return "", err
	}
	return string(r.Verdict), nil
}

// Evaluate parses line and scores it.
//
// Order of checks:
//   - exhausted session → ErrExhausted
//   - malformed line → "No"
//   - shape mismatch → "No: Suggestion=<Shape>", counter +1; the call that
//     brings the counter to MaxBadGuesses returns ErrExhausted instead
//   - otherwise size and parity are compared independently.
func (e *Evaluator) Evaluate(line string) (Result, error) {
	if e.Exhausted() {
		return Result{}, ErrExhausted
	}

	rec, err := ParseGuess(line)
	if err != nil {
		return Result{Verdict: VerdictNo, Outcome: OutcomeMalformed}, nil
	}

	kind, err := shape.Resolve(rec.ShapeGuess, rec.Parameters)
	if err != nil {
		var mm *shape.MismatchError
		if !errors.As(err, &mm) {
			return Result{}, err
		}
		e.badGuesses++
		if e.Exhausted() {
			return Result{}, ErrExhausted
		}
		return Result{
			Verdict:    Verdict(suggestionPrefix + mm.Suggestion.String()),
			Outcome:    OutcomeMismatch,
			Suggestion: mm.Suggestion,
		}, nil
	}

	p := kind.Perimeter(rec.Parameters)
	size, parity := ClassifySize(p), ClassifyParity(p)
	return Result{
		Verdict:   compare(rec, size, parity),
		Outcome:   OutcomeScored,
		Shape:     kind,
		Perimeter: p,
		Size:      size,
		Parity:    parity,
	}, nil
}

// ParseGuess splits line into its three guess words and clamped parameters.
// It fails with ErrMalformed when no parameters are present, when more than
// four are present, or when a parameter is not an integer.
func ParseGuess(line string) (GuessRecord, error) {
	fields := strings.Split(strings.TrimSpace(line), delimiter)
	if len(fields) < 4 {
		return GuessRecord{}, fmt.Errorf("%w: want at least 4 fields, got %d", ErrMalformed, len(fields))
	}
	if len(fields)-3 > maxParams {
		return GuessRecord{}, fmt.Errorf("%w: at most %d parameters", ErrMalformed, maxParams)
	}

	rec := GuessRecord{
		ShapeGuess:  strings.TrimSpace(fields[0]),
		SizeGuess:   strings.TrimSpace(fields[1]),
		ParityGuess: strings.TrimSpace(fields[2]),
		Parameters:  make([]int, 0, len(fields)-3),
	}
	for i, f := range fields[3:] {
		n, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return GuessRecord{}, fmt.Errorf("%w: parameter %d: %v", ErrMalformed, i+1, err)
		}
		rec.Parameters = append(rec.Parameters, clamp(n))
	}
	return rec, nil
}

// ClassifySize buckets a perimeter: Small below 10, Large above 100.
func ClassifySize(p int) Size {
	switch {
	case p < smallBelow:
		return SizeSmall
	case p > largeAbove:
		return SizeLarge
	default:
		return SizeNeither
	}
}

// ClassifyParity reports Even for p%2 == 0 (including 0).
func ClassifyParity(p int) Parity {
	if p%2 == 0 {
		return ParityEven
	}
	return ParityOdd
}

// compare builds the verdict for an accepted shape guess.
func compare(rec GuessRecord, size Size, parity Parity) Verdict {
	sizeOK := size != SizeNeither && rec.SizeGuess == string(size)
	parityOK := (rec.ParityGuess == "Yes" && parity == ParityEven) ||
		(rec.ParityGuess == "No" && parity == ParityOdd)

	switch {
	case sizeOK && parityOK:
		return VerdictYes
	case parityOK:
		return VerdictWrongSize
	case sizeOK:
		return VerdictWrongEven
	default:
		return VerdictWrongBoth
	}
}

// clamp limits n to [MinParam, MaxParam].
func clamp(n int64) int {
	if n < MinParam {
		return MinParam
	}
	if n > MaxParam {
		return MaxParam
	}
	return int(n)
}
