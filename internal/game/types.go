// internal/game/types.go
//
// Core type definitions for the guess evaluator.
// Defines:
//   - GuessRecord: one parsed input line.
//   - Size / Parity: ground truth derived from a perimeter.
//   - Verdict: the exact strings returned to players.
//   - Outcome / Result: structured form of a verdict for hosts.

package game

import "github.com/robalobadob/shapeguess/internal/shape"

// GuessRecord is the parsed form of "Shape,Size,Parity,p1[,p2[,p3[,p4]]]".
type GuessRecord struct {
	ShapeGuess  string
	SizeGuess   string
	ParityGuess string
	Parameters  []int // clamped to [MinParam, MaxParam]
}

// Size is the bucket a perimeter falls into.
type Size string

const (
	SizeSmall   Size = "Small"
	SizeLarge   Size = "Large"
	SizeNeither Size = "Neither"
)

// Parity of a perimeter.
type Parity string

const (
	ParityEven Parity = "Even"
	ParityOdd  Parity = "Odd"
)

// Verdict is the text reported back to the player.
type Verdict string

const (
	VerdictYes       Verdict = "Yes"
	VerdictNo        Verdict = "No"
	VerdictWrongSize Verdict = "Wrong Size"
	VerdictWrongEven Verdict = "Wrong Even/Odd"
	VerdictWrongBoth Verdict = VerdictWrongSize + "," + VerdictWrongEven
)

// suggestionPrefix precedes the suggested shape name in a mismatch verdict.
const suggestionPrefix = "No: Suggestion="

// Outcome classifies how a call was handled.
type Outcome string

const (
	OutcomeScored    Outcome = "scored"    // shape accepted, size/parity compared
	OutcomeMalformed Outcome = "malformed" // bad field count or parameter
	OutcomeMismatch  Outcome = "mismatch"  // shape unknown or wrong arity
)

// Result is the structured verdict for one call to Evaluate.
type Result struct {
	Verdict    Verdict
	Outcome    Outcome
	Shape      shape.Kind // resolved shape; set when Outcome is scored
	Suggestion shape.Kind // set when Outcome is mismatch
	Perimeter  int
	Size       Size
	Parity     Parity
}
