// internal/shape/resolve.go
//
// Resolution of a named guess against the supplied parameters, and the
// best-fit suggestion offered when the name does not fit.

package shape

import (
	"errors"
	"fmt"
)

// ErrMismatch is matched by every *MismatchError.
var ErrMismatch = errors.New("shape mismatch")

// MismatchError reports a guess that is unknown or has the wrong arity.
type MismatchError struct {
	Guess      string // name as supplied by the player
	Params     int    // number of parameters supplied
	Suggestion Kind   // best fit for the parameters; Unrecognized if none
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("shape %q does not fit %d parameter(s), suggest %s", e.Guess, e.Params, e.Suggestion)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }

// Resolve returns the Kind named by guess if it is recognized and its arity
// equals len(params). Otherwise it returns a *MismatchError carrying the
// suggestion for params.
func Resolve(guess string, params []int) (Kind, error) {
	k := Lookup(guess)
	if k != Unrecognized && k.Arity() == len(params) {
		return k, nil
	}
	return Unrecognized, &MismatchError{Guess: guess, Params: len(params), Suggestion: Suggest(params)}
}

// Suggest picks the kind whose arity matches len(params). Shapes sharing an
// arity are told apart by their side lengths; Line wins over Circle since a
// single value cannot distinguish them.
func Suggest(params []int) Kind {
	switch len(params) {
	case 1:
		return Line
	case 2:
		return Ellipse
	case 3:
		return triangle(params[0], params[1], params[2])
	case 4:
		if params[0] == params[1] && params[1] == params[2] && params[2] == params[3] {
			return Square
		}
		return Rectangle
	}
	return Unrecognized
}

// triangle classifies three side lengths by how many of them are equal.
func triangle(a, b, c int) Kind {
	switch {
	case a == b && b == c:
		return Equilateral
	case a == b || b == c || a == c:
		return Isosceles
	default:
		return Scalene
	}
}
