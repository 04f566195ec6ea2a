package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/shapeguess/internal/game"
	"github.com/robalobadob/shapeguess/internal/shape"
)

func eval(t *testing.T, line string) string {
	t.Helper()
	v, err := game.New().EvaluateGuess(line)
	require.NoError(t, err)
	return v
}

func TestVerdicts(t *testing.T) {
	cases := []struct {
		name string
		line string
		want string
	}{
		{"line small even", "Line,Small,Yes,5", "Wrong Even/Odd"},
		{"line small odd", "Line,Small,No,5", "Yes"},
		{"line small even 4", "Line,Small,Yes,4", "Yes"},
		{"line large against small", "Line,Large,No,5", "Wrong Size"},
		{"line 10 is not small", "Line,Small,Yes,10", "Wrong Size"},
		{"line 9 is small", "Line,Small,No,9", "Yes"},
		{"line 100 is not large", "Line,Large,Yes,100", "Wrong Size"},
		{"line 101 is large", "Line,Large,No,101", "Yes"},
		{"zero is even", "Line,Small,Yes,0", "Yes"},
		{"one is odd", "Line,Small,No,1", "Yes"},
		{"unknown parity word", "Line,Small,Maybe,5", "Wrong Even/Odd"},
		{"unknown size word", "Line,Medium,No,5", "Wrong Size"},
		{"neither is never correct", "Line,Neither,Yes,50", "Wrong Size"},
		{"circle both wrong", "Circle,Small,Yes,20", "Wrong Size,Wrong Even/Odd"},
		{"circle 16 is 100", "Circle,Large,Yes,16", "Wrong Size"},
		{"ellipse", "Ellipse,Large,No,7,5", "Wrong Size,Wrong Even/Odd"},
		{"equilateral", "Equilateral,Large,Yes,30,30,30", "Wrong Size"},
		{"isosceles accepted by arity", "Isosceles,Small,No,3,3,5", "Wrong Size"},
		{"scalene", "Scalene,Small,Yes,3,4,5", "Wrong Size"},
		{"square", "Square,Large,Yes,25,25,25,25", "Wrong Size"},
		{"rectangle", "Rectangle,Large,No,20,30,20,30", "Wrong Size,Wrong Even/Odd"},
		{"rectangle large even", "Rectangle,Large,No,100,100,100,100", "Wrong Even/Odd"},
		{"rectangle large even yes", "Rectangle,Large,Yes,100,100,100,100", "Yes"},
		{"spaces around fields", " Line , Small , No , 5 ", "Yes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, eval(t, tc.line))
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"Circle,Large,Yes",
		"Circle,Large,Yes,ten,20",
		"Line,Small,Yes,1.5",
		"Hexagon,Large,Yes,10,10,10,10,10,10",
	} {
		e := game.New()
		r, err := e.Evaluate(line)
		require.NoError(t, err, line)
		require.Equal(t, game.VerdictNo, r.Verdict, line)
		require.Equal(t, game.OutcomeMalformed, r.Outcome, line)
		require.Zero(t, e.BadGuesses(), line)
	}
}

func TestClamping(t *testing.T) {
	require.Equal(t, eval(t, "Line,Small,Yes,0"), eval(t, "Line,Small,Yes,-5"))
	require.Equal(t, eval(t, "Line,Large,Yes,4095"), eval(t, "Line,Large,Yes,5000"))
	require.Equal(t, "Wrong Even/Odd", eval(t, "Line,Large,Yes,5000"))

	rec, err := game.ParseGuess("Square,Large,Yes,-1,4096,99999999999,7")
	require.NoError(t, err)
	require.Equal(t, []int{0, 4095, 4095, 7}, rec.Parameters)
}

func TestParseGuess(t *testing.T) {
	rec, err := game.ParseGuess("Ellipse,Large,No,7,5")
	require.NoError(t, err)
	require.Equal(t, game.GuessRecord{
		ShapeGuess:  "Ellipse",
		SizeGuess:   "Large",
		ParityGuess: "No",
		Parameters:  []int{7, 5},
	}, rec)

	_, err = game.ParseGuess("Ellipse,Large,No")
	require.ErrorIs(t, err, game.ErrMalformed)
}

func TestSuggestion(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"Hexagon,Large,Yes,100,100,100", "No: Suggestion=Equilateral"},
		{"Hexagon,Large,Yes,3,3,5", "No: Suggestion=Isosceles"},
		{"Triangle,Large,Yes,3,4,5", "No: Suggestion=Scalene"},
		{"Circle,Medium,Yes,10,10", "No: Suggestion=Ellipse"},
		{"Square,Small,Yes,3,3,3", "No: Suggestion=Equilateral"},
		{"Rectangle,Small,Yes,3", "No: Suggestion=Line"},
		{"Blob,Small,Yes,3,3,3,3", "No: Suggestion=Square"},
		{"Blob,Small,Yes,2,3,2,3", "No: Suggestion=Rectangle"},
	}
	for _, tc := range cases {
		e := game.New()
		r, err := e.Evaluate(tc.line)
		require.NoError(t, err, tc.line)
		require.Equal(t, tc.want, string(r.Verdict), tc.line)
		require.Equal(t, game.OutcomeMismatch, r.Outcome)
		require.Equal(t, 1, e.BadGuesses())
	}
}

func TestSuggestionIsDeterministic(t *testing.T) {
	a := eval(t, "Hexagon,Large,Yes,7,7,2")
	b := eval(t, "Octagon,Small,No,7,7,2")
	require.Equal(t, a, b)
	require.Equal(t, a, eval(t, "Hexagon,Large,Yes,7,7,2"))
}

func TestExhaustion(t *testing.T) {
	e := game.New()
	for i := 0; i < game.MaxBadGuesses-1; i++ {
		v, err := e.EvaluateGuess("Hexagon,Medium,Maybe,5000")
		require.NoError(t, err)
		require.Equal(t, "No: Suggestion=Line", v)
	}
	require.False(t, e.Exhausted())

	_, err := e.EvaluateGuess("Hexagon,Medium,Maybe,5000")
	require.ErrorIs(t, err, game.ErrExhausted)
	require.True(t, e.Exhausted())

	// Sticky: valid and malformed lines alike are refused afterwards.
	_, err = e.EvaluateGuess("Line,Small,No,5")
	require.ErrorIs(t, err, game.ErrExhausted)
	_, err = e.EvaluateGuess("junk")
	require.ErrorIs(t, err, game.ErrExhausted)
}

func TestExhaustionIgnoresMalformedAndScored(t *testing.T) {
	e := game.New()
	lines := []string{
		"Hexagon,Large,Yes,1",
		"Circle,Large,Yes",
		"Line,Small,No,5",
		"Hexagon,Large,Yes,1",
		"Circle,Large,Yes,ten",
	}
	for _, l := range lines {
		_, err := e.Evaluate(l)
		require.NoError(t, err, l)
	}
	require.Equal(t, 2, e.BadGuesses())

	_, err := e.Evaluate("Hexagon,Large,Yes,1")
	require.ErrorIs(t, err, game.ErrExhausted)
}

func TestEvaluatorsAreIndependent(t *testing.T) {
	a, b := game.New(), game.New()
	for i := 0; i < 2; i++ {
		_, err := a.Evaluate("Hexagon,Large,Yes,1")
		require.NoError(t, err)
	}
	_, err := b.Evaluate("Hexagon,Large,Yes,1")
	require.NoError(t, err)
	require.Equal(t, 2, a.BadGuesses())
	require.Equal(t, 1, b.BadGuesses())
}

func TestResultGroundTruth(t *testing.T) {
	r, err := game.New().Evaluate("Circle,Large,Yes,16")
	require.NoError(t, err)
	require.Equal(t, game.OutcomeScored, r.Outcome)
	require.Equal(t, shape.Circle, r.Shape)
	require.Equal(t, 100, r.Perimeter)
	require.Equal(t, game.SizeNeither, r.Size)
	require.Equal(t, game.ParityEven, r.Parity)
}

func TestClassify(t *testing.T) {
	require.Equal(t, game.SizeSmall, game.ClassifySize(9))
	require.Equal(t, game.SizeNeither, game.ClassifySize(10))
	require.Equal(t, game.SizeNeither, game.ClassifySize(100))
	require.Equal(t, game.SizeLarge, game.ClassifySize(101))
	require.Equal(t, game.ParityEven, game.ClassifyParity(0))
	require.Equal(t, game.ParityOdd, game.ClassifyParity(4095))
}
