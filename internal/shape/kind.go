// internal/shape/kind.go
//
// Closed set of shapes a player may name, with the parameter arity and the
// perimeter formula attached to each one.
//
// Notes:
//   - Names are matched exactly (case-sensitive), as players type them.
//   - Unknown names resolve to Unrecognized, never to a fallthrough shape.
//   - Perimeters are truncated to int; callers clamp parameters first.
package shape

import "math"

// Kind identifies a recognized shape.
type Kind int

const (
	Unrecognized Kind = iota
	Line
	Circle
	Ellipse
	Rectangle
	Square
	Equilateral
	Isosceles
	Scalene
)

// formula describes one recognized shape.
type formula struct {
	name      string
	arity     int
	perimeter func(p []int) int
}

var formulas = map[Kind]formula{
	Line:        {"Line", 1, func(p []int) int { return p[0] }},
	Circle:      {"Circle", 1, circumference},
	Ellipse:     {"Ellipse", 2, ellipsePerimeter},
	Rectangle:   {"Rectangle", 4, sum},
	Square:      {"Square", 4, sum},
	Equilateral: {"Equilateral", 3, sum},
	Isosceles:   {"Isosceles", 3, sum},
	Scalene:     {"Scalene", 3, sum},
}

// byName is the reverse index used by Lookup.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(formulas))
	for k, s := range formulas {
		m[s.name] = k
	}
	return m
}()

// Lookup maps a player-supplied name to its Kind.
func Lookup(name string) Kind {
	if k, ok := byName[name]; ok {
		return k
	}
	return Unrecognized
}

// Kinds returns every recognized kind in declaration order.
func Kinds() []Kind {
	return []Kind{Line, Circle, Ellipse, Rectangle, Square, Equilateral, Isosceles, Scalene}
}

// String returns the display name ("Circle", "Scalene", ...).
func (k Kind) String() string {
	if s, ok := formulas[k]; ok {
		return s.name
	}
	return "Unrecognized"
}

// Arity is the number of parameters the shape takes; 0 for Unrecognized.
func (k Kind) Arity() int {
	return formulas[k].arity
}

// Perimeter applies the shape's formula. It returns 0 when k is
// Unrecognized or len(p) does not match the arity.
func (k Kind) Perimeter(p []int) int {
	s, ok := formulas[k]
	if !ok || len(p) != s.arity {
		return 0
	}
	return s.perimeter(p)
}

func sum(p []int) int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}

func circumference(p []int) int {
	return int(2 * math.Pi * float64(p[0]))
}

// ellipsePerimeter uses the root-mean-square radius approximation.
func ellipsePerimeter(p []int) int {
	a, b := float64(p[0]), float64(p[1])
	return int(2 * math.Pi * math.Sqrt((a*a+b*b)/2))
}
