// Package predicate defines the surface language produced by
// synthesis: boolean predicates over the objects of a labeled image,
// and filter programs that attach a precise label to the objects a
// predicate selects.
package predicate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labelsynth/labelsynth/pkg/labeling"
)

// Predicate is a node of the surface grammar. The set of
// implementations is closed.
type Predicate interface {
	String() string
	isPredicate()
}

// True holds for every object.
type True struct{}

// False holds for no object.
type False struct{}

// Match holds when both operands denote the same label. A Variable
// operand denotes the base label of the box it is bound to.
type Match struct {
	A labeling.Object
	B labeling.Object
}

// Not negates Inner.
type Not struct {
	Inner Predicate
}

// And is the conjunction of Left and Right.
type And struct {
	Left  Predicate
	Right Predicate
}

// Or is the disjunction of Left and Right.
type Or struct {
	Left  Predicate
	Right Predicate
}

// Any holds when Body holds for at least one box of the example with
// Var bound to it.
type Any struct {
	Var  labeling.Variable
	Body Predicate
}

// All holds when Body holds for every box of the example with Var
// bound to it.
type All struct {
	Var  labeling.Variable
	Body Predicate
}

// Relation holds when the named geometric relation between the boxes
// bound to A and B is at least Threshold.
type Relation struct {
	Name      string
	A         labeling.Variable
	B         labeling.Variable
	Threshold float64
}

func (True) isPredicate()     {}
func (False) isPredicate()    {}
func (Match) isPredicate()    {}
func (Not) isPredicate()      {}
func (And) isPredicate()      {}
func (Or) isPredicate()       {}
func (Any) isPredicate()      {}
func (All) isPredicate()      {}
func (Relation) isPredicate() {}

func (True) String() string  { return "true" }
func (False) String() string { return "false" }

func (p Match) String() string {
	return fmt.Sprintf("match(%s, %s)", operand(p.A), operand(p.B))
}

func (p Not) String() string {
	return fmt.Sprintf("not(%s)", p.Inner)
}

func (p And) String() string {
	return fmt.Sprintf("and(%s, %s)", p.Left, p.Right)
}

func (p Or) String() string {
	return fmt.Sprintf("or(%s, %s)", p.Left, p.Right)
}

func (p Any) String() string {
	return fmt.Sprintf("any(%s, %s)", p.Var, p.Body)
}

func (p All) String() string {
	return fmt.Sprintf("all(%s, %s)", p.Var, p.Body)
}

func (p Relation) String() string {
	return fmt.Sprintf("%s(%s, %s) >= %s", p.Name, p.A, p.B, strconv.FormatFloat(p.Threshold, 'g', -1, 64))
}

// operand renders labels quoted so they cannot be confused with
// variables.
func operand(o labeling.Object) string {
	switch o := o.(type) {
	case labeling.Label:
		return strconv.Quote(string(o))
	case labeling.Variable:
		return string(o)
	case nil:
		return "<nil>"
	}
	return o.String()
}

// AndOf folds ps into a left-associated conjunction. It returns True
// for an empty list.
func AndOf(ps ...Predicate) Predicate {
	if len(ps) == 0 {
		return True{}
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = And{Left: acc, Right: p}
	}
	return acc
}

// OrOf folds ps into a left-associated disjunction. It returns False
// for an empty list.
func OrOf(ps ...Predicate) Predicate {
	if len(ps) == 0 {
		return False{}
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Or{Left: acc, Right: p}
	}
	return acc
}

// Size returns the number of grammar nodes in p.
func Size(p Predicate) int {
	switch p := p.(type) {
	case Not:
		return 1 + Size(p.Inner)
	case And:
		return 1 + Size(p.Left) + Size(p.Right)
	case Or:
		return 1 + Size(p.Left) + Size(p.Right)
	case Any:
		return 1 + Size(p.Body)
	case All:
		return 1 + Size(p.Body)
	case nil:
		return 0
	}
	return 1
}

// Filter is the program filter(Label, Var => Body): Label applies to
// exactly the objects for which Body holds with Var bound to them.
type Filter struct {
	Label labeling.Label
	Var   labeling.Variable
	Body  Predicate
}

func (f Filter) String() string {
	return fmt.Sprintf("filter(%q, %s => %s)", string(f.Label), f.Var, f.Body)
}

// Program is a list of filters applied to the same example.
type Program struct {
	Filters []Filter
}

func (p Program) String() string {
	s := make([]string, len(p.Filters))
	for i, f := range p.Filters {
		s[i] = f.String()
	}
	return strings.Join(s, "\n")
}
