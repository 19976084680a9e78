// Package ir is the solver-facing mirror of the predicate grammar.
//
// Every syntactic occurrence the search may switch on or off carries a
// Toggle. Templates built from these nodes are specialized against a
// concrete example (Apply), lowered into a boolean circuit (Lower) and,
// once the solver has picked the active toggles, decoded back into a
// surface predicate (Compile).
package ir

import (
	"fmt"

	"github.com/labelsynth/labelsynth/pkg/labeling"
)

// Toggle is a selector owned by exactly one grammar occurrence. The
// zero Toggle means the occurrence is unconditional.
type Toggle int

// NoToggle marks an unconditional node.
const NoToggle Toggle = 0

func (t Toggle) String() string {
	return fmt.Sprintf("t%d", int(t))
}

// Threshold is a symbolic real number a relation value is compared
// against. The zero Threshold is invalid.
type Threshold int

func (th Threshold) String() string {
	return fmt.Sprintf("r%d", int(th))
}

// Counter allocates Toggles and Thresholds for one search attempt.
// Handles are unique per Counter and start at one.
type Counter struct {
	toggles    int
	thresholds int
}

// Toggle returns a fresh Toggle.
func (c *Counter) Toggle() Toggle {
	c.toggles++
	return Toggle(c.toggles)
}

// Threshold returns a fresh Threshold.
func (c *Counter) Threshold() Threshold {
	c.thresholds++
	return Threshold(c.thresholds)
}

// Allocated returns the number of Toggles handed out so far.
func (c *Counter) Allocated() int {
	return c.toggles
}

// Form is the normal form a container belongs to. It decides how the
// toggles of the container's members are lowered.
type Form int

const (
	// Inherit marks a container that takes the form of the clause it
	// appears in, such as the expansion of a quantifier.
	Inherit Form = iota
	// DNF is a disjunction of conjunctive clauses.
	DNF
	// CNF is a conjunction of disjunctive clauses.
	CNF
)

func (f Form) String() string {
	switch f {
	case DNF:
		return "dnf"
	case CNF:
		return "cnf"
	}
	return "inherit"
}

// Node is an IR term. The set of implementations is closed; every pass
// switches over all of them.
type Node interface {
	isNode()
}

// Or is a disjunction container.
type Or struct {
	Inner  []Node
	Toggle Toggle
	Form   Form
}

// And is a conjunction container.
type And struct {
	Inner  []Node
	Toggle Toggle
	Form   Form
}

// Any is an existential quantifier over the boxes of an example.
type Any struct {
	Var    labeling.Variable
	Body   Node
	Toggle Toggle
}

// All is a universal quantifier over the boxes of an example.
type All struct {
	Var    labeling.Variable
	Body   Node
	Toggle Toggle
}

// Match is an equality atom between two objects, negated when Negated
// is set.
type Match struct {
	A       labeling.Object
	B       labeling.Object
	Negated bool
	Toggle  Toggle
}

// Relation is a geometric atom: the named relation between the boxes
// bound to A and B is at least Threshold.
type Relation struct {
	Name      string
	A         labeling.Variable
	B         labeling.Variable
	Threshold Threshold
	Toggle    Toggle
}

// Const is an equality atom collapsed during specialization.
type Const struct {
	Value  bool
	Toggle Toggle
}

// Compare is a specialized Relation: the concrete Value is at least
// the symbolic Threshold.
type Compare struct {
	Value     float64
	Threshold Threshold
	Toggle    Toggle
}

func (*Or) isNode()       {}
func (*And) isNode()      {}
func (*Any) isNode()      {}
func (*All) isNode()      {}
func (*Match) isNode()    {}
func (*Relation) isNode() {}
func (*Const) isNode()    {}
func (*Compare) isNode()  {}

// ToggleOf returns the toggle owned by n.
func ToggleOf(n Node) Toggle {
	switch n := n.(type) {
	case *Or:
		return n.Toggle
	case *And:
		return n.Toggle
	case *Any:
		return n.Toggle
	case *All:
		return n.Toggle
	case *Match:
		return n.Toggle
	case *Relation:
		return n.Toggle
	case *Const:
		return n.Toggle
	case *Compare:
		return n.Toggle
	}
	return NoToggle
}

// Toggles returns every toggle reachable from n, each once, in the
// order they are first reached. Subtrees referenced more than once are
// visited once.
func Toggles(n Node) []Toggle {
	var out []Toggle
	seen := make(map[Toggle]struct{})
	visited := make(map[Node]struct{})
	var walk func(Node)
	walk = func(n Node) {
		if _, ok := visited[n]; ok {
			return
		}
		visited[n] = struct{}{}
		if t := ToggleOf(n); t != NoToggle {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
		switch n := n.(type) {
		case *Or:
			for _, c := range n.Inner {
				walk(c)
			}
		case *And:
			for _, c := range n.Inner {
				walk(c)
			}
		case *Any:
			walk(n.Body)
		case *All:
			walk(n.Body)
		}
	}
	walk(n)
	return out
}
