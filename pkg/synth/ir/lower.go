package ir

import (
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
)

// Circuit builds boolean formulas for a solver session. Literals are
// only meaningful to the Circuit that made them.
type Circuit interface {
	Const(v bool) z.Lit
	Toggle(t Toggle) z.Lit
	// AtLeast returns a literal that is true exactly when th <= v.
	AtLeast(th Threshold, v float64) z.Lit
	And(ls ...z.Lit) z.Lit
	Or(ls ...z.Lit) z.Lit
	Not(l z.Lit) z.Lit
	Implies(a, b z.Lit) z.Lit
}

// Lower translates a specialized tree into a literal of c. form is the
// normal form of the clause n appears in; it is ignored for containers
// that carry their own. An inactive occurrence lowers to the identity
// of the connective that contains it, so switching a toggle off removes
// the occurrence from the formula.
func Lower(n Node, form Form, c Circuit) (z.Lit, error) {
	switch n := n.(type) {
	case *Or:
		f := effective(n.Form, form)
		inner, active, err := lowerAll(n.Inner, f, c)
		if err != nil {
			return z.LitNull, err
		}
		body := c.Or(inner...)
		if n.Toggle == NoToggle && f == CNF {
			// A clause with no active member is vacuously true.
			body = c.Or(c.Not(c.Or(active...)), body)
		}
		return guard(n.Toggle, form, body, c)
	case *And:
		f := effective(n.Form, form)
		inner, active, err := lowerAll(n.Inner, f, c)
		if err != nil {
			return z.LitNull, err
		}
		body := c.And(inner...)
		if n.Toggle == NoToggle && f == DNF {
			// A clause with no active member is not vacuously true.
			body = c.And(c.Or(active...), body)
		}
		return guard(n.Toggle, form, body, c)
	case *Const:
		return guard(n.Toggle, form, c.Const(n.Value), c)
	case *Compare:
		return guard(n.Toggle, form, c.AtLeast(n.Threshold, n.Value), c)
	case *Any, *All, *Match, *Relation:
		return z.LitNull, synerrors.NewFatalError(errors.Errorf("cannot lower unspecialized node %T", n))
	}
	return z.LitNull, synerrors.NewFatalError(errors.Errorf("cannot lower node %T", n))
}

func effective(own, enclosing Form) Form {
	if own != Inherit {
		return own
	}
	return enclosing
}

func lowerAll(ns []Node, form Form, c Circuit) ([]z.Lit, []z.Lit, error) {
	inner := make([]z.Lit, 0, len(ns))
	active := make([]z.Lit, 0, len(ns))
	for _, n := range ns {
		l, err := Lower(n, form, c)
		if err != nil {
			return nil, nil, err
		}
		inner = append(inner, l)
		if t := ToggleOf(n); t != NoToggle {
			active = append(active, c.Toggle(t))
		} else {
			active = append(active, c.Const(true))
		}
	}
	return inner, active, nil
}

// guard makes body conditional on t. Inside a conjunctive clause an
// inactive member is true, inside a disjunctive clause it is false.
func guard(t Toggle, form Form, body z.Lit, c Circuit) (z.Lit, error) {
	if t == NoToggle {
		return body, nil
	}
	switch form {
	case DNF:
		return c.Implies(c.Toggle(t), body), nil
	case CNF:
		return c.And(c.Toggle(t), body), nil
	}
	return z.LitNull, synerrors.NewFatalError(errors.Errorf("toggle %s appears outside of a normal form", t))
}
