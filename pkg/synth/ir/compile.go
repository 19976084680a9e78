package ir

import (
	"github.com/pkg/errors"

	"github.com/labelsynth/labelsynth/pkg/predicate"
	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
)

// Model is a satisfying assignment of a solver session.
type Model interface {
	Value(t Toggle) bool
	ThresholdValue(th Threshold) float64
}

// Compile decodes a template under m. It reports false when n is
// inactive, or when n is a clause none of whose members are active,
// in which case n drops out of the enclosing predicate.
func Compile(n Node, m Model) (predicate.Predicate, bool, error) {
	return compile(n, Inherit, m)
}

// Decode is Compile with an absent result replaced by the identity of
// the connective n stands for.
func Decode(n Node, m Model) (predicate.Predicate, error) {
	p, ok, err := Compile(n, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return identity(n), nil
	}
	return p, nil
}

func compile(n Node, form Form, m Model) (predicate.Predicate, bool, error) {
	if t := ToggleOf(n); t != NoToggle && !m.Value(t) {
		return nil, false, nil
	}
	switch n := n.(type) {
	case *Or:
		f := effective(n.Form, form)
		inner, err := compileAll(n.Inner, f, m)
		if err != nil {
			return nil, false, err
		}
		if len(inner) == 0 && n.Toggle == NoToggle && f == CNF {
			return nil, false, nil
		}
		return predicate.OrOf(inner...), true, nil
	case *And:
		f := effective(n.Form, form)
		inner, err := compileAll(n.Inner, f, m)
		if err != nil {
			return nil, false, err
		}
		if len(inner) == 0 && n.Toggle == NoToggle && f == DNF {
			return nil, false, nil
		}
		return predicate.AndOf(inner...), true, nil
	case *Any:
		body, err := compileBody(n.Body, m)
		if err != nil {
			return nil, false, err
		}
		return predicate.Any{Var: n.Var, Body: body}, true, nil
	case *All:
		body, err := compileBody(n.Body, m)
		if err != nil {
			return nil, false, err
		}
		return predicate.All{Var: n.Var, Body: body}, true, nil
	case *Match:
		var p predicate.Predicate = predicate.Match{A: n.A, B: n.B}
		if n.Negated {
			p = predicate.Not{Inner: p}
		}
		return p, true, nil
	case *Relation:
		return predicate.Relation{
			Name:      n.Name,
			A:         n.A,
			B:         n.B,
			Threshold: m.ThresholdValue(n.Threshold),
		}, true, nil
	case *Const, *Compare:
		return nil, false, synerrors.NewFatalError(errors.Errorf("cannot decode specialized node %T", n))
	}
	return nil, false, synerrors.NewFatalError(errors.Errorf("cannot decode node %T", n))
}

func compileAll(ns []Node, form Form, m Model) ([]predicate.Predicate, error) {
	var out []predicate.Predicate
	for _, n := range ns {
		p, ok, err := compile(n, form, m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func compileBody(n Node, m Model) (predicate.Predicate, error) {
	p, ok, err := compile(n, Inherit, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return identity(n), nil
	}
	return p, nil
}

// identity is what an absent n contributes: an empty clause stands for
// the identity of the level around it, anything else for its own.
func identity(n Node) predicate.Predicate {
	switch n := n.(type) {
	case *Or:
		if n.Toggle == NoToggle && n.Form == CNF {
			return predicate.True{}
		}
		return predicate.False{}
	case *And:
		if n.Toggle == NoToggle && n.Form == DNF {
			return predicate.False{}
		}
	}
	return predicate.True{}
}
