package ir

import (
	"github.com/pkg/errors"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
)

// Apply specializes n against example under env. Quantifiers are
// unrolled over the boxes of example, equality atoms between two
// concrete labels collapse to constants and relation atoms are
// evaluated on their bound boxes. n is never modified; the result
// shares toggles with n.
func Apply(n Node, env *labeling.Env, example *labeling.Example) (Node, error) {
	switch n := n.(type) {
	case *Or:
		inner, err := applyAll(n.Inner, env, example)
		if err != nil {
			return nil, err
		}
		return &Or{Inner: inner, Toggle: n.Toggle, Form: n.Form}, nil
	case *And:
		inner, err := applyAll(n.Inner, env, example)
		if err != nil {
			return nil, err
		}
		return &And{Inner: inner, Toggle: n.Toggle, Form: n.Form}, nil
	case *Any:
		inner, err := unroll(n.Var, n.Body, env, example)
		if err != nil {
			return nil, err
		}
		return &Or{Inner: inner, Toggle: n.Toggle}, nil
	case *All:
		inner, err := unroll(n.Var, n.Body, env, example)
		if err != nil {
			return nil, err
		}
		return &And{Inner: inner, Toggle: n.Toggle}, nil
	case *Match:
		a, b := resolve(n.A, env), resolve(n.B, env)
		la, aok := a.(labeling.Label)
		lb, bok := b.(labeling.Label)
		if aok && bok {
			return &Const{Value: (la == lb) != n.Negated, Toggle: n.Toggle}, nil
		}
		return &Match{A: a, B: b, Negated: n.Negated, Toggle: n.Toggle}, nil
	case *Relation:
		fn, ok := labeling.LookupRelation(n.Name)
		if !ok {
			return nil, synerrors.NewFatalError(errors.Errorf("unknown relation %q in template", n.Name))
		}
		a, aok := env.Lookup(n.A)
		b, bok := env.Lookup(n.B)
		if !aok || !bok {
			return nil, synerrors.NewFatalError(errors.Errorf("relation %s(%s, %s) reached with an unbound variable", n.Name, n.A, n.B))
		}
		return &Compare{Value: fn(a.Box, b.Box), Threshold: n.Threshold, Toggle: n.Toggle}, nil
	case *Const, *Compare:
		return n, nil
	}
	return nil, synerrors.NewFatalError(errors.Errorf("cannot specialize node %T", n))
}

func applyAll(ns []Node, env *labeling.Env, example *labeling.Example) ([]Node, error) {
	out := make([]Node, len(ns))
	for i, c := range ns {
		a, err := Apply(c, env, example)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

func unroll(v labeling.Variable, body Node, env *labeling.Env, example *labeling.Example) ([]Node, error) {
	boxes := example.Boxes()
	out := make([]Node, 0, len(boxes))
	for _, box := range boxes {
		inner, _ := env.Bind(v, box, example)
		a, err := Apply(body, inner, example)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// resolve replaces a bound Variable by the label of its binding.
func resolve(o labeling.Object, env *labeling.Env) labeling.Object {
	if v, ok := o.(labeling.Variable); ok {
		if b, ok := env.Lookup(v); ok {
			return b.Label
		}
	}
	return o
}
