package predicate

import (
	"github.com/pkg/errors"

	"github.com/labelsynth/labelsynth/pkg/labeling"
)

// Eval evaluates p against example under env. Quantifiers range over
// every box of example; a Variable operand of Match denotes the base
// label of its bound box.
func Eval(p Predicate, env *labeling.Env, example *labeling.Example) (bool, error) {
	switch p := p.(type) {
	case True:
		return true, nil
	case False:
		return false, nil
	case Not:
		v, err := Eval(p.Inner, env, example)
		return !v, err
	case And:
		l, err := Eval(p.Left, env, example)
		if err != nil || !l {
			return false, err
		}
		return Eval(p.Right, env, example)
	case Or:
		l, err := Eval(p.Left, env, example)
		if err != nil || l {
			return l, err
		}
		return Eval(p.Right, env, example)
	case Any:
		for _, box := range example.Boxes() {
			inner, _ := env.Bind(p.Var, box, example)
			v, err := Eval(p.Body, inner, example)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	case All:
		for _, box := range example.Boxes() {
			inner, _ := env.Bind(p.Var, box, example)
			v, err := Eval(p.Body, inner, example)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case Match:
		a, err := resolve(p.A, env)
		if err != nil {
			return false, err
		}
		b, err := resolve(p.B, env)
		if err != nil {
			return false, err
		}
		return a == b, nil
	case Relation:
		fn, ok := labeling.LookupRelation(p.Name)
		if !ok {
			return false, errors.Errorf("unknown relation %q", p.Name)
		}
		a, ok := env.Lookup(p.A)
		if !ok {
			return false, errors.Errorf("variable %s is not bound", p.A)
		}
		b, ok := env.Lookup(p.B)
		if !ok {
			return false, errors.Errorf("variable %s is not bound", p.B)
		}
		return fn(a.Box, b.Box) >= p.Threshold, nil
	case nil:
		return false, errors.New("cannot evaluate a nil predicate")
	}
	return false, errors.Errorf("unsupported predicate %T", p)
}

func resolve(o labeling.Object, env *labeling.Env) (labeling.Label, error) {
	switch o := o.(type) {
	case labeling.Label:
		return o, nil
	case labeling.Variable:
		b, ok := env.Lookup(o)
		if !ok {
			return "", errors.Errorf("variable %s is not bound", o)
		}
		return b.Label, nil
	}
	return "", errors.Errorf("unsupported operand %T", o)
}

// Holds reports whether the filter selects box of example.
func (f Filter) Holds(example *labeling.Example, box labeling.BoundingBox) (bool, error) {
	var env *labeling.Env
	env, ok := env.Bind(f.Var, box, example)
	if !ok {
		return false, labeling.UnknownBox(box)
	}
	return Eval(f.Body, env, example)
}

// Select returns the boxes of example the filter selects, in box
// order.
func (f Filter) Select(example *labeling.Example) ([]labeling.BoundingBox, error) {
	var out []labeling.BoundingBox
	for _, box := range example.Boxes() {
		ok, err := f.Holds(example, box)
		if err != nil {
			return nil, errors.Wrapf(err, "evaluating filter for %s", f.Label)
		}
		if ok {
			out = append(out, box)
		}
	}
	return out, nil
}

// Apply evaluates every filter of the program against example and
// adds each filter's label to the boxes it selects. All selections
// are computed before example is modified.
func (p Program) Apply(example *labeling.Example) error {
	selected := make([][]labeling.BoundingBox, len(p.Filters))
	for i, f := range p.Filters {
		boxes, err := f.Select(example)
		if err != nil {
			return err
		}
		selected[i] = boxes
	}
	for i, f := range p.Filters {
		for _, box := range selected[i] {
			if err := example.MakePrecise(box, f.Label); err != nil {
				return err
			}
		}
	}
	return nil
}
