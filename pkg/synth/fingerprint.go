package synth

import (
	"github.com/mitchellh/hashstructure"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	"github.com/labelsynth/labelsynth/pkg/predicate"
)

// shape is a predicate with chains of the same connective flattened.
// Members of a flattened chain are hashed as a set, so predicates that
// only differ in the order of their clauses share a fingerprint.
type shape struct {
	Kind      string
	Operands  []string
	Threshold float64
	Members   []shape `hash:"set"`
}

func shapeOf(p predicate.Predicate) shape {
	switch p := p.(type) {
	case predicate.True:
		return shape{Kind: "true"}
	case predicate.False:
		return shape{Kind: "false"}
	case predicate.Match:
		return shape{Kind: "match", Operands: []string{operand(p.A), operand(p.B)}}
	case predicate.Not:
		return shape{Kind: "not", Members: []shape{shapeOf(p.Inner)}}
	case predicate.And:
		return shape{Kind: "and", Members: flatten(p, "and")}
	case predicate.Or:
		return shape{Kind: "or", Members: flatten(p, "or")}
	case predicate.Any:
		return shape{Kind: "any", Operands: []string{string(p.Var)}, Members: []shape{shapeOf(p.Body)}}
	case predicate.All:
		return shape{Kind: "all", Operands: []string{string(p.Var)}, Members: []shape{shapeOf(p.Body)}}
	case predicate.Relation:
		return shape{Kind: p.Name, Operands: []string{string(p.A), string(p.B)}, Threshold: p.Threshold}
	}
	return shape{Kind: "unknown"}
}

func flatten(p predicate.Predicate, kind string) []shape {
	var left, right predicate.Predicate
	switch p := p.(type) {
	case predicate.And:
		left, right = p.Left, p.Right
	case predicate.Or:
		left, right = p.Left, p.Right
	}
	var out []shape
	for _, side := range []predicate.Predicate{left, right} {
		s := shapeOf(side)
		if s.Kind == kind {
			out = append(out, s.Members...)
			continue
		}
		out = append(out, s)
	}
	return out
}

func operand(o labeling.Object) string {
	switch o := o.(type) {
	case labeling.Label:
		return "label:" + string(o)
	case labeling.Variable:
		return "var:" + string(o)
	}
	return ""
}

// fingerprint returns a structural hash of p.
func fingerprint(p predicate.Predicate) (uint64, error) {
	return hashstructure.Hash(shapeOf(p), nil)
}
