// Package template builds the grammar templates a synthesis attempt
// searches over: every predicate up to a quantifier depth and clause
// width, with each occurrence behind its own toggle.
package template

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	"github.com/labelsynth/labelsynth/pkg/synth/ir"
)

// Options extends the grammar beyond equality atoms.
type Options struct {
	// Relations names the geometric relations offered between every
	// pair of quantified variables. Each occurrence gets a fresh
	// threshold.
	Relations []string
}

// Template is the pair of normal-form templates for one attempt.
type Template struct {
	// Outer is the variable bound to the box being classified.
	Outer labeling.Variable
	DNF   ir.Node
	CNF   ir.Node
	Depth int
	Width int
}

// Toggles returns the toggles of the template of the given form.
func (t Template) Toggles(form ir.Form) []ir.Toggle {
	switch form {
	case ir.DNF:
		return ir.Toggles(t.DNF)
	case ir.CNF:
		return ir.Toggles(t.CNF)
	}
	return nil
}

// Root returns the template of the given form.
func (t Template) Root(form ir.Form) ir.Node {
	if form == ir.CNF {
		return t.CNF
	}
	return t.DNF
}

// Size returns the number of selectable occurrences in both templates.
func (t Template) Size() int {
	return len(ir.Toggles(t.DNF)) + len(ir.Toggles(t.CNF))
}

// Variable returns the variable quantified at level.
func Variable(level int) labeling.Variable {
	return labeling.Variable(fmt.Sprintf("x%d", level))
}

// Generate returns the templates of quantifier depth depth with width
// clauses per level over the base labels in vocabulary. Toggles and
// thresholds come from counter.
func Generate(depth, width int, vocabulary []labeling.Label, counter *ir.Counter, opts Options) (Template, error) {
	if depth < 0 {
		return Template{}, errors.Errorf("depth must not be negative, got %d", depth)
	}
	if width < 1 {
		return Template{}, errors.Errorf("width must be positive, got %d", width)
	}
	for _, name := range opts.Relations {
		if _, ok := labeling.LookupRelation(name); !ok {
			return Template{}, errors.Errorf("unknown relation %q, known relations are %v", name, labeling.RelationNames())
		}
	}
	g := &generator{
		width:      width,
		vocabulary: vocabulary,
		counter:    counter,
		relations:  opts.Relations,
	}
	outer := Variable(depth)
	dnf, cnf := g.level(depth, []labeling.Variable{outer})
	return Template{
		Outer: outer,
		DNF:   dnf,
		CNF:   cnf,
		Depth: depth,
		Width: width,
	}, nil
}

type generator struct {
	width      int
	vocabulary []labeling.Label
	counter    *ir.Counter
	relations  []string
}

// level builds the DNF and CNF templates for one quantifier level.
// bound lists the variables in scope, outermost first.
func (g *generator) level(level int, bound []labeling.Variable) (ir.Node, ir.Node) {
	v := Variable(level)
	next := Variable(level - 1)
	nested := append(append([]labeling.Variable{}, bound...), next)

	dnf := &ir.Or{Form: ir.DNF}
	cnf := &ir.And{Form: ir.CNF}
	for i := 0; i < g.width; i++ {
		dnfClause := &ir.And{Form: ir.DNF, Inner: g.atoms(v, bound)}
		cnfClause := &ir.Or{Form: ir.CNF, Inner: g.atoms(v, bound)}
		if level > 0 {
			subDNF, subCNF := g.level(level-1, nested)
			dnfClause.Inner = append(dnfClause.Inner, g.quantifiers(next, subDNF, subCNF)...)
			cnfClause.Inner = append(cnfClause.Inner, g.quantifiers(next, subDNF, subCNF)...)
		}
		dnf.Inner = append(dnf.Inner, dnfClause)
		cnf.Inner = append(cnf.Inner, cnfClause)
	}
	return dnf, cnf
}

// quantifiers binds v over both normal forms of the nested level. The
// DNF and CNF clauses of one index share the nested templates but own
// their quantifier toggles.
func (g *generator) quantifiers(v labeling.Variable, subDNF, subCNF ir.Node) []ir.Node {
	return []ir.Node{
		&ir.Any{Var: v, Body: subDNF, Toggle: g.counter.Toggle()},
		&ir.All{Var: v, Body: subDNF, Toggle: g.counter.Toggle()},
		&ir.Any{Var: v, Body: subCNF, Toggle: g.counter.Toggle()},
		&ir.All{Var: v, Body: subCNF, Toggle: g.counter.Toggle()},
	}
}

// atoms returns one clause worth of toggled atoms about v and the
// pairs of bound variables.
func (g *generator) atoms(v labeling.Variable, bound []labeling.Variable) []ir.Node {
	var out []ir.Node
	for _, label := range g.vocabulary {
		out = append(out,
			&ir.Match{A: v, B: label, Toggle: g.counter.Toggle()},
			&ir.Match{A: v, B: label, Negated: true, Toggle: g.counter.Toggle()},
		)
	}
	for i := 0; i < len(bound); i++ {
		for j := i + 1; j < len(bound); j++ {
			a, b := bound[i], bound[j]
			out = append(out,
				&ir.Match{A: a, B: b, Toggle: g.counter.Toggle()},
				&ir.Match{A: a, B: b, Negated: true, Toggle: g.counter.Toggle()},
			)
			for _, name := range g.relations {
				out = append(out, &ir.Relation{
					Name:      name,
					A:         a,
					B:         b,
					Threshold: g.counter.Threshold(),
					Toggle:    g.counter.Toggle(),
				})
			}
		}
	}
	return out
}
