package solver

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/labelsynth/labelsynth/pkg/synth/ir"
)

type inconsistentLitMapping []error

func (e inconsistentLitMapping) Error() string {
	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}
	return fmt.Sprintf("internal solver failure: %s", strings.Join(s, ", "))
}

// thresholdLits order-encodes one symbolic threshold r over the
// concrete values it is compared with: lits[v] is true exactly when
// r <= v.
type thresholdLits struct {
	lits    map[float64]z.Lit
	values  []float64
	chained int
}

// litMapping performs translation between toggles and thresholds and
// the inputs of the circuit handed to the solver.
type litMapping struct {
	c          *logic.C
	inorder    []ir.Toggle
	toggles    map[ir.Toggle]z.Lit
	thresholds map[ir.Threshold]*thresholdLits
	errs       inconsistentLitMapping
}

func newLitMapping(capHint int) *litMapping {
	return &litMapping{
		c:          logic.NewCCap(capHint),
		toggles:    make(map[ir.Toggle]z.Lit),
		thresholds: make(map[ir.Threshold]*thresholdLits),
	}
}

// LitOf returns the input literal of t, allocating it on first use.
func (d *litMapping) LitOf(t ir.Toggle) z.Lit {
	if t == ir.NoToggle {
		d.errs = append(d.errs, fmt.Errorf("literal requested for the empty toggle"))
		return z.LitNull
	}
	if m, ok := d.toggles[t]; ok {
		return m
	}
	m := d.c.Lit()
	d.toggles[t] = m
	d.inorder = append(d.inorder, t)
	return m
}

// AtLeast returns the literal standing for th <= v.
func (d *litMapping) AtLeast(th ir.Threshold, v float64) z.Lit {
	if math.IsNaN(v) {
		d.errs = append(d.errs, fmt.Errorf("threshold %s compared with NaN", th))
		return d.c.F
	}
	t, ok := d.thresholds[th]
	if !ok {
		t = &thresholdLits{lits: make(map[float64]z.Lit)}
		d.thresholds[th] = t
	}
	if m, ok := t.lits[v]; ok {
		return m
	}
	m := d.c.Lit()
	t.lits[v] = m
	t.values = append(t.values, v)
	return m
}

// Chains returns, for every threshold whose values changed since the
// last call, the implications r <= v_i => r <= v_i+1 over its sorted
// values. Thresholds are visited in increasing order.
func (d *litMapping) Chains() []z.Lit {
	ths := make([]ir.Threshold, 0, len(d.thresholds))
	for th := range d.thresholds {
		ths = append(ths, th)
	}
	sort.Slice(ths, func(i, j int) bool { return ths[i] < ths[j] })

	var out []z.Lit
	for _, th := range ths {
		t := d.thresholds[th]
		if t.chained == len(t.values) {
			continue
		}
		sort.Float64s(t.values)
		for i := 0; i+1 < len(t.values); i++ {
			out = append(out, d.c.Implies(t.lits[t.values[i]], t.lits[t.values[i+1]]))
		}
		t.chained = len(t.values)
	}
	return out
}

// ThresholdValue returns the smallest compared value that th is at
// most under g, or a value just above every compared value when there
// is none.
func (d *litMapping) ThresholdValue(g inter.Model, th ir.Threshold) float64 {
	t, ok := d.thresholds[th]
	if !ok || len(t.values) == 0 {
		return 0
	}
	sort.Float64s(t.values)
	for _, v := range t.values {
		if value(g, t.lits[v]) {
			return v
		}
	}
	return math.Nextafter(t.values[len(t.values)-1], math.Inf(1))
}

// Lits returns the literals of ts in order.
func (d *litMapping) Lits(dst []z.Lit, ts []ir.Toggle) []z.Lit {
	if cap(dst) < len(ts) {
		dst = make([]z.Lit, 0, len(ts))
	}
	dst = dst[:0]
	for _, t := range ts {
		dst = append(dst, d.LitOf(t))
	}
	return dst
}

// Active returns the toggles among ts that are true under g.
func (d *litMapping) Active(g inter.Model, ts []ir.Toggle) []ir.Toggle {
	var out []ir.Toggle
	for _, t := range ts {
		if m, ok := d.toggles[t]; ok && value(g, m) {
			out = append(out, t)
		}
	}
	return out
}

// CardinalityConstrainer constructs a sorting network to provide
// cardinality constraints over the provided slice of literals. Any
// new clauses and variables are translated to CNF and taught to the
// given inter.Adder. marks lists the circuit nodes dst already knows.
func (d *litMapping) CardinalityConstrainer(g inter.Adder, marks []int8, ms []z.Lit) (*logic.CardSort, []int8) {
	cs := d.c.CardSort(ms)
	for w := 0; w <= cs.N(); w++ {
		marks, _ = d.c.CnfSince(g, marks, cs.Leq(w))
	}
	return cs, marks
}

// Error returns the errors encountered while building the formula, or
// nil if there have been none.
func (d *litMapping) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	return d.errs
}

// value reads m from a model without indexing past the variables the
// solver knows about.
func value(g inter.Model, m z.Lit) bool {
	if mv, ok := g.(inter.MaxVar); ok && m.Var() > mv.MaxVar() {
		return false
	}
	return g.Value(m)
}
