// Package synth searches for the smallest filter predicates that
// reproduce the precise labels of a set of examples.
//
// For every precise label the Synthesizer walks a budget of grammar
// sizes. Each attempt generates a DNF and a CNF template, specializes
// them to every box of every example, asks a solver session per normal
// form for the assignment with the fewest active occurrences and
// decodes the better of the two.
package synth

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	"github.com/labelsynth/labelsynth/pkg/metrics"
	"github.com/labelsynth/labelsynth/pkg/predicate"
	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
	"github.com/labelsynth/labelsynth/pkg/synth/ir"
	"github.com/labelsynth/labelsynth/pkg/synth/solver"
	"github.com/labelsynth/labelsynth/pkg/synth/template"
)

// LabelResult is the outcome of synthesis for one precise label. Filter
// is nil when Err is set.
type LabelResult struct {
	Label        labeling.Label
	Filter       *predicate.Filter
	Objective    int
	Form         ir.Form
	Depth        int
	Width        int
	Attempts     int
	Alternatives []predicate.Filter
	Err          error
}

// Program collects the filters of the successful results.
func Program(results []LabelResult) predicate.Program {
	var p predicate.Program
	for _, r := range results {
		if r.Err == nil && r.Filter != nil {
			p.Filters = append(p.Filters, *r.Filter)
		}
	}
	return p
}

// Synthesizer infers one filter per precise label.
type Synthesizer struct {
	config *synthesizerConfig
}

// NewSynthesizer returns a Synthesizer configured by options.
func NewSynthesizer(options ...Option) (*Synthesizer, error) {
	config := defaultConfig()
	config.apply(options)
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.complete()
	return &Synthesizer{config: config}, nil
}

// Synthesize returns one result per precise label occurring in
// examples, in label order. A label that fails does not affect the
// others; its result carries the error. The returned error is only
// set when examples are unusable or ctx ended before every label was
// settled.
func (s *Synthesizer) Synthesize(ctx context.Context, examples []*labeling.Example) ([]LabelResult, error) {
	for i, e := range examples {
		if e == nil {
			return nil, errors.Errorf("example %d is nil", i)
		}
	}
	base := BaseVocabulary(examples)
	labels := s.targets(PreciseVocabulary(examples))
	s.config.logger.WithFields(logrus.Fields{
		"examples": len(examples),
		"base":     len(base),
		"labels":   len(labels),
	}).Info("starting synthesis")

	results := make([]LabelResult, len(labels))
	var g errgroup.Group
	g.SetLimit(s.config.workers)
	for i, label := range labels {
		g.Go(func() error {
			results[i] = s.synthesizeLabel(ctx, label, base, examples)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return results, errors.Wrap(err, "synthesis interrupted")
	}
	return results, nil
}

// targets restricts labels to the configured ones, if any.
func (s *Synthesizer) targets(labels []labeling.Label) []labeling.Label {
	if len(s.config.labels) == 0 {
		return labels
	}
	wanted := make(map[labeling.Label]struct{}, len(s.config.labels))
	for _, l := range s.config.labels {
		wanted[l] = struct{}{}
	}
	var out []labeling.Label
	for _, l := range labels {
		if _, ok := wanted[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

func (s *Synthesizer) synthesizeLabel(ctx context.Context, label labeling.Label, base []labeling.Label, examples []*labeling.Example) (result LabelResult) {
	if s.config.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.timeout)
		defer cancel()
	}
	logger := s.config.logger.WithField("label", label)
	b := newBudget(s.config)
	result = LabelResult{Label: label}
	defer func() {
		result.Depth, result.Width, result.Attempts = b.depth, b.width, b.attempts
		outcome := metrics.Succeeded
		switch {
		case result.Err == nil:
		case synerrors.IsExhausted(result.Err):
			outcome = metrics.Exhausted
		case errors.Is(result.Err, solver.Incomplete):
			outcome = metrics.Cancelled
		default:
			outcome = metrics.Failed
		}
		s.config.recorder.ObserveLabel(string(label), outcome, result.Attempts, result.Objective)
	}()

	for {
		found, err := s.attempt(ctx, logger, label, base, examples, b)
		if err != nil {
			logger.WithError(err).Warn("synthesis failed")
			result.Err = err
			return
		}
		if found != nil {
			result.Filter = &found.filter
			result.Objective = found.objective
			result.Form = found.form
			result.Alternatives = found.alternatives
			logger.WithFields(logrus.Fields{
				"form":      found.form,
				"objective": found.objective,
				"depth":     b.depth,
				"width":     b.width,
			}).Infof("found %s", found.filter)
			return
		}
		if !b.grow() {
			result.Err = synerrors.ExhaustedError{
				Label:    string(label),
				Depth:    b.depth,
				Width:    b.width,
				Attempts: b.attempts,
			}
			logger.WithError(result.Err).Warn("search budget exhausted")
			return
		}
	}
}

type candidate struct {
	filter       predicate.Filter
	objective    int
	form         ir.Form
	alternatives []predicate.Filter
}

// attempt tries one grammar size. It returns nil without an error when
// no predicate of that size exists.
func (s *Synthesizer) attempt(ctx context.Context, logger *logrus.Entry, label labeling.Label, base []labeling.Label, examples []*labeling.Example, b *budget) (*candidate, error) {
	var counter ir.Counter
	tmpl, err := template.Generate(b.depth, b.width, base, &counter, template.Options{Relations: s.config.relations})
	if err != nil {
		return nil, synerrors.NewFatalError(err)
	}
	logger = logger.WithFields(logrus.Fields{"depth": b.depth, "width": b.width})
	logger.WithField("toggles", counter.Allocated()).Debug("generated templates")

	var best *candidate
	var tied []*candidate
	for _, form := range []ir.Form{ir.DNF, ir.CNF} {
		c, err := s.solve(ctx, logger.WithField("form", form), label, tmpl, form, examples)
		if err != nil {
			return nil, err
		}
		switch {
		case c == nil:
		case best == nil || c.objective < best.objective:
			best, tied = c, nil
		case c.objective == best.objective:
			// DNF wins ties.
			tied = append(tied, c)
		}
	}
	if best != nil && s.config.alternatives > 0 {
		if err := best.merge(tied, s.config.alternatives); err != nil {
			return nil, err
		}
	}
	if best != nil && s.config.verify {
		if err := verify(best.filter, label, examples); err != nil {
			return nil, err
		}
	}
	return best, nil
}

// merge adds the filters of candidates with the same objective to the
// alternatives of c, skipping predicates already listed, until c has n
// alternatives.
func (c *candidate) merge(tied []*candidate, n int) error {
	seen := make(map[uint64]struct{})
	for _, f := range append([]predicate.Filter{c.filter}, c.alternatives...) {
		h, err := fingerprint(f.Body)
		if err != nil {
			return errors.Wrap(err, "hashing predicate")
		}
		seen[h] = struct{}{}
	}
	for _, other := range tied {
		for _, f := range append([]predicate.Filter{other.filter}, other.alternatives...) {
			if len(c.alternatives) >= n {
				return nil
			}
			h, err := fingerprint(f.Body)
			if err != nil {
				return errors.Wrap(err, "hashing predicate")
			}
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			c.alternatives = append(c.alternatives, f)
		}
	}
	return nil
}

// solve runs one solver session for one normal form of tmpl. The
// session is closed on every path.
func (s *Synthesizer) solve(ctx context.Context, logger *logrus.Entry, label labeling.Label, tmpl template.Template, form ir.Form, examples []*labeling.Example) (c *candidate, err error) {
	start := time.Now()
	defer func() {
		outcome := metrics.Succeeded
		switch {
		case err != nil:
			outcome = metrics.Failed
		case c == nil:
			outcome = metrics.Unsatisfiable
		}
		s.config.recorder.ObserveAttempt(form.String(), outcome, time.Since(start))
	}()

	backend, err := s.config.newBackend()
	if err != nil {
		return nil, synerrors.NewBackendError(errors.Wrap(err, "creating solver session"))
	}
	defer backend.Close()

	root := tmpl.Root(form)
	if err := encode(backend, root, form, tmpl.Outer, label, examples); err != nil {
		return nil, err
	}

	objective, err := backend.Minimize(ctx, tmpl.Toggles(form))
	switch {
	case solver.IsNotSatisfiable(err):
		logger.Debug("no predicate of this size")
		return nil, nil
	case errors.Is(err, solver.Incomplete):
		return nil, errors.Wrapf(err, "synthesizing %s", label)
	case err != nil:
		if !synerrors.IsBackend(err) {
			err = synerrors.NewBackendError(err)
		}
		return nil, err
	}
	logger.WithField("objective", objective).Debug("minimized")

	body, err := ir.Decode(root, backend)
	if err != nil {
		return nil, err
	}
	c = &candidate{
		filter:    predicate.Filter{Label: label, Var: tmpl.Outer, Body: body},
		objective: objective,
		form:      form,
	}
	if s.config.alternatives > 0 {
		c.alternatives, err = alternatives(ctx, backend, root, c.filter, s.config.alternatives)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// encode asserts, for every box of every example, that the template
// holds exactly when the box carries label.
func encode(backend solver.Backend, root ir.Node, form ir.Form, outer labeling.Variable, label labeling.Label, examples []*labeling.Example) error {
	for _, e := range examples {
		for _, box := range e.Boxes() {
			var env *labeling.Env
			env, _ = env.Bind(outer, box, e)
			specialized, err := ir.Apply(root, env, e)
			if err != nil {
				return err
			}
			formula, err := ir.Lower(specialized, form, backend)
			if err != nil {
				return err
			}
			if !e.HasPrecise(box, label) {
				formula = backend.Not(formula)
			}
			backend.Assert(formula)
		}
	}
	return nil
}

// maxNextPerAlternative bounds the models inspected per requested
// alternative, since many models decode to the same predicate.
const maxNextPerAlternative = 16

// alternatives enumerates up to n further predicates of the objective
// just minimized, skipping any that decode to a predicate seen before.
func alternatives(ctx context.Context, backend solver.Backend, root ir.Node, first predicate.Filter, n int) ([]predicate.Filter, error) {
	h, err := fingerprint(first.Body)
	if err != nil {
		return nil, errors.Wrap(err, "hashing predicate")
	}
	seen := map[uint64]struct{}{h: {}}
	var out []predicate.Filter
	for tries := 0; len(out) < n && tries < maxNextPerAlternative*n; tries++ {
		ok, err := backend.Next(ctx)
		if err != nil {
			if errors.Is(err, solver.Incomplete) {
				break
			}
			return nil, err
		}
		if !ok {
			break
		}
		body, err := ir.Decode(root, backend)
		if err != nil {
			return nil, err
		}
		h, err := fingerprint(body)
		if err != nil {
			return nil, errors.Wrap(err, "hashing predicate")
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, predicate.Filter{Label: first.Label, Var: first.Var, Body: body})
	}
	return out, nil
}

// verify evaluates f directly on the training boxes.
func verify(f predicate.Filter, label labeling.Label, examples []*labeling.Example) error {
	for _, e := range examples {
		for _, box := range e.Boxes() {
			got, err := f.Holds(e, box)
			if err != nil {
				return synerrors.NewFatalError(errors.Wrapf(err, "verifying %s", f))
			}
			if want := e.HasPrecise(box, label); got != want {
				return synerrors.NewFatalError(errors.Errorf("%s disagrees with %s on %s: got %t, want %t", f, e.Resource.Path, box, got, want))
			}
		}
	}
	return nil
}
