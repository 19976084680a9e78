// Package solver decides the toggle selection of a synthesis attempt.
// A Session builds the attempt's formula as a gini circuit, translates
// it to CNF and finds a model with the fewest active toggles.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
	"github.com/labelsynth/labelsynth/pkg/synth/ir"
)

var Incomplete = errors.New("cancelled before a solution could be found")

// NotSatisfiable reports that no toggle selection satisfies every
// assertion of a session.
type NotSatisfiable struct {
	Assertions int
}

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if e.Assertions == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %d assertions", msg, e.Assertions)
}

// IsNotSatisfiable reports whether err carries a NotSatisfiable.
func IsNotSatisfiable(err error) bool {
	var ns NotSatisfiable
	return errors.As(err, &ns)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o solverfakes/fake_backend.go . Backend

// Backend is a solver session scoped to one search attempt. Literals
// built by a Backend are only meaningful to it.
type Backend interface {
	ir.Circuit
	ir.Model
	// Assert requires l to hold in every model.
	Assert(l z.Lit)
	// Minimize finds a model in which the fewest of toggles are true
	// and returns that number.
	Minimize(ctx context.Context, toggles []ir.Toggle) (int, error)
	// Next moves to another model with the same objective and a
	// different selection of toggles, reporting false when there is
	// none.
	Next(ctx context.Context) (bool, error)
	// Close releases the session. The Backend must not be used again.
	Close()
}

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

// Session is the gini implementation of Backend.
type Session struct {
	g      *gini.Gini
	lits   *litMapping
	tracer Tracer
	poll   time.Duration

	marks      []int8
	pending    []z.Lit
	assertions int

	objective []ir.Toggle
	cs        *logic.CardSort
	bound     int
	buffer    []z.Lit
	hasModel  bool
	closed    bool
}

var _ Backend = &Session{}

func (s *Session) Const(v bool) z.Lit {
	if v {
		return s.lits.c.T
	}
	return s.lits.c.F
}

func (s *Session) Toggle(t ir.Toggle) z.Lit {
	return s.lits.LitOf(t)
}

func (s *Session) AtLeast(th ir.Threshold, v float64) z.Lit {
	return s.lits.AtLeast(th, v)
}

func (s *Session) And(ls ...z.Lit) z.Lit {
	return s.lits.c.Ands(ls...)
}

func (s *Session) Or(ls ...z.Lit) z.Lit {
	return s.lits.c.Ors(ls...)
}

func (s *Session) Not(l z.Lit) z.Lit {
	return l.Not()
}

func (s *Session) Implies(a, b z.Lit) z.Lit {
	return s.lits.c.Implies(a, b)
}

func (s *Session) Assert(l z.Lit) {
	if l == z.LitNull {
		s.lits.errs = append(s.lits.errs, fmt.Errorf("assertion of the null literal"))
		return
	}
	s.pending = append(s.pending, l)
	s.assertions++
}

// Minimize takes a model of the asserted formula and decreases the
// number of true toggles with a sorting network, trying every bound
// from zero upwards.
func (s *Session) Minimize(ctx context.Context, toggles []ir.Toggle) (int, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	s.objective = append(s.objective[:0], toggles...)
	s.buffer = s.lits.Lits(s.buffer, s.objective)
	s.flush()
	if err := s.lits.Error(); err != nil {
		return 0, synerrors.NewBackendError(err)
	}

	switch s.solve(ctx) {
	case unsatisfiable:
		return 0, NotSatisfiable{Assertions: s.assertions}
	case unknown:
		return 0, Incomplete
	}
	s.trace(-1)
	upper := len(s.lits.Active(s.g, s.objective))

	s.cs, s.marks = s.lits.CardinalityConstrainer(s.g, s.marks, s.buffer)
	for w := 0; w <= upper; w++ {
		s.g.Assume(s.cs.Leq(w))
		switch s.solve(ctx) {
		case satisfiable:
			s.bound = w
			s.trace(w)
			return w, nil
		case unknown:
			return 0, Incomplete
		}
	}
	// Something is wrong if we can't find a model anymore
	// after optimizing for cardinality.
	s.hasModel = false
	return 0, synerrors.NewBackendError(fmt.Errorf("no model within the bound of a known model (%d)", upper))
}

// Next blocks the current selection of toggles and looks for another
// model at the minimized bound.
func (s *Session) Next(ctx context.Context) (bool, error) {
	if err := s.usable(); err != nil {
		return false, err
	}
	if s.cs == nil || !s.hasModel {
		return false, synerrors.NewBackendError(fmt.Errorf("next called before a successful minimization"))
	}
	if len(s.objective) == 0 {
		return false, nil
	}
	for i, t := range s.objective {
		m := s.buffer[i]
		if s.Value(t) {
			m = m.Not()
		}
		s.g.Add(m)
	}
	s.g.Add(0)
	s.g.Assume(s.cs.Leq(s.bound))
	switch s.solve(ctx) {
	case satisfiable:
		s.trace(s.bound)
		return true, nil
	case unsatisfiable:
		return false, nil
	}
	return false, Incomplete
}

// Value reports whether t is true in the current model.
func (s *Session) Value(t ir.Toggle) bool {
	if s.closed || !s.hasModel {
		return false
	}
	m, ok := s.lits.toggles[t]
	if !ok {
		return false
	}
	return value(s.g, m)
}

// ThresholdValue returns a value of th consistent with the current
// model.
func (s *Session) ThresholdValue(th ir.Threshold) float64 {
	if s.closed || !s.hasModel {
		return 0
	}
	return s.lits.ThresholdValue(s.g, th)
}

func (s *Session) Close() {
	s.closed = true
	s.hasModel = false
	s.g = nil
	s.pending = nil
	s.cs = nil
}

func (s *Session) usable() error {
	if s.closed {
		return synerrors.NewBackendError(fmt.Errorf("session is closed"))
	}
	return nil
}

// flush teaches the solver every assertion made since the last flush,
// along with the threshold orderings they introduced.
func (s *Session) flush() {
	roots := append(s.pending, s.lits.Chains()...)
	s.marks, _ = s.lits.c.CnfSince(s.g, s.marks, roots...)
	for _, m := range roots {
		s.g.Add(m)
		s.g.Add(0)
	}
	s.pending = nil
}

// solve runs the solver in the background until it answers or ctx is
// done.
func (s *Session) solve(ctx context.Context) int {
	if ctx.Err() != nil {
		return unknown
	}
	h := s.g.GoSolve()
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	for {
		if res, ok := h.Test(); ok {
			s.hasModel = res == satisfiable
			return res
		}
		select {
		case <-ctx.Done():
			res := h.Stop()
			s.hasModel = res == satisfiable
			return res
		case <-ticker.C:
		}
	}
}

func (s *Session) trace(bound int) {
	s.tracer.Trace(position{
		bound:  bound,
		active: s.lits.Active(s.g, s.objective),
	})
}

type position struct {
	bound  int
	active []ir.Toggle
}

func (p position) Bound() int         { return p.bound }
func (p position) Active() []ir.Toggle { return p.active }

// New returns an empty Session.
func New(options ...Option) (*Session, error) {
	s := Session{g: gini.New()}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Session) error

func WithTracer(t Tracer) Option {
	return func(s *Session) error {
		s.tracer = t
		return nil
	}
}

// WithPollInterval sets how often a running solve checks for
// cancellation.
func WithPollInterval(d time.Duration) Option {
	return func(s *Session) error {
		if d <= 0 {
			return fmt.Errorf("poll interval must be positive, got %s", d)
		}
		s.poll = d
		return nil
	}
}

// WithCapacity sizes the circuit for about n nodes.
func WithCapacity(n int) Option {
	return func(s *Session) error {
		if n < 0 {
			return fmt.Errorf("capacity must not be negative, got %d", n)
		}
		if s.lits == nil {
			s.lits = newLitMapping(n)
		}
		return nil
	}
}

var defaults = []Option{
	func(s *Session) error {
		if s.lits == nil {
			s.lits = newLitMapping(0)
		}
		return nil
	},
	func(s *Session) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
	func(s *Session) error {
		if s.poll == 0 {
			s.poll = 10 * time.Millisecond
		}
		return nil
	},
}
