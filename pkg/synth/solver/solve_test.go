package solver

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
	"github.com/labelsynth/labelsynth/pkg/synth/ir"
)

func newSession(t *testing.T, options ...Option) *Session {
	t.Helper()
	s, err := New(options...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNotSatisfiableError(t *testing.T) {
	type tc struct {
		Name   string
		Error  NotSatisfiable
		String string
	}

	for _, tt := range []tc{
		{
			Name:   "empty",
			String: "constraints not satisfiable",
		},
		{
			Name:   "with assertions",
			Error:  NotSatisfiable{Assertions: 3},
			String: "constraints not satisfiable: 3 assertions",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.String, tt.Error.Error())
			assert.True(t, IsNotSatisfiable(tt.Error))
		})
	}
	assert.False(t, IsNotSatisfiable(Incomplete))
}

func TestMinimize(t *testing.T) {
	type tc struct {
		Name      string
		Toggles   []ir.Toggle
		Assert    func(s *Session)
		Objective int
		Active    []ir.Toggle
	}

	for _, tt := range []tc{
		{
			Name:      "nothing required",
			Toggles:   []ir.Toggle{1, 2},
			Assert:    func(s *Session) {},
			Objective: 0,
		},
		{
			Name:    "implied toggle",
			Toggles: []ir.Toggle{1, 2, 3},
			Assert: func(s *Session) {
				s.Assert(s.Toggle(1))
				s.Assert(s.Implies(s.Toggle(1), s.Toggle(3)))
			},
			Objective: 2,
			Active:    []ir.Toggle{1, 3},
		},
		{
			Name:    "cheapest alternative",
			Toggles: []ir.Toggle{1, 2, 3},
			Assert: func(s *Session) {
				s.Assert(s.Or(s.And(s.Toggle(1), s.Toggle(2)), s.Toggle(3)))
			},
			Objective: 1,
			Active:    []ir.Toggle{3},
		},
		{
			Name:    "constants",
			Toggles: []ir.Toggle{1},
			Assert: func(s *Session) {
				s.Assert(s.Or(s.Const(false), s.Toggle(1)))
				s.Assert(s.Const(true))
			},
			Objective: 1,
			Active:    []ir.Toggle{1},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s := newSession(t)
			tt.Assert(s)
			objective, err := s.Minimize(context.Background(), tt.Toggles)
			require.NoError(t, err)
			assert.Equal(t, tt.Objective, objective)
			var active []ir.Toggle
			for _, toggle := range tt.Toggles {
				if s.Value(toggle) {
					active = append(active, toggle)
				}
			}
			assert.Equal(t, tt.Active, active)
		})
	}
}

func TestMinimizeNotSatisfiable(t *testing.T) {
	s := newSession(t)
	s.Assert(s.Toggle(1))
	s.Assert(s.Not(s.Toggle(1)))
	_, err := s.Minimize(context.Background(), []ir.Toggle{1})
	require.Error(t, err)
	assert.True(t, IsNotSatisfiable(err))
	assert.False(t, s.Value(1))
}

func TestThresholds(t *testing.T) {
	type tc struct {
		Name     string
		Above    []float64
		Below    []float64
		Expected float64
		Unsat    bool
	}

	for _, tt := range []tc{
		{
			Name:     "smallest value at least the threshold",
			Above:    []float64{0.3},
			Below:    []float64{0.2},
			Expected: 0.3,
		},
		{
			Name:     "above every value",
			Below:    []float64{0.5, 0.1},
			Expected: math.Nextafter(0.5, math.Inf(1)),
		},
		{
			Name:  "ordered values",
			Above: []float64{0.2},
			Below: []float64{0.7},
			Unsat: true,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s := newSession(t)
			for _, v := range tt.Above {
				s.Assert(s.AtLeast(1, v))
			}
			for _, v := range tt.Below {
				s.Assert(s.Not(s.AtLeast(1, v)))
			}
			_, err := s.Minimize(context.Background(), nil)
			if tt.Unsat {
				assert.True(t, IsNotSatisfiable(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.Expected, s.ThresholdValue(1))
		})
	}
}

func TestChainsOrder(t *testing.T) {
	d := newLitMapping(0)
	for _, th := range []ir.Threshold{7, 2, 5, 3, 9, 1} {
		d.AtLeast(th, 0.75)
		d.AtLeast(th, 0.25)
	}

	chains := d.Chains()
	var expected []z.Lit
	for _, th := range []ir.Threshold{1, 2, 3, 5, 7, 9} {
		lits := d.thresholds[th].lits
		expected = append(expected, d.c.Implies(lits[0.25], lits[0.75]))
	}
	assert.Equal(t, expected, chains, "chains follow threshold order")
	assert.Empty(t, d.Chains(), "unchanged thresholds are not chained again")

	d.AtLeast(3, 0.5)
	lits := d.thresholds[3].lits
	assert.Equal(t, []z.Lit{
		d.c.Implies(lits[0.25], lits[0.5]),
		d.c.Implies(lits[0.5], lits[0.75]),
	}, d.Chains())
}

func TestNext(t *testing.T) {
	s := newSession(t)
	s.Assert(s.Or(s.Toggle(1), s.Toggle(2)))
	toggles := []ir.Toggle{1, 2}

	ctx := context.Background()
	objective, err := s.Minimize(ctx, toggles)
	require.NoError(t, err)
	assert.Equal(t, 1, objective)
	first := s.Value(1)

	ok, err := s.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, first, s.Value(1))
	assert.NotEqual(t, s.Value(1), s.Value(2), "alternatives keep the objective")

	ok, err = s.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionErrors(t *testing.T) {
	ctx := context.Background()

	s := newSession(t)
	_, err := s.Next(ctx)
	assert.True(t, synerrors.IsBackend(err), "next before minimize")

	s.Assert(0)
	_, err = s.Minimize(ctx, nil)
	assert.True(t, synerrors.IsBackend(err), "null assertion")

	closed := newSession(t)
	closed.Close()
	_, err = closed.Minimize(ctx, nil)
	assert.True(t, synerrors.IsBackend(err), "closed session")
	assert.False(t, closed.Value(1))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	s = newSession(t)
	s.Assert(s.Toggle(1))
	_, err = s.Minimize(cancelled, []ir.Toggle{1})
	assert.Equal(t, Incomplete, err)
}

func TestLoggingTracer(t *testing.T) {
	var traces bytes.Buffer
	s := newSession(t, WithTracer(LoggingTracer{Writer: &traces}))
	s.Assert(s.Toggle(2))
	_, err := s.Minimize(context.Background(), []ir.Toggle{1, 2})
	require.NoError(t, err)
	assert.Contains(t, traces.String(), "---\nBound: 1\nActive:\n- t2\n")
}

func TestOptions(t *testing.T) {
	_, err := New(WithPollInterval(0))
	assert.Error(t, err)
	_, err = New(WithCapacity(-1))
	assert.Error(t, err)
	s, err := New(WithCapacity(128))
	require.NoError(t, err)
	s.Close()
}
