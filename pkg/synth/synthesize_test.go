package synth

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	"github.com/labelsynth/labelsynth/pkg/predicate"
	synerrors "github.com/labelsynth/labelsynth/pkg/synth/errors"
	"github.com/labelsynth/labelsynth/pkg/synth/ir"
	"github.com/labelsynth/labelsynth/pkg/synth/solver"
	"github.com/labelsynth/labelsynth/pkg/synth/solver/solverfakes"
)

type labeledBox struct {
	Box     labeling.BoundingBox
	Base    labeling.Label
	Precise []labeling.Label
}

func box(i int) labeling.BoundingBox {
	return labeling.BoundingBox{Left: 0.1 * float64(i), Top: 0.1, Width: 0.05, Height: 0.05}
}

func example(t *testing.T, path string, boxes ...labeledBox) *labeling.Example {
	t.Helper()
	e := labeling.NewExample(labeling.Resource{Path: path})
	for _, b := range boxes {
		e.AddBox(b.Box, b.Base)
		for _, p := range b.Precise {
			require.NoError(t, e.MakePrecise(b.Box, p))
		}
	}
	return e
}

func quietLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

// animals has one precise label, "animal", on everything but the car.
func animals(t *testing.T) []*labeling.Example {
	return []*labeling.Example{
		example(t, "street.jpg",
			labeledBox{Box: box(1), Base: "dog", Precise: []labeling.Label{"animal"}},
			labeledBox{Box: box(2), Base: "cat", Precise: []labeling.Label{"animal"}},
			labeledBox{Box: box(3), Base: "car"},
		),
	}
}

// band tells guitarists apart from other people only by the guitar in
// the picture.
func band(t *testing.T) []*labeling.Example {
	return []*labeling.Example{
		example(t, "stage.jpg",
			labeledBox{Box: box(1), Base: "person", Precise: []labeling.Label{"guitarist"}},
			labeledBox{Box: box(2), Base: "guitar"},
		),
		example(t, "office.jpg",
			labeledBox{Box: box(1), Base: "person"},
		),
	}
}

// puppies cannot be told apart from dogs: both images look the same.
func puppies(t *testing.T) []*labeling.Example {
	return []*labeling.Example{
		example(t, "puppy.jpg", labeledBox{Box: box(1), Base: "dog", Precise: []labeling.Label{"puppy"}}),
		example(t, "dog.jpg", labeledBox{Box: box(1), Base: "dog"}),
	}
}

// separableByBase reports whether label is decided by the base label
// of a box alone, which is what a predicate without quantifiers sees.
func separableByBase(examples []*labeling.Example, label labeling.Label) bool {
	carries := make(map[labeling.Label]bool)
	for _, e := range examples {
		for _, b := range e.Boxes() {
			base, _ := e.Base(b)
			has := e.HasPrecise(b, label)
			if seen, ok := carries[base]; ok && seen != has {
				return false
			}
			carries[base] = has
		}
	}
	return true
}

func notCar() predicate.Predicate {
	return predicate.Not{Inner: predicate.Match{A: labeling.Variable("x0"), B: labeling.Label("car")}}
}

func TestFixturesSeparableByBase(t *testing.T) {
	assert.True(t, separableByBase(animals(t), "animal"))
	assert.False(t, separableByBase(band(t), "guitarist"))
	assert.False(t, separableByBase(puppies(t), "puppy"))
	assert.True(t, separableByBase(append(animals(t), band(t)...), "animal"))
	assert.False(t, separableByBase(append(animals(t), puppies(t)...), "animal"), "puppies adds a dog that is not an animal")
}

func TestVocabulary(t *testing.T) {
	examples := append(animals(t), band(t)...)
	assert.Equal(t, []labeling.Label{"car", "cat", "dog", "guitar", "person"}, BaseVocabulary(examples))
	assert.Equal(t, []labeling.Label{"animal", "guitarist"}, PreciseVocabulary(examples))
	assert.Empty(t, PreciseVocabulary(nil))
}

func TestSynthesizeWithoutNesting(t *testing.T) {
	s, err := NewSynthesizer(WithLogger(quietLogger()), WithMaxDepth(0))
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), animals(t))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.NoError(t, r.Err)
	require.NotNil(t, r.Filter)
	assert.Equal(t, labeling.Label("animal"), r.Label)
	assert.Equal(t, labeling.Variable("x0"), r.Filter.Var)
	if diff := cmp.Diff(notCar(), r.Filter.Body); diff != "" {
		t.Errorf("unexpected body (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, r.Objective)
	assert.Equal(t, ir.DNF, r.Form, "ties go to DNF")
	assert.Equal(t, 0, r.Depth)
	assert.Equal(t, DefaultInitialWidth, r.Width)
	assert.Equal(t, 1, r.Attempts)
}

func TestSynthesizeNested(t *testing.T) {
	s, err := NewSynthesizer(
		WithLogger(quietLogger()),
		WithMaxDepth(1),
		WithInitialWidth(1),
		WithMaxWidth(1),
	)
	require.NoError(t, err)

	examples := band(t)
	results, err := s.Synthesize(context.Background(), examples)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.NoError(t, r.Err)
	require.NotNil(t, r.Filter)
	assert.Equal(t, 1, r.Depth)
	assert.Equal(t, 2, r.Attempts)
	assert.Equal(t, 3, r.Objective, "a label check plus one quantified atom")

	for _, e := range examples {
		for _, b := range e.Boxes() {
			got, err := r.Filter.Holds(e, b)
			require.NoError(t, err)
			assert.Equal(t, e.HasPrecise(b, "guitarist"), got, "%s on %s", r.Filter, e.Resource.Path)
		}
	}
}

func TestSynthesizeExhausted(t *testing.T) {
	s, err := NewSynthesizer(
		WithLogger(quietLogger()),
		WithMaxDepth(1),
		WithInitialWidth(1),
		WithMaxWidth(3),
	)
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), puppies(t))
	require.NoError(t, err, "exhaustion is reported per label")
	require.Len(t, results, 1)

	r := results[0]
	assert.True(t, synerrors.IsExhausted(r.Err))
	assert.Nil(t, r.Filter)
	assert.Equal(t, 3, r.Attempts)
	assert.Equal(t, 1, r.Depth)
	assert.Equal(t, 3, r.Width)

	var exhausted synerrors.ExhaustedError
	require.True(t, errors.As(r.Err, &exhausted))
	assert.Equal(t, "puppy", exhausted.Label)
	assert.Empty(t, Program(results).Filters)
}

func TestSynthesizeMaxAttempts(t *testing.T) {
	s, err := NewSynthesizer(WithLogger(quietLogger()), WithMaxDepth(0), WithMaxAttempts(2))
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), puppies(t))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, synerrors.IsExhausted(results[0].Err))
	assert.Equal(t, 2, results[0].Attempts)
	assert.Equal(t, DefaultInitialWidth+DefaultWidthStep, results[0].Width)
}

func TestSynthesizeLabels(t *testing.T) {
	examples := append(animals(t), puppies(t)...)
	for _, tt := range []struct {
		Name   string
		Labels []labeling.Label
		Want   []labeling.Label
	}{
		{
			Name: "every precise label by default",
			Want: []labeling.Label{"animal", "puppy"},
		},
		{
			Name:   "restricted",
			Labels: []labeling.Label{"animal"},
			Want:   []labeling.Label{"animal"},
		},
		{
			Name:   "unknown labels are ignored",
			Labels: []labeling.Label{"animal", "unicorn"},
			Want:   []labeling.Label{"animal"},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s, err := NewSynthesizer(
				WithLogger(quietLogger()),
				WithMaxDepth(0),
				WithMaxAttempts(1),
				WithLabels(tt.Labels...),
				WithWorkers(2),
			)
			require.NoError(t, err)
			results, err := s.Synthesize(context.Background(), examples)
			require.NoError(t, err)

			var got []labeling.Label
			for _, r := range results {
				got = append(got, r.Label)
			}
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestSynthesizeAlternatives(t *testing.T) {
	examples := []*labeling.Example{
		example(t, "yard.jpg",
			labeledBox{Box: box(1), Base: "dog", Precise: []labeling.Label{"pet"}},
			labeledBox{Box: box(2), Base: "cat"},
		),
	}
	s, err := NewSynthesizer(WithLogger(quietLogger()), WithMaxDepth(0), WithAlternatives(3))
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), examples)
	require.NoError(t, err)
	require.Len(t, results, 1)
	r := results[0]
	require.NoError(t, r.Err)
	require.Len(t, r.Alternatives, 1, "the same atom in another clause is not a new predicate")

	got := []string{r.Filter.Body.String(), r.Alternatives[0].Body.String()}
	sort.Strings(got)
	want := []string{
		predicate.Match{A: labeling.Variable("x0"), B: labeling.Label("dog")}.String(),
		predicate.Not{Inner: predicate.Match{A: labeling.Variable("x0"), B: labeling.Label("cat")}}.String(),
	}
	sort.Strings(want)
	assert.Equal(t, want, got)
	assert.Equal(t, r.Label, r.Alternatives[0].Label)
	assert.Equal(t, r.Filter.Var, r.Alternatives[0].Var)
}

func TestSynthesizeAlternativesFromBothForms(t *testing.T) {
	examples := []*labeling.Example{
		example(t, "yard.jpg",
			labeledBox{Box: box(1), Base: "dog", Precise: []labeling.Label{"pet"}},
			labeledBox{Box: box(2), Base: "cat"},
		),
	}
	// With one clause over [cat, dog] the DNF atoms are t1..t4 and the
	// CNF atoms t5..t8, each as match cat, not cat, match dog, not dog.
	choices := []ir.Toggle{3, 6}
	var (
		mu    sync.Mutex
		calls int
	)
	factory := func() (solver.Backend, error) {
		mu.Lock()
		defer mu.Unlock()
		active := choices[calls]
		calls++
		fake := &solverfakes.FakeBackend{}
		fake.MinimizeReturns(1, nil)
		fake.NextReturns(false, nil)
		fake.ValueCalls(func(t ir.Toggle) bool { return t == active })
		return fake, nil
	}
	s, err := NewSynthesizer(
		WithLogger(quietLogger()),
		WithBackendFactory(factory),
		WithMaxDepth(0),
		WithInitialWidth(1),
		WithMaxWidth(1),
		WithAlternatives(3),
	)
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), examples)
	require.NoError(t, err)
	require.Len(t, results, 1)
	r := results[0]
	require.NoError(t, r.Err)
	assert.Equal(t, ir.DNF, r.Form)
	assert.Equal(t, predicate.Match{A: labeling.Variable("x0"), B: labeling.Label("dog")}.String(), r.Filter.Body.String())
	require.Len(t, r.Alternatives, 1, "the CNF model of the same size is listed")
	assert.Equal(t, predicate.Not{Inner: predicate.Match{A: labeling.Variable("x0"), B: labeling.Label("cat")}}.String(), r.Alternatives[0].Body.String())
}

func TestCandidateMerge(t *testing.T) {
	x := labeling.Variable("x0")
	dog := predicate.Filter{Label: "pet", Var: x, Body: predicate.Match{A: x, B: labeling.Label("dog")}}
	notCat := predicate.Filter{Label: "pet", Var: x, Body: predicate.Not{Inner: predicate.Match{A: x, B: labeling.Label("cat")}}}
	noCar := predicate.Filter{Label: "pet", Var: x, Body: notCar()}

	c := &candidate{filter: dog, objective: 1, form: ir.DNF}
	tied := []*candidate{{filter: dog, objective: 1, form: ir.CNF, alternatives: []predicate.Filter{notCat, noCar}}}
	require.NoError(t, c.merge(tied, 1))
	assert.Equal(t, []predicate.Filter{notCat}, c.alternatives, "duplicates are skipped and n is respected")

	require.NoError(t, c.merge(tied, 5))
	assert.Equal(t, []predicate.Filter{notCat, noCar}, c.alternatives)
}

func TestSynthesizeBackendFailure(t *testing.T) {
	var (
		mu    sync.Mutex
		fakes []*solverfakes.FakeBackend
	)
	factory := func() (solver.Backend, error) {
		fake := &solverfakes.FakeBackend{}
		fake.MinimizeReturns(0, fmt.Errorf("out of memory"))
		mu.Lock()
		defer mu.Unlock()
		fakes = append(fakes, fake)
		return fake, nil
	}
	s, err := NewSynthesizer(WithLogger(quietLogger()), WithBackendFactory(factory))
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), animals(t))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, synerrors.IsBackend(results[0].Err))
	assert.Equal(t, 1, results[0].Attempts, "backend failures are not retried")

	require.Len(t, fakes, 1)
	assert.Equal(t, 3, fakes[0].AssertCallCount(), "one assertion per box")
	assert.Equal(t, 1, fakes[0].NotCallCount(), "the car is a negative example")
	assert.Equal(t, 1, fakes[0].CloseCallCount())
}

func TestSynthesizeBackendFactoryFailure(t *testing.T) {
	factory := func() (solver.Backend, error) {
		return nil, fmt.Errorf("no solver")
	}
	s, err := NewSynthesizer(WithLogger(quietLogger()), WithBackendFactory(factory))
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), animals(t))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, synerrors.IsBackend(results[0].Err))
}

func TestSynthesizeCancelled(t *testing.T) {
	s, err := NewSynthesizer(WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := s.Synthesize(ctx, animals(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, results, 1)
	assert.True(t, errors.Is(results[0].Err, solver.Incomplete))
	assert.Nil(t, results[0].Filter)
}

func TestSynthesizeTimeout(t *testing.T) {
	factory := func() (solver.Backend, error) {
		fake := &solverfakes.FakeBackend{}
		fake.MinimizeCalls(func(ctx context.Context, _ []ir.Toggle) (int, error) {
			<-ctx.Done()
			return 0, solver.Incomplete
		})
		return fake, nil
	}
	s, err := NewSynthesizer(
		WithLogger(quietLogger()),
		WithBackendFactory(factory),
		WithTimeout(10*time.Millisecond),
	)
	require.NoError(t, err)

	results, err := s.Synthesize(context.Background(), animals(t))
	require.NoError(t, err, "a label timeout does not end the run")
	require.Len(t, results, 1)
	assert.True(t, errors.Is(results[0].Err, solver.Incomplete))
}

func TestSynthesizeNilExample(t *testing.T) {
	s, err := NewSynthesizer(WithLogger(quietLogger()))
	require.NoError(t, err)
	_, err = s.Synthesize(context.Background(), []*labeling.Example{nil})
	assert.Error(t, err)
}

type countingRecorder struct {
	mu       sync.Mutex
	attempts map[string]int
	labels   map[string]string
}

func (r *countingRecorder) ObserveAttempt(form, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[form+"/"+outcome]++
}

func (r *countingRecorder) ObserveLabel(label, outcome string, _, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels[label] = outcome
}

func TestSynthesizeMetrics(t *testing.T) {
	recorder := &countingRecorder{attempts: map[string]int{}, labels: map[string]string{}}
	s, err := NewSynthesizer(
		WithLogger(quietLogger()),
		WithMetrics(recorder),
		WithMaxDepth(0),
		WithMaxAttempts(1),
	)
	require.NoError(t, err)

	examples := append(animals(t), band(t)...)
	require.True(t, separableByBase(examples, "animal"), "the fixtures must agree on animal")
	require.False(t, separableByBase(examples, "guitarist"))

	_, err = s.Synthesize(context.Background(), examples)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"animal": "succeeded", "guitarist": "exhausted"}, recorder.labels)
	assert.Equal(t, map[string]int{
		"dnf/succeeded":     1,
		"cnf/succeeded":     1,
		"dnf/unsatisfiable": 1,
		"cnf/unsatisfiable": 1,
	}, recorder.attempts)
}

func TestProgram(t *testing.T) {
	f := predicate.Filter{Label: "animal", Var: "x0", Body: notCar()}
	results := []LabelResult{
		{Label: "animal", Filter: &f},
		{Label: "puppy", Err: synerrors.ExhaustedError{Label: "puppy"}},
	}
	assert.Equal(t, predicate.Program{Filters: []predicate.Filter{f}}, Program(results))
}

func TestFingerprint(t *testing.T) {
	x := labeling.Variable("x0")
	dog := predicate.Match{A: x, B: labeling.Label("dog")}
	cat := predicate.Match{A: x, B: labeling.Label("cat")}
	car := predicate.Match{A: x, B: labeling.Label("car")}

	for _, tt := range []struct {
		Name  string
		A, B  predicate.Predicate
		Equal bool
	}{
		{
			Name:  "identical",
			A:     dog,
			B:     predicate.Match{A: x, B: labeling.Label("dog")},
			Equal: true,
		},
		{
			Name:  "clause order",
			A:     predicate.OrOf(dog, cat, car),
			B:     predicate.OrOf(car, dog, cat),
			Equal: true,
		},
		{
			Name: "connective",
			A:    predicate.OrOf(dog, cat),
			B:    predicate.AndOf(dog, cat),
		},
		{
			Name: "negation",
			A:    dog,
			B:    predicate.Not{Inner: dog},
		},
		{
			Name: "label against variable",
			A:    predicate.Match{A: x, B: labeling.Label("x1")},
			B:    predicate.Match{A: x, B: labeling.Variable("x1")},
		},
		{
			Name: "quantifier",
			A:    predicate.Any{Var: "x0", Body: dog},
			B:    predicate.All{Var: "x0", Body: dog},
		},
		{
			Name: "threshold",
			A:    predicate.Relation{Name: labeling.IoU, A: "x1", B: "x0", Threshold: 0.5},
			B:    predicate.Relation{Name: labeling.IoU, A: "x1", B: "x0", Threshold: 0.25},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			a, err := fingerprint(tt.A)
			require.NoError(t, err)
			b, err := fingerprint(tt.B)
			require.NoError(t, err)
			assert.Equal(t, tt.Equal, a == b)
		})
	}
}
