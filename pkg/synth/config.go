package synth

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	"github.com/labelsynth/labelsynth/pkg/metrics"
	"github.com/labelsynth/labelsynth/pkg/synth/solver"
)

const (
	DefaultMaxDepth     = 2
	DefaultMaxWidth     = 9
	DefaultInitialWidth = 5
	DefaultWidthStep    = 2
	DefaultMaxAttempts  = 10
	DefaultWorkers      = 1
)

// BackendFactory returns a fresh solver session for one normal form of
// one attempt.
type BackendFactory func() (solver.Backend, error)

type synthesizerConfig struct {
	logger       *logrus.Logger
	recorder     metrics.Recorder
	newBackend   BackendFactory
	maxDepth     int
	maxWidth     int
	initialWidth int
	widthStep    int
	maxAttempts  int
	relations    []string
	alternatives int
	workers      int
	timeout      time.Duration
	verify       bool
	labels       []labeling.Label
}

// Option applies an option to the given synthesizer config.
type Option func(config *synthesizerConfig)

// apply sequentially applies the given options to the config.
func (c *synthesizerConfig) apply(options []Option) {
	for _, option := range options {
		option(c)
	}
}

func newInvalidConfigError(msg string, args ...interface{}) error {
	return errors.Errorf("invalid synthesizer config: "+msg, args...)
}

func (c *synthesizerConfig) complete() {
	if c.newBackend == nil {
		tracer := logTracer{logger: c.logger}
		c.newBackend = func() (solver.Backend, error) {
			return solver.New(solver.WithTracer(tracer))
		}
	}
}

// validate returns an error if the config isn't valid.
func (c *synthesizerConfig) validate() (err error) {
	switch config := c; {
	case config.logger == nil:
		err = newInvalidConfigError("nil logger")
	case config.recorder == nil:
		err = newInvalidConfigError("nil metrics recorder")
	case config.maxDepth < 0:
		err = newInvalidConfigError("negative max depth %d", config.maxDepth)
	case config.initialWidth < 1:
		err = newInvalidConfigError("initial width %d is not positive", config.initialWidth)
	case config.maxWidth < config.initialWidth:
		err = newInvalidConfigError("max width %d is below initial width %d", config.maxWidth, config.initialWidth)
	case config.widthStep < 1:
		err = newInvalidConfigError("width step %d is not positive", config.widthStep)
	case config.maxAttempts < 1:
		err = newInvalidConfigError("max attempts %d is not positive", config.maxAttempts)
	case config.alternatives < 0:
		err = newInvalidConfigError("negative number of alternatives %d", config.alternatives)
	case config.workers < 1:
		err = newInvalidConfigError("workers %d is not positive", config.workers)
	case config.timeout < 0:
		err = newInvalidConfigError("negative timeout %s", config.timeout)
	}
	if err != nil {
		return
	}
	for _, name := range c.relations {
		if _, ok := labeling.LookupRelation(name); !ok {
			return newInvalidConfigError("unknown relation %q, known relations are %v", name, labeling.RelationNames())
		}
	}
	return
}

func defaultConfig() *synthesizerConfig {
	return &synthesizerConfig{
		logger:       logrus.New(),
		recorder:     metrics.NewRecorderNil(),
		maxDepth:     DefaultMaxDepth,
		maxWidth:     DefaultMaxWidth,
		initialWidth: DefaultInitialWidth,
		widthStep:    DefaultWidthStep,
		maxAttempts:  DefaultMaxAttempts,
		workers:      DefaultWorkers,
		verify:       true,
	}
}

// WithLogger configures logger as the Synthesizer's Logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(config *synthesizerConfig) {
		config.logger = logger
	}
}

// WithMetrics sets the recorder attempts and labels are reported to.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(config *synthesizerConfig) {
		config.recorder = recorder
	}
}

// WithBackendFactory replaces the gini solver sessions.
func WithBackendFactory(factory BackendFactory) Option {
	return func(config *synthesizerConfig) {
		config.newBackend = factory
	}
}

// WithMaxDepth bounds the quantifier nesting depth.
func WithMaxDepth(depth int) Option {
	return func(config *synthesizerConfig) {
		config.maxDepth = depth
	}
}

// WithMaxWidth bounds the number of clauses per level.
func WithMaxWidth(width int) Option {
	return func(config *synthesizerConfig) {
		config.maxWidth = width
	}
}

// WithInitialWidth sets the number of clauses per level of the first
// attempt.
func WithInitialWidth(width int) Option {
	return func(config *synthesizerConfig) {
		config.initialWidth = width
	}
}

// WithWidthStep sets how many clauses an enlargement adds.
func WithWidthStep(step int) Option {
	return func(config *synthesizerConfig) {
		config.widthStep = step
	}
}

// WithMaxAttempts bounds the number of grammar sizes tried per label.
func WithMaxAttempts(attempts int) Option {
	return func(config *synthesizerConfig) {
		config.maxAttempts = attempts
	}
}

// WithRelations offers the named geometric relations between pairs of
// quantified objects.
func WithRelations(names ...string) Option {
	return func(config *synthesizerConfig) {
		config.relations = names
	}
}

// WithAlternatives asks for up to n further distinct predicates of the
// same size.
func WithAlternatives(n int) Option {
	return func(config *synthesizerConfig) {
		config.alternatives = n
	}
}

// WithWorkers sets how many labels are synthesized concurrently.
func WithWorkers(workers int) Option {
	return func(config *synthesizerConfig) {
		config.workers = workers
	}
}

// WithTimeout bounds the wall clock spent on each label. Zero means no
// bound.
func WithTimeout(timeout time.Duration) Option {
	return func(config *synthesizerConfig) {
		config.timeout = timeout
	}
}

// WithVerify toggles re-evaluation of every synthesized filter on the
// training examples.
func WithVerify(verify bool) Option {
	return func(config *synthesizerConfig) {
		config.verify = verify
	}
}

// WithLabels restricts synthesis to the given precise labels.
func WithLabels(labels ...labeling.Label) Option {
	return func(config *synthesizerConfig) {
		config.labels = labels
	}
}
