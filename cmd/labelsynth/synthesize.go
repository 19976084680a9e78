package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/labelsynth/labelsynth/pkg/labeling"
	"github.com/labelsynth/labelsynth/pkg/labeling/examplefile"
	"github.com/labelsynth/labelsynth/pkg/lib/filemonitor"
	"github.com/labelsynth/labelsynth/pkg/lib/signals"
	"github.com/labelsynth/labelsynth/pkg/metrics"
	"github.com/labelsynth/labelsynth/pkg/predicate"
	"github.com/labelsynth/labelsynth/pkg/synth"
)

const (
	defaultSettle      = 500 * time.Millisecond
	defaultMinInterval = 5 * time.Second
)

type synthesizeOptions struct {
	configPath      string
	outPath         string
	applyPath       string
	relabeledPath   string
	metricsTextfile string
	watch           bool
	settle          time.Duration
	minInterval     time.Duration

	maxDepth     int
	maxWidth     int
	initialWidth int
	widthStep    int
	maxAttempts  int
	alternatives int
	workers      int
	relations    []string
	labels       []string
	timeout      time.Duration
	verify       bool
}

func newSynthesizeCmd(logger *logrus.Logger) *cobra.Command {
	o := synthesizeOptions{}

	cmd := &cobra.Command{
		Use:   "synthesize EXAMPLES",
		Short: "Synthesize one filter per precise label of an examples file",
		Long: `Synthesize reads a YAML or JSON list of annotated images and searches, for
every precise label, the smallest filter over base labels that selects exactly
the boxes carrying it. Results are written as YAML.`,
		Args: cobra.ExactArgs(1),
		// Results go to stdout, which must stay valid YAML when a label
		// fails.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signals.Context(cmd.Context(), logger)
			defer cancel()
			return o.run(ctx, logger, cmd.OutOrStdout(), cmd.Flags(), args[0])
		},
	}

	cmd.Flags().StringVar(&o.configPath, "config", "", "path to a YAML synthesizer config file")
	cmd.Flags().StringVarP(&o.outPath, "out", "o", "", "write results to this file instead of stdout")
	cmd.Flags().StringVar(&o.applyPath, "apply", "", "examples file to relabel with the synthesized program")
	cmd.Flags().StringVar(&o.relabeledPath, "relabeled", "", "where to write the relabeled examples (requires --apply, defaults to stdout)")
	cmd.Flags().StringVar(&o.metricsTextfile, "metrics-textfile", "", "write synthesis metrics to this file in the text exposition format")
	cmd.Flags().BoolVar(&o.watch, "watch", false, "synthesize again whenever the examples file changes")
	cmd.Flags().DurationVar(&o.settle, "settle", defaultSettle, "how long the examples file must be quiet before synthesizing again")
	cmd.Flags().DurationVar(&o.minInterval, "min-interval", defaultMinInterval, "minimum time between two synthesis runs in watch mode")

	cmd.Flags().IntVar(&o.maxDepth, "max-depth", synth.DefaultMaxDepth, "maximum quantifier nesting depth")
	cmd.Flags().IntVar(&o.maxWidth, "max-width", synth.DefaultMaxWidth, "maximum number of clauses per level")
	cmd.Flags().IntVar(&o.initialWidth, "initial-width", synth.DefaultInitialWidth, "number of clauses per level of the first attempt")
	cmd.Flags().IntVar(&o.widthStep, "width-step", synth.DefaultWidthStep, "clauses added when widening")
	cmd.Flags().IntVar(&o.maxAttempts, "max-attempts", synth.DefaultMaxAttempts, "grammar sizes tried per label")
	cmd.Flags().IntVar(&o.alternatives, "alternatives", 0, "further distinct filters of the same size to report per label")
	cmd.Flags().IntVar(&o.workers, "workers", synth.DefaultWorkers, "labels synthesized concurrently")
	cmd.Flags().StringSliceVar(&o.relations, "relations", nil, "geometric relations offered between objects ("+strings.Join(labeling.RelationNames(), ", ")+")")
	cmd.Flags().StringSliceVar(&o.labels, "labels", nil, "only synthesize these precise labels")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "time limit per label, 0 means none")
	cmd.Flags().BoolVar(&o.verify, "verify", true, "re-evaluate every filter on the examples")

	return cmd
}

// options merges the config file with the flags set on the command
// line, which take precedence.
func (o *synthesizeOptions) options(flags *pflag.FlagSet) ([]synth.Option, error) {
	var options []synth.Option
	if o.configPath != "" {
		config, err := synth.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		options = append(options, config.Options()...)
	}

	ints := map[string]func(int) synth.Option{
		"max-depth":     synth.WithMaxDepth,
		"max-width":     synth.WithMaxWidth,
		"initial-width": synth.WithInitialWidth,
		"width-step":    synth.WithWidthStep,
		"max-attempts":  synth.WithMaxAttempts,
		"alternatives":  synth.WithAlternatives,
		"workers":       synth.WithWorkers,
	}
	values := map[string]int{
		"max-depth":     o.maxDepth,
		"max-width":     o.maxWidth,
		"initial-width": o.initialWidth,
		"width-step":    o.widthStep,
		"max-attempts":  o.maxAttempts,
		"alternatives":  o.alternatives,
		"workers":       o.workers,
	}
	flags.Visit(func(f *pflag.Flag) {
		if option, ok := ints[f.Name]; ok {
			options = append(options, option(values[f.Name]))
		}
	})
	if flags.Changed("relations") {
		options = append(options, synth.WithRelations(o.relations...))
	}
	if flags.Changed("labels") {
		labels := make([]labeling.Label, 0, len(o.labels))
		for _, l := range o.labels {
			labels = append(labels, labeling.Label(l))
		}
		options = append(options, synth.WithLabels(labels...))
	}
	if flags.Changed("timeout") {
		options = append(options, synth.WithTimeout(o.timeout))
	}
	if flags.Changed("verify") {
		options = append(options, synth.WithVerify(o.verify))
	}
	if o.relabeledPath != "" && o.applyPath == "" {
		return nil, errors.New("--relabeled requires --apply")
	}
	return options, nil
}

func (o *synthesizeOptions) run(ctx context.Context, logger *logrus.Logger, stdout io.Writer, flags *pflag.FlagSet, examplesPath string) error {
	options, err := o.options(flags)
	if err != nil {
		return err
	}
	recorder := metrics.NewRecorderNil()
	if o.metricsTextfile != "" {
		metrics.RegisterSynthesis()
		recorder = metrics.NewRecorder()
	}
	options = append(options, synth.WithLogger(logger), synth.WithMetrics(recorder))
	s, err := synth.NewSynthesizer(options...)
	if err != nil {
		return err
	}

	once := func() error {
		return o.synthesize(ctx, s, stdout, examplesPath)
	}
	if !o.watch {
		return once()
	}

	if o.minInterval <= 0 {
		return errors.Errorf("--min-interval must be positive, got %s", o.minInterval)
	}
	limiter := rate.NewLimiter(rate.Every(o.minInterval), 1)
	limiter.Allow()
	if err := once(); err != nil {
		logger.WithError(err).Warn("synthesis incomplete")
	}
	w, err := filemonitor.NewWatch(logger, []string{examplesPath}, o.settle, func(logger *logrus.Logger, path string) {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		logger.WithField("path", path).Info("examples changed, synthesizing again")
		if err := once(); err != nil {
			logger.WithError(err).Warn("synthesis incomplete")
		}
	})
	if err != nil {
		return errors.Wrap(err, "watching examples")
	}
	w.Run(ctx)
	<-ctx.Done()
	return nil
}

// synthesize runs one synthesis over the examples file and writes
// every requested artifact. Labels that failed are reported together.
func (o *synthesizeOptions) synthesize(ctx context.Context, s *synth.Synthesizer, stdout io.Writer, examplesPath string) error {
	examples, err := examplefile.Read(examplesPath)
	if err != nil {
		return err
	}
	results, runErr := s.Synthesize(ctx, examples)

	var errs []error
	if runErr != nil {
		errs = append(errs, runErr)
	}
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, errors.Wrapf(r.Err, "label %s", r.Label))
		}
	}

	data, err := encodeResults(results)
	if err != nil {
		return err
	}
	if err := writeOutput(o.outPath, stdout, data); err != nil {
		errs = append(errs, err)
	}

	if o.applyPath != "" {
		if err := o.relabel(synth.Program(results), stdout); err != nil {
			errs = append(errs, err)
		}
	}
	if o.metricsTextfile != "" {
		if err := metrics.WriteTextfile(o.metricsTextfile); err != nil {
			errs = append(errs, errors.Wrap(err, "writing metrics"))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// relabel replaces the precise labels of the --apply examples with the
// ones the program assigns.
func (o *synthesizeOptions) relabel(p predicate.Program, stdout io.Writer) error {
	examples, err := examplefile.Read(o.applyPath)
	if err != nil {
		return err
	}
	for _, e := range examples {
		e.ClearAllPrecise()
		if err := p.Apply(e); err != nil {
			return errors.Wrapf(err, "relabeling %s", e.Resource.Path)
		}
	}
	if o.relabeledPath != "" {
		return examplefile.Write(o.relabeledPath, examples)
	}
	data, err := examplefile.Encode(examples, false)
	if err != nil {
		return errors.Wrap(err, "encoding relabeled examples")
	}
	return writeOutput("", stdout, append([]byte("---\n"), data...))
}

type labelOutput struct {
	Label        string   `json:"label"`
	Filter       string   `json:"filter,omitempty"`
	Form         string   `json:"form,omitempty"`
	Objective    int      `json:"objective,omitempty"`
	Depth        int      `json:"depth"`
	Width        int      `json:"width"`
	Attempts     int      `json:"attempts"`
	Alternatives []string `json:"alternatives,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func encodeResults(results []synth.LabelResult) ([]byte, error) {
	out := make([]labelOutput, 0, len(results))
	for _, r := range results {
		l := labelOutput{
			Label:    string(r.Label),
			Depth:    r.Depth,
			Width:    r.Width,
			Attempts: r.Attempts,
		}
		if r.Err != nil {
			l.Error = r.Err.Error()
		}
		if r.Filter != nil {
			l.Filter = r.Filter.String()
			l.Form = r.Form.String()
			l.Objective = r.Objective
		}
		for _, a := range r.Alternatives {
			l.Alternatives = append(l.Alternatives, a.String())
		}
		out = append(out, l)
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "encoding results")
	}
	return data, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
