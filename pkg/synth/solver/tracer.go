package solver

import (
	"fmt"
	"io"

	"github.com/labelsynth/labelsynth/pkg/synth/ir"
)

// SearchPosition is a model found while minimizing. Bound is the
// cardinality bound the model was found under, or -1 for the first
// unconstrained model.
type SearchPosition interface {
	Bound() int
	Active() []ir.Toggle
}

type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nBound: %d\nActive:\n", p.Bound())
	for _, a := range p.Active() {
		fmt.Fprintf(t.Writer, "- %s\n", a)
	}
}
