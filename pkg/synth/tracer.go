package synth

import (
	"github.com/sirupsen/logrus"

	"github.com/labelsynth/labelsynth/pkg/synth/solver"
)

// logTracer reports the models found while minimizing at trace level.
type logTracer struct {
	logger *logrus.Logger
}

func (t logTracer) Trace(p solver.SearchPosition) {
	if !t.logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	t.logger.WithFields(logrus.Fields{
		"bound":  p.Bound(),
		"active": len(p.Active()),
	}).Trace("solver found model")
}
