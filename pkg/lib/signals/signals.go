// Package signals ties the lifetime of a synthesis run to the
// interrupt and termination signals of the process.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Context returns a child of parent that is cancelled on the first
// SIGINT or SIGTERM. Running solver sessions stop at their next poll
// and unfinished labels report an incomplete search. A second signal
// exits the process with status 1.
func Context(parent context.Context, logger logrus.FieldLogger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 2)
	signal.Notify(c, shutdownSignals...)
	go func() {
		defer signal.Stop(c)
		select {
		case sig := <-c:
			logger.WithField("signal", sig).Warn("stopping synthesis, signal again to exit immediately")
			cancel()
		case <-ctx.Done():
			return
		}
		<-c
		os.Exit(1) // second signal. Exit directly.
	}()
	return ctx, cancel
}
