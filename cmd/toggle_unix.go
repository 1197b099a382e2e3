//go:build !windows

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/spidy/internal/domain"
)

// notifyToggle turns SIGUSR1 into toggle events until ctx is done.
func notifyToggle(ctx context.Context, sink domain.EventSink) func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGUSR1)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				sink(domain.ToggleEvent{})
			}
		}
	}()

	return func() { signal.Stop(signals) }
}
