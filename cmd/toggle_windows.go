//go:build windows

package cmd

import (
	"context"

	"github.com/bnema/spidy/internal/domain"
)

func notifyToggle(_ context.Context, _ domain.EventSink) func() {
	return func() {}
}
