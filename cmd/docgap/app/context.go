package app

import (
	"context"
	"os/signal"
	"syscall"
)

// ContextWithSignals returns a context that is canceled on SIGINT or
// SIGTERM, so an interrupted run aborts before writing output.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
