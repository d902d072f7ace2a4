// Package reconcile implements the optimistic-update discipline shared by
// every component that mutates remote state: apply the tentative local
// change, issue the request, and on failure restore consistency with a full
// authoritative re-fetch instead of hand-computing a reverse delta.
package reconcile

import (
	"context"
	"log/slog"
)

// Policy coordinates an optimistic local mutation with its backend request.
type Policy struct {
	logger *slog.Logger
}

// NewPolicy constructs the reconciliation policy.
func NewPolicy(logger *slog.Logger) *Policy {
	return &Policy{logger: logger}
}

// Do runs one optimistic mutation. The apply step mutates local state before
// the request resolves. When the request fails, resync re-fetches
// authoritative state to discard the speculative change; the request error
// is returned either way. A failed resync is logged, never swallowed into
// the caller's error.
func (p *Policy) Do(ctx context.Context, name string, apply func(), request func(context.Context) error, resync func(context.Context) error) error {
	if apply != nil {
		apply()
	}

	err := request(ctx)
	if err == nil {
		return nil
	}

	p.logger.Warn("mutation rejected, resynchronizing",
		slog.String("action", name),
		slog.String("error", err.Error()),
	)

	if resync != nil {
		if rerr := resync(ctx); rerr != nil {
			p.logger.Error("authoritative resync failed",
				slog.String("action", name),
				slog.String("error", rerr.Error()),
			)
		}
	}

	return err
}
