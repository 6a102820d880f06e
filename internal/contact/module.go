package contact

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/Thegreatvegan/Qura/internal/config"
)

// Module provides the contact submission pipeline.
var Module = fx.Module("contact",
	fx.Provide(
		NewForwarderFromConfig,
		NewNotifier,
		NewRateLimiterFromConfig,
		NewService,
	),
	fx.Invoke(RegisterPruneLifecycle),
)

// NewForwarderFromConfig returns the Formspree forwarder as a Forwarder.
func NewForwarderFromConfig(cfg *config.Config, log *slog.Logger) Forwarder {
	return NewFormspreeForwarder(cfg.Contact, log)
}

// NewRateLimiterFromConfig builds the per-client limiter.
func NewRateLimiterFromConfig(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Contact.RatePerMinute, cfg.Contact.Burst)
}

const pruneInterval = 10 * time.Minute

// RegisterPruneLifecycle periodically drops idle limiters while the app
// runs.
func RegisterPruneLifecycle(lc fx.Lifecycle, limiter *RateLimiter, log *slog.Logger) {
	done := make(chan struct{})
	stopped := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(stopped)
				ticker := time.NewTicker(pruneInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						if n := limiter.Prune(); n > 0 {
							log.Debug("pruned contact rate limiters", slog.Int("removed", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			select {
			case <-stopped:
			case <-ctx.Done():
			}
			return nil
		},
	})
}
