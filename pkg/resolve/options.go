package resolve

import (
	"context"
	"log/slog"
)

// Observer is notified around every component invocation.
type Observer interface {
	// BeginComponent is called before the component named name runs. The
	// returned context is passed to the component; end receives its result.
	BeginComponent(ctx context.Context, name string) (context.Context, func(err error))
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, name string) (context.Context, func(err error))

// BeginComponent implements Observer.
func (f ObserverFunc) BeginComponent(ctx context.Context, name string) (context.Context, func(err error)) {
	return f(ctx, name)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConcurrency bounds how many siblings resolve at once on each level.
// Zero or a negative value means unbounded.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n < 0 {
			n = 0
		}
		r.concurrency = n
	}
}

// WithMaxDepth enables shallow resolution: components found at element depth
// n or deeper are not invoked and leave a KindComponent placeholder. Zero
// disables the limit.
func WithMaxDepth(n int) Option {
	return func(r *Resolver) {
		if n < 0 {
			n = 0
		}
		r.maxDepth = n
	}
}

// WithObserver sets the component observer.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		r.observer = o
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}
