package telemetry

import (
	"context"

	"github.com/vango-dev/welgo/pkg/render"
)

type multi []render.Observer

// Multi combines observers. They begin in order and end in reverse order,
// each seeing the context returned by the previous one.
func Multi(observers ...render.Observer) render.Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (m multi) BeginRender(ctx context.Context) (context.Context, func(int, error)) {
	ends := make([]func(int, error), len(m))
	for i, o := range m {
		ctx, ends[i] = o.BeginRender(ctx)
	}
	return ctx, func(bytes int, err error) {
		for i := len(ends) - 1; i >= 0; i-- {
			ends[i](bytes, err)
		}
	}
}

func (m multi) BeginComponent(ctx context.Context, name string) (context.Context, func(error)) {
	ends := make([]func(error), len(m))
	for i, o := range m {
		ctx, ends[i] = o.BeginComponent(ctx, name)
	}
	return ctx, func(err error) {
		for i := len(ends) - 1; i >= 0; i-- {
			ends[i](err)
		}
	}
}
