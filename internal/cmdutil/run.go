package cmdutil

import (
	"context"

	"dnarle/internal/pipeline"
)

type visited[T any] struct {
	keep bool
	out  T
}

// RunStream walks every input, applies visit (concurrently when
// cfg.Threads > 1), and streams kept results via send in input order.
//
// A visit error is passed to onErr, which may swallow it by returning nil;
// with a nil onErr the first error stops the run. onErr and send are never
// called concurrently. It returns the number of kept outputs.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	visit func(pipeline.Input) (bool, T, error),
	onErr func(pipeline.Input, error) error,
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachResult(ctx, cfg,
		func(in pipeline.Input) (visited[T], error) {
			keep, out, err := visit(in)
			return visited[T]{keep: keep, out: out}, err
		},
		func(in pipeline.Input, v visited[T], vErr error) error {
			if vErr != nil {
				if onErr == nil {
					return vErr
				}
				return onErr(in, vErr)
			}
			if !v.keep {
				return nil
			}
			if err := send(v.out); err != nil {
				return err
			}
			total++
			return nil
		},
	)
	return total, err
}
