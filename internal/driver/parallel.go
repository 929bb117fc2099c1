package driver

import (
	"context"
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"vinculum/internal/numeral"
	"vinculum/internal/trace"
)

// ConvertAll converts inputs concurrently with at most jobs workers (0 means
// GOMAXPROCS). Results keep the input order and carry their own errors; the
// returned error is only set for a negative jobs count or a cancelled ctx.
func ConvertAll(ctx context.Context, codec numeral.Codec, inputs []string, jobs int) ([]Result, error) {
	workers, err := Workers(jobs)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeCommand, "batch", trace.ParentFrom(ctx))
	defer span.End("")
	ctx = trace.WithParent(ctx, span.ID())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(inputs)))
	for i, in := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// each goroutine owns results[i]
			results[i] = Convert(gctx, codec, in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Workers resolves a requested worker count. Zero means GOMAXPROCS and
// negative counts are rejected.
func Workers(jobs int) (int, error) {
	n, err := safecast.Conv[uint](jobs)
	if err != nil {
		return 0, fmt.Errorf("invalid job count %d: %w", jobs, err)
	}
	if n == 0 {
		return runtime.GOMAXPROCS(0), nil
	}
	return jobs, nil
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil || r.Error != "" {
			n++
		}
	}
	return n
}
