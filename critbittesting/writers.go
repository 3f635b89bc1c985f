package critbittesting

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunWriters splits [0, writers*batch) into one contiguous range per writer
// and runs fn for every range concurrently. It returns the first error.
func RunWriters(ctx context.Context, writers int, batch uint64, fn func(ctx context.Context, start, end uint64) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < writers; i++ {
		start := uint64(i) * batch
		g.Go(func() error {
			return fn(ctx, start, start+batch)
		})
	}
	return g.Wait()
}
