package parallel

import "context"

// Ordered computes produce(i) for every i in [0, n) on the pool and passes
// the results to emit in ascending index order. Work is scheduled in
// batches of the given size so at most one batch of results is held in
// memory; a batch ≤ 0 uses twice the worker count.
//
// The first error from produce or emit stops scheduling further batches
// and is returned. Cancellation of ctx is checked between batches and
// before each emit.
func Ordered[T any](ctx context.Context, p *WorkerPool, n, batch int,
	produce func(i int) (T, error), emit func(i int, v T) error,
) error {
	if batch <= 0 {
		batch = p.Workers() * 2
	}

	results := make([]T, batch)
	errs := make([]error, batch)

	for start := 0; start < n; start += batch {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+batch, n)
		work := make([]func(), 0, end-start)
		for i := start; i < end; i++ {
			slot := i - start
			work = append(work, func() {
				results[slot], errs[slot] = produce(i)
			})
		}

		if p.IsRunning() {
			if err := p.ExecuteAll(work); err != nil {
				return err
			}
		} else {
			runInline(work)
		}

		for i := start; i < end; i++ {
			slot := i - start
			if errs[slot] != nil {
				return errs[slot]
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(i, results[slot]); err != nil {
				return err
			}
			var zero T
			results[slot] = zero
		}
	}
	return nil
}

// runInline executes work sequentially on the calling goroutine.
func runInline(work []func()) {
	for _, fn := range work {
		fn()
	}
}
