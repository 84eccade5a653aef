package cofactor

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrWorkers is returned by [ClearAll] when the worker count is not positive.
var ErrWorkers = errors.New("worker count must be at least 1")

// ClearAll replaces every element of pts with f(pts[i]), running at most
// workers calls at a time. f is typically an instantiation of [ClearG1]
// or [ClearG2], or a ClearCofactor method expression such as
// (*bls12381.G1).ClearCofactor.
//
// Points are scheduled in order and every scheduled point is cleared to
// completion. ClearAll returns the number n of cleared points: pts[:n]
// hold cleared points and pts[n:] are untouched. Clearing is not
// idempotent, so a retry must only be given pts[n:].
//
// The error is ctx.Err() if ctx was cancelled before all points were
// scheduled, and nil otherwise, even if ctx is cancelled afterwards.
func ClearAll[E any](ctx context.Context, pts []E, workers int, f func(out, in *E) *E) (int, error) {
	if workers < 1 {
		return 0, ErrWorkers
	}

	var g errgroup.Group
	g.SetLimit(workers)
	n := 0
	for i := range pts {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			f(&pts[i], &pts[i])
			return nil
		})
		n++
	}
	// The goroutines never fail.
	_ = g.Wait()

	if n < len(pts) {
		return n, ctx.Err()
	}
	return n, nil
}
