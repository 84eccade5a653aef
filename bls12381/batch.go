package bls12381

import (
	"context"

	"github.com/f3rmion/clearh/cofactor"
)

// BatchClearG1 clears the cofactor of every point in pts in place, using
// at most workers goroutines. It returns the number of points cleared; see
// [cofactor.ClearAll] for cancellation behaviour.
func BatchClearG1(ctx context.Context, pts []G1, workers int) (int, error) {
	return cofactor.ClearAll(ctx, pts, workers, (*G1).ClearCofactor)
}

// BatchClearG2 is the G2 counterpart of [BatchClearG1].
func BatchClearG2(ctx context.Context, pts []G2, workers int) (int, error) {
	return cofactor.ClearAll(ctx, pts, workers, (*G2).ClearCofactor)
}
