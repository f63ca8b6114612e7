package seqs

import (
	"context"

	"github.com/go-softwarelab/common/pkg/types"

	"flume/pull"
)

type pulled[T any] struct {
	v   T
	ok  bool
	err error
}

func pullInto[T any](ctx context.Context, src pull.Seq[T], out chan<- pulled[T]) {
	v, ok, err := src.Next(ctx)
	out <- pulled[T]{v: v, ok: ok, err: err}
}

// Zip pairs the two sequences element-wise. Each step issues both pulls
// before waiting on either, so independent blocking latencies overlap; the
// two results are then combined before the next step begins. The sequence
// stops as soon as either side is exhausted, discarding the element already
// drawn from the other side that step.
func Zip[L, R any](left pull.Seq[L], right pull.Seq[R]) pull.Seq[types.Pair[L, R]] {
	done := false
	return pull.Func[types.Pair[L, R]](func(ctx context.Context) (types.Pair[L, R], bool, error) {
		var zero types.Pair[L, R]
		if done {
			return zero, false, nil
		}

		lch := make(chan pulled[L], 1)
		rch := make(chan pulled[R], 1)
		go pullInto(ctx, left, lch)
		go pullInto(ctx, right, rch)
		lr := <-lch
		rr := <-rch

		if lr.err != nil {
			done = true
			return zero, false, lr.err
		}
		if rr.err != nil {
			done = true
			return zero, false, rr.err
		}
		if !lr.ok || !rr.ok {
			done = true
			return zero, false, nil
		}
		return types.Pair[L, R]{Left: lr.v, Right: rr.v}, true, nil
	})
}
