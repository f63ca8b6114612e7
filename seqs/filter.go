package seqs

import (
	"context"

	"github.com/go-softwarelab/common/pkg/optional"

	"flume/pull"
)

// FilterMap applies an optional-producing transform to each element.
// Elements mapping to an empty optional are dropped; the rest are yielded as
// the transformed value, order preserved.
func FilterMap[T, R any](src pull.Seq[T], transform func(ctx context.Context, v T) (optional.Value[R], error)) pull.Seq[R] {
	return pull.Func[R](func(ctx context.Context) (R, bool, error) {
		var zero R
		for {
			v, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}
			opt, err := transform(ctx, v)
			if err != nil {
				return zero, false, err
			}
			if opt.IsPresent() {
				return opt.MustGet(), true, nil
			}
		}
	})
}

// FilterMapIndexed is FilterMap with the element's position passed to the
// transform. The index counts source elements, not surviving ones.
func FilterMapIndexed[T, R any](src pull.Seq[T], transform func(ctx context.Context, v T, idx int) (optional.Value[R], error)) pull.Seq[R] {
	idx := 0
	return pull.Func[R](func(ctx context.Context) (R, bool, error) {
		var zero R
		for {
			v, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}
			opt, err := transform(ctx, v, idx)
			idx++
			if err != nil {
				return zero, false, err
			}
			if opt.IsPresent() {
				return opt.MustGet(), true, nil
			}
		}
	})
}

// FindMap pulls elements until the transform produces a present optional and
// returns that value. The source is not pulled past the first match. An
// exhausted source resolves to an empty optional, not an error.
func FindMap[T, R any](ctx context.Context, src pull.Seq[T], transform func(ctx context.Context, v T) (optional.Value[R], error)) (optional.Value[R], error) {
	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return optional.Empty[R](), err
		}
		if !ok {
			return optional.Empty[R](), nil
		}
		opt, err := transform(ctx, v)
		if err != nil {
			return optional.Empty[R](), err
		}
		if opt.IsPresent() {
			return opt, nil
		}
	}
}

// Find pulls elements until the predicate is satisfied and returns that
// element. An exhausted source resolves to an empty optional.
//
// This is the predicate form behind the fluent surface's Filter method; see
// the package documentation for the naming note.
func Find[T any](ctx context.Context, src pull.Seq[T], predicate func(ctx context.Context, v T) (bool, error)) (optional.Value[T], error) {
	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return optional.Empty[T](), err
		}
		if !ok {
			return optional.Empty[T](), nil
		}
		hit, err := predicate(ctx, v)
		if err != nil {
			return optional.Empty[T](), err
		}
		if hit {
			return optional.Some(v), nil
		}
	}
}
