package seqs

import (
	"context"

	"github.com/go-softwarelab/common/pkg/types"

	"flume/pull"
)

// Map applies transform to each element of src in order. The transform may
// block; its error aborts consumption.
func Map[T, R any](src pull.Seq[T], transform func(ctx context.Context, v T) (R, error)) pull.Seq[R] {
	return pull.Func[R](func(ctx context.Context) (R, bool, error) {
		var zero R
		v, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		r, err := transform(ctx, v)
		if err != nil {
			return zero, false, err
		}
		return r, true, nil
	})
}

// MapIndexed is Map with the element's position (starting at 0) passed to
// the transform.
func MapIndexed[T, R any](src pull.Seq[T], transform func(ctx context.Context, v T, idx int) (R, error)) pull.Seq[R] {
	idx := 0
	return pull.Func[R](func(ctx context.Context) (R, bool, error) {
		var zero R
		v, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		r, err := transform(ctx, v, idx)
		if err != nil {
			return zero, false, err
		}
		idx++
		return r, true, nil
	})
}

// FlatMap maps each element to a nested sequence and yields the nested
// elements in order, one level deep. The next outer element is not pulled
// until the current nested sequence is exhausted.
func FlatMap[T, R any](src pull.Seq[T], transform func(ctx context.Context, v T) (pull.Seq[R], error)) pull.Seq[R] {
	var inner pull.Seq[R]
	return pull.Func[R](func(ctx context.Context) (R, bool, error) {
		var zero R
		for {
			if inner != nil {
				r, ok, err := inner.Next(ctx)
				if err != nil {
					return zero, false, err
				}
				if ok {
					return r, true, nil
				}
				inner = nil
			}
			v, ok, err := src.Next(ctx)
			if err != nil || !ok {
				return zero, false, err
			}
			inner, err = transform(ctx, v)
			if err != nil {
				return zero, false, err
			}
			if inner == nil {
				inner = pull.Empty[R]()
			}
		}
	})
}

// Enumerate yields (value, index) pairs; the index starts at 0 and counts
// every yielded element regardless of upstream skipping.
func Enumerate[T any](src pull.Seq[T]) pull.Seq[types.Pair[T, int]] {
	idx := 0
	return pull.Func[types.Pair[T, int]](func(ctx context.Context) (types.Pair[T, int], bool, error) {
		v, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return types.Pair[T, int]{}, false, err
		}
		p := types.Pair[T, int]{Left: v, Right: idx}
		idx++
		return p, true, nil
	})
}

// Concat yields all elements of each sequence in turn.
func Concat[T any](sources ...pull.Seq[T]) pull.Seq[T] {
	cur := 0
	return pull.Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		for cur < len(sources) {
			v, ok, err := sources[cur].Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if ok {
				return v, true, nil
			}
			cur++
		}
		return zero, false, nil
	})
}

// Chunk groups elements into slices of the given size; the last chunk may be
// smaller. size <= 0 yields an empty sequence.
func Chunk[T any](src pull.Seq[T], size int) pull.Seq[[]T] {
	done := false
	return pull.Func[[]T](func(ctx context.Context) ([]T, bool, error) {
		if done || size <= 0 {
			return nil, false, nil
		}
		batch := make([]T, 0, size)
		for len(batch) < size {
			v, ok, err := src.Next(ctx)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				done = true
				break
			}
			batch = append(batch, v)
		}
		if len(batch) == 0 {
			return nil, false, nil
		}
		return batch, true, nil
	})
}
