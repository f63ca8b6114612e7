package seqs

import (
	"context"

	"github.com/go-softwarelab/common/pkg/optional"

	"flume/pull"
)

// Collect pulls the entire sequence into a slice, preserving order.
func Collect[T any](ctx context.Context, src pull.Seq[T]) ([]T, error) {
	var out []T
	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// ToSlice is an alias of Collect.
func ToSlice[T any](ctx context.Context, src pull.Seq[T]) ([]T, error) {
	return Collect(ctx, src)
}

// Fold accumulates left-to-right from the given seed, awaiting the combiner
// once per element. An empty sequence resolves to the seed unchanged.
func Fold[T, A any](ctx context.Context, src pull.Seq[T], seed A, combine func(ctx context.Context, acc A, v T) (A, error)) (A, error) {
	acc := seed
	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc, err = combine(ctx, acc, v)
		if err != nil {
			return acc, err
		}
	}
}

// Reduce is Fold seeded from the first element; the combiner runs on the
// remaining ones. An empty sequence resolves to an empty optional, and a
// single-element sequence resolves to that element without invoking the
// combiner.
func Reduce[T any](ctx context.Context, src pull.Seq[T], combine func(ctx context.Context, acc T, v T) (T, error)) (optional.Value[T], error) {
	seed, ok, err := src.Next(ctx)
	if err != nil {
		return optional.Empty[T](), err
	}
	if !ok {
		return optional.Empty[T](), nil
	}
	acc, err := Fold(ctx, src, seed, combine)
	if err != nil {
		return optional.Empty[T](), err
	}
	return optional.Some(acc), nil
}

// ForEach drives the sequence to completion, awaiting the callback once per
// element in order. It resolves only after every element has been visited.
func ForEach[T any](ctx context.Context, src pull.Seq[T], visit func(ctx context.Context, v T) error) error {
	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := visit(ctx, v); err != nil {
			return err
		}
	}
}

// ForEachIndexed is ForEach with the element's position passed to the
// callback.
func ForEachIndexed[T any](ctx context.Context, src pull.Seq[T], visit func(ctx context.Context, v T, idx int) error) error {
	idx := 0
	return ForEach(ctx, src, func(ctx context.Context, v T) error {
		err := visit(ctx, v, idx)
		idx++
		return err
	})
}

// Count drains the sequence and reports how many elements it produced.
func Count[T any](ctx context.Context, src pull.Seq[T]) (int, error) {
	count := 0
	for {
		_, ok, err := src.Next(ctx)
		if err != nil {
			return 0, err
		}
		if !ok {
			return count, nil
		}
		count++
	}
}

// Head returns the first element, or an empty optional for an empty
// sequence. Nothing past the first element is pulled.
func Head[T any](ctx context.Context, src pull.Seq[T]) (optional.Value[T], error) {
	v, ok, err := src.Next(ctx)
	if err != nil {
		return optional.Empty[T](), err
	}
	if !ok {
		return optional.Empty[T](), nil
	}
	return optional.Some(v), nil
}
