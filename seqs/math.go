package seqs

import (
	"context"
	"fmt"

	"flume/pull"
)

var (
	// ErrNonNumeric is reported by Sum, Min and Max the moment a non-numeric
	// element is pulled. The whole call fails; partial accumulation is
	// discarded.
	ErrNonNumeric = fmt.Errorf("non-numeric element")
)

// asNumber coerces any numeric element to float64.
func asNumber(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrNonNumeric, v)
	}
}

func foldNumeric[T any](ctx context.Context, src pull.Seq[T], identity float64, combine func(acc, n float64) float64) (float64, error) {
	acc := identity
	for {
		v, ok, err := src.Next(ctx)
		if err != nil {
			return 0, err
		}
		if !ok {
			return acc, nil
		}
		n, err := asNumber(any(v))
		if err != nil {
			return 0, err
		}
		acc = combine(acc, n)
	}
}

// Sum folds the sequence into its arithmetic sum, starting from 0.
// Any non-numeric element fails the call with ErrNonNumeric.
func Sum[T any](ctx context.Context, src pull.Seq[T]) (float64, error) {
	return foldNumeric(ctx, src, 0, func(acc, n float64) float64 {
		return acc + n
	})
}

// Min folds the sequence into its minimum; an empty sequence resolves to
// pull.MaxSafe. Any non-numeric element fails the call with ErrNonNumeric.
func Min[T any](ctx context.Context, src pull.Seq[T]) (float64, error) {
	return foldNumeric(ctx, src, float64(pull.MaxSafe), func(acc, n float64) float64 {
		if n < acc {
			return n
		}
		return acc
	})
}

// Max folds the sequence into its maximum; an empty sequence resolves to
// -pull.MaxSafe. Any non-numeric element fails the call with ErrNonNumeric.
func Max[T any](ctx context.Context, src pull.Seq[T]) (float64, error) {
	return foldNumeric(ctx, src, -float64(pull.MaxSafe), func(acc, n float64) float64 {
		if n > acc {
			return n
		}
		return acc
	})
}
