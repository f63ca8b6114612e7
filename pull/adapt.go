package pull

import (
	"context"
	"iter"
)

// FromSlice adapts a finite slice into a canonical sequence. Each Next checks
// ctx before yielding, so a consumer cancelling mid-iteration observes the
// cancellation instead of the next element.
func FromSlice[T any](values []T) Seq[T] {
	idx := 0
	return Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}
		if idx >= len(values) {
			return zero, false, nil
		}
		v := values[idx]
		idx++
		return v, true, nil
	})
}

// FromSeq adapts a Go iterator into a canonical sequence, yielding one
// element per Next. The iterator is not started until the first Next, and is
// stopped as soon as exhaustion is observed.
func FromSeq[T any](seq iter.Seq[T]) Seq[T] {
	var next func() (T, bool)
	var stop func()
	done := false
	return Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}
		if done {
			return zero, false, nil
		}
		if next == nil {
			next, stop = iter.Pull(seq)
		}
		v, ok := next()
		if !ok {
			done = true
			stop()
			return zero, false, nil
		}
		return v, true, nil
	})
}

// FromSeq2 adapts a two-valued Go iterator, pairing each key with its value
// through the given combine function.
func FromSeq2[K, V, T any](seq iter.Seq2[K, V], combine func(K, V) T) Seq[T] {
	return FromSeq(func(yield func(T) bool) {
		for k, v := range seq {
			if !yield(combine(k, v)) {
				return
			}
		}
	})
}

// FromChan adapts a channel-fed producer into a canonical sequence. Next
// blocks until a value arrives, the channel is closed, or ctx is done.
func FromChan[T any](ch <-chan T) Seq[T] {
	done := false
	return Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		if done {
			return zero, false, nil
		}
		select {
		case v, ok := <-ch:
			if !ok {
				done = true
				return zero, false, nil
			}
			return v, true, nil
		case <-ctx.Done():
			return zero, false, ctx.Err()
		}
	})
}
