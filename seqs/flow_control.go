package seqs

import (
	"context"

	"flume/pull"
)

// Take yields at most n elements, then stops. n <= 0 yields an empty
// sequence. The source is never pulled more than n times.
func Take[T any](src pull.Seq[T], n int) pull.Seq[T] {
	count := 0
	return pull.Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		if count >= n {
			return zero, false, nil
		}
		v, ok, err := src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		count++
		return v, true, nil
	})
}

// Drop skips the first n elements and yields the remainder unchanged.
// n <= 0 yields the source as-is; a source shorter than n yields empty.
func Drop[T any](src pull.Seq[T], n int) pull.Seq[T] {
	skipped := 0
	return pull.Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		for skipped < n {
			_, ok, err := src.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				skipped = n
				return zero, false, nil
			}
			skipped++
		}
		return src.Next(ctx)
	})
}

// Cycle repeats the source's elements forever. The first pass pulls and
// buffers the source; every later pass replays the buffer, so the source is
// consumed exactly once. A downstream bound such as Take is required for
// termination unless the source is empty.
func Cycle[T any](src pull.Seq[T]) pull.Seq[T] {
	return cycle(src, 0, true)
}

// CycleN repeats the source's elements for the given number of passes,
// buffering exactly like Cycle. cycles <= 0 yields an empty sequence without
// pulling the source at all.
func CycleN[T any](src pull.Seq[T], cycles int) pull.Seq[T] {
	return cycle(src, cycles, false)
}

func cycle[T any](src pull.Seq[T], cycles int, unbounded bool) pull.Seq[T] {
	var cache []T
	firstPass := true
	pos := 0
	passesLeft := cycles
	return pull.Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		if !unbounded && passesLeft <= 0 {
			return zero, false, nil
		}
		for {
			if firstPass {
				v, ok, err := src.Next(ctx)
				if err != nil {
					return zero, false, err
				}
				if ok {
					cache = append(cache, v)
					return v, true, nil
				}
				firstPass = false
				passesLeft--
				if !unbounded && passesLeft <= 0 {
					return zero, false, nil
				}
			} else if pos < len(cache) {
				v := cache[pos]
				pos++
				return v, true, nil
			} else {
				// A drained empty source never replays anything.
				if len(cache) == 0 {
					return zero, false, nil
				}
				if !unbounded {
					passesLeft--
					if passesLeft <= 0 {
						return zero, false, nil
					}
				}
				pos = 0
			}
		}
	})
}
