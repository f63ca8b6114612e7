package pull

import "context"

// Seq is the canonical pull-based sequence. Next produces the following
// element, or reports exhaustion with (zero, false, nil). A source may block
// inside Next waiting on an external event; blocking sources must honor ctx
// and surface its cancellation error.
//
// Once Next reports exhaustion, every later call must report exhaustion as
// well. A sequence is owned by a single consumer: at most one Next call is in
// flight at a time.
type Seq[T any] interface {
	Next(ctx context.Context) (T, bool, error)
}

// Func adapts a plain pull function to a Seq.
type Func[T any] func(ctx context.Context) (T, bool, error)

func (f Func[T]) Next(ctx context.Context) (T, bool, error) {
	return f(ctx)
}

// FromNext wraps a pull function as a Seq.
func FromNext[T any](next func(ctx context.Context) (T, bool, error)) Seq[T] {
	return Func[T](next)
}

// Empty returns an already-exhausted sequence.
func Empty[T any]() Seq[T] {
	return Func[T](func(ctx context.Context) (T, bool, error) {
		var zero T
		return zero, false, nil
	})
}

// Of returns a sequence over the given values in order.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}
