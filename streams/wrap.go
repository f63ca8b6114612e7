package streams

import (
	"context"
	"fmt"
	"iter"
	"reflect"

	"github.com/go-softwarelab/common/pkg/is"

	"flume/pull"
)

var (
	// ErrBadSource is reported by Wrap when the input matches none of the
	// recognized source shapes.
	ErrBadSource = fmt.Errorf("source is neither a sequence, an iterable, nor a range descriptor")
)

// Wrap classifies an arbitrary value and wraps it into a Stream. It accepts,
// in order of precedence: an already-wrapped Stream (returned unchanged), a
// pull sequence, a range descriptor, a Go iterator, or a slice/array.
// Anything else fails with ErrBadSource.
//
// Wrap exists for call sites whose source shape is only known at runtime;
// statically-typed code should use Of, From, FromSeq or Range directly.
func Wrap(source any) (*Stream[any], error) {
	switch {
	case is.Nil(source):
		return nil, fmt.Errorf("%w: got nil", ErrBadSource)
	case is.Type[*Stream[any]](source):
		return source.(*Stream[any]), nil
	case pull.IsPull(source):
		return From(source.(pull.Seq[any])), nil
	case pull.IsRangeShaped(source):
		return Over(asRange(source)).asAny(), nil
	case is.Type[iter.Seq[any]](source):
		return FromSeq(source.(iter.Seq[any])), nil
	case pull.IsIterable(source):
		return Of(reflectValues(source)...), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrBadSource, source)
	}
}

func asRange(source any) pull.Range {
	if r, ok := source.(*pull.Range); ok {
		return *r
	}
	return source.(pull.Range)
}

// reflectValues copies a slice or array of unknown element type into []any.
func reflectValues(source any) []any {
	rv := reflect.ValueOf(source)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// asAny re-types a Stream's elements for the dynamic entry point.
func (s *Stream[T]) asAny() *Stream[any] {
	return Map(s, func(_ context.Context, v T) (any, error) {
		return v, nil
	})
}
