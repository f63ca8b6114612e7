package pull

import (
	"iter"
	"reflect"

	"github.com/go-softwarelab/common/pkg/is"
)

// Runtime classification predicates for arbitrary construction input. These
// back the dynamic entry point; statically-typed call sites never need them.

// IsPull reports whether v is a pull-based sequence over any.
func IsPull(v any) bool {
	return is.Type[Seq[any]](v)
}

// IsIterable reports whether v can be iterated end-to-end: a Go iterator
// function, a slice, or an array.
func IsIterable(v any) bool {
	if is.Nil(v) {
		return false
	}
	if is.Type[iter.Seq[any]](v) {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsRangeShaped reports whether v is a range descriptor.
func IsRangeShaped(v any) bool {
	return is.Type[Range](v) || is.Type[*Range](v)
}
