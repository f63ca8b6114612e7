// Package streams exposes the fluent surface of the library: a Stream wraps
// one canonical pull sequence and offers every operator of package seqs as a
// chainable method. Lazy methods wrap their result into a new Stream; terminal
// methods drive the chain and return the resolved value.
//
// A Stream itself implements pull.Seq, so it is accepted anywhere a plain
// sequence is. Wrapping is idempotent: passing a Stream to From returns it
// unchanged rather than stacking a second wrapper.
package streams

import (
	"context"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/types"

	"flume/pull"
	"flume/seqs"
)

// Stream is an enhanced handle around exactly one canonical sequence.
type Stream[T any] struct {
	src pull.Seq[T]
}

// From wraps a canonical sequence. An already-wrapped Stream is returned
// unchanged; a nil source yields an empty Stream.
func From[T any](src pull.Seq[T]) *Stream[T] {
	if s, ok := src.(*Stream[T]); ok && s != nil {
		return s
	}
	if src == nil {
		src = pull.Empty[T]()
	}
	return &Stream[T]{src: src}
}

// Of builds a Stream over the given values.
func Of[T any](values ...T) *Stream[T] {
	return From(pull.FromSlice(values))
}

// FromSeq builds a Stream over a Go iterator.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	return From(pull.FromSeq(seq))
}

// FromChan builds a Stream over a channel-fed producer.
func FromChan[T any](ch <-chan T) *Stream[T] {
	return From(pull.FromChan(ch))
}

// Range builds a Stream counting every integer in [from, to].
func Range(from, to int) *Stream[int] {
	return From(pull.Counter(from, to))
}

// RangeFrom builds a Stream counting from the given value up to
// pull.MaxSafe.
func RangeFrom(from int) *Stream[int] {
	return Range(from, pull.MaxSafe)
}

// Over resolves a range descriptor into its counting Stream.
func Over(r pull.Range) *Stream[int] {
	return From(pull.FromRange(r))
}

// Next implements pull.Seq by forwarding to the wrapped sequence.
func (s *Stream[T]) Next(ctx context.Context) (T, bool, error) {
	return s.src.Next(ctx)
}

// ---- lazy methods ----

// Map applies a type-preserving transform to each element. For a
// type-changing transform use the free function Map.
func (s *Stream[T]) Map(transform func(ctx context.Context, v T) (T, error)) *Stream[T] {
	return From(seqs.Map(s.src, transform))
}

// MapIndexed is Map with the element's position passed to the transform.
func (s *Stream[T]) MapIndexed(transform func(ctx context.Context, v T, idx int) (T, error)) *Stream[T] {
	return From(seqs.MapIndexed(s.src, transform))
}

// FilterMap keeps the elements for which the transform produces a present
// optional, replacing them with the carried value.
func (s *Stream[T]) FilterMap(transform func(ctx context.Context, v T) (optional.Value[T], error)) *Stream[T] {
	return From(seqs.FilterMap(s.src, transform))
}

// FilterMapIndexed is FilterMap with the element's position passed to the
// transform.
func (s *Stream[T]) FilterMapIndexed(transform func(ctx context.Context, v T, idx int) (optional.Value[T], error)) *Stream[T] {
	return From(seqs.FilterMapIndexed(s.src, transform))
}

// FlatMap maps each element to a nested sequence and flattens one level.
func (s *Stream[T]) FlatMap(transform func(ctx context.Context, v T) (pull.Seq[T], error)) *Stream[T] {
	return From(seqs.FlatMap(s.src, transform))
}

// Take bounds the Stream to at most n elements.
func (s *Stream[T]) Take(n int) *Stream[T] {
	return From(seqs.Take(s.src, n))
}

// Drop skips the first n elements.
func (s *Stream[T]) Drop(n int) *Stream[T] {
	return From(seqs.Drop(s.src, n))
}

// Cycle repeats the Stream's elements forever, buffering one pass.
func (s *Stream[T]) Cycle() *Stream[T] {
	return From(seqs.Cycle(s.src))
}

// CycleN repeats the Stream's elements for the given number of passes.
func (s *Stream[T]) CycleN(cycles int) *Stream[T] {
	return From(seqs.CycleN(s.src, cycles))
}

// Concat appends the given sequences after this Stream's elements.
func (s *Stream[T]) Concat(more ...pull.Seq[T]) *Stream[T] {
	sources := append([]pull.Seq[T]{s.src}, more...)
	return From(seqs.Concat(sources...))
}

// ---- terminal methods ----

// Filter searches for the first element satisfying the predicate. Despite
// the name it is terminal: sequence-producing filtering is FilterMap. The
// naming is a deliberate part of the public surface.
func (s *Stream[T]) Filter(ctx context.Context, predicate func(ctx context.Context, v T) (bool, error)) (optional.Value[T], error) {
	return seqs.Find(ctx, s.src, predicate)
}

// FindMap returns the first present optional produced by the transform,
// without pulling past the match.
func (s *Stream[T]) FindMap(ctx context.Context, transform func(ctx context.Context, v T) (optional.Value[T], error)) (optional.Value[T], error) {
	return seqs.FindMap(ctx, s.src, transform)
}

// Collect drains the Stream into a slice.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	return seqs.Collect(ctx, s.src)
}

// ToSlice is an alias of Collect.
func (s *Stream[T]) ToSlice(ctx context.Context) ([]T, error) {
	return seqs.ToSlice(ctx, s.src)
}

// Fold accumulates left-to-right from the seed.
func (s *Stream[T]) Fold(ctx context.Context, seed T, combine func(ctx context.Context, acc T, v T) (T, error)) (T, error) {
	return seqs.Fold(ctx, s.src, seed, combine)
}

// Reduce folds with the first element as the seed; empty Streams resolve to
// an empty optional.
func (s *Stream[T]) Reduce(ctx context.Context, combine func(ctx context.Context, acc T, v T) (T, error)) (optional.Value[T], error) {
	return seqs.Reduce(ctx, s.src, combine)
}

// ForEach awaits the callback once per element, in order.
func (s *Stream[T]) ForEach(ctx context.Context, visit func(ctx context.Context, v T) error) error {
	return seqs.ForEach(ctx, s.src, visit)
}

// ForEachIndexed is ForEach with the element's position passed to the
// callback.
func (s *Stream[T]) ForEachIndexed(ctx context.Context, visit func(ctx context.Context, v T, idx int) error) error {
	return seqs.ForEachIndexed(ctx, s.src, visit)
}

// Sum drains the Stream into its arithmetic sum; non-numeric elements fail
// with seqs.ErrNonNumeric.
func (s *Stream[T]) Sum(ctx context.Context) (float64, error) {
	return seqs.Sum(ctx, s.src)
}

// Min drains the Stream into its minimum.
func (s *Stream[T]) Min(ctx context.Context) (float64, error) {
	return seqs.Min(ctx, s.src)
}

// Max drains the Stream into its maximum.
func (s *Stream[T]) Max(ctx context.Context) (float64, error) {
	return seqs.Max(ctx, s.src)
}

// Count drains the Stream and reports its length.
func (s *Stream[T]) Count(ctx context.Context) (int, error) {
	return seqs.Count(ctx, s.src)
}

// Head returns the first element without pulling past it.
func (s *Stream[T]) Head(ctx context.Context) (optional.Value[T], error) {
	return seqs.Head(ctx, s.src)
}

// ---- type-changing free functions ----
// Go methods cannot introduce new type parameters, so the operators whose
// element type changes are mirrored here, re-wrapping their result.

// Map applies a type-changing transform and wraps the result.
func Map[T, R any](s pull.Seq[T], transform func(ctx context.Context, v T) (R, error)) *Stream[R] {
	return From(seqs.Map(s, transform))
}

// FilterMap applies a type-changing filtering transform and wraps the
// result.
func FilterMap[T, R any](s pull.Seq[T], transform func(ctx context.Context, v T) (optional.Value[R], error)) *Stream[R] {
	return From(seqs.FilterMap(s, transform))
}

// FlatMap flattens a type-changing nested mapping and wraps the result.
func FlatMap[T, R any](s pull.Seq[T], transform func(ctx context.Context, v T) (pull.Seq[R], error)) *Stream[R] {
	return From(seqs.FlatMap(s, transform))
}

// Enumerate wraps the (value, index) pairing of the sequence.
func Enumerate[T any](s pull.Seq[T]) *Stream[types.Pair[T, int]] {
	return From(seqs.Enumerate(s))
}

// Zip pairs two sequences element-wise and wraps the result; either side may
// be a Stream or a plain sequence.
func Zip[L, R any](left pull.Seq[L], right pull.Seq[R]) *Stream[types.Pair[L, R]] {
	return From(seqs.Zip(left, right))
}

// Chunk wraps the size-bounded grouping of the sequence.
func Chunk[T any](s pull.Seq[T], size int) *Stream[[]T] {
	return From(seqs.Chunk(s, size))
}

// Fold accumulates into a different type than the element type.
func Fold[T, A any](ctx context.Context, s pull.Seq[T], seed A, combine func(ctx context.Context, acc A, v T) (A, error)) (A, error) {
	return seqs.Fold(ctx, s, seed, combine)
}

// FindMap returns the first present optional of a type-changing search.
func FindMap[T, R any](ctx context.Context, s pull.Seq[T], transform func(ctx context.Context, v T) (optional.Value[R], error)) (optional.Value[R], error) {
	return seqs.FindMap(ctx, s, transform)
}
