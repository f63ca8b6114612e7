package streams_test

import (
	"context"
	"testing"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flume/pull"
	"flume/streams"
)

var bg = context.Background()

func TestFrom(t *testing.T) {
	t.Run("WrappingIsIdempotent", func(t *testing.T) {
		inner := streams.Of(1, 2, 3)
		outer := streams.From[int](inner)
		assert.Same(t, inner, outer, "re-wrapping a stream must return it unchanged")
	})

	t.Run("NilSourceIsEmpty", func(t *testing.T) {
		s := streams.From[int](nil)
		got, err := s.Collect(bg)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("StreamIsAPullSeq", func(t *testing.T) {
		var src pull.Seq[int] = streams.Of(1)
		v, ok, err := src.Next(bg)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, v)
	})
}

func TestFluentChain(t *testing.T) {
	got, err := streams.Range(1, 100).
		Map(func(_ context.Context, v int) (int, error) {
			return v * v, nil
		}).
		FilterMap(func(_ context.Context, v int) (optional.Value[int], error) {
			if v%2 == 0 {
				return optional.Some(v), nil
			}
			return optional.Empty[int](), nil
		}).
		Drop(1).
		Take(3).
		Collect(bg)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 36, 64}, got)
}

func TestRangeConstructors(t *testing.T) {
	t.Run("Range", func(t *testing.T) {
		got, err := streams.Range(1, 3).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("EmptyWhenInverted", func(t *testing.T) {
		got, err := streams.Range(5, 1).Collect(bg)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("RangeFromIsUnbounded", func(t *testing.T) {
		got, err := streams.RangeFrom(10).Take(3).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 11, 12}, got)
	})

	t.Run("OverDescriptor", func(t *testing.T) {
		got, err := streams.Over(pull.Range{To: ptr(2)}).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, got)
	})
}

func ptr(v int) *int { return &v }

func TestFilterIsTerminalFind(t *testing.T) {
	// The fluent Filter searches for the first satisfying element instead of
	// producing a filtered sequence.
	calls := 0
	got, err := streams.Of(1, 2, 3, 4, 5).Filter(bg, func(_ context.Context, v int) (bool, error) {
		calls++
		return v == 2, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.MustGet())
	assert.Equal(t, 2, calls)
}

func TestTerminalMethods(t *testing.T) {
	t.Run("Fold", func(t *testing.T) {
		got, err := streams.Of(1, 2, 3).Fold(bg, 10, func(_ context.Context, acc, v int) (int, error) {
			return acc + v, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 16, got)
	})

	t.Run("Reduce", func(t *testing.T) {
		got, err := streams.Of(4, 5).Reduce(bg, func(_ context.Context, acc, v int) (int, error) {
			return acc * v, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 20, got.MustGet())
	})

	t.Run("SumMinMax", func(t *testing.T) {
		s := []int{5, 4, 2, 0, -10, 890}
		sum, err := streams.Of(s...).Sum(bg)
		require.NoError(t, err)
		assert.Equal(t, 891.0, sum)

		minV, err := streams.Of(s...).Min(bg)
		require.NoError(t, err)
		assert.Equal(t, -10.0, minV)

		maxV, err := streams.Of(s...).Max(bg)
		require.NoError(t, err)
		assert.Equal(t, 890.0, maxV)
	})

	t.Run("CountAndHead", func(t *testing.T) {
		n, err := streams.Of("a", "b").Count(bg)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		h, err := streams.Of("a", "b").Head(bg)
		require.NoError(t, err)
		assert.Equal(t, "a", h.MustGet())
	})

	t.Run("ForEachIndexed", func(t *testing.T) {
		var got []string
		err := streams.Of("x", "y").ForEachIndexed(bg, func(_ context.Context, v string, idx int) error {
			got = append(got, v)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, got)
	})
}

func TestLazyMethods(t *testing.T) {
	t.Run("CycleN", func(t *testing.T) {
		got, err := streams.Of(1, 2).CycleN(2).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 1, 2}, got)
	})

	t.Run("CycleWithTake", func(t *testing.T) {
		got, err := streams.Of(1, 2).Cycle().Take(5).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 1, 2, 1}, got)
	})

	t.Run("Concat", func(t *testing.T) {
		got, err := streams.Of(1).Concat(pull.Of(2, 3)).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("FlatMap", func(t *testing.T) {
		got, err := streams.Of(1, 2).FlatMap(func(_ context.Context, v int) (pull.Seq[int], error) {
			return pull.Of(v, -v), nil
		}).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{1, -1, 2, -2}, got)
	})

	t.Run("MapIndexed", func(t *testing.T) {
		got, err := streams.Of(10, 20).MapIndexed(func(_ context.Context, v, idx int) (int, error) {
			return v + idx, nil
		}).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []int{10, 21}, got)
	})
}

func TestTypeChangingFreeFunctions(t *testing.T) {
	t.Run("Enumerate", func(t *testing.T) {
		got, err := streams.Enumerate(streams.Of("a", "b", "c")).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []types.Pair[string, int]{
			{Left: "a", Right: 0},
			{Left: "b", Right: 1},
			{Left: "c", Right: 2},
		}, got)
	})

	t.Run("Zip", func(t *testing.T) {
		got, err := streams.Zip[int, string](streams.Of(1, 2, 3), streams.Of("a", "b")).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []types.Pair[int, string]{
			{Left: 1, Right: "a"},
			{Left: 2, Right: "b"},
		}, got)
	})

	t.Run("MapToDifferentType", func(t *testing.T) {
		got, err := streams.Map[int, bool](streams.Of(1, 2), func(_ context.Context, v int) (bool, error) {
			return v%2 == 0, nil
		}).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, []bool{false, true}, got)
	})

	t.Run("Chunk", func(t *testing.T) {
		got, err := streams.Chunk[int](streams.Of(1, 2, 3), 2).Collect(bg)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}, {3}}, got)
	})
}
