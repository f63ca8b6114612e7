package pull

import (
	"context"
	"fmt"
	"math/bits"
	"sync"
)

var (
	ErrBufferClosed = fmt.Errorf("buffer is closed")
)

const defaultBufferCapacity = 16

type bufferConfig struct {
	capacity int
	limit    int
}

type BufferOption func(*bufferConfig)

// WithCapacity sets the initial ring capacity.
func WithCapacity(capacity int) BufferOption {
	return func(c *bufferConfig) {
		if capacity < 1 {
			capacity = 1
		}
		c.capacity = capacity
	}
}

// WithLimit bounds the number of buffered elements; producers block once the
// limit is reached. If limit <= 0 the buffer is unbounded.
func WithLimit(limit int) BufferOption {
	return func(c *bufferConfig) {
		c.limit = limit
	}
}

// Buffer bridges a concurrent producer to a canonical sequence. Producers
// call Push and finally Close; the single consumer drains it through Next,
// which blocks until a value arrives, the buffer is closed, or ctx is done.
//
// Values are delivered in FIFO order over an internal ring. After Close, Next
// drains the remaining values and then reports exhaustion.
type Buffer[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	buf  []T // ring storage, length is a power of two
	head int
	size int
	mask int

	limit  int
	closed bool
}

// NewBuffer creates a Buffer with the given options.
func NewBuffer[T any](opts ...BufferOption) *Buffer[T] {
	cfg := bufferConfig{capacity: defaultBufferCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	capacity := 1 << uint(bits.Len(uint(cfg.capacity-1)))
	if capacity < 1 {
		capacity = 1
	}

	b := &Buffer[T]{
		buf:   make([]T, capacity),
		mask:  capacity - 1,
		limit: cfg.limit,
	}
	b.notEmpty = sync.NewCond(&b.mu)
	b.notFull = sync.NewCond(&b.mu)
	return b
}

// Push appends a value, blocking while the buffer is at its limit.
// Returns ErrBufferClosed if the buffer has been closed.
func (b *Buffer[T]) Push(value T) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBufferClosed
	}
	for b.limit > 0 && b.size >= b.limit {
		b.notFull.Wait()
		if b.closed {
			return ErrBufferClosed
		}
	}
	b.enqueue(value)
	b.notEmpty.Signal()
	return nil
}

// TryPush appends a value without blocking. It reports false when the buffer
// is at its limit.
func (b *Buffer[T]) TryPush(value T) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false, ErrBufferClosed
	}
	if b.limit > 0 && b.size >= b.limit {
		return false, nil
	}
	b.enqueue(value)
	b.notEmpty.Signal()
	return true, nil
}

// Next implements Seq. It blocks until a value is available, the buffer is
// closed and drained, or ctx is done.
func (b *Buffer[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	// Wake the cond-wait below when the context fires.
	stop := context.AfterFunc(ctx, func() {
		b.mu.Lock()
		b.notEmpty.Broadcast()
		b.mu.Unlock()
	})
	defer stop()

	b.mu.Lock()
	defer b.mu.Unlock()
	for b.size == 0 {
		if b.closed {
			return zero, false, nil
		}
		if err := ctx.Err(); err != nil {
			return zero, false, err
		}
		b.notEmpty.Wait()
	}
	v := b.dequeue()
	if b.limit > 0 {
		b.notFull.Signal()
	}
	return v, true, nil
}

// Len reports the number of buffered elements.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Close stops accepting values and wakes all waiters. Buffered values remain
// consumable.
func (b *Buffer[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.notFull.Broadcast()
	b.notEmpty.Broadcast()
}

func (b *Buffer[T]) enqueue(value T) {
	if b.size == len(b.buf) {
		b.grow()
	}
	b.buf[(b.head+b.size)&b.mask] = value
	b.size++
}

func (b *Buffer[T]) dequeue() T {
	v := b.buf[b.head]
	var zero T
	b.buf[b.head] = zero
	b.head = (b.head + 1) & b.mask
	b.size--
	return v
}

func (b *Buffer[T]) grow() {
	newBuf := make([]T, len(b.buf)*2)
	if b.head+b.size <= len(b.buf) {
		copy(newBuf, b.buf[b.head:b.head+b.size])
	} else {
		n := copy(newBuf, b.buf[b.head:])
		copy(newBuf[n:], b.buf[:(b.head+b.size)&b.mask])
	}
	b.buf = newBuf
	b.head = 0
	b.mask = len(newBuf) - 1
}
