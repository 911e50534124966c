package buffer

import "fmt"

// Limit wraps buf and makes it fail like a real allocator would:
// growing above maxSize returns ErrOutOfMemory. maxSize <= 0 means no limit.
func Limit[T any](buf Interface[T], maxSize int) *LimitedBuffer[T] {
	return &LimitedBuffer[T]{
		buf:     buf,
		maxSize: maxSize,
	}
}

type LimitedBuffer[T any] struct {
	buf      Interface[T]
	maxSize  int
	failNext int
	resizes  int
}

// FailNext makes next n calls to Truncate fail regardless of requested size.
func (lb *LimitedBuffer[T]) FailNext(n int) {
	lb.failNext = n
}

// Resizes returns count of successful Truncate calls that changed size.
func (lb *LimitedBuffer[T]) Resizes() int {
	return lb.resizes
}

func (lb *LimitedBuffer[T]) MaxSize() int {
	return lb.maxSize
}

func (lb *LimitedBuffer[T]) Truncate(size int) error {
	if lb.failNext > 0 {
		lb.failNext--
		return fmt.Errorf("%w: injected failure resizing to %d", ErrOutOfMemory, size)
	}
	if lb.maxSize > 0 && size > lb.maxSize && size > lb.buf.Size() {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrOutOfMemory, size, lb.maxSize)
	}

	prev := lb.buf.Size()
	if err := lb.buf.Truncate(size); err != nil {
		return err
	}
	if prev != size {
		lb.resizes++
	}
	return nil
}

func (lb *LimitedBuffer[T]) Get(index int) T {
	return lb.buf.Get(index)
}

func (lb *LimitedBuffer[T]) Set(index int, val T) {
	lb.buf.Set(index, val)
}

func (lb *LimitedBuffer[T]) Size() int {
	return lb.buf.Size()
}
