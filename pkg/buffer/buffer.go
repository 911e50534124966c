package buffer

import "errors"

var (
	ErrOutOfMemory  = errors.New("out of memory")
	ErrNegativeSize = errors.New("negative truncate size")
)

// Interface is a contiguous storage of slots which is always resized to an
// exact length. A failed Truncate must leave the storage untouched.
type Interface[T any] interface {
	Truncate(size int) error
	Get(index int) T
	Set(index int, val T)
	Size() int
}
