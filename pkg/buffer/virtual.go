package buffer

func Virtual[T any]() *VirtualBuffer[T] {
	return &VirtualBuffer[T]{}
}

// VirtualBuffer is in-memory buffer. Every Truncate reallocates backing
// slice to exactly requested size, there is no spare capacity.
type VirtualBuffer[T any] struct {
	data []T
}

func (vb *VirtualBuffer[T]) Size() int {
	return len(vb.data)
}

func (vb *VirtualBuffer[T]) Truncate(size int) error {
	if size < 0 {
		return ErrNegativeSize
	} else if size == len(vb.data) {
		return nil
	} else if size == 0 {
		vb.data = nil
		return nil
	}

	data := make([]T, size)
	copy(data, vb.data)
	vb.data = data
	return nil
}

func (vb *VirtualBuffer[T]) Get(index int) T {
	return vb.data[index]
}

func (vb *VirtualBuffer[T]) Set(index int, val T) {
	vb.data[index] = val
}
