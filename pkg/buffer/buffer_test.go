package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualTruncate(t *testing.T) {
	vb := Virtual[int]()
	assert.Equal(t, 0, vb.Size())

	require.NoError(t, vb.Truncate(3))
	assert.Equal(t, 3, vb.Size())
	assert.Equal(t, 3, cap(vb.data))
	vb.Set(0, 1)
	vb.Set(2, 3)

	require.NoError(t, vb.Truncate(5))
	assert.Equal(t, []int{1, 0, 3, 0, 0}, vb.data)
	assert.Equal(t, 5, cap(vb.data), "no spare capacity after growth")

	require.NoError(t, vb.Truncate(2))
	assert.Equal(t, []int{1, 0}, vb.data)
	assert.Equal(t, 2, cap(vb.data), "shrink reallocates")

	require.NoError(t, vb.Truncate(0))
	assert.Nil(t, vb.data)

	assert.ErrorIs(t, vb.Truncate(-1), ErrNegativeSize)
	assert.Equal(t, 0, vb.Size())
}

func TestLimited(t *testing.T) {
	testCases := []struct {
		name     string
		maxSize  int
		initial  int
		failNext int
		size     int
		fails    bool
	}{
		{name: "unlimited grow", maxSize: 0, initial: 0, size: 100},
		{name: "grow within limit", maxSize: 4, initial: 2, size: 4},
		{name: "grow above limit", maxSize: 4, initial: 4, size: 5, fails: true},
		{name: "shrink", maxSize: 4, initial: 4, size: 1},
		{name: "injected failure on grow", initial: 1, failNext: 1, size: 2, fails: true},
		{name: "injected failure on shrink", initial: 3, failNext: 2, size: 2, fails: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lb := Limit[int](Virtual[int](), tc.maxSize)
			require.NoError(t, lb.Truncate(tc.initial))
			for i := 0; i < tc.initial; i++ {
				lb.Set(i, i+1)
			}
			lb.FailNext(tc.failNext)

			err := lb.Truncate(tc.size)
			if !tc.fails {
				require.NoError(t, err)
				assert.Equal(t, tc.size, lb.Size())
				return
			}

			assert.ErrorIs(t, err, ErrOutOfMemory)
			require.Equal(t, tc.initial, lb.Size(), "failed truncate must not touch buffer")
			for i := 0; i < tc.initial; i++ {
				assert.Equal(t, i+1, lb.Get(i))
			}
		})
	}
}

func TestLimitedResizes(t *testing.T) {
	lb := Limit[string](Virtual[string](), 2)
	assert.Equal(t, 2, lb.MaxSize())

	require.NoError(t, lb.Truncate(0))
	require.NoError(t, lb.Truncate(1))
	require.NoError(t, lb.Truncate(2))
	require.Error(t, lb.Truncate(3))
	require.NoError(t, lb.Truncate(2))
	assert.Equal(t, 2, lb.Resizes())

	lb.FailNext(1)
	require.Error(t, lb.Truncate(1))
	require.NoError(t, lb.Truncate(1))
	assert.Equal(t, 3, lb.Resizes())
}
