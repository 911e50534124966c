package stack

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"ownedstack/pkg/buffer"
)

var (
	ErrEmptyStack      = errors.New("empty stack")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAllocation      = errors.New("allocation failed")
	ErrCopy            = errors.New("element copy failed")
)

// Funcs binds stack to element type. Stack never looks inside elements,
// everything it does with them goes through these functions.
type Funcs[T any] struct {
	// releases resources owned by elem
	Destroy func(elem *T) error

	// returns independent deep copy of elem
	Copy func(elem *T) (*T, error)

	// writes single element record to w, returns count of written characters
	Print func(w io.Writer, elem *T) (int, error)
}

// Stack owns every element pushed into it. Push stores a copy of the
// argument, Pop hands element over to caller, Peek returns a copy.
// Backing buffer always has exactly Size() slots, except after a failed
// shrink, when a trailing empty slot is kept until next mutation.
type Stack[T any] struct {
	size  int
	items buffer.Interface[*T]
	fns   Funcs[T]
	log   logrus.FieldLogger
}

func New[T any](fns Funcs[T], opts ...Option[T]) (*Stack[T], error) {
	if fns.Destroy == nil || fns.Copy == nil || fns.Print == nil {
		return nil, fmt.Errorf("%w: destroy, copy and print functions are required", ErrInvalidArgument)
	}

	s := &Stack[T]{
		fns: fns,
		log: discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.items == nil {
		s.items = buffer.Virtual[*T]()
	} else if err := s.items.Truncate(0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	return s, nil
}

// Destroy applies destroy function to every element from top to bottom and
// releases buffer. Stack is unusable afterwards and behaves as nil one.
func (s *Stack[T]) Destroy() error {
	if s == nil || s.size < 0 {
		return nil
	}

	var err error
	for i := s.size - 1; i >= 0; i-- {
		err = multierr.Append(err, s.fns.Destroy(s.items.Get(i)))
		s.items.Set(i, nil)
	}

	if terr := s.items.Truncate(0); terr != nil {
		s.log.WithError(terr).Debug("destroy: releasing buffer failed")
	}
	s.size = -1
	return err
}

func (s *Stack[T]) Push(elem *T) (*Stack[T], error) {
	if s == nil || elem == nil || s.size < 0 {
		return nil, ErrInvalidArgument
	}

	cp, err := s.copy(elem)
	if err != nil {
		return nil, err
	}

	if err := s.resize(s.size + 1); err != nil {
		// slot left by failed shrink can still hold new top
		if s.items.Size() <= s.size {
			s.log.WithError(err).WithField("size", s.size).Warn("push: growing buffer failed, stack unchanged")
			err = fmt.Errorf("%w: %w", ErrAllocation, err)
			return nil, multierr.Append(err, s.fns.Destroy(cp))
		}
		s.log.WithError(err).WithField("size", s.size).Debug("push: reusing spare slot")
	}

	s.items.Set(s.size, cp)
	s.size++
	return s, nil
}

// Pop detaches top element and transfers its ownership to caller.
// Failing to shrink buffer does not fail Pop.
func (s *Stack[T]) Pop() (*T, error) {
	if s == nil || s.size < 0 {
		return nil, ErrInvalidArgument
	} else if s.size == 0 {
		return nil, ErrEmptyStack
	}

	top := s.size - 1
	elem := s.items.Get(top)
	s.items.Set(top, nil)
	s.size = top

	if err := s.resize(s.size); err != nil {
		s.log.WithError(err).WithField("size", s.size).Warn("pop: shrinking buffer failed, keeping spare slot")
	}
	return elem, nil
}

// Peek returns copy of top element, stack keeps the original.
func (s *Stack[T]) Peek() (*T, error) {
	if s == nil || s.size < 0 {
		return nil, ErrInvalidArgument
	} else if s.size == 0 {
		return nil, ErrEmptyStack
	}
	return s.copy(s.items.Get(s.size - 1))
}

func (s *Stack[T]) IsEmpty() bool {
	return s == nil || s.size <= 0
}

// IsFull is always false, stack has no capacity limit of its own.
func (s *Stack[T]) IsFull() bool {
	return false
}

// Print writes elements starting from top and returns sum of characters
// reported by print function. Nothing to print is not an error.
func (s *Stack[T]) Print(w io.Writer) (int, error) {
	if w == nil || s == nil || s.size <= 0 {
		return 0, nil
	}

	printed := 0
	for i := s.size - 1; i >= 0; i-- {
		n, err := s.fns.Print(w, s.items.Get(i))
		printed += n
		if err != nil {
			return printed, fmt.Errorf("print element %d: %w", i, err)
		}
	}
	return printed, nil
}

// Size returns -1 for nil or destroyed stack.
func (s *Stack[T]) Size() int {
	if s == nil || s.size < 0 {
		return -1
	}
	return s.size
}

func (s *Stack[T]) copy(elem *T) (*T, error) {
	cp, err := s.fns.Copy(elem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCopy, err)
	} else if cp == nil {
		return nil, ErrCopy
	}
	return cp, nil
}

func (s *Stack[T]) resize(size int) error {
	if s.items.Size() == size {
		return nil
	}
	return s.items.Truncate(size)
}
