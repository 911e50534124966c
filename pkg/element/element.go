// Package element provides behavior functions for common element types.
package element

import (
	"fmt"
	"io"

	"ownedstack/pkg/stack"
)

// Int stores integers, printing one value per line.
func Int() stack.Funcs[int] {
	return stack.Funcs[int]{
		Destroy: destroy[int],
		Copy:    copyOf[int],
		Print: func(w io.Writer, elem *int) (int, error) {
			return fmt.Fprintf(w, "%d\n", *elem)
		},
	}
}

// String stores strings, printing one value per line.
func String() stack.Funcs[string] {
	return stack.Funcs[string]{
		Destroy: destroy[string],
		Copy:    copyOf[string],
		Print: func(w io.Writer, elem *string) (int, error) {
			return fmt.Fprintf(w, "%s\n", *elem)
		},
	}
}

func copyOf[T any](elem *T) (*T, error) {
	if elem == nil {
		return nil, fmt.Errorf("copy of nil element")
	}
	cp := *elem
	return &cp, nil
}

func destroy[T any](elem *T) error {
	if elem != nil {
		var zero T
		*elem = zero
	}
	return nil
}
