package stack

import (
	"io"

	"github.com/sirupsen/logrus"

	"ownedstack/pkg/buffer"
)

type Option[T any] func(s *Stack[T])

// WithBuffer sets backing storage. It is truncated to zero on New.
func WithBuffer[T any](buf buffer.Interface[*T]) Option[T] {
	return func(s *Stack[T]) {
		s.items = buf
	}
}

func WithLogger[T any](log logrus.FieldLogger) Option[T] {
	return func(s *Stack[T]) {
		if log != nil {
			s.log = log
		}
	}
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
