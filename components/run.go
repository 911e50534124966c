package components

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"ownedstack/pkg/buffer"
	"ownedstack/pkg/element"
	"ownedstack/pkg/stack"
)

// Run executes script against fresh integer stack and writes results to out.
// Failed stack operations are reported to out and do not stop the script.
func Run(fs afero.Fs, in io.Reader, out io.Writer, log logrus.FieldLogger, cfg *RunConfigs) (summary Summary, err error) {
	script, err := openScript(fs, in, cfg.ScriptPath)
	if err != nil {
		return summary, err
	}
	defer script.Close()

	commands, err := Parse(script)
	if err != nil {
		return summary, err
	}

	fns := element.Int()
	s, err := stack.New(fns,
		stack.WithBuffer[int](buffer.Limit[*int](buffer.Virtual[*int](), cfg.MaxItems)),
		stack.WithLogger[int](log),
	)
	if err != nil {
		return summary, err
	}
	defer func() {
		summary.Left = s.Size()
		err = multierr.Append(err, s.Destroy())
	}()

	for _, cmd := range commands {
		summary.Executed++
		if cmdErr := execute(s, fns, cmd, out); cmdErr != nil {
			summary.Failed++
			log.WithError(cmdErr).WithField("line", cmd.Line).Debug("command failed")
			if _, err := fmt.Fprintf(out, "error: %s: %v\n", cmd, cmdErr); err != nil {
				return summary, err
			}
		}
	}

	log.WithFields(logrus.Fields{
		"executed": summary.Executed,
		"failed":   summary.Failed,
	}).Info("script done")
	return summary, nil
}

func execute(s *stack.Stack[int], fns stack.Funcs[int], cmd Command, out io.Writer) error {
	switch cmd.Op {
	case OpPush:
		_, err := s.Push(&cmd.Arg)
		return err
	case OpPop, OpPeek:
		take := s.Pop
		if cmd.Op == OpPeek {
			take = s.Peek
		}
		elem, err := take()
		if err != nil {
			return err
		}
		// both pop and peek hand ownership over to us
		_, err = fns.Print(out, elem)
		return multierr.Append(err, fns.Destroy(elem))
	case OpSize:
		_, err := fmt.Fprintln(out, s.Size())
		return err
	case OpEmpty:
		_, err := fmt.Fprintln(out, s.IsEmpty())
		return err
	case OpFull:
		_, err := fmt.Fprintln(out, s.IsFull())
		return err
	case OpPrint:
		_, err := s.Print(out)
		return err
	}
	return fmt.Errorf("unsupported command %q", cmd.Op)
}

func openScript(fs afero.Fs, in io.Reader, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(in), nil
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	return f, nil
}
