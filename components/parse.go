package components

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Parse reads one command per line. Everything after '#' is a comment.
func Parse(r io.Reader) ([]Command, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		lines = append(lines, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	commands := make([]Command, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}

		cmd, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cmd.Line = i + 1
		commands = append(commands, cmd)
	}
	return commands, nil
}

func parseLine(line string) (Command, error) {
	fields := strings.Fields(line)
	op := Op(strings.ToLower(fields[0]))
	if !lo.Contains(ops, op) {
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}

	if op != OpPush {
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%s takes no arguments", op)
		}
		return Command{Op: op}, nil
	}

	if len(fields) != 2 {
		return Command{}, fmt.Errorf("push takes exactly one argument")
	}
	arg, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("push argument: %w", err)
	}
	return Command{Op: op, Arg: arg}, nil
}
