package components

import "fmt"

type RunConfigs struct {
	// script file path, empty or "-" reads script from input
	ScriptPath string

	// stack buffer limit in elements, 0 means unlimited
	MaxItems int
}

type Op string

const (
	OpPush  Op = "push"
	OpPop   Op = "pop"
	OpPeek  Op = "peek"
	OpSize  Op = "size"
	OpEmpty Op = "empty"
	OpFull  Op = "full"
	OpPrint Op = "print"
)

var ops = []Op{OpPush, OpPop, OpPeek, OpSize, OpEmpty, OpFull, OpPrint}

// single script line
type Command struct {
	Op   Op
	Arg  int
	Line int
}

func (c Command) String() string {
	if c.Op == OpPush {
		return fmt.Sprintf("%s %d", c.Op, c.Arg)
	}
	return string(c.Op)
}

// Summary is what Run reports after the script is done.
type Summary struct {
	Executed int
	Failed   int
	Left     int
}
