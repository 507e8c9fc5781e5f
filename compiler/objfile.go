package compiler

import (
	"bufio"
	"fmt"
	"io"
)

// WriteObjectProgram serializes instructions into the line-oriented text
// format: one label-prefixed line per instruction, a
// '# build <id>' header as line 1. buildID is opaque to the loader, which
// ignores every '#' line; it exists purely so two object files can be told
// apart.
func WriteObjectProgram(w io.Writer, instructions []Instruction, buildID string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# build %s\n", buildID); err != nil {
		return err
	}
	for i, instr := range instructions {
		line := i + 1
		if !instr.HasOperand {
			if _, err := fmt.Fprintf(bw, "%d %s\n", line, instr.Op); err != nil {
				return err
			}
			continue
		}
		if instr.IsNumeric {
			if _, err := fmt.Fprintf(bw, "%d %s %s\n", line, instr.Op, numberLexeme(instr.NumOperand)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %s %d\n", line, instr.Op, instr.IntOperand); err != nil {
			return err
		}
	}
	return bw.Flush()
}
