package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateSource(t *testing.T, src string) ([]Instruction, *SymbolTable) {
	t.Helper()
	var tk Tokenizer
	tokens, err := tk.Tokenize(src)
	require.NoError(t, err)
	prog, table, err := Parse(tokens)
	require.NoError(t, err)
	require.NoError(t, Analyze(prog, table))
	return Generate(prog, table), table
}

// Prologue/epilogue: every program starts with INPP; ALME n and ends with
// PARA, where n is the declared-variable count.
func TestGeneratePrologueAndEpilogue(t *testing.T) {
	instrs, table := generateSource(t, sprintfWrap(`double a, b; a = 1; b = 2;`))
	require.True(t, len(instrs) >= 3)
	assert.Equal(t, OpINPP, instrs[0].Op)
	assert.Equal(t, OpALME, instrs[1].Op)
	assert.Equal(t, table.Len(), instrs[1].IntOperand)
	assert.Equal(t, OpPARA, instrs[len(instrs)-1].Op)
}

func TestGenerateOperatorPrecedence(t *testing.T) {
	instrs, _ := generateSource(t, sprintfWrap(`double a; a = 2 + 3 * 4;`))
	var ops []Opcode
	for _, instr := range instrs {
		ops = append(ops, instr.Op)
	}
	// post-order for 2 + (3*4): CRCT 2, CRCT 3, CRCT 4, MULT, SOMA
	assert.Contains(t, opSeq(ops), "CRCT,CRCT,CRCT,MULT,SOMA")
}

// Jump closure: every DSVF/DSVI label in the emitted program is a valid
// instruction index in the same program.
func TestGenerateJumpTargetsAreValidIndices(t *testing.T) {
	instrs, _ := generateSource(t, sprintfWrap(`double a,b,c; if (a > b) { c = 1; } else { c = 2; }`))
	for _, instr := range instrs {
		if instr.Op == OpDSVF || instr.Op == OpDSVI {
			require.True(t, instr.IntOperand >= 0 && instr.IntOperand < len(instrs),
				"jump target %d out of range [0,%d)", instr.IntOperand, len(instrs))
		}
	}
}

func TestGenerateIfWithoutElseElidesSecondJump(t *testing.T) {
	instrs, _ := generateSource(t, sprintfWrap(`double a,b,c; if (a > b) { c = 1; }`))
	dsviCount := 0
	for _, instr := range instrs {
		if instr.Op == OpDSVI {
			dsviCount++
		}
	}
	assert.Equal(t, 0, dsviCount)
}

func TestGenerateWhileLoopsBackToCondition(t *testing.T) {
	instrs, _ := generateSource(t, sprintfWrap(`double cont; cont = 3; while (cont > 0) { cont = cont - 1; }`))
	var dsviIdx, dsviTarget int
	found := false
	for i, instr := range instrs {
		if instr.Op == OpDSVI {
			dsviIdx, dsviTarget = i, instr.IntOperand
			found = true
		}
	}
	require.True(t, found)
	assert.Less(t, dsviTarget, dsviIdx)
}

func TestGenerateRelationalOperators(t *testing.T) {
	cases := []struct {
		relop string
		want  Opcode
	}{
		{"==", OpCPIG},
		{"!=", OpCDES},
		{">", OpCPMA},
		{"<", OpCPME},
		{">=", OpCPMI},
		{"<=", OpCPEM},
	}
	for _, c := range cases {
		src := sprintfWrap(`double a,b,c; if (a ` + c.relop + ` b) { c = 1; }`)
		instrs, _ := generateSource(t, src)
		var found bool
		for _, instr := range instrs {
			if instr.Op == c.want {
				found = true
			}
		}
		assert.True(t, found, "expected %s opcode for relop %q", c.want, c.relop)
	}
}

func opSeq(ops []Opcode) string {
	out := ""
	for i, op := range ops {
		if i > 0 {
			out += ","
		}
		out += string(op)
	}
	return out
}
