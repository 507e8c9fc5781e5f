package compiler

import "log"

// Result is everything a driver needs after a successful compile: the
// object program ready for writing, plus the symbol table it was generated
// against.
type Result struct {
	Instructions []Instruction
	Table        *SymbolTable
}

// Compile runs the full source_text -> object_program pipeline: tokenize,
// parse, analyze, generate. Each stage returns as soon as it fails; no
// stage downstream of a failure runs, and no object program is produced,
// matching the pipeline's abort-before-codegen policy.
func Compile(source string) (*Result, error) {
	var tokenizer Tokenizer
	log.Println("compiler: tokenizing")
	tokens, err := tokenizer.Tokenize(source)
	if err != nil {
		return nil, err
	}

	log.Println("compiler: parsing")
	prog, table, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	log.Println("compiler: analyzing")
	if err := Analyze(prog, table); err != nil {
		return nil, err
	}

	log.Println("compiler: generating code")
	instructions := Generate(prog, table)

	return &Result{Instructions: instructions, Table: table}, nil
}
