package compiler

import "fmt"

// SymbolTable is the flat name -> address mapping: a single scope,
// insertion-order addresses starting at 0. Built incrementally while
// parsing declarations and consumed read-only by the semantic analyzer and
// code generator.
type SymbolTable struct {
	names   []string
	address map[string]int
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{address: make(map[string]int)}
}

// Declare assigns the next consecutive address to name. Redeclaration is a
// parse-time error.
func (t *SymbolTable) Declare(name string) error {
	if _, exists := t.address[name]; exists {
		return fmt.Errorf("duplicate declaration of %q", name)
	}
	t.address[name] = len(t.names)
	t.names = append(t.names, name)
	return nil
}

func (t *SymbolTable) Lookup(name string) (int, bool) {
	addr, ok := t.address[name]
	return addr, ok
}

// Len is the symbol table size, equal to the ALME operand emitted by the
// code generator's prologue.
func (t *SymbolTable) Len() int {
	return len(t.names)
}

func (t *SymbolTable) Names() []string {
	return t.names
}
