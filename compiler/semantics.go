package compiler

// Analyze validates declaration-before-use against table. It does not stop
// at the first undeclared identifier: every use of an unknown name produces
// its own Diagnostic, in source order, so a file with three undeclared
// identifiers is reported with three diagnostics. Duplicate declarations are
// not checked here: Parse rejects the first one with a single-diagnostic
// SemanticError and stops, so later duplicates are not reported. An empty
// Diagnostics slice (nil return) means success.
func Analyze(prog *Program, table *SymbolTable) error {
	a := &analyzer{table: table}
	a.walkBlock(prog.Body)
	if len(a.diagnostics) == 0 {
		return nil
	}
	return &SemanticError{Diagnostics: a.diagnostics}
}

type analyzer struct {
	table       *SymbolTable
	diagnostics []Diagnostic
}

func (a *analyzer) walkBlock(b *Block) {
	for _, stmt := range b.Statements {
		a.walkStmt(stmt)
	}
}

func (a *analyzer) walkStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *VarDecl:
		// Declarations were already checked for duplicates while parsing
		// (Parser.parseDecl reports them as they occur); nothing to do here.
	case *Assign:
		a.checkIdent(s.Target)
		a.walkExpr(s.Value)
	case *Read:
		a.checkIdent(s.Target)
	case *Print:
		a.walkExpr(s.Value)
	case *If:
		a.walkCond(s.Cond)
		a.walkBlock(s.Then)
		if s.Else != nil {
			a.walkBlock(s.Else)
		}
	case *While:
		a.walkCond(s.Cond)
		a.walkBlock(s.Body)
	}
}

func (a *analyzer) walkCond(c Cond) {
	a.walkExpr(c.Left)
	a.walkExpr(c.Right)
}

func (a *analyzer) walkExpr(e Expr) {
	switch v := e.(type) {
	case *Num:
	case *Var:
		a.checkIdent(v.Name)
	case *Unary:
		a.walkExpr(v.Operand)
	case *Binary:
		a.walkExpr(v.Left)
		a.walkExpr(v.Right)
	}
}

func (a *analyzer) checkIdent(id Ident) {
	if _, ok := a.table.Lookup(id.Name); !ok {
		a.diagnostics = append(a.diagnostics, makeDiagnostic(id.Line, "undeclared identifier %q", id.Name))
	}
}
