package compiler

import "fmt"

// SyntaxError reports a token mismatch at the first syntactic failure; the
// parser does not attempt recovery.
type SyntaxError struct {
	Expected string
	Found    *Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: expected %s but found %q at line %d", e.Expected, e.Found.Lexeme, e.Found.Line)
}

func (p *Parser) makeSyntaxError(expected string) error {
	return &SyntaxError{Expected: expected, Found: p.current()}
}

// Diagnostic is a single semantic-analysis finding: an undeclared
// identifier use or a duplicate declaration.
type Diagnostic struct {
	Message string
	Line    int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// SemanticError collects every Diagnostic found during analysis. An empty
// Diagnostics slice never produces a SemanticError; see Analyze.
type SemanticError struct {
	Diagnostics []Diagnostic
}

func (e *SemanticError) Error() string {
	msg := fmt.Sprintf("%d semantic error(s):", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		msg += "\n  " + d.String()
	}
	return msg
}

func makeDiagnostic(line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Message: fmt.Sprintf(format, args...), Line: line}
}
