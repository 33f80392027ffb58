package lang

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/graft/internal/model"
)

// RuntimeError is an evaluation failure at a source position.
type RuntimeError struct {
	Pos Pos
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// ErrUndefined is returned when an identifier resolves nowhere.
var ErrUndefined = errors.New("name is not defined")

// Program is compiled source. It implements model.Code and is immutable,
// so one Program may back many functions.
type Program struct {
	src   string
	stmts []stmt
}

// Compile parses src.
func Compile(src string) (*Program, error) {
	stmts, err := parse(src)
	if err != nil {
		return nil, err
	}

	return &Program{src: src, stmts: stmts}, nil
}

// Source returns the text the program was compiled from.
func (p *Program) Source() string {
	return p.src
}

// Run executes the statements in fr. The result is the value of a return
// statement, or of the last bare expression.
func (p *Program) Run(fr *m.Frame) (m.Value, error) {
	var last m.Value

	for _, s := range p.stmts {
		switch s := s.(type) {
		case *returnStmt:
			if s.x == nil {
				return nil, nil
			}

			return eval(fr, s.x)
		case *assignStmt:
			v, err := eval(fr, s.x)
			if err != nil {
				return nil, err
			}

			if err := assign(fr, s.target, v); err != nil {
				return nil, err
			}

			last = nil
		case *exprStmt:
			v, err := eval(fr, s.x)
			if err != nil {
				return nil, err
			}

			last = v
		}
	}

	return last, nil
}

// Eval compiles src and runs it at top level against scope.
func Eval(src string, scope *m.Namespace) (m.Value, error) {
	prog, err := Compile(src)
	if err != nil {
		return nil, err
	}

	return prog.Run(&m.Frame{Scope: scope})
}

func failAt(pos Pos, err error) error {
	var re *RuntimeError
	if errors.As(err, &re) {
		return err
	}

	return &RuntimeError{Pos: pos, Err: err}
}
