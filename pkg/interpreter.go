package lume

import (
	"fmt"
	"io"
)

// Interpreter walks a statement list with one mutable current-scope cursor
// over the environment arena. The first failing statement aborts the whole
// Interpret call; there is no recovery within a run. Evaluation recurses
// with the tree, without a depth guard.
type Interpreter struct {
	env      *Environment
	cur      Scope
	out      io.Writer
	reporter Reporter
}

func NewInterpreter(out io.Writer, reporter Reporter) *Interpreter {
	return &Interpreter{
		env:      NewEnvironment(reporter),
		cur:      GlobalScope,
		out:      out,
		reporter: reporter,
	}
}

func (i *Interpreter) Interpret(statements []Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) execute(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := i.evaluate(s.Expr)
		return err
	case *PrintStmt:
		v, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}

		fmt.Fprintln(i.out, v.String())
		return nil
	case *VarStmt:
		return i.varStatement(s)
	case *BlockStmt:
		return i.blockStatement(s)
	case *IfStmt:
		return i.ifStatement(s)
	case *WhileStmt:
		return i.whileStatement(s)
	default:
		panic(fmt.Sprintf("unexpected statement node %T", stmt))
	}
}

// A failing initializer has already produced its diagnostic; the binding
// still comes into existence, holding nil.
func (i *Interpreter) varStatement(s *VarStmt) error {
	var value Value = NilValue
	if s.Init != nil {
		if v, err := i.evaluate(s.Init); err == nil {
			value = v
		}
	}

	i.env.Define(i.cur, s.Name.Lexeme, value)
	return nil
}

// blockStatement runs the block body in a fresh child scope and restores
// the previous cursor on the way out. Every entry gets a new scope, so a
// loop body that is a block starts empty on each iteration.
func (i *Interpreter) blockStatement(s *BlockStmt) error {
	prev := i.cur
	child := i.env.Begin(prev)
	i.cur = child

	defer func() {
		i.env.End(child)
		i.cur = prev
	}()

	for _, stmt := range s.Statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) ifStatement(s *IfStmt) error {
	cond, err := i.evaluate(s.Cond)
	if err != nil {
		return err
	}

	if cond.Truthy() {
		return i.execute(s.Then)
	}

	if s.Else != nil {
		return i.execute(s.Else)
	}

	return nil
}

func (i *Interpreter) whileStatement(s *WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Cond)
		if err != nil {
			return err
		}

		if !cond.Truthy() {
			return nil
		}

		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return literalValue(e.Value), nil
	case *GroupingExpr:
		return i.evaluate(e.Inner)
	case *VariableExpr:
		return i.env.Get(i.cur, e.Name)
	case *AssignExpr:
		return i.evalAssign(e)
	case *UnaryExpr:
		return i.evalUnary(e)
	case *BinaryExpr:
		return i.evalBinary(e)
	case *TernaryExpr:
		return i.evalTernary(e)
	case *LogicalExpr:
		return i.evalLogical(e)
	default:
		panic(fmt.Sprintf("unexpected expression node %T", expr))
	}
}

// evalAssign yields the assigned value, which is what makes chained
// assignment work.
func (i *Interpreter) evalAssign(e *AssignExpr) (Value, error) {
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if err := i.env.Assign(i.cur, e.Name, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (i *Interpreter) evalUnary(e *UnaryExpr) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case TokenMinus:
		n, ok := asNumber(right)
		if !ok {
			return nil, i.operandError(e.Op, "Operand must be a number.")
		}

		return Number(-n), nil
	case TokenBang:
		return Bool(!right.Truthy()), nil
	default:
		panic(fmt.Sprintf("unexpected unary operator %q", e.Op.Lexeme))
	}
}

func (i *Interpreter) evalBinary(e *BinaryExpr) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case TokenEqualEqual:
		return Bool(equals(left, right)), nil
	case TokenBangEqual:
		return Bool(!equals(left, right)), nil
	case TokenPlus:
		// Numeric first; if either side is non-numeric text the operator
		// concatenates instead.
		ln, lok := asNumber(left)
		rn, rok := asNumber(right)
		if lok && rok {
			return Number(ln + rn), nil
		}

		return String(left.String() + right.String()), nil
	}

	ln, lok := asNumber(left)
	rn, rok := asNumber(right)
	if !lok || !rok {
		return nil, i.operandsError(e.Op, "Operands must be number.")
	}

	switch e.Op.Kind {
	case TokenMinus:
		return Number(ln - rn), nil
	case TokenStar:
		return Number(ln * rn), nil
	case TokenSlash:
		return Number(ln / rn), nil
	case TokenGreater:
		return Bool(ln > rn), nil
	case TokenGreaterEqual:
		return Bool(ln >= rn), nil
	case TokenLess:
		return Bool(ln < rn), nil
	case TokenLessEqual:
		return Bool(ln <= rn), nil
	default:
		panic(fmt.Sprintf("unexpected binary operator %q", e.Op.Lexeme))
	}
}

func (i *Interpreter) evalTernary(e *TernaryExpr) (Value, error) {
	cond, err := i.evaluate(e.Cond)
	if err != nil {
		return nil, err
	}

	if cond.Truthy() {
		return i.evaluate(e.Then)
	}

	return i.evaluate(e.Else)
}

// evalLogical short-circuits and yields the operand value that decided or
// completed the expression, not a normalized boolean.
func (i *Interpreter) evalLogical(e *LogicalExpr) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Kind == TokenOr {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}

	return i.evaluate(e.Right)
}

func (i *Interpreter) operandError(op Token, msg string) error {
	i.reporter.Report(op.Line, fmt.Sprintf("at '%s' ", op.Lexeme), msg)
	return &RuntimeError{Line: op.Line, Message: msg}
}

func (i *Interpreter) operandsError(op Token, msg string) error {
	i.reporter.Report(op.Line, op.Lexeme, msg)
	return &RuntimeError{Line: op.Line, Message: msg}
}
