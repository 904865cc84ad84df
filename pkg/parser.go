package lume

import "fmt"

// Parser builds a statement list from a scanned token sequence by recursive
// descent, one precedence level per derivation. Grammar violations are
// reported to the diagnostic sink as they are found; synchronization then
// skips to the next statement boundary so later errors still surface, but
// once any declaration failed Parse yields no tree at all.
type Parser struct {
	tokens   []Token
	pos      int
	reporter Reporter
	failed   bool
	failLine int
}

func NewParser(tokens []Token, reporter Reporter) *Parser {
	return &Parser{
		tokens:   tokens,
		reporter: reporter,
	}
}

func (p *Parser) Parse() ([]Stmt, error) {
	var statements []Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt == nil {
			p.synchronize()
			continue
		}

		statements = append(statements, stmt)
	}

	if p.failed {
		return nil, &SyntaxError{Line: p.failLine, Message: "parsing failed"}
	}

	return statements, nil
}

func (p *Parser) declaration() Stmt {
	if p.match(TokenVar) {
		return p.varDeclaration()
	}

	return p.statement()
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(TokenIdentifier, "Expect identifier after 'var'")
	if name == nil {
		return nil
	}

	var init Expr
	if p.match(TokenEqual) {
		init = p.expression()
		if init == nil {
			return nil
		}
	}

	p.skipSemicolons()
	return &VarStmt{Name: *name, Init: init}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(TokenPrint):
		return p.printStatement()
	case p.match(TokenLeftBrace):
		return p.blockStatement()
	case p.match(TokenIf):
		return p.ifStatement()
	case p.match(TokenWhile):
		return p.whileStatement()
	case p.match(TokenFor):
		return p.forStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.skipSemicolons()

	if value == nil {
		return nil
	}

	return &PrintStmt{Expr: value}
}

func (p *Parser) blockStatement() Stmt {
	var statements []Stmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		decl := p.declaration()
		if decl == nil {
			return nil
		}

		statements = append(statements, decl)
	}

	if p.consume(TokenRightBrace, "Expect '}' after block.") == nil {
		return nil
	}

	return &BlockStmt{Statements: statements}
}

func (p *Parser) ifStatement() Stmt {
	if p.consume(TokenLeftParen, "Expect '(' after 'if'.") == nil {
		return nil
	}

	cond := p.expression()
	if cond == nil {
		return nil
	}

	if p.consume(TokenRightParen, "Expect ')' after if condition.") == nil {
		return nil
	}

	then := p.statement()
	if then == nil {
		return nil
	}

	var elseBranch Stmt
	if p.match(TokenElse) {
		elseBranch = p.statement()
		if elseBranch == nil {
			return nil
		}
	}

	return &IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() Stmt {
	if p.consume(TokenLeftParen, "Expect '(' after 'while'") == nil {
		return nil
	}

	cond := p.expression()
	if cond == nil {
		return nil
	}

	if p.consume(TokenRightParen, "Expect ')' after condition.") == nil {
		return nil
	}

	body := p.statement()
	if body == nil {
		return nil
	}

	return &WhileStmt{Cond: cond, Body: body}
}

// forStatement desugars into existing node kinds: the optional increment is
// appended to the body block, the loop becomes a While, and the optional
// initializer wraps the whole thing in one more block.
func (p *Parser) forStatement() Stmt {
	if p.consume(TokenLeftParen, "Expect '(' after 'for'.") == nil {
		return nil
	}

	var init Stmt
	switch {
	case p.match(TokenSemicolon):
		init = nil
	case p.match(TokenVar):
		init = p.varDeclaration()
		if init == nil {
			return nil
		}
	default:
		init = p.expressionStatement()
		if init == nil {
			return nil
		}
	}

	var cond Expr
	if !p.check(TokenSemicolon) {
		cond = p.expression()
		if cond == nil {
			return nil
		}
	}

	if p.consume(TokenSemicolon, "Expect ';' after condition.") == nil {
		return nil
	}

	var incr Expr
	if !p.check(TokenRightParen) {
		incr = p.expression()
		if incr == nil {
			return nil
		}
	}

	if p.consume(TokenRightParen, "Expect ')' after for clauses.") == nil {
		return nil
	}

	body := p.statement()
	if body == nil {
		return nil
	}

	if incr != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expr: incr}}}
	}

	if cond == nil {
		cond = &LiteralExpr{Value: "true"}
	}

	var loop Stmt = &WhileStmt{Cond: cond, Body: body}
	if init != nil {
		loop = &BlockStmt{Statements: []Stmt{init, loop}}
	}

	return loop
}

func (p *Parser) expressionStatement() Stmt {
	value := p.expression()
	p.skipSemicolons()

	if value == nil {
		return nil
	}

	return &ExpressionStmt{Expr: value}
}

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment validates the left side after parsing it: anything other than
// a plain variable is a reported error, found without halting recovery.
func (p *Parser) assignment() Expr {
	expr := p.or()
	if expr == nil {
		return nil
	}

	if p.match(TokenEqual) {
		equals := p.previous()
		value := p.assignment()
		if value == nil {
			return nil
		}

		if v, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: v.Name, Value: value}
		}

		p.errorf(equals.Line, fmt.Sprintf("at '%s'", equals.Lexeme), "Invalid assignment Target.")
		return nil
	}

	return expr
}

func (p *Parser) or() Expr {
	expr := p.and()
	if expr == nil {
		return nil
	}

	for p.match(TokenOr) {
		op := p.previous()
		right := p.and()
		if right == nil {
			break
		}

		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}

	return expr
}

// The right operand of `and` re-parses at the equality level, not at
// ternary. Asymmetric, but part of the language.
func (p *Parser) and() Expr {
	expr := p.ternary()
	if expr == nil {
		return nil
	}

	for p.match(TokenAnd) {
		op := p.previous()
		right := p.equality()
		if right == nil {
			break
		}

		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}

	return expr
}

// ternary is right-associative through the recursion on its else branch;
// the then branch parses at primary only.
func (p *Parser) ternary() Expr {
	cond := p.equality()
	if cond == nil {
		return nil
	}

	if !p.match(TokenQmark) {
		return cond
	}

	then := p.primary()
	if then == nil {
		p.errorf(p.peek().Line, "", "Expect a expression after ?")
		return nil
	}

	if !p.match(TokenColon) {
		p.errorf(p.peek().Line, "", "Expect : after ternary expression. got '%s' instead.", p.peek().Lexeme)
		return nil
	}

	elseExpr := p.ternary()
	if elseExpr == nil {
		p.errorf(p.peek().Line, "", "Expect a expression after :. got '%s' instead.", p.peek().Lexeme)
		return nil
	}

	return &TernaryExpr{Cond: cond, Then: then, Else: elseExpr}
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	if expr == nil {
		return nil
	}

	for p.match(TokenBangEqual, TokenEqualEqual) {
		op := p.previous()
		right := p.comparison()
		if right == nil {
			break
		}

		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	if expr == nil {
		return nil
	}

	for p.match(TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual) {
		op := p.previous()
		right := p.term()
		if right == nil {
			break
		}

		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	if expr == nil {
		return nil
	}

	for p.match(TokenMinus, TokenPlus) {
		op := p.previous()
		right := p.factor()
		if right == nil {
			break
		}

		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	if expr == nil {
		return nil
	}

	for p.match(TokenSlash, TokenStar) {
		op := p.previous()
		right := p.unary()
		if right == nil {
			break
		}

		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}

	return expr
}

func (p *Parser) unary() Expr {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()
		right := p.unary()
		if right == nil {
			return nil
		}

		return &UnaryExpr{Op: op, Right: right}
	}

	return p.primary()
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(TokenFalse):
		return &LiteralExpr{Value: "false"}
	case p.match(TokenTrue):
		return &LiteralExpr{Value: "true"}
	case p.match(TokenNil):
		return &LiteralExpr{Value: "nil"}
	case p.match(TokenNumber, TokenString):
		return &LiteralExpr{Value: p.previous().Lexeme}
	case p.match(TokenLeftParen):
		expr := p.expression()
		if expr == nil {
			return nil
		}

		if p.consume(TokenRightParen, "Expect ')' after expression.") == nil {
			return nil
		}

		return &GroupingExpr{Inner: expr}
	case p.match(TokenIdentifier):
		return &VariableExpr{Name: p.previous()}
	}

	p.errorf(p.peek().Line, "", "Expect expression. got %s instead", p.peek().Lexeme)
	return nil
}

// synchronize discards tokens until it passes a statement boundary, so one
// syntax error does not cascade into diagnostics for everything after it.
func (p *Parser) synchronize() {
	p.next()

	for !p.isAtEnd() {
		if p.previous().Kind == TokenSemicolon {
			return
		}

		switch p.peek().Kind {
		case TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint:
			return
		}

		p.next()
	}
}

// Statement terminators are consumed permissively: zero or more trailing
// semicolons instead of exactly one.
func (p *Parser) skipSemicolons() {
	for p.check(TokenSemicolon) {
		p.next()
	}
}

func (p *Parser) errorf(line int, where, format string, args ...interface{}) {
	p.reporter.Report(line, where, fmt.Sprintf(format, args...))

	if !p.failed {
		p.failed = true
		p.failLine = line
	}
}

func (p *Parser) consume(kind TokenKind, msg string) *Token {
	if p.check(kind) {
		tok := p.next()
		return &tok
	}

	p.errorf(p.peek().Line, "", msg)
	return nil
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.next()
			return true
		}
	}

	return false
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser) next() Token {
	if !p.isAtEnd() {
		p.pos++
	}

	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() Token {
	return p.tokens[p.pos-1]
}
