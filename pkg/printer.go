package lume

import "strings"

// RenderStatements serializes a parsed statement list back to source-shaped
// text, one top-level statement per line. No parentheses are invented:
// parser-produced trees already have precedence-consistent shapes, so
// re-scanning and re-parsing the rendering reproduces the tree (up to token
// content; a string literal spelling a number comes back as a number).
func RenderStatements(statements []Stmt) string {
	var b strings.Builder
	for _, stmt := range statements {
		renderStmt(&b, stmt, "")
		b.WriteString("\n")
	}

	return b.String()
}

func renderStmt(b *strings.Builder, stmt Stmt, indent string) {
	b.WriteString(indent)

	switch s := stmt.(type) {
	case *ExpressionStmt:
		renderExpr(b, s.Expr)
		b.WriteString(";")
	case *PrintStmt:
		b.WriteString("print ")
		renderExpr(b, s.Expr)
		b.WriteString(";")
	case *VarStmt:
		b.WriteString("var ")
		b.WriteString(s.Name.Lexeme)
		if s.Init != nil {
			b.WriteString(" = ")
			renderExpr(b, s.Init)
		}
		b.WriteString(";")
	case *BlockStmt:
		b.WriteString("{\n")
		for _, inner := range s.Statements {
			renderStmt(b, inner, indent+"\t")
			b.WriteString("\n")
		}
		b.WriteString(indent)
		b.WriteString("}")
	case *IfStmt:
		b.WriteString("if (")
		renderExpr(b, s.Cond)
		b.WriteString(") ")
		renderBranch(b, s.Then, indent)
		if s.Else != nil {
			b.WriteString(" else ")
			renderBranch(b, s.Else, indent)
		}
	case *WhileStmt:
		b.WriteString("while (")
		renderExpr(b, s.Cond)
		b.WriteString(") ")
		renderBranch(b, s.Body, indent)
	}
}

// renderBranch prints a nested statement without re-indenting its first
// line, since it continues the header line of its if or while.
func renderBranch(b *strings.Builder, stmt Stmt, indent string) {
	var inner strings.Builder
	renderStmt(&inner, stmt, indent)
	b.WriteString(strings.TrimPrefix(inner.String(), indent))
}

func renderExpr(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *LiteralExpr:
		b.WriteString(renderLiteral(e.Value))
	case *GroupingExpr:
		b.WriteString("(")
		renderExpr(b, e.Inner)
		b.WriteString(")")
	case *VariableExpr:
		b.WriteString(e.Name.Lexeme)
	case *UnaryExpr:
		b.WriteString(e.Op.Lexeme)
		renderExpr(b, e.Right)
	case *BinaryExpr:
		renderExpr(b, e.Left)
		b.WriteString(" ")
		b.WriteString(e.Op.Lexeme)
		b.WriteString(" ")
		renderExpr(b, e.Right)
	case *LogicalExpr:
		renderExpr(b, e.Left)
		b.WriteString(" ")
		b.WriteString(e.Op.Lexeme)
		b.WriteString(" ")
		renderExpr(b, e.Right)
	case *TernaryExpr:
		renderExpr(b, e.Cond)
		b.WriteString(" ? ")
		renderExpr(b, e.Then)
		b.WriteString(" : ")
		renderExpr(b, e.Else)
	case *AssignExpr:
		b.WriteString(e.Name.Lexeme)
		b.WriteString(" = ")
		renderExpr(b, e.Value)
	}
}

// renderLiteral re-quotes literals that would not rescan as a single
// number or keyword token.
func renderLiteral(text string) string {
	switch text {
	case "true", "false", "nil":
		return text
	}

	if isNumberLexeme(text) {
		return text
	}

	quote := "`"
	switch {
	case !strings.Contains(text, `"`):
		quote = `"`
	case !strings.Contains(text, "'"):
		quote = "'"
	}

	return quote + text + quote
}

// isNumberLexeme reports whether text matches the scanner's number shape:
// digits with at most one decimal point followed by more digits. ParseFloat
// is too permissive here, it would accept exponents the scanner rejects.
func isNumberLexeme(text string) bool {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}

	if i == 0 {
		return false
	}

	if i == len(text) {
		return true
	}

	if text[i] != '.' {
		return false
	}

	i++
	start := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}

	return i > start && i == len(text)
}
