package lume

import "fmt"

type TokenKind uint8

//go:generate stringer -type=TokenKind -trimprefix=Token
const (
	// Single character tokens
	TokenLeftParen TokenKind = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar
	TokenQmark
	TokenColon

	// One or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// Literals
	TokenIdentifier
	TokenString
	TokenNumber

	// Keywords
	TokenAnd
	TokenElse
	TokenFalse
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF
	TokenError
)

// fun, class and return are intentionally not reserved.
var keywordTable = map[string]TokenKind{
	"and":   TokenAnd,
	"while": TokenWhile,
	"var":   TokenVar,
	"true":  TokenTrue,
	"print": TokenPrint,
	"or":    TokenOr,
	"nil":   TokenNil,
	"if":    TokenIf,
	"for":   TokenFor,
	"false": TokenFalse,
	"else":  TokenElse,
}

type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %q line %d", t.Kind, t.Lexeme, t.Line)
}
