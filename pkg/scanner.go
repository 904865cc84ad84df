package lume

import "fmt"

type stateFunc func(s *Scanner) stateFunc

const eof rune = 0

// Scanner turns a source buffer into a token stream in a single
// left-to-right pass with one rune of lookahead (two for decimal points and
// block comment terminators). Tokens are emitted on a channel; RunBlocking
// collects the whole stream or the first lexical failure.
type Scanner struct {
	src      []rune
	start    int
	pos      int
	line     int
	quote    rune
	reporter Reporter
	done     chan Token
}

func NewScanner(source string, reporter Reporter) *Scanner {
	return &Scanner{
		src:      []rune(source),
		line:     1,
		reporter: reporter,
		done:     make(chan Token),
	}
}

func (s *Scanner) Chan() chan Token {
	return s.done
}

func (s *Scanner) Run() {
	for state := scanState; state != nil; {
		state = state(s)
	}

	close(s.done)
}

// RunBlocking drains the token channel. On a lexical failure the
// already-scanned tokens are discarded; on success the sequence ends with
// exactly one EOF token carrying the final line count.
func (s *Scanner) RunBlocking() ([]Token, error) {
	go s.Run()

	var tokens []Token
	for t := range s.done {
		switch t.Kind {
		case TokenError:
			return nil, &LexError{Line: t.Line, Message: t.Lexeme}
		case TokenEOF:
			return append(tokens, t), nil
		default:
			tokens = append(tokens, t)
		}
	}

	return tokens, nil
}

func scanState(s *Scanner) stateFunc {
	for {
		switch r := s.peek(); {
		case r == eof:
			s.emit(TokenEOF, "\x00")
			return nil
		case r == '\n':
			s.next()
			s.line++
			continue
		case r == ' ' || r == '\t' || r == '\r':
			s.next()
			continue
		case isDigit(r):
			return numberState
		case r == '"' || r == '\'' || r == '`':
			s.quote = r
			return stringState
		case isAlpha(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(s *Scanner) stateFunc {
	s.start = s.pos
	for isDigit(s.peek()) {
		s.next()
	}

	// A decimal point only belongs to the number when a digit follows
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.next()
		for isDigit(s.peek()) {
			s.next()
		}
	}

	return s.emit(TokenNumber, string(s.src[s.start:s.pos]))
}

func stringState(s *Scanner) stateFunc {
	s.next() // Skip the opening quote
	s.start = s.pos

	for s.peek() != s.quote {
		if s.peek() == eof {
			return s.errorf("Unterminated string.")
		}

		if s.peek() == '\n' {
			s.line++
		}

		s.next()
	}

	lexeme := string(s.src[s.start:s.pos])
	s.next() // Skip the closing quote

	return s.emit(TokenString, lexeme)
}

func identifierState(s *Scanner) stateFunc {
	s.start = s.pos
	for isAlphaNumeric(s.peek()) {
		s.next()
	}

	lexeme := string(s.src[s.start:s.pos])
	if kind, ok := keywordTable[lexeme]; ok {
		return s.emit(kind, lexeme)
	}

	return s.emit(TokenIdentifier, lexeme)
}

func operatorState(s *Scanner) stateFunc {
	switch r := s.next(); r {
	case '(':
		return s.emit(TokenLeftParen, "(")
	case ')':
		return s.emit(TokenRightParen, ")")
	case '{':
		return s.emit(TokenLeftBrace, "{")
	case '}':
		return s.emit(TokenRightBrace, "}")
	case ',':
		return s.emit(TokenComma, ",")
	case '.':
		return s.emit(TokenDot, ".")
	case '-':
		return s.emit(TokenMinus, "-")
	case '+':
		return s.emit(TokenPlus, "+")
	case ';':
		return s.emit(TokenSemicolon, ";")
	case '*':
		return s.emit(TokenStar, "*")
	case '?':
		return s.emit(TokenQmark, "?")
	case ':':
		return s.emit(TokenColon, ":")
	case '/':
		if s.match('/') {
			return lineCommentState
		}
		if s.match('*') {
			return blockCommentState
		}
		return s.emit(TokenSlash, "/")
	case '=':
		if s.match('=') {
			return s.emit(TokenEqualEqual, "==")
		}
		return s.emit(TokenEqual, "=")
	case '!':
		if s.match('=') {
			return s.emit(TokenBangEqual, "!=")
		}
		return s.emit(TokenBang, "!")
	case '<':
		if s.match('=') {
			return s.emit(TokenLessEqual, "<=")
		}
		return s.emit(TokenLess, "<")
	case '>':
		if s.match('=') {
			return s.emit(TokenGreaterEqual, ">=")
		}
		return s.emit(TokenGreater, ">")
	default:
		return s.errorf("Unexpected Character.")
	}
}

func lineCommentState(s *Scanner) stateFunc {
	for s.peek() != '\n' && s.peek() != eof {
		s.next()
	}

	return scanState
}

// blockCommentState consumes up to the closing */. Comments do not nest,
// and an unterminated comment swallows the rest of the input without a
// lexical error.
func blockCommentState(s *Scanner) stateFunc {
	for {
		switch s.peek() {
		case eof:
			return scanState
		case '\n':
			s.line++
		case '*':
			if s.peekNext() == '/' {
				s.next()
				s.next()
				return scanState
			}
		}

		s.next()
	}
}

func (s *Scanner) errorf(format string, args ...interface{}) stateFunc {
	msg := fmt.Sprintf(format, args...)
	s.reporter.Report(s.line, "", msg)
	s.done <- Token{Kind: TokenError, Lexeme: msg, Line: s.line}

	return nil
}

func (s *Scanner) emit(kind TokenKind, lexeme string) stateFunc {
	s.done <- Token{Kind: kind, Lexeme: lexeme, Line: s.line}

	return scanState
}

func (s *Scanner) match(r rune) bool {
	if s.peek() != r {
		return false
	}

	s.next()
	return true
}

func (s *Scanner) peek() rune {
	if s.pos >= len(s.src) {
		return eof
	}

	return s.src[s.pos]
}

func (s *Scanner) peekNext() rune {
	if s.pos+1 >= len(s.src) {
		return eof
	}

	return s.src[s.pos+1]
}

func (s *Scanner) next() rune {
	r := s.peek()
	if r != eof {
		s.pos++
	}

	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}
