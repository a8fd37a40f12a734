package matcha

import (
	"fmt"
	"strconv"
)

// ScanError is a lexical error with the 1-based position of the offending
// character.
type ScanError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error at %d:%d. %s", e.Line, e.Col, e.Msg)
}

// Scanner converts source text into a Token sequence terminated by an
// explicit EOF token. Scanning is a single forward pass over a Source cursor
// and halts on the first lexical error (stop-on-first-error contract).
type Scanner struct {
	src    *Source
	line   int // 1-based line of the next rune
	col    int // 0-based count of runes consumed on the current line
	tokens []Token

	// position of the first character of the token being scanned
	tokLine int
	tokCol  int
}

// NewScanner creates a scanner for the given source text.
func NewScanner(src string) *Scanner {
	return &Scanner{
		src:  NewSource(src),
		line: 1,
	}
}

// Scan tokenizes the entire source. The returned sequence always ends with
// an EOF token. On a lexical error the partial token list is discarded and
// the error is returned with its location.
func (s *Scanner) Scan() ([]Token, error) {
	for !s.src.AtEnd() {
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokLine, s.tokCol = s.line, s.col+1
	s.addToken(EOF, nil)
	return s.tokens, nil
}

// Scan is the package-level convenience form of Scanner.Scan.
func Scan(src string) ([]Token, error) {
	return NewScanner(src).Scan()
}

// ----- cursor helpers -----

// advance consumes one rune and keeps the line/column counters in sync.
func (s *Scanner) advance() (rune, bool) {
	r, ok := s.src.Next()
	if !ok {
		return 0, false
	}
	if r == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return r, true
}

// matchNext consumes the next rune only when it equals want.
func (s *Scanner) matchNext(want rune) bool {
	r, ok := s.src.Peek()
	if !ok || r != want {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) addToken(tt TokenType, lit interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.src.PopLexeme(),
		Literal: lit,
		Line:    s.tokLine,
		Col:     s.tokCol,
	})
}

func (s *Scanner) err(msg string) error {
	return &ScanError{Line: s.tokLine, Col: s.tokCol, Msg: msg}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isAlphaNum(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}

// ----- main dispatch -----

func (s *Scanner) scanToken() error {
	s.tokLine, s.tokCol = s.line, s.col+1

	ch, _ := s.advance()

	switch ch {
	// Single characters
	case '(':
		s.addToken(LROUND, nil)
	case ')':
		s.addToken(RROUND, nil)
	case '{':
		s.addToken(LCURLY, nil)
	case '}':
		s.addToken(RCURLY, nil)
	case ',':
		s.addToken(COMMA, nil)
	case '.':
		s.addToken(PERIOD, nil)
	case ';':
		s.addToken(SEMICOLON, nil)
	case '+':
		s.addToken(PLUS, nil)
	case '-':
		s.addToken(MINUS, nil)
	case '*':
		s.addToken(MULT, nil)

	// Two-character operators with single-character fallbacks. Lone '&'
	// and '|' are valid tokens (bitwise operators): the scanner accepts
	// them even though no grammar rule consumes them yet.
	case '=':
		if s.matchNext('=') {
			s.addToken(EQ, nil)
		} else {
			s.addToken(ASSIGN, nil)
		}
	case '!':
		if s.matchNext('=') {
			s.addToken(NEQ, nil)
		} else {
			s.addToken(BANG, nil)
		}
	case '>':
		if s.matchNext('=') {
			s.addToken(GREATER_EQ, nil)
		} else if s.matchNext('>') {
			s.addToken(SHIFT_R, nil)
		} else {
			s.addToken(GREATER, nil)
		}
	case '<':
		if s.matchNext('=') {
			s.addToken(LESS_EQ, nil)
		} else if s.matchNext('<') {
			s.addToken(SHIFT_L, nil)
		} else {
			s.addToken(LESS, nil)
		}
	case '&':
		if s.matchNext('&') {
			s.addToken(AND, nil)
		} else {
			s.addToken(BIT_AND, nil)
		}
	case '|':
		if s.matchNext('|') {
			s.addToken(OR, nil)
		} else {
			s.addToken(BIT_OR, nil)
		}
	case ':':
		if s.matchNext('=') {
			s.addToken(DECLARE, nil)
		} else {
			s.addToken(COLON, nil)
		}

	// Division operator and line comments
	case '/':
		if s.matchNext('/') {
			for {
				r, ok := s.src.Peek()
				if !ok || r == '\n' {
					break
				}
				s.advance()
			}
			s.src.PopLexeme()
		} else {
			s.addToken(DIV, nil)
		}

	// Whitespace carries no token; newlines advance the line counter
	// inside advance.
	case ' ', '\r', '\t', '\n':
		s.src.PopLexeme()

	case '"':
		return s.stringLiteral()

	default:
		if isDigit(ch) {
			return s.numberLiteral()
		}
		if isAlpha(ch) {
			s.identifierOrKeyword()
			return nil
		}
		return s.err(fmt.Sprintf("unknown token %q", ch))
	}
	return nil
}

// ----- literal scanners -----

// stringLiteral consumes until the closing quote. There is no escape
// processing: the literal value is the text strictly between the quotes.
func (s *Scanner) stringLiteral() error {
	for {
		r, ok := s.src.Peek()
		if !ok {
			return s.err("unterminated string")
		}
		if r == '"' {
			break
		}
		s.advance()
	}
	s.advance() // closing quote

	lex := s.src.PopLexeme()
	s.tokens = append(s.tokens, Token{
		Type:    STRING,
		Lexeme:  lex,
		Literal: lex[1 : len(lex)-1],
		Line:    s.tokLine,
		Col:     s.tokCol,
	})
	return nil
}

// numberLiteral consumes a maximal digit run, optionally followed by a
// fractional part. A trailing '.' with no digit after it is an error, as is
// a lexeme the host integer/float parser rejects (e.g. int64 overflow).
func (s *Scanner) numberLiteral() error {
	isFloat := false

	s.digits()
	if r, ok := s.src.Peek(); ok && r == '.' {
		isFloat = true
		s.advance()
		if r2, ok2 := s.src.Peek(); !ok2 || !isDigit(r2) {
			return s.err("invalid number")
		}
		s.digits()
	}

	lex := s.src.PopLexeme()
	if isFloat {
		v, convErr := strconv.ParseFloat(lex, 64)
		if convErr != nil {
			return s.err("invalid number (parsing failed)")
		}
		s.pushLiteral(FLOAT, lex, v)
		return nil
	}
	v, convErr := strconv.ParseInt(lex, 10, 64)
	if convErr != nil {
		return s.err("invalid number (parsing failed)")
	}
	s.pushLiteral(INTEGER, lex, v)
	return nil
}

func (s *Scanner) digits() {
	for {
		r, ok := s.src.Peek()
		if !ok || !isDigit(r) {
			return
		}
		s.advance()
	}
}

func (s *Scanner) pushLiteral(tt TokenType, lex string, lit interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  lex,
		Literal: lit,
		Line:    s.tokLine,
		Col:     s.tokCol,
	})
}

// identifierOrKeyword consumes a maximal alphanumeric/underscore run and
// classifies it against the fixed keyword table. true/false carry a boolean
// literal; plain identifiers carry their own text.
func (s *Scanner) identifierOrKeyword() {
	for {
		r, ok := s.src.Peek()
		if !ok || !isAlphaNum(r) {
			break
		}
		s.advance()
	}
	lex := s.src.PopLexeme()
	if tt, ok := keywords[lex]; ok {
		if tt == BOOLEAN {
			s.pushLiteral(BOOLEAN, lex, lex == "true")
			return
		}
		s.pushLiteral(tt, lex, nil)
		return
	}
	s.pushLiteral(ID, lex, lex)
}
