package matcha

import (
	"fmt"
	"strings"
)

// ParseError is a syntax error attached to the offending token.
type ParseError struct {
	Msg   string
	Token Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d. %s", e.Token.Line, e.Token.Col, e.Msg)
}

// ParseErrorList lets a whole batch of accumulated parse errors travel as a
// single Go error.
type ParseErrorList []*ParseError

func (l ParseErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Parser consumes a token sequence and produces statement trees via
// recursive descent with one derivation rule per precedence level. Syntax
// errors are accumulated: panic-mode recovery discards tokens up to the next
// statement boundary and parsing resumes, so a single pass can report every
// independent error.
type Parser struct {
	toks []Token
	i    int
	errs []*ParseError
}

// NewParser creates a parser over a scanned token sequence. The sequence
// must be EOF-terminated (the Scanner guarantees this).
func NewParser(toks []Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses the whole token sequence. It succeeds only when zero errors
// were recorded; otherwise the statement list is nil and every accumulated
// error is returned.
func (p *Parser) Parse() ([]Statement, []*ParseError) {
	var stmts []Statement
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return stmts, nil
}

// Parse is the package-level convenience form of Parser.Parse.
func Parse(toks []Token) ([]Statement, []*ParseError) {
	return NewParser(toks).Parse()
}

// ----- token basics -----

func (p *Parser) atEnd() bool { return p.peek().Type == EOF }

func (p *Parser) peek() Token {
	if p.i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i]
}

func (p *Parser) peekNext() Token {
	if p.i+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.i+1]
}

func (p *Parser) prev() Token { return p.toks[p.i-1] }

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.i++
	}
	return p.prev()
}

func (p *Parser) check(tt TokenType) bool {
	return !p.atEnd() && p.peek().Type == tt
}

func (p *Parser) match(tts ...TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.i++
			return true
		}
	}
	return false
}

func (p *Parser) need(tt TokenType, msg string) (Token, error) {
	if p.match(tt) {
		return p.prev(), nil
	}
	return Token{}, &ParseError{Msg: msg, Token: p.peek()}
}

// ----- error recovery -----

// declaration parses one statement, recording the error and resynchronizing
// on failure. It returns nil for a statement that failed to parse.
func (p *Parser) declaration() Statement {
	s, err := p.statement()
	if err != nil {
		pe, ok := err.(*ParseError)
		if !ok {
			pe = &ParseError{Msg: err.Error(), Token: p.peek()}
		}
		p.errs = append(p.errs, pe)
		p.synchronize()
		return nil
	}
	return s
}

// synchronize discards tokens until a statement boundary: just past a ';' or
// at a statement-leading keyword.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.prev().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case STRUCT, FUNC, LET, RETURN, IF, WHILE, FOR, LCURLY:
			return
		}
		p.advance()
	}
}

// ----- statements -----

func (p *Parser) statement() (Statement, error) {
	switch {
	case p.check(LCURLY):
		brace := p.peek()
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStatement{Brace: brace, Statements: stmts}, nil
	case p.match(IF):
		return p.ifStatement()
	case p.match(WHILE, FOR):
		return p.whileStatement()
	case p.check(ID) && p.peekNext().Type == DECLARE:
		return p.variableDeclaration()
	case p.check(ID) && p.peekNext().Type == COLON:
		return p.annotatedDeclaration()
	default:
		return p.expressionStatement()
	}
}

// variableDeclaration handles the inferred form: identifier ":=" expression ";"
func (p *Parser) variableDeclaration() (Statement, error) {
	ident := p.advance()
	p.advance() // ":="

	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "expected ';' after declaration"); err != nil {
		return nil, err
	}
	return &VariableDeclaration{Identifier: ident, Initializer: init}, nil
}

// annotatedDeclaration handles: identifier ":" type "=" expression ";"
// The type token is stored on the node but not checked.
func (p *Parser) annotatedDeclaration() (Statement, error) {
	ident := p.advance()
	p.advance() // ":"

	annot, err := p.need(ID, "expected type annotation")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(ASSIGN, "expected '=' after type annotation"); err != nil {
		return nil, err
	}
	init, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "expected ';' after declaration"); err != nil {
		return nil, err
	}
	return &VariableDeclaration{Identifier: ident, TypeAnnotation: &annot, Initializer: init}, nil
}

func (p *Parser) ifStatement() (Statement, error) {
	kw := p.prev()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	var elseStmts []Statement
	if p.match(ELSE) {
		elseStmts, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return &IfStatement{Keyword: kw, Condition: cond, Then: then, Else: elseStmts}, nil
}

func (p *Parser) whileStatement() (Statement, error) {
	kw := p.prev()
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &WhileStatement{Keyword: kw, Condition: cond, Body: body}, nil
}

// block parses a brace-delimited statement list. Statements inside the block
// recover independently, the same way top-level statements do.
func (p *Parser) block() ([]Statement, error) {
	if _, err := p.need(LCURLY, "expected '{'"); err != nil {
		return nil, err
	}
	var stmts []Statement
	for !p.check(RCURLY) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if _, err := p.need(RCURLY, "expected '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) expressionStatement() (Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStatement{Expression: expr}, nil
}

// ----- expressions, one rule per precedence level -----

func (p *Parser) expression() (Expression, error) {
	return p.assignment()
}

// assignment is the lowest-binding level. When the parsed left-hand side of
// "=" is a variable read, it becomes the assignment target; anything else is
// an error. The right side re-enters this rule, making chains
// right-associative.
func (p *Parser) assignment() (Expression, error) {
	expr, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		equals := p.prev()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*VariableExpression); ok {
			return &AssignmentExpression{Name: v.Name, Value: value}, nil
		}
		return nil, &ParseError{Msg: "invalid assignment target", Token: equals}
	}
	return expr, nil
}

func (p *Parser) logicalOr() (Expression, error) {
	expr, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.match(OR) {
		op := p.prev()
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpression{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicalAnd() (Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(AND) {
		op := p.prev()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpression{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(EQ, NEQ) {
		op := p.prev()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpression{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQ, LESS, LESS_EQ) {
		op := p.prev()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpression{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.prev()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpression{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(MULT, DIV) {
		op := p.prev()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpression{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expression, error) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{Operator: op, Operand: operand}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expression, error) {
	if p.match(INTEGER, FLOAT, STRING, BOOLEAN) {
		return &LiteralExpression{Value: p.prev()}, nil
	}
	if p.match(ID) {
		return &VariableExpression{Name: p.prev()}, nil
	}
	if p.match(LROUND) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.check(RROUND) {
			got := p.peek()
			return nil, &ParseError{
				Msg:   fmt.Sprintf("expected ')' after expression, got %q", tokenText(got)),
				Token: got,
			}
		}
		p.advance()
		return &GroupingExpression{Expression: expr}, nil
	}
	return nil, &ParseError{Msg: "expected expression", Token: p.peek()}
}

func tokenText(t Token) string {
	if t.Type == EOF {
		return "end of input"
	}
	return t.Lexeme
}
