// parser_test.go
package matcha

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

// --- helpers ---------------------------------------------------------------

func parseSrc(t *testing.T, src string) []Statement {
	t.Helper()
	stmts, errs := Parse(toks(t, src))
	if errs != nil {
		t.Fatalf("parse errors for %q: %v", src, ParseErrorList(errs))
	}
	return stmts
}

func parseErrs(t *testing.T, src string) []*ParseError {
	t.Helper()
	stmts, errs := Parse(toks(t, src))
	if errs == nil {
		t.Fatalf("want parse errors for %q, got statements: %# v", src, pretty.Formatter(stmts))
	}
	return errs
}

func wantAST(t *testing.T, src string, want []Statement) {
	t.Helper()
	got := parseSrc(t, src)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AST mismatch for %q:\n%s", src, strings.Join(pretty.Diff(want, got), "\n"))
	}
}

func intTok(lexeme string, n int64, line, col int) Token {
	return Token{Type: INTEGER, Lexeme: lexeme, Literal: n, Line: line, Col: col}
}

func opTok(tt TokenType, lexeme string, line, col int) Token {
	return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col}
}

func idTok(name string, line, col int) Token {
	return Token{Type: ID, Lexeme: name, Literal: name, Line: line, Col: col}
}

func intLit(lexeme string, n int64, line, col int) Expression {
	return &LiteralExpression{Value: intTok(lexeme, n, line, col)}
}

// --- precedence & associativity -------------------------------------------

func Test_Parser_MultiplicationBindsTighterThanAddition(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3).
	wantAST(t, "1 + 2 * 3;", []Statement{
		&ExpressionStatement{Expression: &BinaryExpression{
			Left:     intLit("1", 1, 1, 1),
			Operator: opTok(PLUS, "+", 1, 3),
			Right: &BinaryExpression{
				Left:     intLit("2", 2, 1, 5),
				Operator: opTok(MULT, "*", 1, 7),
				Right:    intLit("3", 3, 1, 9),
			},
		}},
	})
}

func Test_Parser_SubtractionIsLeftAssociative(t *testing.T) {
	// 8 - 3 - 2 must parse as (8 - 3) - 2.
	wantAST(t, "8 - 3 - 2;", []Statement{
		&ExpressionStatement{Expression: &BinaryExpression{
			Left: &BinaryExpression{
				Left:     intLit("8", 8, 1, 1),
				Operator: opTok(MINUS, "-", 1, 3),
				Right:    intLit("3", 3, 1, 5),
			},
			Operator: opTok(MINUS, "-", 1, 7),
			Right:    intLit("2", 2, 1, 9),
		}},
	})
}

func Test_Parser_GroupingOverridesPrecedence(t *testing.T) {
	wantAST(t, "(1 + 2) * 3;", []Statement{
		&ExpressionStatement{Expression: &BinaryExpression{
			Left: &GroupingExpression{Expression: &BinaryExpression{
				Left:     intLit("1", 1, 1, 2),
				Operator: opTok(PLUS, "+", 1, 4),
				Right:    intLit("2", 2, 1, 6),
			}},
			Operator: opTok(MULT, "*", 1, 9),
			Right:    intLit("3", 3, 1, 11),
		}},
	})
}

func Test_Parser_UnaryIsRightAssociative(t *testing.T) {
	wantAST(t, "--1;", []Statement{
		&ExpressionStatement{Expression: &UnaryExpression{
			Operator: opTok(MINUS, "-", 1, 1),
			Operand: &UnaryExpression{
				Operator: opTok(MINUS, "-", 1, 2),
				Operand:  intLit("1", 1, 1, 3),
			},
		}},
	})
}

func Test_Parser_ComparisonBindsTighterThanEquality(t *testing.T) {
	stmts := parseSrc(t, "1 < 2 == true;")
	es := stmts[0].(*ExpressionStatement)
	top := es.Expression.(*BinaryExpression)
	if top.Operator.Type != EQ {
		t.Fatalf("top operator: got %v, want EQ", top.Operator.Type)
	}
	if inner := top.Left.(*BinaryExpression); inner.Operator.Type != LESS {
		t.Fatalf("inner operator: got %v, want LESS", inner.Operator.Type)
	}
}

func Test_Parser_LogicalOperatorsProduceLogicalNodes(t *testing.T) {
	stmts := parseSrc(t, "true && false || true;")
	es := stmts[0].(*ExpressionStatement)
	top := es.Expression.(*LogicalExpression)
	if top.Operator.Type != OR {
		t.Fatalf("|| binds loosest: got %v", top.Operator.Type)
	}
	if inner := top.Left.(*LogicalExpression); inner.Operator.Type != AND {
		t.Fatalf("left of || should be &&: got %v", inner.Operator.Type)
	}
}

// --- assignment ------------------------------------------------------------

func Test_Parser_AssignmentChainsRightAssociative(t *testing.T) {
	wantAST(t, "x = y = 2;", []Statement{
		&ExpressionStatement{Expression: &AssignmentExpression{
			Name: idTok("x", 1, 1),
			Value: &AssignmentExpression{
				Name:  idTok("y", 1, 5),
				Value: intLit("2", 2, 1, 9),
			},
		}},
	})
}

func Test_Parser_InvalidAssignmentTarget(t *testing.T) {
	errs := parseErrs(t, "1 = 2;")
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %d: %v", len(errs), ParseErrorList(errs))
	}
	if errs[0].Msg != "invalid assignment target" {
		t.Fatalf("message: got %q", errs[0].Msg)
	}
	if errs[0].Token.Line != 1 || errs[0].Token.Col != 3 {
		t.Fatalf("position: got %d:%d, want 1:3", errs[0].Token.Line, errs[0].Token.Col)
	}
}

// --- statements ------------------------------------------------------------

func Test_Parser_VariableDeclaration(t *testing.T) {
	wantAST(t, "x := 1;", []Statement{
		&VariableDeclaration{
			Identifier:  idTok("x", 1, 1),
			Initializer: intLit("1", 1, 1, 6),
		},
	})
}

func Test_Parser_AnnotatedDeclarationStoresTypeToken(t *testing.T) {
	stmts := parseSrc(t, "x : int = 5;")
	decl := stmts[0].(*VariableDeclaration)
	if decl.TypeAnnotation == nil {
		t.Fatal("want stored type annotation token")
	}
	if decl.TypeAnnotation.Lexeme != "int" {
		t.Fatalf("annotation lexeme: got %q", decl.TypeAnnotation.Lexeme)
	}
}

func Test_Parser_IfWithElse(t *testing.T) {
	stmts := parseSrc(t, "if x == 1 { 1; } else { 2; }")
	ifs := stmts[0].(*IfStatement)
	if len(ifs.Then) != 1 || len(ifs.Else) != 1 {
		t.Fatalf("branch lengths: then=%d else=%d", len(ifs.Then), len(ifs.Else))
	}
}

func Test_Parser_IfWithoutElseHasNilBranch(t *testing.T) {
	stmts := parseSrc(t, "if true { 1; }")
	ifs := stmts[0].(*IfStatement)
	if ifs.Else != nil {
		t.Fatalf("want nil else branch, got %v", ifs.Else)
	}
}

func Test_Parser_WhileLoop(t *testing.T) {
	stmts := parseSrc(t, "while x < 3 { x = x + 1; }")
	ws := stmts[0].(*WhileStatement)
	if len(ws.Body) != 1 {
		t.Fatalf("body length: got %d", len(ws.Body))
	}
}

func Test_Parser_ForKeywordParsesAsLoop(t *testing.T) {
	stmts := parseSrc(t, "for x < 3 { x = x + 1; }")
	if _, ok := stmts[0].(*WhileStatement); !ok {
		t.Fatalf("for-keyword loop should produce a while node, got %T", stmts[0])
	}
}

func Test_Parser_NestedBlocks(t *testing.T) {
	stmts := parseSrc(t, "{ x := 1; { y := 2; } }")
	outer := stmts[0].(*BlockStatement)
	if len(outer.Statements) != 2 {
		t.Fatalf("outer block length: got %d", len(outer.Statements))
	}
	if _, ok := outer.Statements[1].(*BlockStatement); !ok {
		t.Fatalf("want nested block, got %T", outer.Statements[1])
	}
}

// --- errors & recovery -----------------------------------------------------

func Test_Parser_MissingClosingParen(t *testing.T) {
	errs := parseErrs(t, "(1 + 2;")
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Msg, "expected ')'") {
		t.Fatalf("message: got %q", errs[0].Msg)
	}
}

func Test_Parser_MissingSemicolon(t *testing.T) {
	errs := parseErrs(t, "1 + 2")
	if !strings.Contains(errs[0].Msg, "expected ';'") {
		t.Fatalf("message: got %q", errs[0].Msg)
	}
}

func Test_Parser_AccumulatesIndependentErrors(t *testing.T) {
	errs := parseErrs(t, "1 +;\n2 *;\nz := 3;")
	if len(errs) != 2 {
		t.Fatalf("want exactly 2 errors after recovery, got %d: %v", len(errs), ParseErrorList(errs))
	}
	if errs[0].Token.Line != 1 || errs[0].Token.Col != 4 {
		t.Fatalf("first error at %d:%d, want 1:4", errs[0].Token.Line, errs[0].Token.Col)
	}
	if errs[1].Token.Line != 2 || errs[1].Token.Col != 4 {
		t.Fatalf("second error at %d:%d, want 2:4", errs[1].Token.Line, errs[1].Token.Col)
	}
}

func Test_Parser_RecoversInsideBlocks(t *testing.T) {
	errs := parseErrs(t, "{ 1 +; 2 *; }")
	if len(errs) != 2 {
		t.Fatalf("want 2 errors from inside block, got %d: %v", len(errs), ParseErrorList(errs))
	}
}

func Test_Parser_ErrorListIsSingleGoError(t *testing.T) {
	errs := parseErrs(t, "1 +;\n2 *;")
	msg := ParseErrorList(errs).Error()
	if !strings.Contains(msg, "parse error at 1:4") || !strings.Contains(msg, "parse error at 2:4") {
		t.Fatalf("joined message missing positions: %q", msg)
	}
}

func Test_Parser_ExpressionAtEOF(t *testing.T) {
	errs := parseErrs(t, "1 +")
	if !strings.Contains(errs[0].Msg, "expected expression") {
		t.Fatalf("message: got %q", errs[0].Msg)
	}
	if errs[0].Token.Type != EOF {
		t.Fatalf("offending token should be EOF, got %v", errs[0].Token.Type)
	}
}
