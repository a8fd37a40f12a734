// interpreter.go — tree-walking evaluator.
//
// Statements execute for effect against an Environment chain; expressions
// evaluate to Values. Execution is single-threaded and synchronous: there is
// no suspension, cancellation, or timeout, and ordering is strictly the
// program's lexical order (left operand before right, short-circuit for the
// logical operators). Runtime errors are fail-fast: the first one aborts the
// remainder of the statement sequence and surfaces to the caller with the
// offending node attached.
package matcha

import "fmt"

// RuntimeError represents an execution-time failure. Line/Col are 1-based
// and point at the offending node's first token; Statement/Expression carry
// the node itself for structured dumps (see Dump).
type RuntimeError struct {
	Msg        string
	Line       int
	Col        int
	Statement  Statement
	Expression Expression
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %d:%d. %s", e.Line, e.Col, e.Msg)
}

// Dump renders the offending statement or expression as a tree, or "" when
// no node was captured.
func (e *RuntimeError) Dump() string {
	if e.Expression != nil {
		return FormatExpression(e.Expression, 0)
	}
	if e.Statement != nil {
		return FormatStatement(e.Statement, 0)
	}
	return ""
}

// Interpreter owns the root environment of a session and walks statement
// trees produced by the Parser.
type Interpreter struct {
	globals *Environment
	current Statement // statement under execution, for panic diagnostics
}

// NewInterpreter creates an interpreter with a fresh root environment.
func NewInterpreter() *Interpreter {
	return &Interpreter{globals: NewEnvironment()}
}

// Globals exposes the root environment (the REPL evaluates into it so state
// persists across entries).
func (ip *Interpreter) Globals() *Environment { return ip.globals }

// Interpret executes the statement sequence against env. The program's
// result is the value of its final top-level statement (Empty for an empty
// program). Host-level panics that escape evaluation — notably int64
// division by zero, which follows the native numeric semantics — are
// converted into a *RuntimeError instead of aborting the process.
func (ip *Interpreter) Interpret(env *Environment, stmts []Statement) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			re := &RuntimeError{Msg: fmt.Sprint(r), Statement: ip.current}
			if ip.current != nil {
				t := ip.current.FirstToken()
				re.Line, re.Col = t.Line, t.Col
			}
			v, err = Empty, re
		}
	}()

	result := Empty
	for _, s := range stmts {
		ip.current = s
		result, err = ip.execute(env, s)
		if err != nil {
			return Empty, err
		}
	}
	return result, nil
}

// EvalSource runs the full scan/parse/interpret pipeline against the
// interpreter's root environment, so bindings persist across calls.
func (ip *Interpreter) EvalSource(src string) (Value, error) {
	toks, err := Scan(src)
	if err != nil {
		return Empty, err
	}
	stmts, perrs := Parse(toks)
	if perrs != nil {
		return Empty, ParseErrorList(perrs)
	}
	return ip.Interpret(ip.globals, stmts)
}

// ----- error helpers -----

func errAtExpr(e Expression, format string, args ...interface{}) *RuntimeError {
	t := e.FirstToken()
	return &RuntimeError{
		Msg:        fmt.Sprintf(format, args...),
		Line:       t.Line,
		Col:        t.Col,
		Expression: e,
	}
}

func errAtStmt(s Statement, format string, args ...interface{}) *RuntimeError {
	t := s.FirstToken()
	return &RuntimeError{
		Msg:       fmt.Sprintf(format, args...),
		Line:      t.Line,
		Col:       t.Col,
		Statement: s,
	}
}

// ----- statement execution -----

func (ip *Interpreter) execute(env *Environment, s Statement) (Value, error) {
	switch st := s.(type) {
	case *ExpressionStatement:
		return ip.evaluate(env, st.Expression)

	case *VariableDeclaration:
		// The initializer is evaluated in the current scope, so it may read
		// outer variables but never the name being declared.
		v, err := ip.evaluate(env, st.Initializer)
		if err != nil {
			return Empty, err
		}
		if derr := env.Declare(st.Identifier.Lexeme, v); derr != nil {
			return Empty, errAtStmt(st, "%s", derr.Error())
		}
		return Empty, nil

	case *BlockStatement:
		return ip.executeBlock(env, st.Statements)

	case *IfStatement:
		cond, err := ip.condition(env, st.Condition)
		if err != nil {
			return Empty, err
		}
		if cond {
			return ip.executeBlock(env, st.Then)
		}
		if st.Else != nil {
			return ip.executeBlock(env, st.Else)
		}
		return Empty, nil

	case *WhileStatement:
		for {
			cond, err := ip.condition(env, st.Condition)
			if err != nil {
				return Empty, err
			}
			if !cond {
				return Empty, nil
			}
			// Each iteration's scope is discarded before the next begins.
			if _, err := ip.executeBlock(env, st.Body); err != nil {
				return Empty, err
			}
		}

	default:
		panic(fmt.Sprintf("unknown statement node %T", s))
	}
}

// executeBlock runs stmts in one fresh child scope. The block's value is the
// value of its last statement (Empty if none).
func (ip *Interpreter) executeBlock(env *Environment, stmts []Statement) (Value, error) {
	child := NewChildEnvironment(env)
	result := Empty
	for _, s := range stmts {
		ip.current = s
		v, err := ip.execute(child, s)
		if err != nil {
			return Empty, err
		}
		result = v
	}
	return result, nil
}

// condition evaluates a control-flow condition, which must reduce to a
// Boolean literal.
func (ip *Interpreter) condition(env *Environment, e Expression) (bool, error) {
	v, err := ip.evaluate(env, e)
	if err != nil {
		return false, err
	}
	lit, rerr := unwrapLiteral(v, e)
	if rerr != nil {
		return false, rerr
	}
	if lit.Kind != LitBoolean {
		return false, errAtExpr(e, "expected boolean condition, got %s", lit.TypeName())
	}
	return lit.Bool, nil
}

// ----- expression evaluation -----

func (ip *Interpreter) evaluate(env *Environment, e Expression) (Value, error) {
	switch ex := e.(type) {
	case *LiteralExpression:
		return literalValue(ex), nil

	case *GroupingExpression:
		return ip.evaluate(env, ex.Expression)

	case *VariableExpression:
		v, err := env.Get(ex.Name.Lexeme)
		if err != nil {
			return Empty, errAtExpr(ex, "%s", err.Error())
		}
		return v, nil

	case *AssignmentExpression:
		// The target must already be declared somewhere in the chain; only
		// then is the right-hand side evaluated and the existing binding
		// overwritten at whichever scope level it lives. Assignment yields
		// Empty, not the assigned value.
		if !env.Has(ex.Name.Lexeme) {
			return Empty, errAtExpr(ex, "cannot assign to undeclared variable %q", ex.Name.Lexeme)
		}
		v, err := ip.evaluate(env, ex.Value)
		if err != nil {
			return Empty, err
		}
		if aerr := env.Assign(ex.Name.Lexeme, v); aerr != nil {
			return Empty, errAtExpr(ex, "%s", aerr.Error())
		}
		return Empty, nil

	case *UnaryExpression:
		return ip.unary(env, ex)

	case *BinaryExpression:
		return ip.binary(env, ex)

	case *LogicalExpression:
		return ip.logical(env, ex)

	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
}

// literalValue extracts the pre-parsed literal a scan attached to the token.
// A literal token without one violates the scanner/parser contract.
func literalValue(ex *LiteralExpression) Value {
	switch lit := ex.Value.Literal.(type) {
	case int64:
		return IntegerValue(lit)
	case float64:
		return FloatValue(lit)
	case string:
		return StringValue(lit)
	case bool:
		return BooleanValue(lit)
	default:
		panic(fmt.Sprintf("literal token %q has no literal value", ex.Value.Lexeme))
	}
}

func (ip *Interpreter) unary(env *Environment, ex *UnaryExpression) (Value, error) {
	v, err := ip.evaluate(env, ex.Operand)
	if err != nil {
		return Empty, err
	}
	lit, rerr := unwrapLiteral(v, ex)
	if rerr != nil {
		return Empty, rerr
	}

	switch ex.Operator.Type {
	case MINUS:
		switch lit.Kind {
		case LitInteger:
			return IntegerValue(-lit.Int), nil
		case LitFloat:
			return FloatValue(-lit.Num), nil
		default:
			return Empty, errAtExpr(ex, "cannot use operator \"-\" on non-numeric value")
		}
	case BANG:
		if lit.Kind != LitBoolean {
			return Empty, errAtExpr(ex, "cannot negate non-boolean value")
		}
		return BooleanValue(!lit.Bool), nil
	default:
		panic(fmt.Sprintf("unexpected unary operator %q", ex.Operator.Lexeme))
	}
}

func (ip *Interpreter) binary(env *Environment, ex *BinaryExpression) (Value, error) {
	left, err := ip.evaluate(env, ex.Left)
	if err != nil {
		return Empty, err
	}
	right, err := ip.evaluate(env, ex.Right)
	if err != nil {
		return Empty, err
	}

	switch ex.Operator.Type {
	case PLUS, MINUS, MULT, DIV:
		a, rerr := unwrapNumber(left, ex)
		if rerr != nil {
			return Empty, rerr
		}
		b, rerr := unwrapNumber(right, ex)
		if rerr != nil {
			return Empty, rerr
		}
		return LiteralValue(numericBinary(ex.Operator.Type, a, b)), nil

	case GREATER, GREATER_EQ, LESS, LESS_EQ:
		a, rerr := unwrapNumber(left, ex)
		if rerr != nil {
			return Empty, rerr
		}
		b, rerr := unwrapNumber(right, ex)
		if rerr != nil {
			return Empty, rerr
		}
		c := compareNumbers(a, b)
		switch ex.Operator.Type {
		case GREATER:
			return BooleanValue(c > 0), nil
		case GREATER_EQ:
			return BooleanValue(c >= 0), nil
		case LESS:
			return BooleanValue(c < 0), nil
		default:
			return BooleanValue(c <= 0), nil
		}

	case EQ, NEQ:
		eq, rerr := ip.equalityTest(left, right, ex)
		if rerr != nil {
			return Empty, rerr
		}
		if ex.Operator.Type == NEQ {
			eq = !eq
		}
		return BooleanValue(eq), nil

	default:
		panic(fmt.Sprintf("unexpected binary operator %q", ex.Operator.Lexeme))
	}
}

// equalityTest compares two values of the same literal kind. Comparing
// across kinds is a runtime error, not a false result. Integer and Float
// share the Number kind and compare by numeric value.
func (ip *Interpreter) equalityTest(left, right Value, ex *BinaryExpression) (bool, *RuntimeError) {
	a, rerr := unwrapLiteral(left, ex)
	if rerr != nil {
		return false, rerr
	}
	b, rerr := unwrapLiteral(right, ex)
	if rerr != nil {
		return false, rerr
	}
	if a.IsNumber() && b.IsNumber() {
		return equalNumbers(a, b), nil
	}
	if a.Kind != b.Kind {
		return false, errAtExpr(ex, "can't compare %s with %s", a.TypeName(), b.TypeName())
	}
	switch a.Kind {
	case LitString:
		return a.Str == b.Str, nil
	default:
		return a.Bool == b.Bool, nil
	}
}

// logical implements true short-circuit: "&&" evaluates its right side only
// when the left is true, "||" only when the left is false.
func (ip *Interpreter) logical(env *Environment, ex *LogicalExpression) (Value, error) {
	left, err := ip.evaluate(env, ex.Left)
	if err != nil {
		return Empty, err
	}
	a, rerr := unwrapBoolean(left, ex)
	if rerr != nil {
		return Empty, rerr
	}

	if ex.Operator.Type == AND && !a {
		return BooleanValue(false), nil
	}
	if ex.Operator.Type == OR && a {
		return BooleanValue(true), nil
	}

	right, err := ip.evaluate(env, ex.Right)
	if err != nil {
		return Empty, err
	}
	b, rerr := unwrapBoolean(right, ex)
	if rerr != nil {
		return Empty, rerr
	}
	return BooleanValue(b), nil
}

// ----- unwrap helpers -----

const (
	emptyValueOperationMsg    = "cannot execute an operation in an empty value"
	optionalValueOperationMsg = "cannot execute an operation in an optional value, try unwrapping it first"
)

func unwrapLiteral(v Value, e Expression) (Literal, *RuntimeError) {
	switch v.Tag {
	case VTEmpty:
		return Literal{}, errAtExpr(e, emptyValueOperationMsg)
	case VTOptional:
		return Literal{}, errAtExpr(e, optionalValueOperationMsg)
	default:
		return v.Lit, nil
	}
}

func unwrapNumber(v Value, e Expression) (Literal, *RuntimeError) {
	lit, rerr := unwrapLiteral(v, e)
	if rerr != nil {
		return Literal{}, rerr
	}
	if !lit.IsNumber() {
		return Literal{}, errAtExpr(e, "expected number, got %s", lit.TypeName())
	}
	return lit, nil
}

func unwrapBoolean(v Value, e Expression) (bool, *RuntimeError) {
	lit, rerr := unwrapLiteral(v, e)
	if rerr != nil {
		return false, rerr
	}
	if lit.Kind != LitBoolean {
		return false, errAtExpr(e, "expected boolean, got %s", lit.TypeName())
	}
	return lit.Bool, nil
}
