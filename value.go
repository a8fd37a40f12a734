package matcha

import "strconv"

// LiteralKind enumerates the concrete literal kinds a runtime value can
// carry. Integer and Float together form the numeric tower: any operation
// mixing the two promotes its result to Float, and Integer-only operations
// stay Integer.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitString
	LitBoolean
)

// Literal is a concrete runtime literal. The active field is determined by
// Kind; the others hold their zero values.
type Literal struct {
	Kind LiteralKind
	Int  int64
	Num  float64
	Str  string
	Bool bool
}

func IntegerLit(n int64) Literal  { return Literal{Kind: LitInteger, Int: n} }
func FloatLit(f float64) Literal  { return Literal{Kind: LitFloat, Num: f} }
func StringLit(s string) Literal  { return Literal{Kind: LitString, Str: s} }
func BooleanLit(b bool) Literal   { return Literal{Kind: LitBoolean, Bool: b} }

// TypeName names the literal's kind for diagnostics ("Integer", "Float",
// "String", "Boolean").
func (l Literal) TypeName() string {
	switch l.Kind {
	case LitInteger:
		return "Integer"
	case LitFloat:
		return "Float"
	case LitString:
		return "String"
	default:
		return "Boolean"
	}
}

func (l Literal) IsNumber() bool { return l.Kind == LitInteger || l.Kind == LitFloat }

func (l Literal) String() string {
	switch l.Kind {
	case LitInteger:
		return strconv.FormatInt(l.Int, 10)
	case LitFloat:
		return strconv.FormatFloat(l.Num, 'g', -1, 64)
	case LitString:
		return l.Str
	default:
		if l.Bool {
			return "true"
		}
		return "false"
	}
}

// asFloat widens a numeric literal to float64. Callers must check IsNumber.
func (l Literal) asFloat() float64 {
	if l.Kind == LitInteger {
		return float64(l.Int)
	}
	return l.Num
}

// numericBinary applies +, -, * or / with standard numeric promotion:
// Integer op Integer stays Integer, any Float operand promotes the result.
// Division follows the host semantics of the resulting kind (int64 division
// truncates toward zero; float64 division yields Inf/NaN per IEEE 754).
func numericBinary(op TokenType, a, b Literal) Literal {
	if a.Kind == LitInteger && b.Kind == LitInteger {
		switch op {
		case PLUS:
			return IntegerLit(a.Int + b.Int)
		case MINUS:
			return IntegerLit(a.Int - b.Int)
		case MULT:
			return IntegerLit(a.Int * b.Int)
		default:
			return IntegerLit(a.Int / b.Int)
		}
	}
	x, y := a.asFloat(), b.asFloat()
	switch op {
	case PLUS:
		return FloatLit(x + y)
	case MINUS:
		return FloatLit(x - y)
	case MULT:
		return FloatLit(x * y)
	default:
		return FloatLit(x / y)
	}
}

// compareNumbers orders two numeric literals by value, ignoring the
// Integer/Float distinction. Returns -1, 0 or 1.
func compareNumbers(a, b Literal) int {
	if a.Kind == LitInteger && b.Kind == LitInteger {
		switch {
		case a.Int < b.Int:
			return -1
		case a.Int > b.Int:
			return 1
		default:
			return 0
		}
	}
	x, y := a.asFloat(), b.asFloat()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// equalNumbers compares numeric literals by value (1 == 1.0).
func equalNumbers(a, b Literal) bool { return compareNumbers(a, b) == 0 }

// ValueTag discriminates the three runtime value shapes.
type ValueTag int

const (
	VTEmpty    ValueTag = iota // absence of a value (declarations, loops, ...)
	VTOptional                 // an explicit nullable wrapper, distinct from Empty
	VTLiteral                  // a concrete literal
)

// Value is the evaluator's runtime representation. When Tag is VTLiteral the
// Lit field is the payload; when Tag is VTOptional, Present reports whether
// Lit holds a wrapped literal. Values are produced fresh by every
// evaluation; nothing mutates one in place except Environment slot
// replacement on assignment.
type Value struct {
	Tag     ValueTag
	Lit     Literal
	Present bool // VTOptional only
}

// Empty is the absence-of-value singleton.
var Empty = Value{Tag: VTEmpty}

// None is the unresolved Optional singleton.
var None = Value{Tag: VTOptional}

func LiteralValue(l Literal) Value { return Value{Tag: VTLiteral, Lit: l} }
func SomeValue(l Literal) Value    { return Value{Tag: VTOptional, Lit: l, Present: true} }

func IntegerValue(n int64) Value { return LiteralValue(IntegerLit(n)) }
func FloatValue(f float64) Value { return LiteralValue(FloatLit(f)) }
func StringValue(s string) Value { return LiteralValue(StringLit(s)) }
func BooleanValue(b bool) Value  { return LiteralValue(BooleanLit(b)) }

// String renders the display form used by the REPL and file runner.
func (v Value) String() string {
	switch v.Tag {
	case VTEmpty:
		return "<empty>"
	case VTOptional:
		if !v.Present {
			return "None"
		}
		return v.Lit.String()
	default:
		return v.Lit.String()
	}
}
