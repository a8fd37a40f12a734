package matcha

// Expressions and statements form two closed sum types, one implementing
// struct per variant. Every node owns its children exclusively and keeps the
// tokens it was parsed from, so diagnostics can always point back at the
// original source position.

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	// FirstToken returns a token at (or nearest to) the start of the node,
	// used for error locations.
	FirstToken() Token
	exprNode()
}

// BinaryExpression is a non-short-circuiting infix operation.
type BinaryExpression struct {
	Left     Expression
	Operator Token
	Right    Expression
}

// LogicalExpression is an "&&" or "||" operation. It is distinct from
// BinaryExpression because its right operand is evaluated lazily.
type LogicalExpression struct {
	Left     Expression
	Operator Token
	Right    Expression
}

// UnaryExpression is a prefix "!" or "-" operation.
type UnaryExpression struct {
	Operator Token
	Operand  Expression
}

// LiteralExpression wraps a literal token (integer, float, string, boolean).
type LiteralExpression struct {
	Value Token
}

// GroupingExpression is a parenthesized expression. It is kept distinct from
// its inner node to preserve source-structure fidelity when printing.
type GroupingExpression struct {
	Expression Expression
}

// VariableExpression is a read reference to a declared name.
type VariableExpression struct {
	Name Token
}

// AssignmentExpression writes to an already-declared name. Assignment is an
// expression, not a statement, and evaluates to the empty value.
type AssignmentExpression struct {
	Name  Token
	Value Expression
}

func (e *BinaryExpression) exprNode()     {}
func (e *LogicalExpression) exprNode()    {}
func (e *UnaryExpression) exprNode()      {}
func (e *LiteralExpression) exprNode()    {}
func (e *GroupingExpression) exprNode()   {}
func (e *VariableExpression) exprNode()   {}
func (e *AssignmentExpression) exprNode() {}

func (e *BinaryExpression) FirstToken() Token   { return e.Left.FirstToken() }
func (e *LogicalExpression) FirstToken() Token  { return e.Left.FirstToken() }
func (e *UnaryExpression) FirstToken() Token    { return e.Operator }
func (e *LiteralExpression) FirstToken() Token  { return e.Value }
func (e *GroupingExpression) FirstToken() Token { return e.Expression.FirstToken() }
func (e *VariableExpression) FirstToken() Token { return e.Name }
func (e *AssignmentExpression) FirstToken() Token {
	return e.Name
}

// Statement is the interface implemented by all statement nodes.
type Statement interface {
	FirstToken() Token
	stmtNode()
}

// ExpressionStatement evaluates an expression for its side effect. Its value
// is discarded unless it is the last top-level statement of a program.
type ExpressionStatement struct {
	Expression Expression
}

// VariableDeclaration declares a name into the current scope, either via
// "x := e" or "x : T = e". The annotation token is stored but never checked.
type VariableDeclaration struct {
	Identifier     Token
	TypeAnnotation *Token
	Initializer    Expression
}

// BlockStatement introduces a new child scope for its statements.
type BlockStatement struct {
	Brace      Token // opening "{"
	Statements []Statement
}

// IfStatement executes Then when the condition holds, Else (when present)
// otherwise. Else is nil when no else-branch was written.
type IfStatement struct {
	Keyword   Token
	Condition Expression
	Then      []Statement
	Else      []Statement
}

// WhileStatement re-evaluates the condition before every iteration; each
// iteration's body runs in its own fresh child scope.
type WhileStatement struct {
	Keyword   Token
	Condition Expression
	Body      []Statement
}

func (s *ExpressionStatement) stmtNode() {}
func (s *VariableDeclaration) stmtNode() {}
func (s *BlockStatement) stmtNode()      {}
func (s *IfStatement) stmtNode()         {}
func (s *WhileStatement) stmtNode()      {}

func (s *ExpressionStatement) FirstToken() Token { return s.Expression.FirstToken() }
func (s *VariableDeclaration) FirstToken() Token { return s.Identifier }
func (s *BlockStatement) FirstToken() Token      { return s.Brace }
func (s *IfStatement) FirstToken() Token         { return s.Keyword }
func (s *WhileStatement) FirstToken() Token      { return s.Keyword }
