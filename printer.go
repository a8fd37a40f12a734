// printer.go — box-drawing tree dumps for statements and expressions.
//
// The layout mirrors the runtime's diagnostics: each nesting level indents
// with "│  " and marks its entry with "├─ ". Used by the `ast` CLI command
// and by RuntimeError.Dump.
package matcha

import "strings"

func leftPad(depth int) string {
	if depth > 0 {
		return strings.Repeat("│  ", depth-1) + "├─ "
	}
	return ""
}

// FormatProgram renders a whole statement sequence, one tree per statement.
func FormatProgram(stmts []Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = FormatStatement(s, 0)
	}
	return strings.Join(parts, "\n")
}

// FormatStatement renders one statement subtree starting at depth.
func FormatStatement(s Statement, depth int) string {
	pad := leftPad(depth)
	childPad := leftPad(depth + 1)

	switch st := s.(type) {
	case *ExpressionStatement:
		return FormatExpression(st.Expression, depth)

	case *VariableDeclaration:
		name := st.Identifier.Lexeme
		if st.TypeAnnotation != nil {
			name += " : " + st.TypeAnnotation.Lexeme
		}
		return pad + "VAR_DECL\n" +
			childPad + name + "\n" +
			FormatExpression(st.Initializer, depth+1)

	case *BlockStatement:
		return formatBlock(st.Statements, depth)

	case *IfStatement:
		out := pad + "IF_STMT\n" +
			childPad + "CONDITION\n" +
			FormatExpression(st.Condition, depth+2) + "\n" +
			childPad + "THEN\n" +
			formatBlock(st.Then, depth+2)
		if st.Else != nil {
			out += "\n" + childPad + "ELSE\n" + formatBlock(st.Else, depth+2)
		}
		return out

	case *WhileStatement:
		return pad + "WHILE_STMT\n" +
			childPad + "CONDITION\n" +
			FormatExpression(st.Condition, depth+2) + "\n" +
			childPad + "THEN\n" +
			formatBlock(st.Body, depth+2)

	default:
		return pad + "UNKNOWN_STMT"
	}
}

func formatBlock(stmts []Statement, depth int) string {
	out := leftPad(depth) + "BLOCK"
	for _, s := range stmts {
		out += "\n" + FormatStatement(s, depth+1)
	}
	return out
}

// FormatExpression renders one expression subtree starting at depth.
func FormatExpression(e Expression, depth int) string {
	pad := leftPad(depth)

	switch ex := e.(type) {
	case *BinaryExpression:
		return pad + ex.Operator.Lexeme + "\n" +
			FormatExpression(ex.Left, depth+1) + "\n" +
			FormatExpression(ex.Right, depth+1)

	case *LogicalExpression:
		return pad + ex.Operator.Lexeme + "\n" +
			FormatExpression(ex.Left, depth+1) + "\n" +
			FormatExpression(ex.Right, depth+1)

	case *UnaryExpression:
		return pad + ex.Operator.Lexeme + "\n" +
			FormatExpression(ex.Operand, depth+1)

	case *LiteralExpression:
		return pad + ex.Value.Lexeme

	case *GroupingExpression:
		return pad + "GROUP\n" + FormatExpression(ex.Expression, depth+1)

	case *VariableExpression:
		return pad + "VAR " + ex.Name.Lexeme

	case *AssignmentExpression:
		return pad + "VAR_ASSIGN\n" +
			leftPad(depth+1) + ex.Name.Lexeme + "\n" +
			FormatExpression(ex.Value, depth+1)

	default:
		return pad + "UNKNOWN_EXPR"
	}
}
