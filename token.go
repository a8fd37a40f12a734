package matcha

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LROUND    // "("
	RROUND    // ")"
	LCURLY    // "{"
	RCURLY    // "}"
	COMMA     // ","
	PERIOD    // "."
	SEMICOLON // ";"
	COLON     // ":"

	// Operators
	PLUS
	MINUS
	MULT
	DIV
	ASSIGN     // "="
	DECLARE    // ":="
	EQ         // "=="
	NEQ        // "!="
	BANG       // "!"
	LESS       // "<"
	LESS_EQ    // "<="
	GREATER    // ">"
	GREATER_EQ // ">="
	AND        // "&&"
	OR         // "||"
	BIT_AND    // "&"
	BIT_OR     // "|"
	SHIFT_L    // "<<"
	SHIFT_R    // ">>"

	// Literals & identifiers
	ID
	STRING
	INTEGER
	FLOAT
	BOOLEAN

	// Keywords. Most of these are reserved for future grammar; only
	// IF/ELSE/WHILE/FOR (plus true/false, which scan as BOOLEAN) are
	// consumed by the parser today.
	STRUCT
	FUNC
	LET
	NIL
	RETURN
	SUPER
	THIS
	IF
	ELSE
	WHILE
	FOR
)

// Token is a lexical token with optional literal value. Line and Col are
// 1-based and point at the token's first character.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice, exactly as it appeared in source
	Literal interface{} // parsed value for literals (int64, float64, string, bool)
	Line    int
	Col     int
}

// keywords map
var keywords = map[string]TokenType{
	"struct": STRUCT,
	"func":   FUNC,
	"let":    LET,
	"nil":    NIL,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"true":   BOOLEAN,
	"false":  BOOLEAN,
}

var tokenTypeNames = map[TokenType]string{
	EOF:        "EOF",
	LROUND:     "LROUND",
	RROUND:     "RROUND",
	LCURLY:     "LCURLY",
	RCURLY:     "RCURLY",
	COMMA:      "COMMA",
	PERIOD:     "PERIOD",
	SEMICOLON:  "SEMICOLON",
	COLON:      "COLON",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	MULT:       "MULT",
	DIV:        "DIV",
	ASSIGN:     "ASSIGN",
	DECLARE:    "DECLARE",
	EQ:         "EQ",
	NEQ:        "NEQ",
	BANG:       "BANG",
	LESS:       "LESS",
	LESS_EQ:    "LESS_EQ",
	GREATER:    "GREATER",
	GREATER_EQ: "GREATER_EQ",
	AND:        "AND",
	OR:         "OR",
	BIT_AND:    "BIT_AND",
	BIT_OR:     "BIT_OR",
	SHIFT_L:    "SHIFT_L",
	SHIFT_R:    "SHIFT_R",
	ID:         "ID",
	STRING:     "STRING",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	BOOLEAN:    "BOOLEAN",
	STRUCT:     "STRUCT",
	FUNC:       "FUNC",
	LET:        "LET",
	NIL:        "NIL",
	RETURN:     "RETURN",
	SUPER:      "SUPER",
	THIS:       "THIS",
	IF:         "IF",
	ELSE:       "ELSE",
	WHILE:      "WHILE",
	FOR:        "FOR",
}

// String returns the symbolic name of the token type (for dumps and tests).
func (tt TokenType) String() string {
	if s, ok := tokenTypeNames[tt]; ok {
		return s
	}
	return "UNKNOWN"
}
