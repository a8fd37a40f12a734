// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// Turns the pipeline's stage errors into readable snippets with a caret
// pointing at the offending column:
//
//	parse error at 3:14. expected ')' after expression
//
//	   2 | x := (1 + 2
//	   3 |              ;
//	     |              ^
//	   4 | y := 3;
//
// The snippet shows up to one line of context before and after, numbers the
// lines, and places the caret under the 1-based column. Runtime errors
// additionally append the offending node's tree dump. Errors of any other
// type pass through untouched.
package matcha

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments a stage error with a caret-annotated snippet
// of the source it came from. ParseErrorList is expanded into one snippet
// per accumulated error.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *ScanError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Line, e.Col))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Token.Line, e.Token.Col))
	case ParseErrorList:
		parts := make([]string, len(e))
		for i, pe := range e {
			parts[i] = snippet(src, pe.Error(), pe.Token.Line, pe.Token.Col)
		}
		return fmt.Errorf("%s", strings.Join(parts, "\n"))
	case *RuntimeError:
		out := snippet(src, e.Error(), e.Line, e.Col)
		if dump := e.Dump(); dump != "" {
			out += "\n" + dump + "\n"
		}
		return fmt.Errorf("%s", out)
	default:
		return err
	}
}

// snippet builds the caret-annotated block. Coordinates are 1-based and
// clamped to the source bounds so malformed positions never break rendering.
func snippet(src, header string, line, col int) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return strings.TrimRight(b.String(), "\n")
}
