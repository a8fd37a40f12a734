// errors_test.go
package matcha

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_ScanSnippet(t *testing.T) {
	src := "x := @;"
	_, err := Scan(src)
	if err == nil {
		t.Fatal("want scan error")
	}
	got := WrapErrorWithSource(err, src).Error()
	want := strings.Join([]string{
		"scan error at 1:6. unknown token '@'",
		"",
		"   1 | x := @;",
		"     |      ^",
	}, "\n")
	if got != want {
		t.Fatalf("snippet mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func Test_Errors_SnippetShowsContextLines(t *testing.T) {
	src := "a := 1;\nb := @;\nc := 3;"
	_, err := Scan(src)
	got := WrapErrorWithSource(err, src).Error()
	want := strings.Join([]string{
		"scan error at 2:6. unknown token '@'",
		"",
		"   1 | a := 1;",
		"   2 | b := @;",
		"     |      ^",
		"   3 | c := 3;",
	}, "\n")
	if got != want {
		t.Fatalf("snippet mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func Test_Errors_ParseListGetsOneSnippetEach(t *testing.T) {
	src := "1 +;\n2 *;"
	toks, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	_, perrs := Parse(toks)
	if len(perrs) != 2 {
		t.Fatalf("want 2 parse errors, got %d", len(perrs))
	}
	got := WrapErrorWithSource(ParseErrorList(perrs), src).Error()
	for _, part := range []string{
		"parse error at 1:4. expected expression",
		"parse error at 2:4. expected expression",
		"   1 | 1 +;",
		"   2 | 2 *;",
	} {
		if !strings.Contains(got, part) {
			t.Fatalf("wrapped output missing %q:\n%s", part, got)
		}
	}
}

func Test_Errors_RuntimeSnippetIncludesDump(t *testing.T) {
	src := "x := 1;\nx + true;"
	_, err := NewInterpreter().EvalSource(src)
	if err == nil {
		t.Fatal("want runtime error")
	}
	got := WrapErrorWithSource(err, src).Error()
	// The dump of the offending node follows the snippet.
	for _, part := range []string{
		"runtime error at 2:1.",
		"   2 | x + true;",
		"     | ^",
		"├─ VAR x",
		"├─ true",
	} {
		if !strings.Contains(got, part) {
			t.Fatalf("wrapped output missing %q:\n%s", part, got)
		}
	}
}

func Test_Errors_UnknownErrorsPassThrough(t *testing.T) {
	sentinel := errors.New("disk on fire")
	if got := WrapErrorWithSource(sentinel, "1;"); got != sentinel {
		t.Fatalf("want passthrough, got %v", got)
	}
}

func Test_Errors_ClampedPositions(t *testing.T) {
	// Out-of-range coordinates must not panic the renderer.
	re := &RuntimeError{Msg: "boom", Line: 99, Col: 99}
	got := WrapErrorWithSource(re, "1;").Error()
	if !strings.Contains(got, "runtime error at 99:99. boom") {
		t.Fatalf("header missing: %q", got)
	}
	if !strings.Contains(got, "   1 | 1;") {
		t.Fatalf("clamped line missing: %q", got)
	}
}

func Test_Errors_StageErrorFormats(t *testing.T) {
	se := &ScanError{Line: 1, Col: 2, Msg: "unterminated string"}
	if se.Error() != "scan error at 1:2. unterminated string" {
		t.Fatalf("got %q", se.Error())
	}
	pe := &ParseError{Msg: "expected expression", Token: Token{Line: 3, Col: 4}}
	if pe.Error() != "parse error at 3:4. expected expression" {
		t.Fatalf("got %q", pe.Error())
	}
	re := &RuntimeError{Msg: "boom", Line: 5, Col: 6}
	if re.Error() != "runtime error at 5:6. boom" {
		t.Fatalf("got %q", re.Error())
	}
}
