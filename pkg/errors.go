package lume

import (
	"fmt"
	"io"
)

// Reporter is the diagnostic sink. Every stage reports a human-readable
// message at the point a failure is raised, before the typed error
// propagates. The failure signal itself carries no detail beyond its
// category, so the sink is the only channel for the full message.
type Reporter interface {
	Report(line int, where, message string)
}

// NewWriterReporter returns a Reporter printing one diagnostic per line in
// the form `line[<N>] Error <where>: <message>`.
func NewWriterReporter(w io.Writer) Reporter {
	return &writerReporter{w: w}
}

type writerReporter struct {
	w io.Writer
}

func (r *writerReporter) Report(line int, where, message string) {
	fmt.Fprintf(r.w, "line[%d] Error %s: %s\n", line, where, message)
}

// LexError aborts a scan: unterminated string or unrecognized character.
// No partial token stream survives it.
type LexError struct {
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// SyntaxError is the single failure signal of a parse. Individual grammar
// violations are reported to the sink as they are found; once any
// declaration failed there is no valid statement list.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// RuntimeError aborts the remainder of an Interpret call: type mismatch or
// undefined-variable reference. There is no recovery within a run.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
