package lume

import "io"

// Runner wires Scanner, Parser and Interpreter over one persistent
// interpreter, so a REPL session keeps its global bindings across lines.
// The concrete type of a returned error says whether the source failed to
// scan/parse or failed at runtime; the runner knows nothing of exit codes.
type Runner struct {
	reporter Reporter
	interp   *Interpreter

	// DumpWriter, when set, receives the rendered statement list of every
	// successfully parsed buffer before it executes.
	DumpWriter io.Writer
}

// NewRunner builds a runner printing program output to out and diagnostics
// to errOut.
func NewRunner(out, errOut io.Writer) *Runner {
	reporter := NewWriterReporter(errOut)

	return &Runner{
		reporter: reporter,
		interp:   NewInterpreter(out, reporter),
	}
}

// Run executes one source buffer end to end. Failures carry no detail
// beyond their category; the diagnostics already went to the sink.
func (r *Runner) Run(source string) error {
	tokens, err := NewScanner(source, r.reporter).RunBlocking()
	if err != nil {
		return err
	}

	statements, err := NewParser(tokens, r.reporter).Parse()
	if err != nil {
		return err
	}

	if r.DumpWriter != nil {
		if _, err := io.WriteString(r.DumpWriter, RenderStatements(statements)); err != nil {
			return err
		}
	}

	return r.interp.Interpret(statements)
}
