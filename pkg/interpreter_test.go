package lume

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func interpretSource(t *testing.T, source string, diag io.Writer) (string, error) {
	t.Helper()

	rep := NewWriterReporter(diag)

	toks, err := NewScanner(source, rep).RunBlocking()
	assert.NoError(t, err)

	stmts, err := NewParser(toks, rep).Parse()
	assert.NoError(t, err)

	var out bytes.Buffer
	err = NewInterpreter(&out, rep).Interpret(stmts)

	return out.String(), err
}

func TestInterpreter(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect string
	}{
		{
			"print 10 + 12;",
			false,
			"22\n",
		},
		{
			"print 7 / 2;",
			false,
			"3.5\n",
		},
		{
			"print -2 * 3;",
			false,
			"-6\n",
		},
		{
			// Either side non-numeric flips + into concatenation
			`print "foo" + 1;`,
			false,
			"foo1\n",
		},
		{
			// Both sides numeric text, so + stays arithmetic
			`print "1" + "2";`,
			false,
			"3\n",
		},
		{
			"print 1 + true;",
			false,
			"1true\n",
		},
		{
			`print 1 == "1";`,
			false,
			"true\n",
		},
		{
			`print "1" == "1.0";`,
			false,
			"false\n",
		},
		{
			// Number spellings print as written, not normalized
			"print 1.0;",
			false,
			"1.0\n",
		},
		{
			"print 1 == 1.0;",
			false,
			"false\n",
		},
		{
			// Non-canonical spellings still count as numbers for arithmetic
			"print 1.0 + 1;",
			false,
			"2\n",
		},
		{
			"print 1.0 < 2;",
			false,
			"true\n",
		},
		{
			"print nil == nil;",
			false,
			"true\n",
		},
		{
			"print nil == false;",
			false,
			"false\n",
		},
		{
			"print 2 >= 2;",
			false,
			"true\n",
		},
		{
			// Only nil and false are falsy; zero is truthy
			"print !nil; print !0;",
			false,
			"true\nfalse\n",
		},
		{
			"print true ? 1 : 2;",
			false,
			"1\n",
		},
		{
			// Logical operators yield the deciding operand, not a bool
			`print nil or "yes";`,
			false,
			"yes\n",
		},
		{
			"print 1 and 2;",
			false,
			"2\n",
		},
		{
			"print false and 1;",
			false,
			"false\n",
		},
		{
			"var a = 90; { var a = 45; print a; } print a;",
			false,
			"45\n90\n",
		},
		{
			"var a = 1; { a = 2; } print a;",
			false,
			"2\n",
		},
		{
			"var a; var b; a = b = 5; print a + b;",
			false,
			"10\n",
		},
		{
			"var i = 0; while (i < 3) i = i + 1; print i;",
			false,
			"3\n",
		},
		{
			"for (var i = 0; i < 3; i = i + 1) print i;",
			false,
			"0\n1\n2\n",
		},
		{
			// Block scopes start empty on every loop iteration
			"var i = 0; while (i < 2) { var x; print x; x = 1; i = i + 1; }",
			false,
			"nil\nnil\n",
		},
		{
			"print 'single'; print \"double\";",
			false,
			"single\ndouble\n",
		},
		{
			"print -false;",
			true,
			"",
		},
		{
			"print true * 1;",
			true,
			"",
		},
		{
			"print q;",
			true,
			"",
		},
		{
			"q = 1;",
			true,
			"",
		},
		{
			// The first failing statement aborts the run
			"print 1; print q; print 2;",
			true,
			"1\n",
		},
	}

	for _, c := range cases {
		got, err := interpretSource(t, c.data, io.Discard)

		if c.fail {
			assert.Error(t, err, c.data)

			var runErr *RuntimeError
			assert.ErrorAs(t, err, &runErr, c.data)
		} else {
			assert.NoError(t, err, c.data)
		}

		assert.Equal(t, c.expect, got, c.data)
	}
}

// A declaration whose initializer fails still binds the name to nil; the
// diagnostic is emitted but the statement itself does not fail.
func TestInterpreterFailedInitializerBindsNil(t *testing.T) {
	var diag bytes.Buffer

	got, err := interpretSource(t, "var x = y; print x;", &diag)
	assert.NoError(t, err)
	assert.Equal(t, "nil\n", got)
	assert.Equal(t, "line[1] Error : Undefined Variable 'y'.\n", diag.String())
}

func TestInterpreterOperandDiagnostics(t *testing.T) {
	cases := []struct {
		data   string
		expect string
	}{
		{
			"print -false;",
			"line[1] Error at '-' : Operand must be a number.\n",
		},
		{
			"print true * 1;",
			"line[1] Error *: Operands must be number.\n",
		},
		{
			"q = 1;",
			"line[1] Error at 'q': Undefined Variable 'q'.\n",
		},
		{
			"print q;",
			"line[1] Error : Undefined Variable 'q'.\n",
		},
	}

	for _, c := range cases {
		var diag bytes.Buffer

		_, err := interpretSource(t, c.data, &diag)
		assert.Error(t, err, c.data)
		assert.Equal(t, c.expect, diag.String(), c.data)
	}
}

func TestInterpreterErrorLine(t *testing.T) {
	_, err := interpretSource(t, "var a = 1;\nprint a;\nprint -'x';", io.Discard)

	var runErr *RuntimeError
	assert.ErrorAs(t, err, &runErr)
	assert.Equal(t, 3, runErr.Line)
	assert.Equal(t, "Operand must be a number.", runErr.Message)
}
