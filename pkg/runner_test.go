package lume

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerErrorCategories(t *testing.T) {
	cases := []struct {
		data   string
		expect error
	}{
		{`print "unterminated;`, &LexError{}},
		{"print );", &SyntaxError{}},
		{"print -false;", &RuntimeError{}},
		{"print 1;", nil},
	}

	for _, c := range cases {
		r := NewRunner(io.Discard, io.Discard)
		err := r.Run(c.data)

		if c.expect == nil {
			assert.NoError(t, err, c.data)
			continue
		}

		assert.Error(t, err, c.data)

		switch c.expect.(type) {
		case *LexError:
			var lexErr *LexError
			assert.ErrorAs(t, err, &lexErr, c.data)
		case *SyntaxError:
			var synErr *SyntaxError
			assert.ErrorAs(t, err, &synErr, c.data)
		case *RuntimeError:
			var runErr *RuntimeError
			assert.ErrorAs(t, err, &runErr, c.data)
		}
	}
}

// Bindings survive across Run calls, which is what keeps a REPL session
// stateful.
func TestRunnerPersistsState(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, io.Discard)

	assert.NoError(t, r.Run("var count = 1;"))
	assert.NoError(t, r.Run("count = count + 1;"))
	assert.NoError(t, r.Run("print count;"))
	assert.Equal(t, "2\n", out.String())
}

// A failed line leaves earlier bindings intact for the next one.
func TestRunnerStateAfterFailure(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, io.Discard)

	assert.NoError(t, r.Run("var a = 5;"))
	assert.Error(t, r.Run("print missing;"))
	assert.NoError(t, r.Run("print a;"))
	assert.Equal(t, "5\n", out.String())
}

func TestRunnerDumpWriter(t *testing.T) {
	var out, dump bytes.Buffer
	r := NewRunner(&out, io.Discard)
	r.DumpWriter = &dump

	assert.NoError(t, r.Run("print 1+2;"))
	assert.Equal(t, "print 1 + 2;\n", dump.String())
	assert.Equal(t, "3\n", out.String())
}

func TestRunnerDiagnosticsGoToErrOut(t *testing.T) {
	var diag bytes.Buffer
	r := NewRunner(io.Discard, &diag)

	assert.Error(t, r.Run("print missing;"))
	assert.Equal(t, "line[1] Error : Undefined Variable 'missing'.\n", diag.String())
}
