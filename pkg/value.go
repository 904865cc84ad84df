package lume

import (
	"math"
	"strconv"
)

type Kind uint8

const (
	KindNumber Kind = iota
	KindBool
	KindString
	KindNil
)

// Value is a runtime value. String returns the canonical text rendering,
// which doubles as the print output and the basis for equality: the
// language infers type from content, so two values that render the same are
// the same as far as == is concerned (nil excepted, see equals).
type Value interface {
	Kind() Kind
	String() string
	Truthy() bool
}

type Number float64

func (n Number) Kind() Kind { return KindNumber }

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (n Number) Truthy() bool { return true }

type Bool bool

func (b Bool) Kind() Kind     { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (b Bool) Truthy() bool   { return bool(b) }

type String string

func (s String) Kind() Kind     { return KindString }
func (s String) String() string { return string(s) }
func (s String) Truthy() bool   { return true }

type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "nil" }
func (Nil) Truthy() bool   { return false }

var NilValue = Nil{}

// literalValue materializes a literal's source text: the three sentinels
// first, then numbers, then plain text. A quoted "true" in the source lands
// here identically to the keyword. A lexeme becomes a Number only when the
// Number rendering reproduces it exactly; "1.0" stays text, so printing and
// equality preserve the source spelling while asNumber still treats it as
// numeric.
func literalValue(text string) Value {
	switch text {
	case "nil":
		return NilValue
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil {
		if strconv.FormatFloat(f, 'f', -1, 64) == text {
			return Number(f)
		}
	}

	return String(text)
}

// asNumber applies the numeric-first coercion rule: a value is numeric
// whenever its text form parses as a float.
func asNumber(v Value) (float64, bool) {
	if n, ok := v.(Number); ok {
		return float64(n), true
	}

	f, err := strconv.ParseFloat(v.String(), 64)
	return f, err == nil
}

// equals compares rendered text. Two nils are equal, a one-sided nil is
// unequal to anything, and there is no numeric coercion: values whose
// textual forms differ are different.
func equals(a, b Value) bool {
	if a.Kind() == KindNil && b.Kind() == KindNil {
		return true
	}

	if a.Kind() == KindNil || b.Kind() == KindNil {
		return false
	}

	return a.String() == b.String()
}
