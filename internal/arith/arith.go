// Package arith implements the calculator's addition operation over
// dynamically typed numeric operands. An Operand holds either an integer or
// a floating-point value; adding a mixed pair promotes the integer side to
// floating point, matching standard numeric addition semantics.
package arith

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotNumeric reports an operand that does not support addition. It is the
// only failure this package produces and is never recovered from internally.
var ErrNotNumeric = errors.New("unsupported operand type")

// Kind discriminates the two representations an Operand can hold.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
)

// Operand is a transient numeric value, either an int64 or a float64.
// The zero value is the integer 0.
type Operand struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an integer operand.
func Int(v int64) Operand { return Operand{kind: KindInt, i: v} }

// Float returns a floating-point operand.
func Float(v float64) Operand { return Operand{kind: KindFloat, f: v} }

// Kind reports whether the operand is an integer or a float.
func (o Operand) Kind() Kind { return o.kind }

// Float64 returns the operand's value as a float64, promoting integers.
func (o Operand) Float64() float64 {
	if o.kind == KindInt {
		return float64(o.i)
	}
	return o.f
}

// Add returns the sum of a and b: integer addition when both operands are
// integers, floating-point addition otherwise. Integer overflow wraps per
// int64.
func Add(a, b Operand) Operand {
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i + b.i)
	}
	return Float(a.Float64() + b.Float64())
}

// Number matches the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds two values of the same numeric type. Non-numeric arguments are
// rejected at compile time by the Number constraint.
func Sum[T Number](a, b T) T { return a + b }

// Parse converts text into an Operand. Integer syntax yields an integer
// operand and float syntax a float operand; anything else fails with
// ErrNotNumeric rather than coercing.
func Parse(s string) (Operand, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), nil
	}
	return Operand{}, fmt.Errorf("%w: %q", ErrNotNumeric, s)
}

// Text renders the operand, formatting floats with the given strconv verb
// (one of 'e', 'E', 'f', 'g', 'G') at the shortest exact precision.
func (o Operand) Text(floatFmt byte) string {
	if o.kind == KindInt {
		return strconv.FormatInt(o.i, 10)
	}
	return strconv.FormatFloat(o.f, floatFmt, -1, 64)
}

// String renders the operand with Go's default numeric formatting, so the
// float 6.0 prints as "6".
func (o Operand) String() string { return o.Text('g') }
