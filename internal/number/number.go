// Package number implements the numeric value carried by constant tokens: an
// arbitrary-precision integer that promotes to an arbitrary-precision decimal
// float only when an operation demands it.
package number

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Kind distinguishes the two numeric representations.
type Kind uint8

// Numeric kinds.
const (
	Int Kind = iota
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Number is either an exact integer or a decimal float. The zero Number is the
// integer 0. Numbers are immutable: no method modifies its receiver or
// arguments, so they may be copied freely.
type Number struct {
	kind Kind
	i    *big.Int
	f    *apd.Decimal
}

// ErrDivisionByZero is returned by Quo when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// NewInt returns an integer Number holding a copy of i.
func NewInt(i *big.Int) Number { return Number{kind: Int, i: new(big.Int).Set(i)} }

// Int64 returns an integer Number.
func Int64(n int64) Number { return Number{kind: Int, i: big.NewInt(n)} }


// ParseInt parses the whole of word as a base 10 integer with an optional
// sign.
func ParseInt(word string) (Number, bool) {
	i, ok := new(big.Int).SetString(word, 10)
	if !ok {
		return Number{}, false
	}
	return Number{kind: Int, i: i}, true
}

// ParseFloat parses the whole of word as a finite decimal, such as "1.5",
// ".5", "-2." or "1e3". Infinities and NaNs are not numbers here.
func ParseFloat(word string) (Number, bool) {
	d, _, err := new(apd.Decimal).SetString(word)
	if err != nil || d.Form != apd.Finite {
		return Number{}, false
	}
	return Number{kind: Float, f: d}, true
}

// MustParse parses word as ParseInt then ParseFloat would, panicking if it is
// neither.
func MustParse(word string) Number {
	if n, ok := ParseInt(word); ok {
		return n
	}
	if n, ok := ParseFloat(word); ok {
		return n
	}
	panic(fmt.Sprintf("invalid number %q", word))
}

// Kind returns the representation of n.
func (n Number) Kind() Kind { return n.kind }

// BigInt returns a copy of the integer value of n; ok is false for floats.
func (n Number) BigInt() (_ *big.Int, ok bool) {
	if n.kind != Int {
		return nil, false
	}
	return new(big.Int).Set(n.int()), true
}

// Decimal returns n as a decimal, converting integers.
func (n Number) Decimal() *apd.Decimal {
	if n.kind == Float {
		return new(apd.Decimal).Set(n.f)
	}
	return intDecimal(n.int())
}

// Sign returns -1, 0, or +1.
func (n Number) Sign() int {
	if n.kind == Float {
		return n.f.Sign()
	}
	return n.int().Sign()
}

// Equal reports whether n and m have the same kind and value; an integer is
// never equal to a float, whatever their values.
func (n Number) Equal(m Number) bool {
	if n.kind != m.kind {
		return false
	}
	if n.kind == Float {
		return n.f.Cmp(m.f) == 0
	}
	return n.int().Cmp(m.int()) == 0
}

// String renders integers without a decimal point, and floats in their decimal
// text form.
func (n Number) String() string {
	if n.kind == Float {
		return n.f.String()
	}
	return n.int().String()
}

// GoString supports %#v, used by snapshot dumps.
func (n Number) GoString() string {
	return fmt.Sprintf("%v(%v)", n.kind, n)
}

func (n Number) int() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

func intDecimal(i *big.Int) *apd.Decimal {
	d, _, err := new(apd.Decimal).SetString(i.String())
	if err != nil {
		panic(fmt.Sprintf("unable to convert integer %v to decimal: %v", i, err))
	}
	return d
}
