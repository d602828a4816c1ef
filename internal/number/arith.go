package number

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant decimal digits kept by float
// arithmetic when an Arith has no Precision set.
const DefaultPrecision = 64

// Arith combines Numbers. Two integers combine on the integer path; if either
// operand is a float, both are promoted and the decimal path is used.
type Arith struct {
	// Precision in significant decimal digits for float results.
	Precision uint32
}

func (ar Arith) context() *apd.Context {
	prec := ar.Precision
	if prec == 0 {
		prec = DefaultPrecision
	}
	return apd.BaseContext.WithPrecision(prec)
}

// Add returns a+b.
func (ar Arith) Add(a, b Number) (Number, error) {
	if a.kind == Int && b.kind == Int {
		return Number{kind: Int, i: new(big.Int).Add(a.int(), b.int())}, nil
	}
	return ar.float(a, b, (*apd.Context).Add)
}

// Sub returns a-b.
func (ar Arith) Sub(a, b Number) (Number, error) {
	if a.kind == Int && b.kind == Int {
		return Number{kind: Int, i: new(big.Int).Sub(a.int(), b.int())}, nil
	}
	return ar.float(a, b, (*apd.Context).Sub)
}

// Mul returns a*b.
func (ar Arith) Mul(a, b Number) (Number, error) {
	if a.kind == Int && b.kind == Int {
		return Number{kind: Int, i: new(big.Int).Mul(a.int(), b.int())}, nil
	}
	return ar.float(a, b, (*apd.Context).Mul)
}

// Quo returns a/b. Integer division stays integral only when it is exact;
// otherwise the quotient is a float.
func (ar Arith) Quo(a, b Number) (Number, error) {
	if b.Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	if a.kind == Int && b.kind == Int {
		q, r := new(big.Int).QuoRem(a.int(), b.int(), new(big.Int))
		if r.Sign() == 0 {
			return Number{kind: Int, i: q}, nil
		}
	}
	return ar.float(a, b, (*apd.Context).Quo)
}

type decimalOp func(ctx *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)

func (ar Arith) float(a, b Number, op decimalOp) (Number, error) {
	d := new(apd.Decimal)
	if _, err := op(ar.context(), d, a.Decimal(), b.Decimal()); err != nil {
		return Number{}, err
	}
	return Number{kind: Float, f: d}, nil
}
