// Package machine implements a reverse polish notation stack machine: words
// are classified into tokens against a mutable Context of variables and
// functions, then evaluated on an operand stack, one line at a time.
package machine

import (
	"fmt"
	"reflect"

	"github.com/jcorbin/rpnvm/internal/number"
)

// Token is the unit of data on the stack; its variants are Const, Variable,
// Function, and Text.
type Token interface {
	fmt.Stringer
	token()
}

// Func implements a Function. It may pop any number of its arguments from st,
// and may read or modify ctx. Any returned tokens are pushed in order, so that
// the last one ends up on top.
type Func func(st *Stack, ctx *Context) ([]Token, error)

// Const is a numeric constant.
type Const struct{ number.Number }

// Variable is a named binding; a nil Value is undefined.
type Variable struct {
	Name  string
	Value Token
}

// Function is a named callable.
type Function struct {
	Name string
	Call Func
}

// Text is a raw string, typically a quoted word that named no variable when
// it was classified.
type Text string

func (Const) token()    {}
func (Variable) token() {}
func (Function) token() {}
func (Text) token()     {}

func (c Const) String() string     { return c.Number.String() }
func (fn Function) String() string { return fn.Name }
func (s Text) String() string      { return string(s) }

func (v Variable) String() string {
	if v.Value == nil {
		return fmt.Sprintf("%v (undefined)", v.Name)
	}
	return fmt.Sprintf("%v = %v", v.Name, v.Value)
}

// Int returns an integer Const.
func Int(n int64) Const { return Const{number.Int64(n)} }

// Equal reports whether two tokens are structurally equal. Numbers compare by
// kind and value, variables by name and value, and functions by name and
// callable identity.
func Equal(a, b Token) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Const:
		b, ok := b.(Const)
		return ok && a.Number.Equal(b.Number)
	case Variable:
		b, ok := b.(Variable)
		return ok && a.Equal(b)
	case Function:
		b, ok := b.(Function)
		return ok && a.Equal(b)
	case Text:
		b, ok := b.(Text)
		return ok && a == b
	}
	return false
}

// Equal reports whether v and o have the same name and equal values.
func (v Variable) Equal(o Variable) bool {
	return v.Name == o.Name && Equal(v.Value, o.Value)
}

// Equal reports whether fn and o share a name and a callable.
func (fn Function) Equal(o Function) bool {
	return fn.Name == o.Name && funcID(fn.Call) == funcID(o.Call)
}

func funcID(f Func) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}

// EqualTokens reports whether two token sequences are pairwise Equal.
func EqualTokens(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Kind names the variant of a token, for use in error messages and dumps.
func Kind(tok Token) string {
	switch tok.(type) {
	case nil:
		return "nothing"
	case Const:
		return "const"
	case Variable:
		return "variable"
	case Function:
		return "function"
	case Text:
		return "text"
	}
	return fmt.Sprintf("%T", tok)
}
