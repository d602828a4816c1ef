package machine

import (
	"fmt"
	"io"
)

// Machine evaluates tokens on its Stack against its Context.
type Machine struct {
	logging
	Stack   Stack
	Context *Context
}

// New creates a machine around ctx; a nil ctx is replaced by an empty one.
func New(ctx *Context) *Machine {
	if ctx == nil {
		ctx = NewContext()
	}
	return &Machine{Context: ctx}
}

// SetLogf sets a trace logging function; nil disables tracing.
func (m *Machine) SetLogf(logfn func(mess string, args ...interface{})) {
	m.logfn = logfn
}

// Step pops the top token of the stack.
//
// If it is a Function, it is called with the remaining stack and the context;
// any tokens it returns are pushed back on top in order, and Step returns a
// nil token. Any function failure is returned, and the stack is left as the
// function left it.
//
// Any other token is simply returned to the caller, which now owns it.
//
// Step returns io.EOF when the stack is empty.
func (m *Machine) Step() (Token, error) {
	tok, err := m.Stack.Pop()
	if err != nil {
		return nil, io.EOF
	}
	fn, isFunc := tok.(Function)
	if !isFunc {
		m.logf("pop", "%v %v", Kind(tok), tok)
		return tok, nil
	}
	if m.logfn != nil {
		m.logf("call", "%v -- s:%v", fn.Name, m.Stack)
	}
	if fn.Call == nil {
		return nil, FuncError{fn.Name, fmt.Errorf("no callable")}
	}
	res, err := fn.Call(&m.Stack, m.Context)
	if err != nil {
		m.logf("fail", "%v: %v", fn.Name, err)
		return nil, FuncError{fn.Name, err}
	}
	m.Stack.Push(res...)
	if m.logfn != nil {
		m.logf("ret", "%v -> %v", fn.Name, Stack(res))
	}
	return nil, nil
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
