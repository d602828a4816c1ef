// Package builtin provides the default function table.
//
// Every entry follows the machine calling convention: it receives the whole
// remaining stack and the context, pops whatever arguments it needs, and
// returns tokens to push.
package builtin

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/rpnvm/internal/machine"
	"github.com/jcorbin/rpnvm/internal/number"
)

// ErrExit is returned by the Exit function; it halts the run, and callers
// should then stop without further work. No later line runs, but output
// written before Exit is still flushed when the run unwinds.
var ErrExit = errors.New("exit")

// Env provides the functions with everything outside of the stack and
// context.
type Env struct {
	Out   io.Writer
	In    io.Reader
	Logf  func(mess string, args ...interface{})
	Arith number.Arith

	// DebugWords adds ::PAUSE ::STACK_DUMP and ::CONTEXT_DUMP to the table.
	DebugWords bool
}

// Table returns the default functions, in a fixed order.
func Table(env Env) []machine.Function {
	fns := functions{env: env}
	if fns.env.Out == nil {
		fns.env.Out = io.Discard
	}
	if fns.env.Logf == nil {
		fns.env.Logf = func(string, ...interface{}) {}
	}

	table := []machine.Function{
		{Name: "+", Call: arith(fns.env.Arith.Add)},
		{Name: "-", Call: arith(fns.env.Arith.Sub)},
		{Name: "*", Call: arith(fns.env.Arith.Mul)},
		{Name: "/", Call: arith(fns.env.Arith.Quo)},
		{Name: "Print", Call: fns.print},
		{Name: "Exit", Call: exit},
		{Name: "Nop", Call: nop},
		{Name: "Clear", Call: clearStack},
		{Name: ":=", Call: assign},
		{Name: "=:", Call: revAssign},
		{Name: "&", Call: deassign},
	}
	if env.DebugWords {
		table = append(table,
			machine.Function{Name: "::PAUSE", Call: fns.pause},
			machine.Function{Name: "::STACK_DUMP", Call: fns.stackDump},
			machine.Function{Name: "::CONTEXT_DUMP", Call: fns.contextDump},
		)
	}
	return table
}

type functions struct {
	env Env
	in  *bufio.Reader
}

// arith pops a then b, pushing a op b; so "10 4 -" is -6.
func arith(op func(a, b number.Number) (number.Number, error)) machine.Func {
	return func(st *machine.Stack, _ *machine.Context) ([]machine.Token, error) {
		a, err := st.PopNumber()
		if err != nil {
			return nil, err
		}
		b, err := st.PopNumber()
		if err != nil {
			return nil, err
		}
		res, err := op(a, b)
		if err != nil {
			return nil, err
		}
		return []machine.Token{machine.Const{Number: res}}, nil
	}
}

func (fns *functions) print(st *machine.Stack, _ *machine.Context) ([]machine.Token, error) {
	tok, err := st.Pop()
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(fns.env.Out, tok); err != nil {
		return nil, err
	}
	return nil, nil
}

func exit(*machine.Stack, *machine.Context) ([]machine.Token, error) { return nil, ErrExit }
func nop(*machine.Stack, *machine.Context) ([]machine.Token, error)  { return nil, nil }

func clearStack(st *machine.Stack, _ *machine.Context) ([]machine.Token, error) {
	st.Clear()
	return nil, nil
}

// assign pops a value then a name.
func assign(st *machine.Stack, ctx *machine.Context) ([]machine.Token, error) {
	value, err := st.Pop()
	if err != nil {
		return nil, err
	}
	name, err := st.PopText()
	if err != nil {
		return nil, err
	}
	ctx.Bind(name, value)
	return nil, nil
}

// revAssign pops a name then a value.
func revAssign(st *machine.Stack, ctx *machine.Context) ([]machine.Token, error) {
	name, err := st.PopText()
	if err != nil {
		return nil, err
	}
	value, err := st.Pop()
	if err != nil {
		return nil, err
	}
	ctx.Bind(name, value)
	return nil, nil
}

// deassign pops a variable, removing its exact binding.
func deassign(st *machine.Stack, ctx *machine.Context) ([]machine.Token, error) {
	v, err := st.PopVariable()
	if err != nil {
		return nil, err
	}
	return nil, ctx.Unbind(v)
}
