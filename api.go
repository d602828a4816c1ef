package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/rpnvm/internal/builtin"
	"github.com/jcorbin/rpnvm/internal/debugger"
	"github.com/jcorbin/rpnvm/internal/machine"
	"github.com/jcorbin/rpnvm/internal/panicerr"
	"github.com/jcorbin/rpnvm/internal/source"
)

// New creates a VM with the given options applied over the defaults: no
// input, discarded output, and default arithmetic precision.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Load parses and compiles a program read from r, appending its lines to any
// already loaded; name locates the lines in any later error.
func (vm *VM) Load(name string, r io.Reader) error {
	lines, err := source.Read(name, r)
	if err != nil {
		return err
	}
	return vm.load(lines)
}

// LoadFile is like Load for a named file.
func (vm *VM) LoadFile(path string) error {
	lines, err := source.ReadFile(path)
	if err != nil {
		return err
	}
	return vm.load(lines)
}

// LoadString is like Load for program text.
func (vm *VM) LoadString(name, text string) error {
	return vm.load(source.Parse(name, text))
}

// Run executes loaded lines until all have run, one fails, or ctx is done.
// Cancellation is only noticed between lines.
//
// A program that calls Exit stops with an error matching IsExit; any panic
// within a function is returned as an error, rather than crashing the caller.
// Output is flushed in every case.
func (vm *VM) Run(ctx context.Context) error {
	if err := vm.init(); err != nil {
		return err
	}
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Debug is like Run, but writes a snapshot dump to w before the first line
// and after every line run, stopping after the first failure.
func (vm *VM) Debug(ctx context.Context, w io.Writer) error {
	if err := vm.init(); err != nil {
		return err
	}
	err := panicerr.Recover("VM", func() error {
		return vm.debug(ctx, w)
	})
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Debugger returns a debugger around the VM's executor.
func (vm *VM) Debugger() (*debugger.Debugger, error) {
	if err := vm.init(); err != nil {
		return nil, err
	}
	return debugger.New(vm.ex), nil
}

// Stack returns a copy of the VM's stack, bottom first.
func (vm *VM) Stack() []machine.Token {
	if vm.ex == nil {
		return nil
	}
	return append([]machine.Token(nil), vm.ex.Stack...)
}

// IsExit reports whether err is due to a program calling Exit.
func IsExit(err error) bool { return errors.Is(err, builtin.ErrExit) }

// WithInput sets where ::PAUSE reads its line from.
func WithInput(r io.Reader) VMOption { return withInput(r) }

// WithOutput sets where Print writes; it replaces any earlier output or tee.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee copies output to w as well.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithPrecision sets the significant digits kept by float arithmetic.
func WithPrecision(digits uint32) VMOption { return withPrecision(digits) }

// WithDebugWords defines ::PAUSE ::STACK_DUMP and ::CONTEXT_DUMP.
func WithDebugWords(enabled bool) VMOption { return withDebugWords(enabled) }

// WithVariable binds name to the value of word, classified like any
// program word, before the program runs.
func WithVariable(name, word string) VMOption { return withVariable(name, word) }

// WithFunction registers an extra function; it shadows any default function
// of the same name.
func WithFunction(name string, call machine.Func) VMOption {
	return withFunction(machine.Function{Name: name, Call: call})
}

// WithLogf enables trace logging of every line, call, and pop.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
