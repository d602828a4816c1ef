package main

import (
	"bytes"
	"io"

	"github.com/jcorbin/rpnvm/internal/flushio"
	"github.com/jcorbin/rpnvm/internal/machine"
	"github.com/jcorbin/rpnvm/internal/number"
)

// VMOption configures a VM; see New.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
	withPrecision(number.DefaultPrecision),
)

// VMOptions combines any number of options into one, applied in order;
// nil options are ignored.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	return res
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type precisionOption uint32
type debugWordsOption bool
type functionOption machine.Function

type variableOption struct {
	name string
	word string
}

func withInput(r io.Reader) inputOption               { return inputOption{r} }
func withOutput(w io.Writer) outputOption             { return outputOption{w} }
func withTee(w io.Writer) teeOption                   { return teeOption{w} }
func withPrecision(digits uint32) precisionOption     { return precisionOption(digits) }
func withDebugWords(enabled bool) debugWordsOption    { return debugWordsOption(enabled) }
func withVariable(name, word string) variableOption   { return variableOption{name, word} }
func withFunction(fn machine.Function) functionOption { return functionOption(fn) }

func (i inputOption) apply(vm *VM) {
	vm.in = i.Reader
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (digits precisionOption) apply(vm *VM) {
	vm.arith.Precision = uint32(digits)
}

func (enabled debugWordsOption) apply(vm *VM) {
	vm.debugWords = bool(enabled)
}

func (v variableOption) apply(vm *VM) {
	vm.vars = append(vm.vars, v)
}

func (fn functionOption) apply(vm *VM) {
	vm.funcs = append(vm.funcs, machine.Function(fn))
}
