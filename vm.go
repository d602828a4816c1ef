package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/rpnvm/internal/builtin"
	"github.com/jcorbin/rpnvm/internal/debugger"
	"github.com/jcorbin/rpnvm/internal/flushio"
	"github.com/jcorbin/rpnvm/internal/machine"
	"github.com/jcorbin/rpnvm/internal/number"
	"github.com/jcorbin/rpnvm/internal/source"
)

// VM runs programs on a line executor around the default function table.
type VM struct {
	logfn func(mess string, args ...interface{})
	in    io.Reader
	out   flushio.WriteFlusher

	arith      number.Arith
	debugWords bool
	vars       []variableOption
	funcs      []machine.Function

	ex      *machine.Executor
	initErr error
}

// init builds the executor on first use: functions given by option come
// first, so that they shadow any default of the same name, then the default
// table, then any variables given by option.
func (vm *VM) init() error {
	if vm.ex != nil || vm.initErr != nil {
		return vm.initErr
	}

	ctx := machine.NewContext()
	vm.initErr = ctx.Register(vm.funcs...)
	if vm.initErr == nil {
		vm.initErr = ctx.Register(builtin.Table(builtin.Env{
			Out:        vm.out,
			In:         vm.in,
			Logf:       vm.debugf,
			Arith:      vm.arith,
			DebugWords: vm.debugWords,
		})...)
	}
	for _, v := range vm.vars {
		if vm.initErr != nil {
			break
		}
		tok, err := machine.Classify(v.word, ctx)
		if err != nil {
			vm.initErr = fmt.Errorf("variable %v: %w", v.name, err)
			break
		}
		ctx.Bind(v.name, tok)
	}
	if vm.initErr != nil {
		return vm.initErr
	}

	m := machine.New(ctx)
	m.SetLogf(vm.logfn)
	vm.ex = machine.NewExecutor(m, nil)
	return nil
}

// debugf reports debug word output through any trace log, or else as lines
// on the program output.
func (vm *VM) debugf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
		return
	}
	fmt.Fprintf(vm.out, mess+"\n", args...)
}

func (vm *VM) logf(mark, mess string, args ...interface{}) {
	if vm.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	vm.logfn("%v %v", mark, mess)
}

func (vm *VM) load(lines []source.Line) error {
	if err := vm.init(); err != nil {
		return err
	}
	prog, err := machine.Compile(lines, vm.ex.Context)
	if err != nil {
		return err
	}
	vm.logf("load", "%v lines", len(prog))
	vm.ex.Append(prog...)
	return nil
}

func (vm *VM) run(ctx context.Context) error {
	for !vm.ex.Complete() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := vm.ex.RunLine(); err != nil {
			return err
		}
	}
	return nil
}

func (vm *VM) debug(ctx context.Context, w io.Writer) error {
	dbg := debugger.New(vm.ex)
	if _, err := dbg.Snapshot().WriteTo(w); err != nil {
		return err
	}
	st := debugger.NewStepper(dbg)
	for st.Scan() {
		if _, err := st.Snapshot().WriteTo(w); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return st.Err()
}

// skip abandons the current line, so that a later run starts after it.
func (vm *VM) skip() {
	if !vm.ex.Complete() {
		vm.logf("skip", "%v", vm.ex.Lines[vm.ex.Current].Loc)
		vm.ex.Current++
	}
}
