package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// repl runs each line entered at a terminal prompt as soon as it is entered.
//
// A failed line is reported through errf and then skipped, leaving the stack
// as the failure left it; the session ends at end of input, on an interrupt,
// or once the program calls Exit.
func repl(ctx context.Context, vm *VM, errf func(mess string, args ...interface{})) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for n := 1; ; n++ {
		text, err := ln.Prompt(prompt(vm))
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(text)

		if err := vm.LoadString(fmt.Sprintf("repl#%v", n), text); err != nil {
			errf("%v", err)
			continue
		}
		if err := vm.Run(ctx); IsExit(err) {
			return err
		} else if ctx.Err() != nil {
			return ctx.Err()
		} else if err != nil {
			errf("%v", err)
			vm.skip()
		}
	}
}

func prompt(vm *VM) string {
	if stack := vm.Stack(); len(stack) > 0 {
		return fmt.Sprintf("%v> ", stack[len(stack)-1])
	}
	return "> "
}
