package builtin

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jcorbin/rpnvm/internal/machine"
)

// pause flushes any buffered output, then waits for a line of input.
func (fns *functions) pause(*machine.Stack, *machine.Context) ([]machine.Token, error) {
	if fl, ok := fns.env.Out.(interface{ Flush() error }); ok {
		if err := fl.Flush(); err != nil {
			return nil, err
		}
	}
	if fns.env.In == nil {
		return nil, nil
	}
	if fns.in == nil {
		fns.in = bufio.NewReader(fns.env.In)
	}
	fns.env.Logf("DEBUG: press Enter to continue...")
	if _, err := fns.in.ReadString('\n'); err != nil && err != io.EOF {
		return nil, err
	}
	return nil, nil
}

func (fns *functions) stackDump(st *machine.Stack, _ *machine.Context) ([]machine.Token, error) {
	fns.env.Logf("STACK_DUMP: %v", dumpTokens(*st))
	return nil, nil
}

func (fns *functions) contextDump(_ *machine.Stack, ctx *machine.Context) ([]machine.Token, error) {
	vars := make([]machine.Token, len(ctx.Variables))
	for i, v := range ctx.Variables {
		vars[i] = v
	}
	names := make([]string, len(ctx.Functions))
	for i, fn := range ctx.Functions {
		names[i] = fn.Name
	}
	fns.env.Logf("CONTEXT_DUMP: variables: %v functions: %q", dumpTokens(vars), names)
	return nil, nil
}

func dumpTokens(toks []machine.Token) string {
	b := []byte{'['}
	for i, tok := range toks {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, fmt.Sprintf("%v(%v)", machine.Kind(tok), tok)...)
	}
	return string(append(b, ']'))
}
