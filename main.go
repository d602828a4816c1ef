package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/rpnvm/internal/logio"
	"github.com/jcorbin/rpnvm/internal/number"
	"github.com/jcorbin/rpnvm/internal/panicerr"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	ctx := context.Background()

	var (
		timeout    time.Duration
		trace      bool
		debug      bool
		debugWords bool
		precision  uint
		eval       string
		vars       varFlags
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&debug, "debug", false, "dump machine state after every line")
	flag.BoolVar(&debugWords, "debug-words", false, "define ::PAUSE ::STACK_DUMP and ::CONTEXT_DUMP")
	flag.UintVar(&precision, "precision", number.DefaultPrecision, "significant digits of float arithmetic")
	flag.StringVar(&eval, "e", "", "run the given program text instead of any files")
	flag.Var(&vars, "var", "bind a variable before running, as `name=word`; may be repeated")
	flag.Parse()

	var opts = []VMOption{
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
		WithPrecision(uint32(precision)),
		WithDebugWords(debugWords),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	for _, v := range vars {
		opts = append(opts, WithVariable(v.name, v.word))
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	interactive := false
	switch {
	case eval != "":
		log.ErrorIf(vm.LoadString("-e", eval))
	case flag.NArg() > 0:
		for _, path := range flag.Args() {
			log.ErrorIf(vm.LoadFile(path))
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		interactive = true
	default:
		log.ErrorIf(vm.Load("<stdin>", os.Stdin))
	}
	if log.ExitCode() != 0 {
		return
	}

	var err error
	switch {
	case interactive:
		err = repl(ctx, vm, log.Leveledf("ERROR"))
	case debug:
		lw := logio.Writer{Logf: log.Leveledf("DEBUG")}
		err = vm.Debug(ctx, &lw)
		lw.Close()
	default:
		err = vm.Run(ctx)
	}
	if !IsExit(err) {
		log.ErrorIf(err)
	}
	if stack := panicerr.Stack(err); stack != "" && trace {
		log.Printf("TRACE", "%s", stack)
	}
}

type varFlag struct {
	name string
	word string
}

type varFlags []varFlag

func (vfs *varFlags) String() string {
	parts := make([]string, len(*vfs))
	for i, vf := range *vfs {
		parts[i] = vf.name + "=" + vf.word
	}
	return strings.Join(parts, " ")
}

func (vfs *varFlags) Set(s string) error {
	i := strings.IndexByte(s, '=')
	if i <= 0 {
		return fmt.Errorf("invalid variable %q, want name=word", s)
	}
	*vfs = append(*vfs, varFlag{s[:i], s[i+1:]})
	return nil
}
