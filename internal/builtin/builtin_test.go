package builtin_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rpnvm/internal/builtin"
	"github.com/jcorbin/rpnvm/internal/machine"
	"github.com/jcorbin/rpnvm/internal/number"
	"github.com/jcorbin/rpnvm/internal/source"
)

type runResult struct {
	ex  *machine.Executor
	out bytes.Buffer
	log []string
	err error
}

func run(t *testing.T, env builtin.Env, prog string) *runResult {
	var res runResult
	env.Out = &res.out
	env.Logf = func(mess string, args ...interface{}) {
		if len(args) > 0 {
			mess = fmt.Sprintf(mess, args...)
		}
		res.log = append(res.log, mess)
	}
	ctx := machine.NewContext(builtin.Table(env)...)
	lines, err := machine.Compile(source.Parse(t.Name(), prog), ctx)
	require.NoError(t, err, "must compile")
	res.ex = machine.NewExecutor(machine.New(ctx), lines)
	res.err = res.ex.Run()
	return &res
}

func TestTable_names(t *testing.T) {
	var names []string
	for _, fn := range builtin.Table(builtin.Env{}) {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []string{"+", "-", "*", "/", "Print", "Exit", "Nop", "Clear", ":=", "=:", "&"}, names)

	names = names[:0]
	for _, fn := range builtin.Table(builtin.Env{DebugWords: true}) {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []string{"::PAUSE", "::STACK_DUMP", "::CONTEXT_DUMP"}, names[len(names)-3:])
}

func TestArithmetic(t *testing.T) {
	for _, tc := range []struct {
		prog string
		want string
	}{
		{"5 3 +", "8"},
		{"5 3 -", "-2"},
		{"3 5 -", "2"},
		{"5 3 *", "15"},
		{"4 12 /", "3"},
		{"2 1 /", "0.5"},
		{"2 7 /", "3.5"},
		{"1 2.5 -", "1.5"},
		{"1.5 1 +", "2.5"},
		{"2 3 4 *\n+", "14"},
		{"9223372036854775807 1 +", "9223372036854775808"},
	} {
		t.Run(tc.prog, func(t *testing.T) {
			res := run(t, builtin.Env{}, tc.prog+"\nPrint")
			require.NoError(t, res.err)
			assert.Equal(t, tc.want+"\n", res.out.String())
			assert.Equal(t, 0, res.ex.Stack.Len())
		})
	}
}

func TestArithmetic_underflow(t *testing.T) {
	for _, prog := range []string{"+", "1 +", `"a" 1 +`} {
		t.Run(prog, func(t *testing.T) {
			res := run(t, builtin.Env{}, prog)
			var le machine.LineError
			require.True(t, errors.As(res.err, &le), "expected a LineError, got %v", res.err)
			assert.Equal(t, 0, le.Line)
			assert.True(t, errors.Is(res.err, machine.ErrStackUnderflow))
		})
	}
}

func TestArithmetic_divisionByZero(t *testing.T) {
	res := run(t, builtin.Env{}, "0 1 /")
	assert.True(t, errors.Is(res.err, number.ErrDivisionByZero))
}

func TestPrint(t *testing.T) {
	res := run(t, builtin.Env{}, "\"hello world\" Print\n2.50 Print")
	require.NoError(t, res.err)
	assert.Equal(t, "hello world\n2.50\n", res.out.String())

	res = run(t, builtin.Env{}, "\"x\" 1 :=\n\"x\" Print")
	require.NoError(t, res.err)
	assert.Equal(t, "x = 1\n", res.out.String())
}

func TestAssign(t *testing.T) {
	res := run(t, builtin.Env{}, "\"x\" 10 :=\n20 \"y\" =:")
	require.NoError(t, res.err)
	want := []machine.Variable{
		{Name: "x", Value: machine.Int(10)},
		{Name: "y", Value: machine.Int(20)},
	}
	require.Len(t, res.ex.Context.Variables, len(want))
	for i, v := range res.ex.Context.Variables {
		assert.True(t, want[i].Equal(v), "expected [%v] %v, got %v", i, want[i], v)
	}
}

func TestAssign_duplicates(t *testing.T) {
	// evaluation starts from the end of the line
	res := run(t, builtin.Env{}, "\"x\" 1 := \"x\" 2 :=\n\"x\" Print")
	require.NoError(t, res.err)
	assert.Len(t, res.ex.Context.Variables, 2, "duplicate bindings coexist")
	assert.Equal(t, "x = 2\n", res.out.String(), "first binding wins")
}

func TestAssign_needsText(t *testing.T) {
	res := run(t, builtin.Env{}, "1 2 :=")
	assert.True(t, errors.Is(res.err, machine.ErrStackUnderflow))
	var ae machine.ArgumentError
	require.True(t, errors.As(res.err, &ae))
	assert.Equal(t, "text", ae.Want)
}

func TestDeassign(t *testing.T) {
	res := run(t, builtin.Env{}, "\"x\" 10 :=\n\"x\" &")
	require.NoError(t, res.err)
	assert.Empty(t, res.ex.Context.Variables)
}

func TestDeassign_exactMatch(t *testing.T) {
	ctx := machine.NewContext(builtin.Table(builtin.Env{})...)
	ctx.Bind("x", machine.Int(10))
	amp, ok := ctx.Function("&")
	require.True(t, ok)

	m := machine.New(ctx)
	m.Stack.Push(machine.Variable{Name: "x", Value: machine.Int(11)}, amp)
	_, err := m.Step()
	assert.True(t, errors.Is(err, machine.ErrUnknownVariable), "got %v", err)
	assert.Len(t, ctx.Variables, 1)

	m.Stack.Push(machine.Variable{Name: "x", Value: machine.Const{Number: number.MustParse("10.0")}}, amp)
	_, err = m.Step()
	assert.True(t, errors.Is(err, machine.ErrUnknownVariable), "float 10.0 is not int 10")

	m.Stack.Push(machine.Variable{Name: "x", Value: machine.Int(10)}, amp)
	_, err = m.Step()
	assert.NoError(t, err)
	assert.Empty(t, ctx.Variables)
}

func TestClearNop(t *testing.T) {
	res := run(t, builtin.Env{}, "1 2 3 Clear\n4 Nop")
	require.NoError(t, res.err)
	assert.True(t, machine.EqualTokens([]machine.Token{machine.Int(4)}, res.ex.Stack), "got %v", res.ex.Stack)
}

func TestExit(t *testing.T) {
	res := run(t, builtin.Env{}, "1 Print\nExit\n2 Print")
	assert.True(t, errors.Is(res.err, builtin.ErrExit))
	assert.Equal(t, "1\n", res.out.String(), "nothing runs after Exit")
	assert.Equal(t, 1, res.ex.Current)
}

func TestDebugWords(t *testing.T) {
	var in strings.Reader
	in.Reset("\n")
	res := run(t, builtin.Env{DebugWords: true, In: &in}, "\"x\" 1 :=\n2 \"s\" ::STACK_DUMP\n::CONTEXT_DUMP\n::PAUSE")
	require.NoError(t, res.err)
	require.Len(t, res.log, 3)
	assert.Equal(t, `STACK_DUMP: [const(2), text(s)]`, res.log[0])
	assert.True(t, strings.HasPrefix(res.log[1], `CONTEXT_DUMP: variables: [variable(x = 1)] functions: ["+" "-"`), "got %q", res.log[1])
	assert.Equal(t, "DEBUG: press Enter to continue...", res.log[2])
	assert.Equal(t, 0, in.Len(), "pause must consume its input line")
}

func TestDebugWords_disabled(t *testing.T) {
	ctx := machine.NewContext(builtin.Table(builtin.Env{})...)
	_, err := machine.Classify("::PAUSE", ctx)
	assert.Equal(t, machine.UnqualifiedTokenError("::PAUSE"), err)
}
