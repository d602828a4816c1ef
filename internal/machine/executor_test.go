package machine_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rpnvm/internal/builtin"
	"github.com/jcorbin/rpnvm/internal/machine"
	"github.com/jcorbin/rpnvm/internal/source"
)

type execTest struct {
	out bytes.Buffer
	ex  *machine.Executor
}

func newExecTest(t *testing.T, prog string) *execTest {
	var et execTest
	ctx := machine.NewContext(builtin.Table(builtin.Env{Out: &et.out})...)
	lines, err := machine.Compile(source.Parse(t.Name(), prog), ctx)
	require.NoError(t, err, "must compile")
	et.ex = machine.NewExecutor(machine.New(ctx), lines)
	return &et
}

func TestExecutor_addThenPrint(t *testing.T) {
	et := newExecTest(t, "5 3 +\nPrint")

	require.NoError(t, et.ex.RunLine())
	assertStack(t, []machine.Token{machine.Int(8)}, et.ex.Stack)
	assert.Equal(t, 1, et.ex.Current)
	assert.False(t, et.ex.Complete())

	require.NoError(t, et.ex.RunLine())
	assert.Equal(t, "8\n", et.out.String())
	assert.True(t, et.ex.Complete())
	assert.Equal(t, machine.ErrComplete, et.ex.RunLine())
}

func TestExecutor_lateBinding(t *testing.T) {
	et := newExecTest(t, "\"x\" 10 :=\n\"x\" \"x\" +\nPrint")
	assertStack(t, []machine.Token{machine.Text("x"), machine.Text("x"), et.ex.Lines[1].Tokens[2]}, et.ex.Lines[1].Tokens,
		"x is unbound at compile time")

	require.NoError(t, et.ex.Run())
	assert.Equal(t, "20\n", et.out.String())
	assertStack(t, []machine.Token{machine.Text("x"), machine.Text("x"), et.ex.Lines[1].Tokens[2]}, et.ex.Lines[1].Tokens,
		"program lines must not be modified")
}

func TestExecutor_resolveIdempotent(t *testing.T) {
	et := newExecTest(t, "")
	et.ex.Context.Bind("x", machine.Int(10))
	line := []machine.Token{machine.Text("x"), machine.Text("y"), machine.Int(1), machine.Variable{Name: "x", Value: machine.Int(10)}}

	once := et.ex.Resolve(line)
	assertStack(t, []machine.Token{
		machine.Variable{Name: "x", Value: machine.Int(10)},
		machine.Text("y"),
		machine.Int(1),
		machine.Variable{Name: "x", Value: machine.Int(10)},
	}, once)
	assertStack(t, once, et.ex.Resolve(once), "resolving twice changes nothing")
	assert.Equal(t, machine.Text("x"), line[0], "input must not be modified")
}

func TestExecutor_failure(t *testing.T) {
	et := newExecTest(t, "+\n1 Print")
	err := et.ex.Run()
	require.Error(t, err)

	var le machine.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 0, le.Line)
	assert.Equal(t, source.Location{Name: t.Name(), Line: 1}, le.Loc)
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	assert.EqualError(t, err, "failed to execute line 0 (TestExecutor_failure:1): +: stack underflow")

	assert.Equal(t, 0, et.ex.Current, "failed line does not advance")
	assert.Equal(t, "", et.out.String(), "later lines must not run")
}

func TestExecutor_noRollback(t *testing.T) {
	et := newExecTest(t, "1 2\n\"a\" 3 +")
	err := et.ex.Run()
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	var le machine.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 1, le.Line)
	assertStack(t, []machine.Token{machine.Int(1), machine.Int(2)}, et.ex.Stack,
		"stack frozen at the point of failure")
}

func TestExecutor_residualAcrossLines(t *testing.T) {
	et := newExecTest(t, "2 3 4 *\n+\nPrint")
	require.NoError(t, et.ex.RunLine())
	assertStack(t, []machine.Token{machine.Int(2), machine.Int(12)}, et.ex.Stack)
	require.NoError(t, et.ex.Run())
	assert.Equal(t, "14\n", et.out.String())
}

func TestExecutor_buriedFunction(t *testing.T) {
	// values above a buried function are popped away until it runs
	et := newExecTest(t, "5 3 + 2 7")
	require.NoError(t, et.ex.Run())
	assertStack(t, []machine.Token{machine.Int(8)}, et.ex.Stack)
}

func TestExecutor_append(t *testing.T) {
	et := newExecTest(t, "1 2")
	require.NoError(t, et.ex.Run())

	lines, err := machine.Compile(source.Parse("more", "+\nPrint"), et.ex.Context)
	require.NoError(t, err)
	et.ex.Append(lines...)
	assert.False(t, et.ex.Complete())
	require.NoError(t, et.ex.Run())
	assert.Equal(t, "3\n", et.out.String())
}

func TestExecutor_emptyLines(t *testing.T) {
	et := newExecTest(t, "1\n\n// nothing\n2 +\nPrint")
	require.Len(t, et.ex.Lines, 4)
	require.NoError(t, et.ex.Run())
	assert.Equal(t, "3\n", et.out.String())
}
