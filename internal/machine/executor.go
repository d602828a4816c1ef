package machine

// Executor runs a program line by line on one machine. Each line is pushed on
// top of whatever the prior lines left on the stack, so a computation may
// continue across lines.
//
// A line is done once no Function remains anywhere on the stack. Any
// non-function token that is on top while a function remains below it is
// popped and discarded by the stepping.
type Executor struct {
	*Machine
	Lines   []Line
	Current int
}

// NewExecutor creates an executor for lines, starting at the first.
func NewExecutor(m *Machine, lines []Line) *Executor {
	return &Executor{Machine: m, Lines: lines}
}

// Complete reports whether every line has been run.
func (ex *Executor) Complete() bool {
	return ex.Current >= len(ex.Lines)
}

// Append adds more lines to the end of the program.
func (ex *Executor) Append(lines ...Line) {
	ex.Lines = append(ex.Lines, lines...)
}

// Resolve returns a copy of toks where every Text naming a currently bound
// variable is replaced by that variable. Resolving an already resolved
// sequence changes nothing.
func (ex *Executor) Resolve(toks []Token) []Token {
	res := make([]Token, len(toks))
	for i, tok := range toks {
		if s, ok := tok.(Text); ok {
			if v, bound := ex.Context.Variable(string(s)); bound {
				tok = v
			}
		}
		res[i] = tok
	}
	return res
}

// RunLine pushes the current line, after resolving it, and steps the machine
// until the line is done, then advances to the next line.
//
// Any step failure is returned as a LineError; the stack and context are left
// as they were at the point of failure, and the current line is not advanced.
func (ex *Executor) RunLine() error {
	if ex.Complete() {
		return ErrComplete
	}
	line := ex.Lines[ex.Current]
	ex.logf("line", "%v #%v: %v", line.Loc, ex.Current, line)

	ex.Stack.Push(ex.Resolve(line.Tokens)...)
	for ex.Stack.HasFunction() {
		if _, err := ex.Step(); err != nil {
			return LineError{Line: ex.Current, Loc: line.Loc, Err: err}
		}
	}

	ex.Current++
	return nil
}

// Run runs lines until complete, returning the first failure.
func (ex *Executor) Run() error {
	for !ex.Complete() {
		if err := ex.RunLine(); err != nil {
			return err
		}
	}
	return nil
}
