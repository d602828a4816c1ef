// Package debugger observes a line executor: it takes read-only snapshots of
// the machine state, and steps it one line at a time.
package debugger

import (
	"github.com/jcorbin/rpnvm/internal/machine"
)

// Snapshot is a copy of executor state. Changes to the executor after the
// snapshot is taken do not show through it.
type Snapshot struct {
	Stack    []machine.Token
	Context  *machine.Context
	Lines    []machine.Line
	Current  int
	Complete bool

	// Stepped is true if the snapshot was taken after running a line, whose
	// outcome is then in Result.
	Stepped bool
	Result  error
}

// Failed reports whether the snapshot follows a failed line.
func (snap Snapshot) Failed() bool { return snap.Stepped && snap.Result != nil }

// Take snapshots the state of ex.
func Take(ex *machine.Executor) Snapshot {
	return Snapshot{
		Stack:    append([]machine.Token(nil), ex.Stack...),
		Context:  ex.Context.Clone(),
		Lines:    append([]machine.Line(nil), ex.Lines...),
		Current:  ex.Current,
		Complete: ex.Complete(),
	}
}

// Debugger drives an executor one line at a time.
type Debugger struct {
	ex *machine.Executor
}

// New creates a debugger around ex.
func New(ex *machine.Executor) *Debugger { return &Debugger{ex} }

// Done reports whether the executor has run every line.
func (dbg *Debugger) Done() bool { return dbg.ex.Complete() }

// Snapshot returns the current state, without stepping.
func (dbg *Debugger) Snapshot() Snapshot { return Take(dbg.ex) }

// Next runs one line, returning a snapshot that carries its result.
func (dbg *Debugger) Next() Snapshot {
	err := dbg.ex.RunLine()
	snap := Take(dbg.ex)
	snap.Stepped = true
	snap.Result = err
	return snap
}

// Stepper iterates over a debugger, one line at a time:
//
//	for st := debugger.NewStepper(dbg); st.Scan(); {
//		snap := st.Snapshot()
//		...
//	}
//
// Scanning stops once the executor is complete, or after the first failed
// line; since a failed line never advances, stepping again would only repeat
// it.
type Stepper struct {
	dbg  *Debugger
	snap Snapshot
	stop bool
}

// NewStepper creates a stepper around dbg.
func NewStepper(dbg *Debugger) *Stepper { return &Stepper{dbg: dbg} }

// Scan runs the next line, returning false if there was nothing left to run.
func (st *Stepper) Scan() bool {
	if st.stop || st.dbg.Done() {
		return false
	}
	st.snap = st.dbg.Next()
	st.stop = st.snap.Failed()
	return true
}

// Snapshot returns the snapshot taken by the last Scan.
func (st *Stepper) Snapshot() Snapshot { return st.snap }

// Err returns the failure that stopped scanning, if any.
func (st *Stepper) Err() error {
	if st.snap.Failed() {
		return st.snap.Result
	}
	return nil
}
