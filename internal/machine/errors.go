package machine

import (
	"errors"
	"fmt"

	"github.com/jcorbin/rpnvm/internal/source"
)

var (
	// ErrStackUnderflow is wrapped by every failure to pop a needed argument,
	// whether the stack was empty or the top token was the wrong variant.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrUnknownVariable is returned when removing a variable binding that
	// has no exact name and value match in the context.
	ErrUnknownVariable = errors.New("unknown variable for deletion")

	// ErrNameBound is returned when registering a function under a name
	// already bound to a variable.
	ErrNameBound = errors.New("name already bound to a variable")

	// ErrComplete is returned when running a line after the last one.
	ErrComplete = errors.New("executor complete")
)

// UnqualifiedTokenError is returned by Classify for a word that is neither a
// number, nor a quoted string, nor the name of any variable or function.
type UnqualifiedTokenError string

func (word UnqualifiedTokenError) Error() string {
	return fmt.Sprintf("unqualified token %q", string(word))
}

// ArgumentError is a stack underflow caused by popping a token of the wrong
// variant.
type ArgumentError struct {
	Want string
	Got  Token
}

func (ae ArgumentError) Error() string {
	return fmt.Sprintf("%v: want %v argument, got %v %q", ErrStackUnderflow, ae.Want, Kind(ae.Got), ae.Got)
}

func (ae ArgumentError) Unwrap() error { return ErrStackUnderflow }

// LineError wraps any failure while running a line, identifying the line by
// its index within the program and by its source location.
type LineError struct {
	Line int
	Loc  source.Location
	Err  error
}

func (le LineError) Error() string {
	if le.Loc.Name == "" {
		return fmt.Sprintf("failed to execute line %v: %v", le.Line, le.Err)
	}
	return fmt.Sprintf("failed to execute line %v (%v): %v", le.Line, le.Loc, le.Err)
}

func (le LineError) Unwrap() error { return le.Err }

// FuncError attributes a failure to the function that returned it.
type FuncError struct {
	Name string
	Err  error
}

func (fe FuncError) Error() string { return fmt.Sprintf("%v: %v", fe.Name, fe.Err) }
func (fe FuncError) Unwrap() error { return fe.Err }
