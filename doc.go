/* Command rpnvm runs reverse polish notation programs on a line buffered
stack machine.

A program is a sequence of lines, each a sequence of words separated by single
spaces. A line beginning with // is a comment. A double quote starts a region
in which spaces do not separate words, up to the next double quote.

Every word is classified, before the program runs, as one of:

	"quoted"   the variable named by the quoted content, if one is bound;
	           otherwise the text itself
	42 -7      an integer constant, of arbitrary precision
	1.5 .5     a decimal float constant
	name       a bound variable, or else a registered function

Numbers always win: a variable or function named "5" can only be reached by
quoting it, or not at all.

Each line is pushed onto the stack on top of whatever earlier lines left
there, and then the top of the stack is evaluated until no function remains
anywhere on the stack. Popping a function calls it with the rest of the stack;
popping anything else discards it. So within a line evaluation runs from its
end, and results flow between lines:

	5 3 +
	Print

prints 8. Quoted words naming a variable bound by an earlier line resolve to
that variable when their line is pushed:

	"x" 10 :=
	"x" "x" +
	Print

prints 20.

Default functions:

	+ - * /    pop a then b, push a op b, so "10 4 -" is -6; integers stay
	           integers unless a
	           division is inexact, any float operand makes a float result
	Print      pop and print anything
	Exit       stop at once
	Nop        do nothing
	Clear      drop everything on the stack
	:=         pop a value then a quoted name, and bind them
	=:         pop a quoted name then a value, and bind them
	&          pop a variable, and remove its exact binding

With -debug-words, ::PAUSE ::STACK_DUMP and ::CONTEXT_DUMP are also defined.

Usage:

	rpnvm [flags] [file ...]

Without files or -e, the program is read from standard input; when standard
input is a terminal, an interactive prompt runs each entered line instead.
*/
package main
