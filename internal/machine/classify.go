package machine

import (
	"fmt"
	"strings"

	"github.com/jcorbin/rpnvm/internal/number"
	"github.com/jcorbin/rpnvm/internal/source"
)

// Classify resolves a word into a token, trying in order:
//  1. a quoted word, resolving to the variable named by its inner content if
//     one is bound, else to Text of that content
//  2. an integer literal
//  3. a decimal float literal
//  4. the name of a bound variable
//  5. the name of a registered function
//
// Numeric literals therefore always shadow variable and function names.
// The context is only read.
func Classify(word string, ctx *Context) (Token, error) {
	if len(word) >= 2 && strings.HasPrefix(word, `"`) && strings.HasSuffix(word, `"`) {
		inner := word[1 : len(word)-1]
		if v, ok := ctx.Variable(inner); ok {
			return v, nil
		}
		return Text(inner), nil
	}
	if n, ok := number.ParseInt(word); ok {
		return Const{n}, nil
	}
	if n, ok := number.ParseFloat(word); ok {
		return Const{n}, nil
	}
	if v, ok := ctx.Variable(word); ok {
		return v, nil
	}
	if fn, ok := ctx.Function(word); ok {
		return fn, nil
	}
	return nil, UnqualifiedTokenError(word)
}

// Line is a classified line of a program.
type Line struct {
	Loc    source.Location
	Tokens []Token
}

func (line Line) String() string {
	var sb strings.Builder
	for i, tok := range line.Tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s, ok := tok.(Text); ok {
			fmt.Fprintf(&sb, "%q", string(s))
		} else {
			sb.WriteString(tok.String())
		}
	}
	return sb.String()
}

// Compile classifies every word of every source line, failing on the first
// word that Classify rejects.
func Compile(lines []source.Line, ctx *Context) ([]Line, error) {
	prog := make([]Line, 0, len(lines))
	for _, sl := range lines {
		line := Line{Loc: sl.Location, Tokens: make([]Token, 0, len(sl.Words))}
		for _, word := range sl.Words {
			tok, err := Classify(word, ctx)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", sl.Location, err)
			}
			line.Tokens = append(line.Tokens, tok)
		}
		prog = append(prog, line)
	}
	return prog, nil
}
