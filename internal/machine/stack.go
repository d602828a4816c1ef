package machine

import "github.com/jcorbin/rpnvm/internal/number"

// Stack holds tokens with the top of the stack last.
type Stack []Token

// Len returns the number of tokens on the stack.
func (st Stack) Len() int { return len(st) }

// Top returns the top token, or nil if the stack is empty.
func (st Stack) Top() Token {
	if i := len(st) - 1; i >= 0 {
		return st[i]
	}
	return nil
}

// HasFunction reports whether any token on the stack, at any depth, is a
// Function.
func (st Stack) HasFunction() bool {
	for _, tok := range st {
		if _, ok := tok.(Function); ok {
			return true
		}
	}
	return false
}

// Push appends tokens, so that the last one becomes the top.
func (st *Stack) Push(toks ...Token) {
	*st = append(*st, toks...)
}

// Pop removes and returns the top token.
func (st *Stack) Pop() (Token, error) {
	i := len(*st) - 1
	if i < 0 {
		return nil, ErrStackUnderflow
	}
	tok := (*st)[i]
	(*st)[i] = nil
	*st = (*st)[:i]
	return tok, nil
}

// Clear drops every token.
func (st *Stack) Clear() {
	for i := range *st {
		(*st)[i] = nil
	}
	*st = (*st)[:0]
}

// PopNumber pops a number: either a Const, or a Variable whose value is
// (perhaps through other variables) a Const.
// The top token is consumed even if it is not a number.
func (st *Stack) PopNumber() (number.Number, error) {
	tok, err := st.Pop()
	if err != nil {
		return number.Number{}, err
	}
	for {
		switch t := tok.(type) {
		case Const:
			return t.Number, nil
		case Variable:
			if t.Value != nil {
				tok = t.Value
				continue
			}
		}
		return number.Number{}, ArgumentError{"const", tok}
	}
}

// PopText pops a Text token. The top token is consumed even if it is not Text.
func (st *Stack) PopText() (string, error) {
	tok, err := st.Pop()
	if err != nil {
		return "", err
	}
	if s, ok := tok.(Text); ok {
		return string(s), nil
	}
	return "", ArgumentError{"text", tok}
}

// PopVariable pops a Variable token. The top token is consumed even if it is
// not a Variable.
func (st *Stack) PopVariable() (Variable, error) {
	tok, err := st.Pop()
	if err != nil {
		return Variable{}, err
	}
	if v, ok := tok.(Variable); ok {
		return v, nil
	}
	return Variable{}, ArgumentError{"variable", tok}
}
