package machine

// Context is the environment of bound variables and registered functions.
// Functions receive it by reference, and may add or remove variable bindings
// while they run.
//
// Names are not required to be unique: lookups return the first binding in
// scan order.
type Context struct {
	Variables []Variable
	Functions []Function
}

// NewContext creates a context with the given functions registered.
func NewContext(fns ...Function) *Context {
	return &Context{Functions: append([]Function(nil), fns...)}
}

// Variable returns the first variable bound under name.
func (ctx *Context) Variable(name string) (Variable, bool) {
	for _, v := range ctx.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Function returns the first function registered under name.
func (ctx *Context) Function(name string) (Function, bool) {
	for _, fn := range ctx.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return Function{}, false
}

// Bind appends a new variable binding; any prior binding of the same name
// remains, and continues to shadow the new one.
func (ctx *Context) Bind(name string, value Token) Variable {
	v := Variable{Name: name, Value: value}
	ctx.Variables = append(ctx.Variables, v)
	return v
}

// Unbind removes the first binding exactly equal to v, in both name and value.
func (ctx *Context) Unbind(v Variable) error {
	for i, o := range ctx.Variables {
		if o.Equal(v) {
			ctx.Variables = append(ctx.Variables[:i:i], ctx.Variables[i+1:]...)
			return nil
		}
	}
	return ErrUnknownVariable
}

// Register appends functions to the context; any name already bound to a
// variable is refused.
func (ctx *Context) Register(fns ...Function) error {
	for _, fn := range fns {
		if _, bound := ctx.Variable(fn.Name); bound {
			return FuncError{fn.Name, ErrNameBound}
		}
	}
	ctx.Functions = append(ctx.Functions, fns...)
	return nil
}

// Clone returns a copy of the context that shares no binding lists with ctx.
func (ctx *Context) Clone() *Context {
	return &Context{
		Variables: append([]Variable(nil), ctx.Variables...),
		Functions: append([]Function(nil), ctx.Functions...),
	}
}
