package model

import "strings"

// Call is an XML-RPC method call: a method name and the positional call
// parameters.
type Call struct {
	Method string
	Params []*Value
}

// NewCall creates a call. nil parameters are stored as null values.
func NewCall(method string, params ...*Value) *Call {
	ps := make([]*Value, len(params))
	for i, p := range params {
		if p == nil {
			p = NewNull()
		}
		ps[i] = p
	}
	return &Call{Method: method, Params: ps}
}

// Parameter returns the parameter at index i. For an out of range index
// (negative or >= len(Params)) a null value is returned instead of an error;
// callers rely on this safe default.
func (c *Call) Parameter(i int) *Value {
	if i < 0 || i >= len(c.Params) {
		return NewNull()
	}
	return c.Params[i]
}

// Equal reports whether two calls have the same method name and structurally
// equal parameters in the same order.
func (c *Call) Equal(o *Call) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.Method != o.Method || len(c.Params) != len(o.Params) {
		return false
	}
	for i := range c.Params {
		if !c.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	return true
}

// String renders the call for log messages and debugging, e.g. "add(1, 2)".
func (c *Call) String() string {
	var b strings.Builder
	b.WriteString(c.Method)
	b.WriteByte('(')
	for i, p := range c.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		p.render(&b)
	}
	b.WriteByte(')')
	return b.String()
}
