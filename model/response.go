package model

import "strconv"

// Fault is an XML-RPC fault: an error code and a human readable reason.
// Fault implements the error interface.
type Fault struct {
	Code   int
	Reason string
}

// NewFault creates a fault. The reason is kept exactly as supplied, an empty
// string stays empty.
func NewFault(code int, reason string) *Fault {
	return &Fault{Code: code, Reason: reason}
}

// NewFaultCode creates a fault with the default reason
// "Call failed with code: <code>".
func NewFaultCode(code int) *Fault {
	return &Fault{Code: code, Reason: "Call failed with code: " + strconv.Itoa(code)}
}

// Error implements the error interface.
func (f *Fault) Error() string {
	return "RPC fault (code: " + strconv.Itoa(f.Code) + ", reason: " + f.Reason + ")"
}

// Equal reports whether code and reason match exactly.
func (f *Fault) Equal(o *Fault) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.Code == o.Code && f.Reason == o.Reason
}

// Response is the outcome of an XML-RPC call: either a result value or a
// fault, never both.
type Response struct {
	value *Value
	fault *Fault
}

// NewValueResponse creates a successful response. A nil value is stored as a
// null value.
func NewValueResponse(v *Value) *Response {
	if v == nil {
		v = NewNull()
	}
	return &Response{value: v}
}

// NewFaultResponse creates a failed response.
func NewFaultResponse(f *Fault) *Response {
	return &Response{fault: f}
}

// IsFault reports whether the response is the fault variant.
func (r *Response) IsFault() bool {
	return r.fault != nil
}

// Value returns the result value, or nil for a fault response.
func (r *Response) Value() *Value {
	return r.value
}

// Fault returns the fault, or nil for a successful response.
func (r *Response) Fault() *Fault {
	return r.fault
}

// Equal reports whether two responses are the same variant with equal
// content.
func (r *Response) Equal(o *Response) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.IsFault() != o.IsFault() {
		return false
	}
	if r.IsFault() {
		return r.fault.Equal(o.fault)
	}
	return r.value.Equal(o.value)
}

// String renders the response for log messages and debugging.
func (r *Response) String() string {
	if r.IsFault() {
		return r.fault.Error()
	}
	return r.value.String()
}
