package model

import (
	"errors"
	"fmt"
)

// Query helps to extract data from a Value tree. The first encountered error
// sticks; all following accessors return zero values. This way a whole tree
// can be read without checking an error after every step.
type Query struct {
	value *Value
	err   *error
	// faster lookup for structs
	lookup map[string]*Query
	// cache arrays
	array []*Query
}

// Q creates a new Query for the specified Value.
func Q(v *Value) *Query {
	var err error
	return &Query{value: v, err: &err}
}

// Err returns the first encountered error.
func (q *Query) Err() error {
	return *q.err
}

// Int gets an int value.
func (q *Query) Int() int {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return 0
	}
	if q.value.Kind() != Int {
		*q.err = errors.New("Not an int")
		return 0
	}
	return q.value.Int()
}

// Bool gets a boolean value.
func (q *Query) Bool() bool {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return false
	}
	if q.value.Kind() != Bool {
		*q.err = errors.New("Not a bool")
		return false
	}
	return q.value.Bool()
}

// String gets a string value. A null value is interpreted as an empty string.
func (q *Query) String() string {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return ""
	}
	switch q.value.Kind() {
	case Null:
		return ""
	case String:
		return q.value.Text()
	default:
		*q.err = errors.New("Not a string")
		return ""
	}
}

// Float64 gets a double value.
func (q *Query) Float64() float64 {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return 0
	}
	if q.value.Kind() != Double {
		*q.err = errors.New("Not a double")
		return 0
	}
	return q.value.Double()
}

// DateTime gets the timestamp text of a dateTime value.
func (q *Query) DateTime() string {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return ""
	}
	if q.value.Kind() != DateTime {
		*q.err = errors.New("Not a dateTime")
		return ""
	}
	return q.value.Text()
}

// Bytes gets the buffer of a data value.
func (q *Query) Bytes() []byte {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return nil
	}
	if q.value.Kind() != Data {
		*q.err = errors.New("Not a data value")
		return nil
	}
	return q.value.Bytes()
}

// IsEmpty returns true, if there is no previous error and the value is null
// or an empty string.
func (q *Query) IsEmpty() bool {
	// previous error?
	if q.Err() != nil {
		return false
	}
	// empty optional?
	if q.value == nil {
		return true
	}
	switch q.value.Kind() {
	case Null:
		return true
	case String:
		return q.value.Text() == ""
	}
	return false
}

// IsNotEmpty returns true, if there is no previous error and the value is
// neither null nor an empty string.
func (q *Query) IsNotEmpty() bool {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return false
	}
	switch q.value.Kind() {
	case Null:
		return false
	case String:
		return q.value.Text() != ""
	}
	return true
}

// Any returns data type int, bool, float64, string, []byte, []interface{},
// map[string]interface{} or nil for a null value. Containers are converted
// recursively.
func (q *Query) Any() interface{} {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		return nil
	}
	switch q.value.Kind() {
	case Null:
		return nil
	case String, DateTime:
		return q.value.Text()
	case Bool:
		return q.value.Bool()
	case Int:
		return q.value.Int()
	case Double:
		return q.value.Double()
	case Data:
		return q.value.Bytes()
	case Array:
		r := make([]interface{}, 0, len(q.Slice()))
		for _, e := range q.Slice() {
			r = append(r, e.Any())
		}
		return r
	case Struct:
		r := make(map[string]interface{}, len(q.Map()))
		for n, m := range q.Map() {
			r[n] = m.Any()
		}
		return r
	}
	return nil
}

// Map returns all members of a struct value.
func (q *Query) Map() map[string]*Query {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		// return empty map
		return nil
	}
	// is map already created?
	if q.lookup != nil {
		return q.lookup
	}
	if q.value.Kind() != Struct {
		*q.err = errors.New("Not a struct")
		return nil
	}
	q.lookup = make(map[string]*Query)
	for n, m := range q.value.Members() {
		q.lookup[n] = &Query{value: m, err: q.err}
	}
	return q.lookup
}

// key gets the specified member from a struct.
func (q *Query) key(name string, must bool) *Query {
	m := q.Map()
	// previous error?
	if q.Err() != nil {
		return &Query{err: q.err}
	}
	// lookup
	f, ok := m[name]
	if !ok {
		if must {
			*q.err = fmt.Errorf("Field not found: %s", name)
		}
		return &Query{err: q.err}
	}
	return f
}

// Key sets an error, if the specified member is missing.
func (q *Query) Key(name string) *Query {
	return q.key(name, true)
}

// TryKey does not set an error, if the specified member is missing.
func (q *Query) TryKey(name string) *Query {
	return q.key(name, false)
}

// Slice returns all array elements.
func (q *Query) Slice() []*Query {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		// return empty slice
		return nil
	}
	// array already created?
	if q.array != nil {
		return q.array
	}
	if q.value.Kind() != Array {
		*q.err = errors.New("Not an array")
		return nil
	}
	items := q.value.Items()
	q.array = make([]*Query, len(items))
	for i, e := range items {
		q.array[i] = &Query{value: e, err: q.err}
	}
	return q.array
}

// Strings returns a string array.
func (q *Query) Strings() []string {
	// previous error or empty optional?
	if q.Err() != nil || q.value == nil {
		// return empty slice
		return nil
	}
	var r []string
	for _, e := range q.Slice() {
		r = append(r, e.String())
	}
	if q.Err() != nil {
		// return empty slice
		return nil
	}
	return r
}

// Idx returns the array element at i.
func (q *Query) Idx(i int) *Query {
	s := q.Slice()
	// previous error
	if q.Err() != nil {
		return &Query{err: q.err}
	}
	// check bounds
	if i < 0 || i >= len(s) {
		*q.err = fmt.Errorf("Index out of bounds (array length: %d): %d", len(s), i)
		return &Query{err: q.err}
	}
	return s[i]
}

// Value returns the wrapped Value.
func (q *Query) Value() *Value {
	return q.value
}
