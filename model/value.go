// Package model provides the in-memory data model for XML-RPC: the Value
// union covering all XML-RPC data types, and the Call, Fault and Response
// envelope types. Encoding to and decoding from XML documents is not part of
// this package; encoders and decoders build on top of it.
package model

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

// The variants of an XML-RPC value.
const (
	Null Kind = iota
	String
	Bool
	Int
	Double
	DateTime
	Data
	Array
	Struct
)

var kindNames = []string{"null", "string", "bool", "int", "double",
	"dateTime", "data", "array", "struct"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < Null || k > Struct {
		return "invalid"
	}
	return kindNames[k]
}

// Value is an XML-RPC value. A Value is always exactly one of the nine
// variants identified by its Kind; the payload fields are unexported, so a
// Value can only be built through the New... constructors. The zero Value and
// a nil *Value are both the null variant. Values are treated as immutable
// after construction and are therefore safe to share between goroutines.
type Value struct {
	kind    Kind
	text    string // payload of String and DateTime
	boolean bool
	integer int
	double  float64
	data    []byte
	items   []*Value
	members map[string]*Value
}

// NewNull creates a null value.
func NewNull() *Value {
	return &Value{}
}

// NewString creates a string value.
func NewString(s string) *Value {
	return &Value{kind: String, text: s}
}

// NewBool creates a boolean value.
func NewBool(b bool) *Value {
	return &Value{kind: Bool, boolean: b}
}

// NewInt creates an int value.
func NewInt(i int) *Value {
	return &Value{kind: Int, integer: i}
}

// NewDouble creates a double value.
func NewDouble(d float64) *Value {
	return &Value{kind: Double, double: d}
}

// NewDateTime creates a dateTime value. The timestamp text is kept as is;
// this package attaches no date, time or time zone semantics to it.
func NewDateTime(s string) *Value {
	return &Value{kind: DateTime, text: s}
}

// NewData creates a binary data value. The byte buffer is opaque to this
// package; base64 handling is an encoder concern.
func NewData(b []byte) *Value {
	return &Value{kind: Data, data: b}
}

// NewArray creates an array value. nil elements are stored as null values.
func NewArray(items ...*Value) *Value {
	is := make([]*Value, len(items))
	for i, e := range items {
		if e == nil {
			e = NewNull()
		}
		is[i] = e
	}
	return &Value{kind: Array, items: is}
}

// NewStruct creates a struct value. The members are copied; nil member values
// are stored as null values.
func NewStruct(members map[string]*Value) *Value {
	ms := make(map[string]*Value, len(members))
	for n, m := range members {
		if m == nil {
			m = NewNull()
		}
		ms[n] = m
	}
	return &Value{kind: Struct, members: ms}
}

// Kind returns the variant of the value. A nil *Value is the null variant.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// Text returns the payload of a string or dateTime value, otherwise "".
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	return v.text
}

// Bool returns the payload of a boolean value, otherwise false.
func (v *Value) Bool() bool {
	if v == nil {
		return false
	}
	return v.boolean
}

// Int returns the payload of an int value, otherwise 0.
func (v *Value) Int() int {
	if v == nil {
		return 0
	}
	return v.integer
}

// Double returns the payload of a double value, otherwise 0.
func (v *Value) Double() float64 {
	if v == nil {
		return 0
	}
	return v.double
}

// Bytes returns the payload of a data value, otherwise nil. The buffer must
// not be modified.
func (v *Value) Bytes() []byte {
	if v == nil {
		return nil
	}
	return v.data
}

// Items returns the elements of an array value, otherwise nil. The slice must
// not be modified.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}
	return v.items
}

// Members returns the members of a struct value, otherwise nil. The map must
// not be modified.
func (v *Value) Members() map[string]*Value {
	if v == nil {
		return nil
	}
	return v.members
}

// Equal reports whether two values are structurally equal: same kind and
// recursively equal payload. Array elements are compared in order, struct
// members by key. Two NaN doubles compare equal, so Equal stays an
// equivalence relation and consistent with Hash; -0 and 0 compare equal.
// A nil *Value equals a null value.
func (v *Value) Equal(o *Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case Null:
		return true
	case String, DateTime:
		return v.text == o.text
	case Bool:
		return v.boolean == o.boolean
	case Int:
		return v.integer == o.integer
	case Double:
		if math.IsNaN(v.double) && math.IsNaN(o.double) {
			return true
		}
		return v.double == o.double
	case Data:
		if len(v.data) != len(o.data) {
			return false
		}
		for i := range v.data {
			if v.data[i] != o.data[i] {
				return false
			}
		}
		return true
	case Array:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case Struct:
		if len(v.members) != len(o.members) {
			return false
		}
		for n, m := range v.members {
			om, ok := o.members[n]
			if !ok || !m.Equal(om) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a structural hash consistent with Equal: equal values yield
// equal hashes regardless of struct member insertion order. NaN and -0 are
// canonicalized before hashing.
func (v *Value) Hash() uint64 {
	h := fnv.New64a()
	v.hash(h)
	return h.Sum64()
}

func (v *Value) hash(h hash.Hash64) {
	h.Write([]byte{byte(v.Kind())})
	switch v.Kind() {
	case String, DateTime:
		h.Write([]byte(v.text))
	case Bool:
		if v.boolean {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case Int:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(v.integer))
		h.Write(buf[:])
	case Double:
		d := v.double
		if math.IsNaN(d) {
			d = math.NaN()
		} else if d == 0 {
			// fold -0 into 0
			d = 0
		}
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(d))
		h.Write(buf[:])
	case Data:
		h.Write(v.data)
	case Array:
		for _, e := range v.items {
			e.hash(h)
		}
	case Struct:
		// sum the member hashes, addition is insensitive to iteration order
		var sum uint64
		for n, m := range v.members {
			mh := fnv.New64a()
			mh.Write([]byte(n))
			mh.Write([]byte{0})
			m.hash(mh)
			sum += mh.Sum64()
		}
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], sum)
		h.Write(buf[:])
	}
}

// String renders the value for log messages and debugging. The rendering is
// not a serialization format and has no inverse; struct member order follows
// map iteration order and is not stable.
func (v *Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v *Value) render(b *strings.Builder) {
	switch v.Kind() {
	case Null:
		b.WriteString("<null>")
	case String:
		b.WriteByte('"')
		b.WriteString(v.text)
		b.WriteByte('"')
	case Bool:
		if v.boolean {
			b.WriteString("YES")
		} else {
			b.WriteString("NO")
		}
	case Int:
		b.WriteString(strconv.Itoa(v.integer))
	case Double:
		b.WriteString(strconv.FormatFloat(v.double, 'g', -1, 64))
	case DateTime:
		b.WriteString(v.text)
	case Data:
		b.WriteString("<Data: #")
		b.WriteString(strconv.Itoa(len(v.data)))
		b.WriteByte('>')
	case Array:
		b.WriteString("[ ")
		for i, e := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			e.render(b)
		}
		b.WriteString(" ]")
	case Struct:
		b.WriteString("{ ")
		for n, m := range v.members {
			b.WriteByte(' ')
			b.WriteString(n)
			b.WriteString(" = ")
			m.render(b)
			b.WriteByte(';')
		}
		b.WriteString(" }")
	}
}
