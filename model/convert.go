package model

import "fmt"

// NewValue creates a value from a native data type. Supported types: nil,
// bool, int, float64, string, []byte, []string, []interface{},
// map[string]interface{} and *Value (passed through). Containers are
// converted recursively.
func NewValue(in interface{}) (*Value, error) {
	switch val := in.(type) {
	case nil:
		return NewNull(), nil
	case *Value:
		if val == nil {
			return NewNull(), nil
		}
		return val, nil
	case bool:
		return NewBool(val), nil
	case int:
		return NewInt(val), nil
	case float64:
		return NewDouble(val), nil
	case string:
		return NewString(val), nil
	case []byte:
		return NewData(val), nil
	case []string:
		return NewStrings(val), nil
	case []interface{}:
		es := make([]*Value, len(val))
		for i, e := range val {
			cv, err := NewValue(e)
			if err != nil {
				return nil, err
			}
			es[i] = cv
		}
		return NewArray(es...), nil
	case map[string]interface{}:
		ms := make(map[string]*Value, len(val))
		for n, m := range val {
			cv, err := NewValue(m)
			if err != nil {
				return nil, err
			}
			ms[n] = cv
		}
		return NewStruct(ms), nil
	default:
		return nil, fmt.Errorf("Conversion of type %[1]T with value %[1]v is not supported", in)
	}
}

// NewStrings creates an array value from a string slice.
func NewStrings(ss []string) *Value {
	es := make([]*Value, len(ss))
	for i, s := range ss {
		es[i] = NewString(s)
	}
	return NewArray(es...)
}
