package tidyjson

import (
	"fmt"
	"math"
)

// KindTypeError is the only error kind the parameter validator produces.
const KindTypeError = "Type Error"

// Error is the failure variant of a formatting call: a human-readable
// message plus an error-kind tag.
type Error struct {
	Result string
	Kind   string
}

func (e *Error) Error() string {
	return e.Kind + ": " + e.Result
}

func typeErrorf(format string, args ...any) *Error {
	return &Error{Result: fmt.Sprintf(format, args...), Kind: KindTypeError}
}

// Request carries the raw, not-yet-validated parameters of one formatting
// call. JSON is required; Tab and CodesLineLength may be nil, in which case
// they default to a single space and 1 respectively.
type Request struct {
	JSON            any
	Tab             any
	CodesLineLength any
}

// normalize validates the raw parameters and produces the immutable
// {json, tab, codesLineLength} triple consumed by the scanner. It has no
// side effects beyond classification.
func (r Request) normalize() (string, *Options, *Error) {
	jsonText, ok := r.JSON.(string)
	if !ok {
		return "", nil, typeErrorf("json was of type %s but expected string", typeName(r.JSON))
	}

	tab := " "
	if r.Tab != nil {
		t, ok := r.Tab.(string)
		if !ok {
			return "", nil, typeErrorf("tab was of type %s but expected string", typeName(r.Tab))
		}
		tab = t
	}

	width := 1
	if r.CodesLineLength != nil {
		n, whole, ok := asInt(r.CodesLineLength)
		if !ok {
			return "", nil, typeErrorf("codesLineLength was of type %s but expected number", typeName(r.CodesLineLength))
		}
		if !whole {
			return "", nil, typeErrorf("codesLineLength must be a whole number, got %v", r.CodesLineLength)
		}
		if n <= 0 {
			return "", nil, typeErrorf("codesLineLength must be greater than zero, got %v", r.CodesLineLength)
		}
		width = int(n)
	}

	return jsonText, &Options{Tab: tab, CodesLineLength: width}, nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// asInt converts any Go numeric kind to int64. whole is false for floats
// with a fractional part (and for NaN or infinities).
func asInt(v any) (n int64, whole bool, ok bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true, true
	case int8:
		return int64(x), true, true
	case int16:
		return int64(x), true, true
	case int32:
		return int64(x), true, true
	case int64:
		return x, true, true
	case uint:
		return int64(x), true, true
	case uint8:
		return int64(x), true, true
	case uint16:
		return int64(x), true, true
	case uint32:
		return int64(x), true, true
	case uint64:
		return int64(x), true, true
	case float32:
		return asIntFromFloat(float64(x))
	case float64:
		return asIntFromFloat(x)
	default:
		return 0, false, false
	}
}

func asIntFromFloat(f float64) (int64, bool, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, true
	}
	return int64(f), true, true
}
