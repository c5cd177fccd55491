package feature

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type ValueKind int

const (
	KindMissing ValueKind = iota
	KindNumber
	KindString
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("[!UNKNOWN ValueKind %d]", int(k))
}

// Value is a single property value of a feature. The zero value is a missing value.
type Value struct {
	kind   ValueKind
	number float64
	text   string
	flag   bool
}

func Missing() Value {
	return Value{kind: KindMissing}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

func String(s string) Value {
	return Value{kind: KindString, text: s}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// ValueOf converts a decoded JSON value (or a plain Go value) into a Value. Types that can't be represented, like
// nested objects or arrays, become missing values.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Missing()
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		n, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return String(t.String())
		}
		return Number(n)
	case string:
		return String(t)
	case bool:
		return Bool(t)
	}
	return Missing()
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float returns the number and true if this value is a number other than NaN.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber || math.IsNaN(v.number) {
		return 0, false
	}
	return v.number, true
}

func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindString
}

func (v Value) Boolean() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Interface returns the plain Go representation used for encoding. Missing values become nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.number
	case KindString:
		return v.text
	case KindBool:
		return v.flag
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case KindString:
		return strconv.Quote(v.text)
	case KindBool:
		return strconv.FormatBool(v.flag)
	}
	return "<missing>"
}
