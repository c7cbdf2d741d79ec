// Package node defines the tracked-metric tree: folders, items, and the
// typed values items carry.
package node

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type declares what kind of value an item records.
type Type string

const (
	// TypeCheck is a complete/incomplete toggle.
	TypeCheck Type = "complete/incomplete"
	// TypeInt is a whole-number count.
	TypeInt Type = "int"
	// TypeFloat is a fractional measurement.
	TypeFloat Type = "float"
	// TypeString is free-form text.
	TypeString Type = "string"
)

// ErrTypeMismatch reports input that cannot be coerced to an item's declared type.
var ErrTypeMismatch = errors.New("node: type mismatch")

// AllTypes returns the list of supported item types.
func AllTypes() []Type {
	return []Type{
		TypeCheck,
		TypeInt,
		TypeFloat,
		TypeString,
	}
}

// ParseType converts a string to a Type or returns an error for unknown values.
// Older data files wrote "double" for floating point; it is accepted as a synonym.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case "double":
		return TypeFloat, nil
	case "check", "bool":
		return TypeCheck, nil
	}
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("node: unknown item type %q", raw)
}

// Chartable reports whether items of this type can feed a historical series.
// Text items are never chartable.
func (t Type) Chartable() bool {
	switch t {
	case TypeCheck, TypeInt, TypeFloat:
		return true
	default:
		return false
	}
}

// Value is a typed scalar recorded by an item on one day.
type Value struct {
	kind Type
	b    bool
	i    int64
	f    float64
	s    string
}

// DefaultValue returns the value a freshly created item of type t starts with:
// false, 0, 0.0, or the empty string.
func DefaultValue(t Type) Value {
	return Value{kind: t}
}

// BoolValue wraps a complete/incomplete flag.
func BoolValue(b bool) Value {
	return Value{kind: TypeCheck, b: b}
}

// IntValue wraps a whole-number count.
func IntValue(i int64) Value {
	return Value{kind: TypeInt, i: i}
}

// FloatValue wraps a fractional measurement.
func FloatValue(f float64) Value {
	return Value{kind: TypeFloat, f: f}
}

// TextValue wraps free-form text.
func TextValue(s string) Value {
	return Value{kind: TypeString, s: s}
}

// Kind returns the type tag the value was created with.
func (v Value) Kind() Type {
	return v.kind
}

func (v Value) Bool() bool     { return v.b }
func (v Value) Int() int64     { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Text() string   { return v.s }

// Number maps the value onto a chartable number: true/false become 1/0,
// counts and measurements pass through. Text values report false.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case TypeCheck:
		if v.b {
			return 1, true
		}
		return 0, true
	case TypeInt:
		return float64(v.i), true
	case TypeFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Equal reports content equality.
func (v Value) Equal(o Value) bool {
	return v == o
}

func (v Value) String() string {
	switch v.kind {
	case TypeCheck:
		if v.b {
			return "complete"
		}
		return "incomplete"
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// Coerce parses raw input according to the declared type. Numeric parsing is
// locale-free decimal syntax. On failure the returned error wraps
// ErrTypeMismatch and no value is produced.
func Coerce(t Type, raw string) (Value, error) {
	switch t {
	case TypeCheck:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, fmt.Errorf("node: %q is not complete/incomplete: %w", raw, ErrTypeMismatch)
		}
		return BoolValue(b), nil
	case TypeInt:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("node: %q is not an int: %w", raw, ErrTypeMismatch)
		}
		return IntValue(i), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Value{}, fmt.Errorf("node: %q is not a float: %w", raw, ErrTypeMismatch)
		}
		return FloatValue(f), nil
	case TypeString:
		return TextValue(raw), nil
	default:
		return Value{}, fmt.Errorf("node: unknown item type %q", t)
	}
}
