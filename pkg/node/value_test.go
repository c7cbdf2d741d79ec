package node

import (
	"errors"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		raw  string
		want Type
		ok   bool
	}{
		{"int", TypeInt, true},
		{"float", TypeFloat, true},
		{"double", TypeFloat, true},
		{"string", TypeString, true},
		{"complete/incomplete", TypeCheck, true},
		{" Float ", TypeFloat, true},
		{"minutes", "", false},
	}
	for _, tc := range tests {
		got, err := ParseType(tc.raw)
		if tc.ok && err != nil {
			t.Fatalf("ParseType(%q): unexpected error %v", tc.raw, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseType(%q): expected error", tc.raw)
		}
		if got != tc.want {
			t.Fatalf("ParseType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDefaultValues(t *testing.T) {
	if v := DefaultValue(TypeCheck); v.Bool() {
		t.Fatalf("check default should be incomplete")
	}
	if v := DefaultValue(TypeInt); v.Int() != 0 {
		t.Fatalf("int default should be 0, got %d", v.Int())
	}
	if v := DefaultValue(TypeFloat); v.Float() != 0 {
		t.Fatalf("float default should be 0, got %v", v.Float())
	}
	if v := DefaultValue(TypeString); v.Text() != "" {
		t.Fatalf("string default should be empty, got %q", v.Text())
	}
}

func TestCoerce(t *testing.T) {
	v, err := Coerce(TypeInt, "25")
	if err != nil {
		t.Fatalf("coerce int: %v", err)
	}
	if v.Int() != 25 {
		t.Fatalf("expected 25, got %d", v.Int())
	}

	v, err = Coerce(TypeFloat, "2.5")
	if err != nil {
		t.Fatalf("coerce float: %v", err)
	}
	if v.Float() != 2.5 {
		t.Fatalf("expected 2.5, got %v", v.Float())
	}

	v, err = Coerce(TypeCheck, "true")
	if err != nil {
		t.Fatalf("coerce check: %v", err)
	}
	if !v.Bool() {
		t.Fatalf("expected complete")
	}

	v, err = Coerce(TypeString, "ok")
	if err != nil {
		t.Fatalf("coerce string: %v", err)
	}
	if v.Text() != "ok" {
		t.Fatalf("expected ok, got %q", v.Text())
	}
}

func TestCoerceMismatch(t *testing.T) {
	if _, err := Coerce(TypeInt, "twenty"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if _, err := Coerce(TypeFloat, "2,5"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if _, err := Coerce(TypeCheck, "maybe"); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestNumber(t *testing.T) {
	if n, ok := BoolValue(true).Number(); !ok || n != 1 {
		t.Fatalf("complete should chart as 1, got %v %v", n, ok)
	}
	if n, ok := BoolValue(false).Number(); !ok || n != 0 {
		t.Fatalf("incomplete should chart as 0, got %v %v", n, ok)
	}
	if n, ok := IntValue(3).Number(); !ok || n != 3 {
		t.Fatalf("count should pass through, got %v %v", n, ok)
	}
	if _, ok := TextValue("ok").Number(); ok {
		t.Fatalf("text should not chart")
	}
}
