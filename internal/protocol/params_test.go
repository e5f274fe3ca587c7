package protocol

import (
	"reflect"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"TRUE", true},
		{"False", false},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0.5", 0.5},
		{"1e3", 1000.0},
		{"inf", "inf"},
		{"NaN", "NaN"},
		{"0x10", "0x10"},
		{"#ff00ff", "#ff00ff"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseValue(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseValue(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseParams(t *testing.T) {
	// Arrange
	pairs := []string{"speed=5", "color=red", "reverse=true", "formula=a=b", "speed=7"}

	// Act
	got, err := ParseParams(pairs)

	// Assert
	if err != nil {
		t.Fatalf("ParseParams() error = %v", err)
	}
	want := map[string]any{
		"speed":   int64(7),
		"color":   "red",
		"reverse": true,
		"formula": "a=b",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseParams() = %#v, want %#v", got, want)
	}
}

func TestParseParams_Empty(t *testing.T) {
	got, err := ParseParams(nil)

	if err != nil {
		t.Fatalf("ParseParams(nil) error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ParseParams(nil) = %#v, want empty map", got)
	}
}

func TestParseParams_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing equals", "speed"},
		{"empty key", "=5"},
		{"blank key", "  =5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParams([]string{tt.raw})
			if !isValidationError(err) {
				t.Errorf("ParseParams(%q) error = %v, want ValidationError", tt.raw, err)
			}
		})
	}
}
