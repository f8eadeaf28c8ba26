package code

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"000001", "sz.000001"},
		{"600000", "sh.600000"},
		{"300750", "sz.300750"},
		{"002594", "sz.002594"},
		{"sz.000001", "sz.000001"},
		{"sh.600000", "sh.600000"},
		{"  600000  ", "sh.600000"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Errorf("Normalize(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := Normalize(in); !errors.Is(err, ErrEmpty) {
			t.Errorf("Normalize(%q) error = %v, want ErrEmpty", in, err)
		}
	}
}

func TestNormalize_UnrecognizedFormat(t *testing.T) {
	_, err := Normalize("abc")
	var ufe *UnrecognizedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("Normalize(\"abc\") error = %v, want *UnrecognizedFormatError", err)
	}
	if ufe.Input != "abc" {
		t.Errorf("error carries input %q, want %q", ufe.Input, "abc")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once, err := Normalize("000001")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Normalize(once)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("normalizing twice changed the code: %q -> %q", once, twice)
	}
}

// Prefixed codes pass through untouched even when the digits look wrong.
func TestNormalize_PrefixPassthrough(t *testing.T) {
	got, err := Normalize("sz.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "sz.9" {
		t.Errorf("Normalize(\"sz.9\") = %q, want unchanged", got)
	}
}
