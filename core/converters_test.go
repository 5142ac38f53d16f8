package core

import "testing"

func TestConvertToDate(t *testing.T) {
	cases := []struct {
		input any
		want  string
	}{
		{"20240115", "2024-01-15"},
		{"19991231", "1999-12-31"},
		{"", ""},
		{"2024011", ""},
		{"202401AB", ""},
		{nil, ""},
		{"2024-01-15", "2024-01-15"},
	}
	for _, tc := range cases {
		got, err := ApplyConverter(ConverterToDate, tc.input)
		if err != nil {
			t.Fatalf("toDate(%v): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("toDate(%v) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestConvertToDateIdempotent(t *testing.T) {
	once, _ := ApplyConverter(ConverterToDate, "20240115")
	twice, _ := ApplyConverter(ConverterToDate, once)
	if once != twice {
		t.Fatalf("toDate not idempotent: %v vs %v", once, twice)
	}
}

func TestConvertToDecimal(t *testing.T) {
	cases := []struct {
		input any
		want  string
	}{
		{"1.50", "1.50"},
		{"100", "100"},
		{42, "42"},
		{float64(12.5), "12.5"},
		{"abc", "0.00"},
		{nil, "0.00"},
		{"", "0.00"},
	}
	for _, tc := range cases {
		got, err := ApplyConverter(ConverterToDecimal, tc.input)
		if err != nil {
			t.Fatalf("toDecimal(%v): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("toDecimal(%v) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestConvertToDecimalIdempotent(t *testing.T) {
	for _, input := range []any{"1.50", "abc", float64(3.14159), 7} {
		once, _ := ApplyConverter(ConverterToDecimal, input)
		twice, _ := ApplyConverter(ConverterToDecimal, once)
		if once != twice {
			t.Fatalf("toDecimal not idempotent for %v: %v vs %v", input, once, twice)
		}
	}
}

func TestConvertToInteger(t *testing.T) {
	cases := []struct {
		input any
		want  int64
	}{
		{"12", 12},
		{"12.7", 12},
		{"-3.9", -3},
		{float64(9.99), 9},
		{"abc", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		got, err := ApplyConverter(ConverterToInteger, tc.input)
		if err != nil {
			t.Fatalf("toInteger(%v): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("toInteger(%v) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestConvertToIntegerIdempotent(t *testing.T) {
	once, _ := ApplyConverter(ConverterToInteger, "12.7")
	twice, _ := ApplyConverter(ConverterToInteger, once)
	if once != twice {
		t.Fatalf("toInteger not idempotent: %v vs %v", once, twice)
	}
}

func TestConvertPadLeft(t *testing.T) {
	got, err := ApplyConverter(ConverterPadLeft10, "CC1001")
	if err != nil {
		t.Fatalf("padLeft10: %v", err)
	}
	if got != "0000CC1001" {
		t.Fatalf("padLeft10(CC1001) = %v, want 0000CC1001", got)
	}

	// No truncation for inputs at or beyond the width.
	got, _ = ApplyConverter(ConverterPadLeft10, "1234567890")
	if got != "1234567890" {
		t.Fatalf("padLeft10(1234567890) = %v", got)
	}
	got, _ = ApplyConverter(ConverterPadLeft10, "12345678901")
	if got != "12345678901" {
		t.Fatalf("padLeft10 truncated long input: %v", got)
	}
}

func TestConvertPadLeftLengthInvariant(t *testing.T) {
	inputs := []string{"", "1", "abcdef", "1234567890", "123456789012345"}
	for _, input := range inputs {
		got, _ := ApplyConverter(ConverterPadLeft10, input)
		text := got.(string)
		want := len(input)
		if want < 10 {
			want = 10
		}
		if len(text) != want {
			t.Fatalf("padLeft10(%q) length = %d, want %d", input, len(text), want)
		}
		for idx := 0; idx < len(text)-len(input); idx++ {
			if text[idx] != '0' {
				t.Fatalf("padLeft10(%q) prefix not zeros: %q", input, text)
			}
		}
	}
}

func TestConvertBoolYN(t *testing.T) {
	truthy := []any{true, "X", "Y", "1", "true", 1, float64(2)}
	for _, input := range truthy {
		got, _ := ApplyConverter(ConverterBoolYN, input)
		if got != "X" {
			t.Fatalf("boolYN(%v) = %v, want X", input, got)
		}
	}
	falsy := []any{false, "", "N", "no", 0, nil, "x "}
	for _, input := range falsy {
		got, _ := ApplyConverter(ConverterBoolYN, input)
		if got != "" {
			t.Fatalf("boolYN(%v) = %v, want empty", input, got)
		}
	}
}

func TestConvertToUpperCase(t *testing.T) {
	got, _ := ApplyConverter(ConverterToUpperCase, "Walldorf")
	if got != "WALLDORF" {
		t.Fatalf("toUpperCase = %v", got)
	}
}

func TestUnknownConverterTagRejected(t *testing.T) {
	if _, err := ApplyConverter(ConverterTag("toCamelCase"), "x"); err == nil {
		t.Fatalf("expected unknown converter tag to fail")
	}
	if IsSupportedConverter(ConverterTag("toCamelCase")) {
		t.Fatalf("toCamelCase must not be supported")
	}
}
