package calculator

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{
			name: "zero",
			in:   0,
			want: "0",
		},
		{
			name: "integer",
			in:   42,
			want: "42",
		},
		{
			name: "short decimal",
			in:   -0.5,
			want: "-0.5",
		},
		{
			name: "twelve characters fit as-is",
			in:   123456789012,
			want: "123456789012",
		},
		{
			name: "large magnitude goes scientific",
			in:   1e12,
			want: "1.000000e+12",
		},
		{
			name: "very large product",
			in:   1.23456789e+14,
			want: "1.234568e+14",
		},
		{
			name: "tiny magnitude goes scientific",
			in:   1.23456789e-7,
			want: "1.234568e-07",
		},
		{
			name: "long fraction trimmed to eight significant digits",
			in:   0.30000000000000004,
			want: "0.3",
		},
		{
			name: "mid-range value rounded to eight significant digits",
			in:   1234.5678901234,
			want: "1234.5679",
		},
		{
			name: "negative long fraction",
			in:   -0.30000000000000004,
			want: "-0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatOperand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain integer",
			in:   "12",
			want: "12",
		},
		{
			name: "trailing zeros dropped",
			in:   "2.50",
			want: "2.5",
		},
		{
			name: "trailing decimal point dropped",
			in:   "5.",
			want: "5",
		},
		{
			name: "rounded to eight fractional digits",
			in:   "3.123456789",
			want: "3.12345679",
		},
		{
			name: "unparseable input passes through",
			in:   "abc",
			want: "abc",
		},
		{
			name: "empty input passes through",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatOperand(tt.in); got != tt.want {
				t.Errorf("FormatOperand(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundResult(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{
			name: "float drift removed",
			in:   0.1 + 0.2,
			want: 0.3,
		},
		{
			name: "already clean",
			in:   2.5,
			want: 2.5,
		},
		{
			name: "below resolution collapses to zero",
			in:   1e-12,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundResult(tt.in); got != tt.want {
				t.Errorf("roundResult(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
