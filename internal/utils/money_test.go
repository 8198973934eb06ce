package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{150000, "Rp150.000"},
		{1250000, "Rp1.250.000"},
		{-50000, "-Rp50.000"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.in); got != tc.want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountLenient(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"150000", 150000},
		{"Rp 150.000", 150000},
		{"rp1.250.000", 1250000},
		{"1,000", 1000},
		{"", 0},
		{"abc", 0},
		{"-5000", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
