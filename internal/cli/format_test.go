package cli

import "testing"

func TestFormatSom(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 so'm"},
		{9821, "9 821 so'm"},
		{1_458_000, "1 458 000 so'm"},
		{21_600_000, "21 600 000 so'm"},
		{-12_000_000, "-12 000 000 so'm"},
		{1799.6, "1 800 so'm"},
	}

	for _, tc := range cases {
		if got := FormatSom(tc.in); got != tc.want {
			t.Errorf("FormatSom(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSomShort(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1_500, "1.5k"},
		{12_000_000, "12M"},
		{21_600_000, "21.6M"},
		{-21_600_000, "-21.6M"},
		{2_000_000_000, "2B"},
	}

	for _, tc := range cases {
		if got := FormatSomShort(tc.in); got != tc.want {
			t.Errorf("FormatSomShort(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPayback(t *testing.T) {
	if got := FormatPayback(nil); got != "—" {
		t.Errorf("FormatPayback(nil) = %q, want %q", got, "—")
	}
	p := 14.8
	if got := FormatPayback(&p); got != "14.8 months" {
		t.Errorf("FormatPayback(14.8) = %q, want %q", got, "14.8 months")
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"600", 600},
		{" 1800 ", 1800},
		{"1 458 000", 1458000},
		{"12,5", 12.5},
		{"", 0},
		{"abc", 0},
		{"-300", 0}, // negative degrades to zero
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRenderSignedSparklineLength(t *testing.T) {
	values := []float64{-100, -50, 0, 50, 100}
	spark := RenderSignedSparkline(values)
	if spark == "" {
		t.Fatal("sparkline is empty")
	}

	if RenderSignedSparkline(nil) != "" {
		t.Error("sparkline of empty series should be empty")
	}

	// Flat series must not divide by zero.
	flat := RenderSignedSparkline([]float64{5, 5, 5})
	if flat == "" {
		t.Error("flat series should still render")
	}
}
