package format

import (
	"testing"
	"time"
)

func TestBytes(t *testing.T) {
	testCases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{800, "800 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{5 * 1024 * 1024 * 1024, "5 GB"},
		{-2048, "-2 KB"},
	}

	for _, tc := range testCases {
		if got := Bytes(tc.n); got != tc.want {
			t.Errorf("Bytes(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestComma(t *testing.T) {
	testCases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}

	for _, tc := range testCases {
		if got := Comma(tc.n); got != tc.want {
			t.Errorf("Comma(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestCommaFloat(t *testing.T) {
	testCases := []struct {
		v    float64
		prec int
		want string
	}{
		{1234.5, 2, "1,234.50"},
		{1234567.891, 1, "1,234,567.9"},
		{-9876.6, 0, "-9,877"},
		{12.5, -1, "12.5"},
	}

	for _, tc := range testCases {
		if got := CommaFloat(tc.v, tc.prec); got != tc.want {
			t.Errorf("CommaFloat(%v, %d) = %q, want %q", tc.v, tc.prec, got, tc.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	testCases := []struct {
		amount float64
		symbol string
		want   string
	}{
		{1234.5, "$", "$1,234.50"},
		{0, "€", "€0.00"},
		{-123.456, "$", "-$123.46"},
	}

	for _, tc := range testCases {
		if got := Currency(tc.amount, tc.symbol); got != tc.want {
			t.Errorf("Currency(%v, %q) = %q, want %q", tc.amount, tc.symbol, got, tc.want)
		}
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		ratio float64
		prec  int
		want  string
	}{
		{0.1234, 2, "12.34%"},
		{0.5, 0, "50%"},
		{1.25, 1, "125.0%"},
	}

	for _, tc := range testCases {
		if got := Percent(tc.ratio, tc.prec); got != tc.want {
			t.Errorf("Percent(%v, %d) = %q, want %q", tc.ratio, tc.prec, got, tc.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{102, "102nd"},
		{111, "111th"},
		{-2, "-2nd"},
	}

	for _, tc := range testCases {
		if got := Ordinal(tc.n); got != tc.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	testCases := []struct {
		n                int
		singular, plural string
		want             string
	}{
		{1, "cat", "", "cat"},
		{2, "cat", "", "cats"},
		{0, "cat", "", "cats"},
		{2, "person", "people", "people"},
		{1, "person", "people", "person"},
		{-1, "degree", "", "degrees"},
	}

	for _, tc := range testCases {
		if got := Pluralize(tc.n, tc.singular, tc.plural); got != tc.want {
			t.Errorf("Pluralize(%d, %q, %q) = %q, want %q", tc.n, tc.singular, tc.plural, got, tc.want)
		}
	}
}

func TestDuration(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{500 * time.Millisecond, "500ms"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 3*time.Minute + 20*time.Second, "2h 3m 20s"},
		{26 * time.Hour, "1d 2h"},
		{time.Hour + 5*time.Second, "1h 5s"},
		{-90 * time.Second, "-1m 30s"},
	}

	for _, tc := range testCases {
		if got := Duration(tc.d); got != tc.want {
			t.Errorf("Duration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadLeft("7", 3, '0'); got != "007" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("ab", 5, '.'); got != "ab..." {
		t.Errorf("PadRight = %q", got)
	}
	if got := Center("hi", 6, ' '); got != "  hi  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("hi", 5, '-'); got != "-hi--" {
		t.Errorf("Center with odd padding = %q", got)
	}
	if got := PadLeft("toolong", 3, ' '); got != "toolong" {
		t.Errorf("PadLeft past width = %q", got)
	}

	// 日本 occupies four cells, so only two pad cells are needed.
	if got := PadRight("日本", 6, '.'); got != "日本.." {
		t.Errorf("PadRight wide runes = %q", got)
	}
}

func TestMask(t *testing.T) {
	testCases := []struct {
		s       string
		visible int
		want    string
	}{
		{"4111111111111111", 4, "************1111"},
		{"secret", 0, "******"},
		{"secret", -1, "******"},
		{"ab", 5, "ab"},
		{"", 2, ""},
	}

	for _, tc := range testCases {
		if got := Mask(tc.s, tc.visible); got != tc.want {
			t.Errorf("Mask(%q, %d) = %q, want %q", tc.s, tc.visible, got, tc.want)
		}
	}
}
