package strutil

import "testing"

func TestReverse(t *testing.T) {
	testCases := []struct {
		input, want string
	}{
		{"hello", "olleh"},
		{"ab", "ba"},
		{"x", "x"},
		{"", ""},
		{"日本語", "語本日"},
	}

	for _, tc := range testCases {
		if got := Reverse(tc.input); got != tc.want {
			t.Errorf("Reverse(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"fits exactly", "abcd", 4, "abcd"},
		{"shorter than max", "hi", 10, "hi"},
		{"cut with ellipsis", "hello world", 8, "hello..."},
		{"no room for suffix", "abcd", 3, "abc"},
		{"single rune", "abcd", 1, "a"},
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -5, ""},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.input, tc.max); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	testCases := []struct {
		input string
		max   int
		want  string
	}{
		{"hello world", 5, "hello"},
		{"hi", 5, "hi"},
		{"x", 0, ""},
		{"x", -1, ""},
		{"日本語です", 2, "日本"},
	}

	for _, tc := range testCases {
		if got := Clip(tc.input, tc.max); got != tc.want {
			t.Errorf("Clip(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.want)
		}
	}
}

func TestInitials(t *testing.T) {
	testCases := []struct {
		input, want string
	}{
		{"ada lovelace", "AL"},
		{"grace", "G"},
		{"jean-luc picard", "JLP"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := Initials(tc.input); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{"one two three", 3},
		{"camelCase", 2},
		{"", 0},
		{"   ", 0},
	}

	for _, tc := range testCases {
		if got := WordCount(tc.input); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
