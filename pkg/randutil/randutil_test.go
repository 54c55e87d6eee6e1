package randutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestInt(t *testing.T) {
	for i := 0; i < 500; i++ {
		got, err := Int(-3, 3)
		if err != nil {
			t.Fatalf("Int: %v", err)
		}
		if got < -3 || got > 3 {
			t.Fatalf("Int(-3, 3) = %d, out of range", got)
		}
	}

	got, err := Int(7, 7)
	if err != nil || got != 7 {
		t.Errorf("Int(7, 7) = %d, %v; want 7", got, err)
	}

	if _, err := Int(5, 4); !errors.Is(err, ErrInvertedBounds) {
		t.Errorf("Int(5, 4) error = %v, want ErrInvertedBounds", err)
	}
}

func TestIntCoversBounds(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 2000 && (!seen[0] || !seen[1]); i++ {
		v, err := Int(0, 1)
		if err != nil {
			t.Fatalf("Int: %v", err)
		}
		seen[v] = true
	}
	if !seen[0] || !seen[1] {
		t.Errorf("Int(0, 1) never produced both bounds: %v", seen)
	}
}

func TestStringHelpers(t *testing.T) {
	testCases := []struct {
		name    string
		fn      func(int) (string, error)
		n       int
		charset string
	}{
		{"token", Token, 32, charsetToken},
		{"alphanumeric", Alphanumeric, 16, charsetAlphanumeric},
		{"digits", Digits, 8, charsetDigits},
		{"hex", Hex, 64, charsetHex},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.n)
			if err != nil {
				t.Fatalf("%s(%d): %v", tc.name, tc.n, err)
			}
			if len(got) != tc.n {
				t.Fatalf("%s(%d) length = %d", tc.name, tc.n, len(got))
			}
			for _, r := range got {
				if !strings.ContainsRune(tc.charset, r) {
					t.Fatalf("%s produced %q outside its charset", tc.name, r)
				}
			}
		})
	}
}

func TestString(t *testing.T) {
	got, err := String(10, "ab")
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	for _, r := range got {
		if r != 'a' && r != 'b' {
			t.Fatalf("String produced %q outside its charset", r)
		}
	}

	empty, err := String(0, "x")
	if err != nil || empty != "" {
		t.Errorf("String(0, ...) = %q, %v", empty, err)
	}

	if _, err := String(-1, "x"); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("String(-1, ...) error = %v, want ErrNegativeLength", err)
	}
	if _, err := String(5, ""); !errors.Is(err, ErrEmptyCharset) {
		t.Errorf("String(5, \"\") error = %v, want ErrEmptyCharset", err)
	}
}

func TestUUID(t *testing.T) {
	a := UUID()
	b := UUID()

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("UUID() = %q, not parseable: %v", a, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if len(a) != 36 {
		t.Errorf("UUID length = %d, want 36", len(a))
	}
	if a == b {
		t.Error("two UUIDs should not collide")
	}
}
