package randutil

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	charsetDigits       = "0123456789"
	charsetHex          = "0123456789abcdef"
	charsetAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" + charsetDigits
	charsetToken        = charsetAlphanumeric + "-_"
)

// Int returns a uniform random integer in [lo, hi], bounds inclusive. It
// fails with ErrInvertedBounds when lo exceeds hi.
func Int(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("range [%d, %d]: %w", lo, hi, ErrInvertedBounds)
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// The full int range wraps span to zero.
		return int(rand.Uint64()), nil
	}
	return lo + int(rand.Uint64N(span)), nil
}

// String returns n runes drawn uniformly and independently from charset
// using crypto/rand.
func String(n int, charset string) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("length %d: %w", n, ErrNegativeLength)
	}
	if charset == "" {
		return "", ErrEmptyCharset
	}

	runes := []rune(charset)
	limit := big.NewInt(int64(len(runes)))
	out := make([]rune, n)
	for i := range out {
		idx, err := crand.Int(crand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		out[i] = runes[idx.Int64()]
	}
	return string(out), nil
}

// Token returns n URL-safe characters ([A-Za-z0-9_-]) from crypto/rand.
func Token(n int) (string, error) {
	return String(n, charsetToken)
}

// Alphanumeric returns n characters from [A-Za-z0-9].
func Alphanumeric(n int) (string, error) {
	return String(n, charsetAlphanumeric)
}

// Digits returns n decimal digit characters.
func Digits(n int) (string, error) {
	return String(n, charsetDigits)
}

// Hex returns n lowercase hex characters.
func Hex(n int) (string, error) {
	return String(n, charsetHex)
}

// UUID returns a random version 4 UUID in canonical form.
func UUID() string {
	return uuid.NewString()
}
