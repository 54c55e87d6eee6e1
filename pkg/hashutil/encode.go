package hashutil

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Base64Encode returns s in standard base64 with padding.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode reverses Base64Encode.
func Base64Decode(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	return string(b), nil
}

// Base64URLEncode returns s in the URL-safe base64 alphabet with padding.
func Base64URLEncode(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

// Base64URLDecode reverses Base64URLEncode.
func Base64URLDecode(s string) (string, error) {
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode url base64: %w", err)
	}
	return string(b), nil
}

// HexEncode returns s as lowercase hex.
func HexEncode(s string) string {
	return hex.EncodeToString([]byte(s))
}

// HexDecode reverses HexEncode.
func HexDecode(s string) (string, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode hex: %w", err)
	}
	return string(b), nil
}
