// Package strutil provides string helpers that the standard library leaves
// out: case conversion between naming conventions, slug generation, rune-safe
// truncation and reversal, and control-character stripping.
//
// All functions are UTF-8 aware. Anything that counts or cuts does so by rune,
// never by byte, so multi-byte characters are never split mid-sequence.
package strutil
