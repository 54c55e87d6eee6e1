/*
Package devutils is the umbrella for a toolkit of small, independent, stateless
helper functions for everyday data plumbing: strings, slices, maps, dates,
numbers and statistics, validation predicates, presentation formatting, hashing
and byte encodings, and random value generation.

Every helper is a pure, synchronous transformation from inputs to outputs. There
is no shared state, no configuration, and no I/O inside the library packages;
the only external resource any function touches is the random number source used
by the generators. Malformed input is reported with an explicit error at the
call site and never recovered internally.

# Packages

The toolkit is split into focused packages so callers import only what they use
and unused code stays out of their builds:

  - strutil:   case conversion, slugs, rune-safe truncation, word splitting
  - sliceutil: chunking, set operations, grouping, sampling
  - maputil:   merge, deep copy, pick/omit, dot-path access, struct decoding
  - timeutil:  calendar boundaries, day math, business days, relative phrasing
  - mathutil:  clamping, statistics, primes, combinatorics
  - validate:  boolean predicates for emails, URLs, cards, IPs, UUIDs, JSON
  - format:    human-readable bytes, numbers, durations, padding, masking
  - hashutil:  MD5/SHA digests, HMAC, base64 and hex codecs
  - randutil:  random integers, tokens, and UUIDs
  - convert:   JSON/YAML/TOML bridging and JSON pretty-printing

# Usage

Import the package for the concern at hand:

	package main

	import (
		"fmt"

		"github.com/Showshin/dev-utils-plus/pkg/mathutil"
		"github.com/Showshin/dev-utils-plus/pkg/strutil"
		"github.com/Showshin/dev-utils-plus/pkg/validate"
	)

	func main() {
		fmt.Println(strutil.Slugify("Déjà Vu!"))          // deja-vu
		fmt.Println(validate.Email("user@example.com"))   // true

		primes, _ := mathutil.Primes(10)
		fmt.Println(primes)                               // [2 3 5 7]
	}

# Beyond the library

The repository also ships thin shells over the same functions: the devutils CLI
(cmd/devutils), an HTTP JSON API (the serve command), and an MCP tool server
(the mcp command). All three dispatch through pkg/registry and add nothing to
the semantics of the underlying functions.
*/
package devutils
