// Package randutil generates random values: bounded integers, random
// strings, and UUIDs.
//
// The string helpers draw from crypto/rand and are safe for tokens and
// secrets. Int draws from math/rand/v2 and is meant for jitter, sampling,
// and other non-secret uses.
package randutil
