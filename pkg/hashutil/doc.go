// Package hashutil computes common digests and byte encodings with a
// string-in, string-out surface. Digests return lowercase hex.
//
// MD5 and SHA-1 are included for interoperability and content
// fingerprinting; pick SHA-256 or better where collisions matter.
package hashutil
