// Package maputil provides helpers for plain key-value maps: key/value
// extraction, merging, deep copying, dot-path access, and decoding into
// structs.
//
// Except for Set, which writes through the map it is given, every function
// returns a fresh map and leaves its inputs untouched.
package maputil
