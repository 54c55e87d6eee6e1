// Package validate provides boolean predicates over strings: email, URL, IP,
// UUID, JSON, credit card numbers, and simple character-class checks. Every
// predicate is pure and keeps no state between calls; malformed input yields
// false, never an error.
package validate
