// Package timeutil provides calendar helpers on top of time.Time: period
// boundaries, day arithmetic, and human-readable relative descriptions.
//
// Boundary functions keep the location of the time they are given. Weeks are
// ISO 8601 weeks and start on Monday.
package timeutil
