// Package dbg wires the triangulation core's fatal invariant checks to
// assertgo: every condition checked here is a programming error per the
// design's error taxonomy, never a recoverable one — see environment,
// hull and driver for the call sites. True/False panic only when the
// binary is built with the 'debug' tag; otherwise they are free no-ops,
// exactly assertgo's own behavior.
package dbg

import "github.com/aurelien-rainone/assertgo"

// True panics with the formatted message if cond is false.
func True(cond bool, format string, args ...interface{}) {
	assert.True(cond, format, args...)
}

// False panics with the formatted message if cond is true.
func False(cond bool, format string, args ...interface{}) {
	assert.False(cond, format, args...)
}
