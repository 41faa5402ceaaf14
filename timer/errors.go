// Package timer provides the timestamp formatting and frame scheduling core
// of timergen. It compiles the format mini-language into reusable label
// renderers and enumerates the millisecond instant of every output frame
// for a given duration and frame rate.
package timer

import "errors"

// Private variables (alphabetical)
// None currently defined

// Public variables (alphabetical)

// ErrInvalidDuration reports a negative timer duration.
// Durations are validated before any schedule is generated.
var ErrInvalidDuration = errors.New("timer: invalid duration")

// ErrInvalidFormat reports a malformed timestamp pattern.
// It covers zero-width directives, unknown units, malformed digit counts
// and percent signs that start neither an escape nor a directive.
var ErrInvalidFormat = errors.New("timer: invalid format")

// ErrInvalidFrameRate reports a non-positive frame rate.
// Frame rates are validated before any schedule is generated.
var ErrInvalidFrameRate = errors.New("timer: invalid frame rate")
