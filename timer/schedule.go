// Package timer provides the timestamp formatting and frame scheduling core
// of timergen.
package timer

import (
	"fmt"
	"math"
)

// Public types (alphabetical)

// Frame pairs an output frame index with its elapsed-time instant and the
// label rendered for that instant.
type Frame struct {
	// Index is the zero-based position of the frame in the sequence.
	Index int

	// Elapsed is the elapsed time of the frame in milliseconds.
	Elapsed int64

	// Label is the rendered timestamp text for the frame.
	Label string
}

// Public functions (alphabetical)

// Frames renders the full schedule for duration and fps through the
// compiled format f, producing one labeled frame per scheduled instant in
// frame-index order.
func Frames(f *Format, duration float64, fps int) ([]Frame, error) {
	schedule, err := Schedule(duration, fps)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, len(schedule))
	for i, elapsed := range schedule {
		frames[i] = Frame{Index: i, Elapsed: elapsed, Label: f.Render(elapsed)}
	}
	return frames, nil
}

// Schedule enumerates the elapsed-time instant of every output frame for a
// timer of the given duration (seconds, possibly fractional) at fps frames
// per second. The result is deterministic and monotonically non-decreasing.
//
// Each whole second contributes fps instants at millisecond offsets
// j*(1000/fps) for j in [0,fps), using integer division; frame rates that
// do not evenly divide 1000 therefore accumulate a small offset drift
// within each second, which is accepted and does not compound across
// seconds. The fractional tail contributes only the offsets strictly below
// the remaining milliseconds, labeled as if they belonged to the second
// after the last whole one. That rollover (a 2.5s timer at 4 fps ends on
// second 3's offsets, not second 2's) reproduces the established output of
// the format; see the schedule tests for the exact shape.
func Schedule(duration float64, fps int) ([]int64, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidDuration, duration)
	}
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameRate, fps)
	}

	step := int64(1000 / fps)
	fullSeconds := int64(duration)

	schedule := make([]int64, 0, (fullSeconds+1)*int64(fps))
	for i := int64(0); i < fullSeconds; i++ {
		for j := int64(0); j < int64(fps); j++ {
			schedule = append(schedule, i*1000+j*step)
		}
	}

	// Partial trailing second
	fracMillis := math.Mod(duration, 1) * 1000
	for j := int64(0); j < int64(fps); j++ {
		offset := j * step
		if float64(offset) < fracMillis {
			schedule = append(schedule, (fullSeconds+1)*1000+offset)
		}
	}

	return schedule, nil
}
