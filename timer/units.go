// Package timer provides the timestamp formatting and frame scheduling core
// of timergen.
package timer

// Public types (alphabetical)

// Units is the clock-field decomposition of an elapsed time.
// Minutes and Seconds lie in [0,59], Milliseconds in [0,999]; Hours is
// unbounded. Decomposing and recombining a non-negative elapsed time is
// lossless.
type Units struct {
	// Hours is the number of whole hours.
	Hours int64

	// Minutes is the number of whole minutes within the hour.
	Minutes int64

	// Seconds is the number of whole seconds within the minute.
	Seconds int64

	// Milliseconds is the remainder within the second.
	Milliseconds int64
}

// Public functions (alphabetical)

// UnitsFromMillis decomposes an elapsed time in milliseconds into clock
// fields.
func UnitsFromMillis(elapsed int64) Units {
	seconds, millis := elapsed/1000, elapsed%1000
	minutes, seconds := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	return Units{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: millis,
	}
}

// UnitsFromSeconds decomposes an elapsed time in whole seconds into clock
// fields.
func UnitsFromSeconds(elapsed int64) Units {
	return UnitsFromMillis(elapsed * 1000)
}

// Public methods (alphabetical)

// Elapsed recombines the clock fields back into a number of milliseconds.
func (u Units) Elapsed() int64 {
	return ((u.Hours*60+u.Minutes)*60+u.Seconds)*1000 + u.Milliseconds
}

// Private methods (alphabetical)

// value returns the raw field selected by a directive unit character.
func (u Units) value(unit byte) int64 {
	switch unit {
	case 'H':
		return u.Hours
	case 'M':
		return u.Minutes
	case 'S':
		return u.Seconds
	default: // 'm', guaranteed by Compile
		return u.Milliseconds
	}
}
