// Package timer provides the timestamp formatting and frame scheduling core
// of timergen. Patterns are compiled once into an immutable token sequence
// and reused for every frame, so a bad pattern fails before any rendering
// starts and no unparsed percent sign can leak into later formatting steps.
package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// Private variables (alphabetical)

// defaultWidths holds the stored width used by a directive that carries no
// explicit digit count. Hours, minutes and seconds default to "keep the
// last two digits" (negative), while milliseconds default to "keep the
// first three" (positive). The asymmetry is part of the format language.
var defaultWidths = map[byte]int{
	'H': -2,
	'M': -2,
	'S': -2,
	'm': 3,
}

// Private types (alphabetical)

// token is one element of a compiled pattern: either a literal rune or a
// directive selecting a time unit with a stored width.
type token struct {
	literal   rune
	unit      byte
	width     int
	directive bool
}

// Public types (alphabetical)

// Format is a compiled timestamp pattern. A Format is immutable after
// compilation and safe for concurrent use.
type Format struct {
	pattern string
	tokens  []token
}

// Private functions (alphabetical)

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// renderDirective formats a single unit value. The decimal representation is
// zero-padded on the left to at least max(|width|, |defaultWidth|)
// characters, so requesting fewer digits than the conventional field size
// never removes meaningful padding. A negative width keeps the last |width|
// characters of the padded string; a positive width keeps the first width
// characters.
func renderDirective(value int64, width, defaultWidth int) string {
	floor := abs(width)
	if d := abs(defaultWidth); d > floor {
		floor = d
	}

	s := strconv.FormatInt(value, 10)
	if len(s) < floor {
		s = strings.Repeat("0", floor-len(s)) + s
	}

	if width < 0 {
		return s[len(s)+width:]
	}
	if width < len(s) {
		return s[:width]
	}
	return s
}

// Public functions (alphabetical)

// Compile parses a timestamp pattern into a Format.
//
// The pattern is scanned left to right. "%%" produces a single literal
// percent sign. A percent sign followed by an optional signed integer and
// one of the units H (hours), M (minutes), S (seconds) or m (milliseconds)
// is a directive; any other character is copied to the output unchanged.
// A percent sign that starts neither an escape nor a directive is rejected.
//
// An explicit digit count N keeps the last N digits of the zero-padded
// value, while -N keeps the first N. The count is stored negated, so
// negative stored widths mean "keep last" and positive ones "keep first".
// A stored width of zero is invalid.
func Compile(pattern string) (*Format, error) {
	runes := []rune(pattern)
	tokens := make([]token, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			tokens = append(tokens, token{literal: runes[i]})
			continue
		}

		i++
		if i >= len(runes) {
			return nil, fmt.Errorf("%w: dangling %% at end of pattern %q", ErrInvalidFormat, pattern)
		}
		if runes[i] == '%' {
			tokens = append(tokens, token{literal: '%'})
			continue
		}

		// Scan the optional signed digit count
		start := i
		if runes[i] == '-' {
			i++
		}
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		if i >= len(runes) {
			return nil, fmt.Errorf("%w: directive missing unit at end of pattern %q", ErrInvalidFormat, pattern)
		}

		unit := runes[i]
		if unit != 'H' && unit != 'M' && unit != 'S' && unit != 'm' {
			return nil, fmt.Errorf("%w: unknown unit %q in pattern %q", ErrInvalidFormat, string(unit), pattern)
		}

		width := defaultWidths[byte(unit)]
		if digits := string(runes[start:i]); digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed digit count %q in pattern %q", ErrInvalidFormat, digits, pattern)
			}
			width = -n
		}
		if width == 0 {
			return nil, fmt.Errorf("%w: width cannot be 0", ErrInvalidFormat)
		}

		tokens = append(tokens, token{unit: byte(unit), width: width, directive: true})
	}

	return &Format{pattern: pattern, tokens: tokens}, nil
}

// Public methods (alphabetical)

// Pattern returns the pattern string the Format was compiled from.
func (f *Format) Pattern() string {
	return f.pattern
}

// Render produces the label for an elapsed time given in milliseconds.
func (f *Format) Render(elapsed int64) string {
	units := UnitsFromMillis(elapsed)

	var b strings.Builder
	b.Grow(len(f.pattern))
	for _, t := range f.tokens {
		if !t.directive {
			b.WriteRune(t.literal)
			continue
		}
		b.WriteString(renderDirective(units.value(t.unit), t.width, defaultWidths[t.unit]))
	}
	return b.String()
}
