// Package timer provides the timestamp formatting and frame scheduling core
// of timergen.
package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FormatTestSuite defines the test suite for the pattern compiler and
// renderer. It covers directive defaults, the width sign inversion,
// padding floors and the compile-time error cases.
type FormatTestSuite struct {
	suite.Suite
}

// TestCompileErrors tests that malformed patterns are rejected at compile
// time with ErrInvalidFormat, before any rendering can start.
func (s *FormatTestSuite) TestCompileErrors() {
	testCases := []struct {
		name    string
		pattern string
	}{
		{
			name:    "zero width",
			pattern: "%0H",
		},
		{
			name:    "negative zero width",
			pattern: "%-0S",
		},
		{
			name:    "unknown unit",
			pattern: "%X",
		},
		{
			name:    "unknown unit after digits",
			pattern: "%2X",
		},
		{
			name:    "dangling percent at end",
			pattern: "elapsed: %",
		},
		{
			name:    "digits without unit at end",
			pattern: "%12",
		},
		{
			name:    "sign without digits",
			pattern: "%-m",
		},
		{
			name:    "percent before plain literal",
			pattern: "% done",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			f, err := Compile(tc.pattern)
			assert.Nil(s.T(), f, "Compile should not return a Format for %q", tc.pattern)
			assert.ErrorIs(s.T(), err, ErrInvalidFormat, "Compile(%q) should fail with ErrInvalidFormat", tc.pattern)
		})
	}
}

// TestCompileZeroWidthMessage tests that the zero-width error carries the
// established message.
func (s *FormatTestSuite) TestCompileZeroWidthMessage() {
	_, err := Compile("%0H")
	require.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "width cannot be 0")
}

// TestRender tests label rendering across directives, escapes, defaults
// and explicit widths.
func (s *FormatTestSuite) TestRender() {
	testCases := []struct {
		name     string
		pattern  string
		elapsed  int64
		expected string
	}{
		{
			name:     "escaped percent",
			pattern:  "%%",
			elapsed:  0,
			expected: "%",
		},
		{
			name:     "full clock with default widths",
			pattern:  "%H:%M:%S.%m",
			elapsed:  3_725_007, // 1h 2m 5s 7ms
			expected: "01:02:05.007",
		},
		{
			name:     "explicit first-2 hours keeps default padding",
			pattern:  "%-2H:%M:%S",
			elapsed:  65_000,
			expected: "00:01:05",
		},
		{
			name:     "last two millisecond digits",
			pattern:  "%2m",
			elapsed:  999,
			expected: "99",
		},
		{
			name:     "first two millisecond digits",
			pattern:  "%-2m",
			elapsed:  999,
			expected: "99",
		},
		{
			name:     "default stopwatch format",
			pattern:  "%M:%S.%-2m",
			elapsed:  65_432, // 1m 5s 432ms
			expected: "01:05.43",
		},
		{
			name:     "minutes ignore hours by default",
			pattern:  "%M:%S",
			elapsed:  3_723_000, // 1h 2m 3s
			expected: "02:03",
		},
		{
			name:     "wide hours keep every digit",
			pattern:  "%4H",
			elapsed:  90_000_000, // 25h
			expected: "0025",
		},
		{
			name:     "hours overflow keeps last two digits",
			pattern:  "%H",
			elapsed:  450_000_000, // 125h
			expected: "25",
		},
		{
			name:     "single last second digit",
			pattern:  "%1S",
			elapsed:  15_000,
			expected: "5",
		},
		{
			name:     "single first second digit stays padded",
			pattern:  "%-1S",
			elapsed:  5_000,
			expected: "0",
		},
		{
			name:     "literals around directives",
			pattern:  "t=%S s (100%%)",
			elapsed:  9_000,
			expected: "t=09 s (100%)",
		},
		{
			name:     "zero elapsed",
			pattern:  "%H:%M:%S.%m",
			elapsed:  0,
			expected: "00:00:00.000",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			f, err := Compile(tc.pattern)
			require.NoError(s.T(), err, "Compile(%q) should succeed", tc.pattern)
			assert.Equal(s.T(), tc.expected, f.Render(tc.elapsed))
		})
	}
}

// TestRenderIsReusable tests that one compiled Format produces consistent
// labels when reused across many elapsed times.
func (s *FormatTestSuite) TestRenderIsReusable() {
	f, err := Compile("%M:%S.%m")
	require.NoError(s.T(), err)

	for _, elapsed := range []int64{0, 1, 999, 1_000, 59_999, 60_000, 3_599_999} {
		first := f.Render(elapsed)
		second := f.Render(elapsed)
		assert.Equal(s.T(), first, second, "Render should be deterministic for %d", elapsed)
	}
	assert.Equal(s.T(), "%M:%S.%m", f.Pattern())
}

// TestUnitsRoundTrip tests the round-trip law: decomposing an elapsed time
// into clock fields and recombining them reproduces the input exactly.
func (s *FormatTestSuite) TestUnitsRoundTrip() {
	samples := []int64{
		0, 1, 999, 1_000, 1_001, 59_999, 60_000, 3_599_999,
		3_600_000, 3_725_007, 86_399_999, 86_400_000, 360_000_000_000,
	}

	for _, elapsed := range samples {
		units := UnitsFromMillis(elapsed)
		assert.Equal(s.T(), elapsed, units.Elapsed(), "round trip should be lossless for %d", elapsed)
		assert.GreaterOrEqual(s.T(), units.Minutes, int64(0))
		assert.Less(s.T(), units.Minutes, int64(60))
		assert.GreaterOrEqual(s.T(), units.Seconds, int64(0))
		assert.Less(s.T(), units.Seconds, int64(60))
		assert.GreaterOrEqual(s.T(), units.Milliseconds, int64(0))
		assert.Less(s.T(), units.Milliseconds, int64(1000))
	}
}

// TestUnitsFromSeconds tests the whole-second decomposition helper.
func (s *FormatTestSuite) TestUnitsFromSeconds() {
	units := UnitsFromSeconds(3_725) // 1h 2m 5s
	assert.Equal(s.T(), int64(1), units.Hours)
	assert.Equal(s.T(), int64(2), units.Minutes)
	assert.Equal(s.T(), int64(5), units.Seconds)
	assert.Equal(s.T(), int64(0), units.Milliseconds)
}

// TestFormatSuite runs the Format test suite.
func TestFormatSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}
