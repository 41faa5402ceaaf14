// Package render rasterizes timer labels into image frames.
package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ColorTestSuite defines the test suite for command line color parsing.
type ColorTestSuite struct {
	suite.Suite
}

// TestParseColor tests the accepted hexadecimal notations and named
// colors.
func (s *ColorTestSuite) TestParseColor() {
	testCases := []struct {
		name     string
		input    string
		expected color.RGBA
	}{
		{
			name:     "six digit hex",
			input:    "#FFCC00",
			expected: color.RGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF},
		},
		{
			name:     "six digit hex without hash",
			input:    "ffcc00",
			expected: color.RGBA{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF},
		},
		{
			name:     "short hex",
			input:    "#F0A",
			expected: color.RGBA{R: 0xFF, G: 0x00, B: 0xAA, A: 0xFF},
		},
		{
			name:     "eight digit hex with alpha",
			input:    "#11223380",
			expected: color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80},
		},
		{
			name:     "named color",
			input:    "white",
			expected: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		},
		{
			name:     "named color with surrounding space",
			input:    "  Red ",
			expected: color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := ParseColor(tc.input)
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expected, c)
		})
	}
}

// TestParseColorErrors tests rejection of malformed color arguments.
func (s *ColorTestSuite) TestParseColorErrors() {
	for _, input := range []string{"", "#", "#12", "#12345", "#GGGGGG", "notacolor", "#FFCC0"} {
		s.Run(input, func() {
			_, err := ParseColor(input)
			assert.Error(s.T(), err, "ParseColor(%q) should fail", input)
		})
	}
}

// TestColorSuite runs the color parsing test suite.
func TestColorSuite(t *testing.T) {
	suite.Run(t, new(ColorTestSuite))
}
