// Package render rasterizes timer labels into image frames.
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Private variables (alphabetical)

// namedColors maps the color names accepted on the command line to their
// RGBA values.
var namedColors = map[string]color.RGBA{
	"black":   {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	"blue":    {R: 0x00, G: 0x00, B: 0xFF, A: 0xFF},
	"cyan":    {R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	"gray":    {R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	"green":   {R: 0x00, G: 0x80, B: 0x00, A: 0xFF},
	"grey":    {R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	"magenta": {R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	"orange":  {R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF},
	"red":     {R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	"white":   {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	"yellow":  {R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
}

// Public functions (alphabetical)

// ParseColor interprets a color argument. It accepts #RGB, #RRGGBB and
// #RRGGBBAA hexadecimal notations (the leading # is optional) as well as a
// small set of named colors.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(name, "#")
	switch len(hex) {
	case 3:
		// Short notation: each digit doubles
		r, err := parseHexChannel(hex[0:1])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("render: invalid color %q", s)
		}
		g, err := parseHexChannel(hex[1:2])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("render: invalid color %q", s)
		}
		b, err := parseHexChannel(hex[2:3])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("render: invalid color %q", s)
		}
		return color.RGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xFF}, nil
	case 6, 8:
		value, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("render: invalid color %q", s)
		}
		if len(hex) == 6 {
			return color.RGBA{
				R: uint8(value >> 16),
				G: uint8(value >> 8),
				B: uint8(value),
				A: 0xFF,
			}, nil
		}
		return color.RGBA{
			R: uint8(value >> 24),
			G: uint8(value >> 16),
			B: uint8(value >> 8),
			A: uint8(value),
		}, nil
	default:
		return color.RGBA{}, fmt.Errorf("render: invalid color %q", s)
	}
}

// Private functions (alphabetical)

// parseHexChannel parses a single hexadecimal digit into a channel value.
func parseHexChannel(s string) (uint8, error) {
	value, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(value), nil
}
