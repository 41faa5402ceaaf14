// Package config loads the rendering defaults for timergen. Settings read
// from an optional YAML file seed the command line defaults; flags given
// explicitly always win over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Public constants (alphabetical)
const (
	// DefaultFileName is the configuration file looked up in the working
	// directory when no --config flag is given.
	DefaultFileName = ".timergen.yaml"

	// DefaultFrameRate is the frame rate of the generated image sequence.
	DefaultFrameRate = 25

	// DefaultTimeFormat is the timestamp pattern used when none is
	// configured: two minute digits, two second digits and the first two
	// millisecond digits.
	DefaultTimeFormat = "%M:%S.%-2m"
)

// Public types (alphabetical)

// Config holds the user-tunable rendering defaults.
type Config struct {
	// Width is the video width in pixels.
	Width int `yaml:"width"`

	// Height is the video height in pixels.
	Height int `yaml:"height"`

	// FontFamily is the path to a TrueType or OpenType font file.
	FontFamily string `yaml:"font_family"`

	// FontSize is the font size in pixels.
	FontSize float64 `yaml:"font_size"`

	// TextColor is the label color, hex or named.
	TextColor string `yaml:"text_color"`

	// Background is the canvas color, hex or named.
	Background string `yaml:"background"`

	// TimeFormat is the timestamp pattern.
	TimeFormat string `yaml:"time_format"`

	// FrameRate is the frame rate of the rendered image sequence.
	FrameRate int `yaml:"frame_rate"`

	// OutputFrameRate re-times the encoded video. Zero means "same as
	// FrameRate".
	OutputFrameRate int `yaml:"output_frame_rate"`
}

// Public functions (alphabetical)

// Default returns the built-in defaults: a 250x50 canvas with white text
// on black at 25 frames per second.
func Default() Config {
	return Config{
		Width:      250,
		Height:     50,
		FontSize:   40,
		TextColor:  "#FFFFFF",
		Background: "#000000",
		TimeFormat: DefaultTimeFormat,
		FrameRate:  DefaultFrameRate,
	}
}

// Load reads the YAML file at path and overlays it on the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadIfPresent behaves like Load but returns the plain defaults when the
// file does not exist.
func LoadIfPresent(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
