// Package ffmpeg provides functionality for detecting and driving FFmpeg.
// It locates the FFmpeg installation on the system and encodes rendered
// frame sequences into timer videos.
package ffmpeg

import (
	"fmt"
	"time"
)

// Private constants (alphabetical)
const (
	// detectTimeout is the timeout for FFmpeg detection commands such as
	// version probing. Detection that exceeds this timeout is terminated.
	detectTimeout = 30 * time.Second

	// errorPrefix is used as a prefix for all error messages from this
	// package. This ensures consistent error formatting across the package.
	errorPrefix = "ffmpeg: "
)

// Public constants (alphabetical)
const (
	// DefaultCodec is the video codec used for encoded timer videos.
	DefaultCodec = "libx264"

	// DefaultPixelFormat is the pixel format used for encoded timer
	// videos. yuv420p keeps the output playable in common players.
	DefaultPixelFormat = "yuv420p"
)

// Public functions (alphabetical)

// FormatError creates a standardized error message with the package prefix.
// It ensures all errors from this package have a consistent format and can
// be easily identified as originating from the ffmpeg package.
func FormatError(format string, args ...interface{}) error {
	return fmt.Errorf(errorPrefix+format, args...)
}

// GetDetectTimeout returns the timeout used for FFmpeg detection commands.
// Applications can use it when creating contexts for detection calls.
func GetDetectTimeout() time.Duration {
	return detectTimeout
}
