// Package ffmpeg provides functionality for detecting and driving FFmpeg.
package ffmpeg

import "sync"

// Public types (alphabetical)

// Encoder assembles rendered frame sequences into videos by invoking the
// FFmpeg executable.
type Encoder struct {
	// FFmpegPath is the path to the FFmpeg executable
	FFmpegPath string
	// mutex serializes encode invocations on this Encoder
	mutex sync.Mutex
}

// FFmpegInfo contains information about the FFmpeg installation
type FFmpegInfo struct {
	// Installed is true if FFmpeg is found in the system
	Installed bool
	// Path is the full path to the FFmpeg executable
	Path string
	// Version is the version of FFmpeg
	Version string
}

// SequenceOptions describes an image sequence to encode into a video.
type SequenceOptions struct {
	// Pattern is the printf-style frame file pattern, e.g. "frames/%d.png".
	Pattern string

	// FrameRate is the frame rate of the input image sequence.
	FrameRate int

	// OutputFrameRate re-times the encoded video. Zero means "same as
	// FrameRate".
	OutputFrameRate int

	// OutputPath is the path of the encoded video file.
	OutputPath string
}
