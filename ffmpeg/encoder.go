// Package ffmpeg provides functionality for detecting and driving FFmpeg.
// It encodes rendered frame sequences into H.264 videos and can produce a
// reversed rendition for countdown timers.
package ffmpeg

import (
	"context"
	"os/exec"
	"strconv"
)

// Private functions (alphabetical)

// buildReverseArgs assembles the FFmpeg argument list that re-encodes a
// video with its frames in reverse order.
func buildReverseArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",
		"-i", inputPath,
		"-vf", "reverse",
		outputPath,
	}
}

// buildSequenceArgs assembles the FFmpeg argument list that encodes a
// numbered image sequence into a video. The input sequence is read at
// opts.FrameRate and the output is re-timed to opts.OutputFrameRate when
// that differs.
func buildSequenceArgs(opts SequenceOptions) []string {
	outputRate := opts.OutputFrameRate
	if outputRate <= 0 {
		outputRate = opts.FrameRate
	}

	return []string{
		"-y",
		"-framerate", strconv.Itoa(opts.FrameRate),
		"-i", opts.Pattern,
		"-c:v", DefaultCodec,
		"-pix_fmt", DefaultPixelFormat,
		"-r", strconv.Itoa(outputRate),
		opts.OutputPath,
	}
}

// Public functions (alphabetical)

// NewEncoder creates a new Encoder bound to the provided FFmpeg
// installation. It validates that FFmpeg is available before creating the
// encoder; if it is not, an error is returned.
func NewEncoder(ffmpegInfo *FFmpegInfo) (*Encoder, error) {
	if ffmpegInfo == nil || !ffmpegInfo.Installed {
		return nil, FormatError("ffmpeg not available")
	}

	return &Encoder{
		FFmpegPath: ffmpegInfo.Path,
	}, nil
}

// Public methods (alphabetical)

// EncodeSequence encodes a numbered image sequence into a video file.
// It validates the options, invokes FFmpeg and returns FFmpeg's combined
// output in the error when the invocation fails.
//
// The context parameter allows cancellation of a long-running encode.
func (e *Encoder) EncodeSequence(ctx context.Context, opts SequenceOptions) error {
	if opts.Pattern == "" {
		return FormatError("sequence pattern cannot be empty")
	}
	if opts.FrameRate <= 0 {
		return FormatError("invalid sequence frame rate %d", opts.FrameRate)
	}
	if opts.OutputPath == "" {
		return FormatError("output path cannot be empty")
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	cmd := exec.CommandContext(ctx, e.FFmpegPath, buildSequenceArgs(opts)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return FormatError("encoding sequence: %v, output: %s", err, string(out))
	}
	return nil
}

// Reverse re-encodes the video at inputPath with its frames in reverse
// order, writing the result to outputPath. It is used to turn a count-up
// timer into a countdown.
func (e *Encoder) Reverse(ctx context.Context, inputPath, outputPath string) error {
	if inputPath == "" || outputPath == "" {
		return FormatError("reverse requires both input and output paths")
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()

	cmd := exec.CommandContext(ctx, e.FFmpegPath, buildReverseArgs(inputPath, outputPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return FormatError("reversing video: %v, output: %s", err, string(out))
	}
	return nil
}
