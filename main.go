// Package main provides the entry point for the timergen application.
// It renders a timestamp label for every output frame of a fixed duration
// and drives FFmpeg to assemble the frames into a timer video.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/torre76/timergen/config"
	"github.com/torre76/timergen/ffmpeg"
	"github.com/torre76/timergen/render"
	"github.com/torre76/timergen/timer"
)

// Private constants (alphabetical)
// None currently defined

// Public constants (alphabetical)
// None currently defined

// Private variables (alphabetical)
// None currently defined

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'github.com/torre76/timergen.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// applyFlagOverrides overlays explicitly set command line flags on the
// configuration defaults. Flags the user did not pass keep the file or
// built-in values.
func applyFlagOverrides(cfg *config.Config, c *cli.Context) {
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("font-family") {
		cfg.FontFamily = c.String("font-family")
	}
	if c.IsSet("font-size") {
		cfg.FontSize = c.Float64("font-size")
	}
	if c.IsSet("text") {
		cfg.TextColor = c.String("text")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("format") {
		cfg.TimeFormat = c.String("format")
	}
	if c.IsSet("frame-rate") {
		cfg.FrameRate = c.Int("frame-rate")
	}
	if c.IsSet("video-frame-rate") {
		cfg.OutputFrameRate = c.Int("video-frame-rate")
	}
}

// copyFile copies the file at src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("error copying to %s: %w", dst, err)
	}
	return out.Close()
}

// defaultOutputName returns the output file name used when none is given
// on the command line.
func defaultOutputName(session string) string {
	return session + ".mp4"
}

// diag prints a diagnostic message to STDERR when the configured verbosity
// is at least min. Higher verbosity levels surface progressively chattier
// messages.
func diag(verbosity, min int, format string, args ...interface{}) {
	if verbosity >= min {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// sessionDirName returns the name of the working directory that holds the
// rendered frames of a session.
func sessionDirName(session string) string {
	return "timergen-" + session
}

// versionPrinter prints version, build date and commit information with
// consistent styling.
func versionPrinter(_ *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("⏱️ timergen %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// Public functions (alphabetical)

// generateCommand implements the default command which renders the timer
// frames and encodes them into a video.
func generateCommand(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)
	errorStyle := color.New(color.FgRed)

	verbosity := c.Count("verbose")

	// Get the duration from the first argument
	if c.NArg() < 1 {
		errorStyle.Printf("❌ Error: missing required argument: DURATION\n\n")
		regularStyle.Printf("Usage: %s [options] DURATION\n", c.App.Name)
		regularStyle.Printf("Run '%s --help' for more information.\n", c.App.Name)
		return fmt.Errorf("missing required argument: DURATION")
	}
	durationArg := c.Args().Get(0)
	duration, err := strconv.ParseFloat(durationArg, 64)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", durationArg, err)
	}

	// Configuration file defaults, overridden by explicitly set flags
	var cfg config.Config
	if c.IsSet("config") {
		cfg, err = config.Load(c.String("config"))
	} else {
		cfg, err = config.LoadIfPresent(config.DefaultFileName)
	}
	if err != nil {
		return err
	}
	applyFlagOverrides(&cfg, c)

	// Compile the pattern and build the frame schedule up front, so a bad
	// pattern or duration fails before any frame is rendered
	format, err := timer.Compile(cfg.TimeFormat)
	if err != nil {
		return err
	}
	frames, err := timer.Frames(format, duration, cfg.FrameRate)
	if err != nil {
		return err
	}

	foreground, err := render.ParseColor(cfg.TextColor)
	if err != nil {
		return err
	}
	background, err := render.ParseColor(cfg.Background)
	if err != nil {
		return err
	}

	// Find FFmpeg and check version
	ffmpegInfo, err := ffmpeg.FindFFmpeg()
	if err != nil {
		return fmt.Errorf("error finding FFmpeg: %w", err)
	}
	if !ffmpegInfo.Installed {
		diag(verbosity, 0, "current PATH: %s", os.Getenv("PATH"))
		return fmt.Errorf("ffmpeg not found on this system")
	}

	// Print FFmpeg information
	regularStyle.Printf("🔧 Using FFmpeg at ")
	valueStyle.Printf("%s\n", ffmpegInfo.Path)
	regularStyle.Printf("🔖 FFmpeg version: ")
	valueStyle.Printf("%s\n\n", ffmpegInfo.Version)

	renderer, err := render.New(render.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Foreground: foreground,
		Background: background,
		FontPath:   cfg.FontFamily,
		FontSize:   cfg.FontSize,
	})
	if err != nil {
		return err
	}

	// Create the session working directory
	session := uuid.New().String()
	sessionDir := sessionDirName(session)
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}
	diag(verbosity, 1, "created directory %s", sessionDir)

	outputPath := c.String("output")
	if outputPath == "" {
		outputPath = defaultOutputName(session)
	}

	ctx := context.Background()

	// Render the frame sequence
	labels := make([]string, len(frames))
	for _, frame := range frames {
		labels[frame.Index] = frame.Label
	}

	bar := progressbar.Default(int64(len(labels)), "Rendering frames")
	err = renderer.WriteSequence(ctx, sessionDir, labels, func(index int) {
		bar.Add(1)
		diag(verbosity, 2, "saved frame #%d", index)
	})
	if err != nil {
		return fmt.Errorf("error rendering frames: %w", err)
	}

	// Encode the sequence, then reverse or copy into the final output
	encoder, err := ffmpeg.NewEncoder(ffmpegInfo)
	if err != nil {
		return err
	}

	tmpResult := filepath.Join(sessionDir, "result.mp4")
	err = encoder.EncodeSequence(ctx, ffmpeg.SequenceOptions{
		Pattern:         filepath.Join(sessionDir, "%d.png"),
		FrameRate:       cfg.FrameRate,
		OutputFrameRate: cfg.OutputFrameRate,
		OutputPath:      tmpResult,
	})
	if err != nil {
		return err
	}

	if c.Bool("reversed") {
		if err := encoder.Reverse(ctx, tmpResult, outputPath); err != nil {
			return err
		}
	} else {
		if err := copyFile(tmpResult, outputPath); err != nil {
			return err
		}
	}

	if c.Bool("keep-session") {
		diag(verbosity, 1, "directory %s was kept", sessionDir)
	} else {
		if err := os.RemoveAll(sessionDir); err != nil {
			return fmt.Errorf("error removing session directory: %w", err)
		}
		diag(verbosity, 1, "deleted directory %s", sessionDir)
	}

	pluralizeClient := pluralize.NewClient()
	successStyle.Printf("\n✅ Wrote %s from %d %s\n",
		outputPath, len(frames), pluralizeClient.Pluralize("frame", len(frames), false))
	return nil
}

// main is the entry point of the application.
// It parses command-line arguments, validates input, and starts the
// generation pipeline.
func main() {
	// Override the default version printer and free -v for verbosity
	cli.VersionPrinter = versionPrinter
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "Show the version number and exit",
	}

	// Create a new CLI app
	app := &cli.App{
		Name:  "timergen",
		Usage: "Generate a simple timer video for a given duration",
		Description: "Timergen renders a timestamp label for every output frame of a " +
			"fixed duration and assembles the frames into an H.264 video with FFmpeg. " +
			"Reversed output turns the timer into a countdown.",
		Authors: []*cli.Author{
			{
				Name: "Gian Luca Dalla Torre",
			},
		},
		Version:   Version,
		Action:    generateCommand,
		ArgsUsage: "DURATION",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file name; defaults to <session>.mp4 where <session> is a UUID",
			},
			&cli.BoolFlag{
				Name:    "reversed",
				Aliases: []string{"R"},
				Usage:   "Produce reversed output (for countdowns)",
			},
			&cli.BoolFlag{
				Name:  "keep-session",
				Usage: "Keep temporary files created during the session",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file with rendering defaults",
			},
			&cli.StringFlag{
				Name:    "font-family",
				Aliases: []string{"f"},
				Usage:   "Path to a TrueType or OpenType font; a built-in font is used when omitted",
			},
			&cli.Float64Flag{
				Name:    "font-size",
				Aliases: []string{"S"},
				Usage:   "The font size in pixels",
				Value:   render.DefaultFontSize,
			},
			&cli.IntFlag{
				Name:    "width",
				Aliases: []string{"W"},
				Usage:   "The video width",
				Value:   render.DefaultWidth,
			},
			&cli.IntFlag{
				Name:    "height",
				Aliases: []string{"H"},
				Usage:   "The video height",
				Value:   render.DefaultHeight,
			},
			&cli.StringFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "The text color (hex or named)",
				Value:   "#FFFFFF",
			},
			&cli.StringFlag{
				Name:    "background",
				Aliases: []string{"b"},
				Usage:   "The background color (hex or named)",
				Value:   "#000000",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"F"},
				Usage:   "Timestamp pattern: H hours, M minutes, S seconds, m milliseconds, with an optional digit count",
				Value:   config.DefaultTimeFormat,
			},
			&cli.IntFlag{
				Name:    "frame-rate",
				Aliases: []string{"r"},
				Usage:   "Frame rate of the rendered image sequence",
				Value:   config.DefaultFrameRate,
			},
			&cli.IntFlag{
				Name:    "video-frame-rate",
				Aliases: []string{"a"},
				Usage:   "Frame rate of the encoded video; defaults to the sequence frame rate",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Verbose program output; repeat to increase the verbosity level",
			},
		},
	}

	// Run the application
	if err := app.Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
