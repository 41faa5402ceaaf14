// Package render rasterizes timer labels into image frames. Each label is
// drawn centered on a fixed-size canvas and the resulting frames are
// persisted as a zero-based numbered PNG sequence, ready for FFmpeg's
// image2 demuxer.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"
)

// Public constants (alphabetical)
const (
	// DefaultFontSize is the font size in pixels used when none is given.
	DefaultFontSize = 40.0

	// DefaultHeight is the frame height in pixels used when none is given.
	DefaultHeight = 50

	// DefaultWidth is the frame width in pixels used when none is given.
	DefaultWidth = 250
)

// Public types (alphabetical)

// Options configures the frame canvas and typography.
type Options struct {
	// Width is the frame width in pixels.
	Width int

	// Height is the frame height in pixels.
	Height int

	// Foreground is the label color. Defaults to white.
	Foreground color.Color

	// Background fills the canvas behind the label. Defaults to black.
	Background color.Color

	// FontPath is the path to a TrueType or OpenType font file. When empty
	// a built-in bitmap font is used.
	FontPath string

	// FontSize is the font size in pixels. Only honored for FontPath
	// fonts; the built-in fallback has a fixed size.
	FontSize float64
}

// Renderer draws timer labels onto frames. The underlying font face is not
// safe for concurrent use, so label drawing always happens on the calling
// goroutine; only frame encoding is parallelized.
type Renderer struct {
	opts Options
	face font.Face
}

// Public functions (alphabetical)

// New creates a Renderer for the given options, loading the configured
// font file or falling back to the built-in bitmap face.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.Foreground == nil {
		opts.Foreground = color.White
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}

	face := font.Face(basicfont.Face7x13)
	if opts.FontPath != "" {
		data, err := os.ReadFile(opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("render: reading font %s: %w", opts.FontPath, err)
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("render: parsing font %s: %w", opts.FontPath, err)
		}
		size := opts.FontSize
		if size <= 0 {
			size = DefaultFontSize
		}
		face, err = opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("render: creating font face: %w", err)
		}
	}

	return &Renderer{opts: opts, face: face}, nil
}

// Public methods (alphabetical)

// Frame renders a single label centered on a fresh canvas.
func (r *Renderer) Frame(label string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.opts.Foreground),
		Face: r.face,
	}

	// Center horizontally on the advance width and vertically between
	// ascent and descent
	width := d.MeasureString(label)
	metrics := r.face.Metrics()
	d.Dot = fixed.Point26_6{
		X: (fixed.I(r.opts.Width) - width) / 2,
		Y: (fixed.I(r.opts.Height) + metrics.Ascent - metrics.Descent) / 2,
	}
	d.DrawString(label)

	return img
}

// WriteSequence renders the labels in order and writes them as
// <index>.png files under dir. PNG encoding and file writes run on a
// bounded worker pool; each frame's index fixes its file name, so output
// ordering is preserved regardless of completion order. When onFrame is
// non-nil it is invoked once per persisted frame and may be called from
// multiple goroutines.
func (r *Renderer) WriteSequence(ctx context.Context, dir string, labels []string, onFrame func(index int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, label := range labels {
		if gctx.Err() != nil {
			break
		}
		img := r.Frame(label)

		g.Go(func() error {
			path := filepath.Join(dir, strconv.Itoa(i)+".png")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("render: creating frame %d: %w", i, err)
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return fmt.Errorf("render: encoding frame %d: %w", i, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("render: closing frame %d: %w", i, err)
			}
			if onFrame != nil {
				onFrame(i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
