// Package ocr defines the boundary to text-recognition engines used by
// the ingestion layer. The interfaces are small and transport-agnostic:
// an engine may wrap a native library (Tesseract), a local binary, or a
// remote API without leaking provider concerns into callers. The
// transliteration core never sees this package; it only receives the
// extracted text.
package ocr

import (
	"context"
	"fmt"
)

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatTIFF ImageFormat = "image/tiff"
)

// Region describes a rectangular area in pixel coordinates with the
// origin in the upper-left corner of the image.
type Region struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsEmpty reports whether the region has non-positive dimensions.
func (r Region) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Input is a single page image submitted for recognition.
type Input struct {
	// ID is echoed back in the corresponding Result; the ingestion layer
	// derives it from the source file name and page number.
	ID string
	// Image is the encoded payload in the format declared by Format.
	Image []byte
	Format ImageFormat
	// Page is the zero-based page index when the image came from a
	// multi-page document.
	Page int
	// DPI is the effective dots-per-inch; zero means unknown.
	DPI int
	// Languages lists Tesseract traineddata names ("san", "hin", "ben",
	// "eng") guiding recognition of the expected scripts.
	Languages []string
	// Region restricts recognition to part of the image; nil means all.
	Region *Region
	// Metadata passes engine-specific knobs (e.g. Tesseract variables)
	// without hard-coding them into the API surface.
	Metadata map[string]string
}

// Word is one recognized token with its position and confidence.
type Word struct {
	Text       string
	Bounds     Region
	Confidence float64
}

// Result is the recognition output for one input image.
type Result struct {
	InputID string
	// PlainText is the linearized page text handed to the
	// transliteration pipeline.
	PlainText  string
	Words      []Word
	Confidence float64
	Language   string
}

// Engine is the minimal provider contract: one image in, one result out.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// BatchEngine recognizes several images in one call, letting providers
// amortize client setup across a document's pages.
type BatchEngine interface {
	Engine
	RecognizeBatch(ctx context.Context, inputs []Input) ([]Result, error)
}

var defaultEngine Engine = noopEngine{}

// DefaultEngine returns the registered default engine (Tesseract when
// the tesseract subpackage is linked in).
func DefaultEngine() Engine { return defaultEngine }

// SetDefaultEngine replaces the default engine.
func SetDefaultEngine(engine Engine) {
	if engine != nil {
		defaultEngine = engine
	}
}

// Recognize runs every input through the engine, using batch support
// when available.
func Recognize(ctx context.Context, engine Engine, inputs []Input) ([]Result, error) {
	if engine == nil {
		engine = DefaultEngine()
	}
	if b, ok := engine.(BatchEngine); ok {
		return b.RecognizeBatch(ctx, inputs)
	}
	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := engine.Recognize(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("recognize %s: %w", in.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}

type noopEngine struct{}

func (noopEngine) Name() string { return "noop" }

func (noopEngine) Recognize(_ context.Context, in Input) (Result, error) {
	return Result{}, fmt.Errorf("no OCR engine registered for input %s", in.ID)
}
