// Package ingest turns uploaded files into plain text for the
// transliteration pipeline. Plain-text files are decoded directly,
// images go through the OCR engine, and PDFs are rasterized page by
// page and OCR'd. The pipeline core never sees file types or OCR
// concerns; it receives only the extracted text.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/text/encoding/charmap"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/akshara/lipi/observability"
	"github.com/akshara/lipi/ocr"
)

// Kind is the coarse input classification driving extraction.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindPDF
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// Document is the extraction result: the text of one input file.
type Document struct {
	Name  string
	Text  string
	Kind  Kind
	Pages int
}

type config struct {
	engine     ocr.Engine
	rasterizer Rasterizer
	languages  []string
	dpi        int
	logger     observability.Logger
}

// Option adjusts extraction behavior.
type Option func(*config)

// WithEngine selects the OCR engine; the default is ocr.DefaultEngine.
func WithEngine(engine ocr.Engine) Option {
	return func(c *config) {
		if engine != nil {
			c.engine = engine
		}
	}
}

// WithLanguages sets traineddata hints for image and PDF inputs. This is
// the OCR-language knob from the configuration surface; it never reaches
// the conversion core.
func WithLanguages(langs ...string) Option {
	return func(c *config) { c.languages = append([]string(nil), langs...) }
}

// WithDPI declares the scan resolution for OCR inputs.
func WithDPI(dpi int) Option {
	return func(c *config) { c.dpi = dpi }
}

// WithRasterizer replaces the PDF page rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(c *config) {
		if r != nil {
			c.rasterizer = r
		}
	}
}

// WithLogger attaches a logger for extraction diagnostics.
func WithLogger(l observability.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		engine:     ocr.DefaultEngine(),
		rasterizer: FitzRasterizer{},
		logger:     observability.NopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DetectKind classifies a file by extension, falling back to content
// sniffing when the extension is unhelpful.
func DetectKind(name string, data []byte) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", ".md":
		return KindText
	case ".pdf":
		return KindPDF
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp", ".gif":
		return KindImage
	}
	switch ct := http.DetectContentType(data); {
	case ct == "application/pdf":
		return KindPDF
	case strings.HasPrefix(ct, "image/"):
		return KindImage
	case strings.HasPrefix(ct, "text/"):
		return KindText
	}
	return KindUnknown
}

// Extract produces the plain text of one uploaded file. Unknown kinds
// are attempted as text, matching the original tool's permissive upload
// handling.
func Extract(ctx context.Context, name string, data []byte, opts ...Option) (Document, error) {
	cfg := newConfig(opts)
	kind := DetectKind(name, data)
	doc := Document{Name: name, Kind: kind}

	switch kind {
	case KindPDF:
		return extractPDF(ctx, doc, data, cfg)
	case KindImage:
		return extractImage(ctx, doc, data, cfg)
	default:
		doc.Text = DecodeText(data)
		doc.Pages = 1
		return doc, nil
	}
}

// DecodeText interprets bytes as UTF-8, falling back to ISO-8859-1 when
// the payload is not valid UTF-8. Latin-1 decoding cannot fail, so the
// fallback always yields usable text.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

func extractImage(ctx context.Context, doc Document, data []byte, cfg config) (Document, error) {
	payload, format, err := normalizeImage(data)
	if err != nil {
		return doc, fmt.Errorf("normalize image %s: %w", doc.Name, err)
	}
	in := ocr.NewInput(doc.Name, payload, format, 0, inputOptions(cfg)...)
	res, err := cfg.engine.Recognize(ctx, in)
	if err != nil {
		return doc, fmt.Errorf("ocr %s: %w", doc.Name, err)
	}
	doc.Text = res.PlainText
	doc.Pages = 1
	cfg.logger.Debug("image extracted",
		observability.String("name", doc.Name),
		observability.Float64("confidence", res.Confidence))
	return doc, nil
}

func extractPDF(ctx context.Context, doc Document, data []byte, cfg config) (Document, error) {
	pages, err := cfg.rasterizer.Rasterize(ctx, data)
	if err != nil {
		return doc, fmt.Errorf("rasterize %s: %w", doc.Name, err)
	}
	inputs := make([]ocr.Input, 0, len(pages))
	for i, page := range pages {
		id := fmt.Sprintf("%s#page-%d", doc.Name, i)
		inputs = append(inputs, ocr.NewInput(id, page, ocr.ImageFormatPNG, i, inputOptions(cfg)...))
	}
	results, err := ocr.Recognize(ctx, cfg.engine, inputs)
	if err != nil {
		return doc, fmt.Errorf("ocr %s: %w", doc.Name, err)
	}
	texts := make([]string, 0, len(results))
	for _, res := range results {
		texts = append(texts, res.PlainText)
	}
	doc.Text = strings.Join(texts, "\n")
	doc.Pages = len(pages)
	cfg.logger.Debug("pdf extracted",
		observability.String("name", doc.Name),
		observability.Int("pages", doc.Pages))
	return doc, nil
}

func inputOptions(cfg config) []ocr.InputOption {
	var opts []ocr.InputOption
	if len(cfg.languages) > 0 {
		opts = append(opts, ocr.WithLanguages(cfg.languages...))
	}
	if cfg.dpi > 0 {
		opts = append(opts, ocr.WithDPI(cfg.dpi))
	}
	return opts
}

// normalizeImage re-encodes formats Tesseract does not read natively
// (BMP, GIF) into PNG and passes PNG/JPEG/TIFF payloads straight
// through.
func normalizeImage(data []byte) ([]byte, ocr.ImageFormat, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/png":
		return data, ocr.ImageFormatPNG, nil
	case "image/jpeg":
		return data, ocr.ImageFormatJPEG, nil
	case "image/tiff":
		return data, ocr.ImageFormatTIFF, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), ocr.ImageFormatPNG, nil
}
