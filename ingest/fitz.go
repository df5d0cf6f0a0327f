package ingest

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// Rasterizer renders a PDF into one PNG payload per page.
type Rasterizer interface {
	Rasterize(ctx context.Context, data []byte) ([][]byte, error)
}

// FitzRasterizer renders PDF pages with MuPDF via go-fitz.
type FitzRasterizer struct{}

func (FitzRasterizer) Rasterize(ctx context.Context, data []byte) ([][]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pages := make([][]byte, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.Image(n)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", n, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode page %d: %w", n, err)
		}
		pages = append(pages, buf.Bytes())
	}
	return pages, nil
}
