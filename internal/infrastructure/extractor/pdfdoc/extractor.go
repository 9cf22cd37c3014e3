// Package pdfdoc extracts text from uploaded PDFs: the embedded text layer
// when one exists, otherwise each page is rasterized and OCRed.
package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/ports"
)

type Extractor struct {
	ocr ports.TextExtractor
	dpi int
}

// New builds a PDF extractor that falls back to OCR at the given raster DPI.
func New(ocr ports.TextExtractor, dpi int) *Extractor {
	if dpi <= 0 {
		dpi = 300
	}
	return &Extractor{ocr: ocr, dpi: dpi}
}

func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	text, err := textLayer(data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	// No text layer: a scanned PDF.
	return e.rasterizeAndOCR(ctx, data)
}

func textLayer(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Pages without a usable text layer are handled by the
			// OCR fallback.
			continue
		}
		if strings.TrimSpace(content) != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, "\n"), nil
}

func (e *Extractor) rasterizeAndOCR(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf for rasterization: %w", err)
	}
	defer doc.Close()

	var parts []string
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		img, err := doc.ImageDPI(n, float64(e.dpi))
		if err != nil {
			return "", fmt.Errorf("rasterize page %d: %w", n+1, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("encode page %d: %w", n+1, err)
		}

		text, err := e.ocr.Extract(ctx, buf.Bytes())
		if err != nil {
			return "", fmt.Errorf("ocr page %d: %w", n+1, err)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}
