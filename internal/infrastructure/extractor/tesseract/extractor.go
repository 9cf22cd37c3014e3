// Package tesseract extracts text from complaint images with the Tesseract
// OCR engine.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Extractor runs OCR over PNG/JPEG bytes. Tesseract handles are not safe for
// concurrent use, so a fixed pool of clients is created once and requests
// borrow one at a time.
type Extractor struct {
	clients chan *gosseract.Client
	size    int
}

func New(language string, workers int) (*Extractor, error) {
	if workers <= 0 {
		workers = 1
	}

	clients := make(chan *gosseract.Client, workers)
	for i := 0; i < workers; i++ {
		client := gosseract.NewClient()
		if err := client.SetLanguage(language); err != nil {
			client.Close()
			for len(clients) > 0 {
				(<-clients).Close()
			}
			return nil, fmt.Errorf("init tesseract with language %q: %w", language, err)
		}
		clients <- client
	}
	return &Extractor{clients: clients, size: workers}, nil
}

func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	select {
	case client := <-e.clients:
		defer func() { e.clients <- client }()

		if err := client.SetImageFromBytes(data); err != nil {
			return "", fmt.Errorf("load image: %w", err)
		}
		text, err := client.Text()
		if err != nil {
			return "", fmt.Errorf("run ocr: %w", err)
		}
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (e *Extractor) Close() error {
	var firstErr error
	for i := 0; i < e.size; i++ {
		if err := (<-e.clients).Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
