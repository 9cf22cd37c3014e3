package ports

import (
	"context"
	"io"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
)

// DocumentAnalyzer is the inbound contract for one-shot document analysis.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, filename, mimeType string, body io.Reader) (*domain.Analysis, error)
}
