package ports

import (
	"context"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
)

// TextExtractor produces plain text from raw upload bytes of one media kind.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// EntityRecognizer runs token-classification NER over normalized text and
// returns aggregated spans in text order. Safe for concurrent use.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error)
}

// AnalysisPublisher emits completed analyses to interested consumers.
// Publishing is best effort; failures must not fail the originating request.
type AnalysisPublisher interface {
	PublishAnalysisCompleted(ctx context.Context, analysis *domain.Analysis) error
}
