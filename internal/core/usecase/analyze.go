package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/ports"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/rules"
)

// AnalyzeDocumentUseCase orchestrates one request: extract text from the
// upload, normalize it, and run the entity, platform, amount, crime-type and
// severity stages. All state is request-local.
type AnalyzeDocumentUseCase struct {
	extractors map[domain.MediaKind]ports.TextExtractor
	recognizer ports.EntityRecognizer
	engine     *rules.Engine
	publisher  ports.AnalysisPublisher
	timeout    time.Duration
}

func NewAnalyzeDocumentUseCase(
	imageExtractor ports.TextExtractor,
	pdfExtractor ports.TextExtractor,
	recognizer ports.EntityRecognizer,
	engine *rules.Engine,
	publisher ports.AnalysisPublisher,
	timeout time.Duration,
) *AnalyzeDocumentUseCase {
	return &AnalyzeDocumentUseCase{
		extractors: map[domain.MediaKind]ports.TextExtractor{
			domain.MediaImage: imageExtractor,
			domain.MediaPDF:   pdfExtractor,
		},
		recognizer: recognizer,
		engine:     engine,
		publisher:  publisher,
		timeout:    timeout,
	}
}

func (uc *AnalyzeDocumentUseCase) Analyze(
	ctx context.Context,
	filename, mimeType string,
	body io.Reader,
) (*domain.Analysis, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read upload", err)
	}
	if len(raw) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read upload", errors.New("empty file"))
	}

	kind, ok := domain.DetectMediaKind(mimeType, filename)
	if !ok {
		return nil, domain.WrapError(
			domain.ErrInvalidInput,
			"detect media type",
			fmt.Errorf("unsupported file type %q: upload PDF or image", filename),
		)
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	text, err := uc.extractors[kind].Extract(ctx, raw)
	if err != nil {
		return nil, domain.WrapError(domain.ErrExtraction, "extract text", err)
	}
	text = rules.Normalize(text)

	analysis, err := uc.analyzeText(ctx, text)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, analysis)
	return analysis, nil
}

// analyzeText runs the rule stages over normalized text. Empty text
// short-circuits: the NER model is never invoked and every detector yields
// its null/default outcome.
func (uc *AnalyzeDocumentUseCase) analyzeText(ctx context.Context, text string) (*domain.Analysis, error) {
	analysis := &domain.Analysis{
		Text:      text,
		CrimeType: uc.engine.ClassifyCrime(text),
	}
	analysis.Category = analysis.CrimeType

	severity := uc.engine.ScoreSeverity(text)
	analysis.Severity = severity.Label
	analysis.SeverityScore = severity.Score
	analysis.MatchedKeywords = severity.MatchedKeywords

	if text == "" {
		return analysis, nil
	}

	spans, err := uc.recognizer.Recognize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("recognize entities: %w", err)
	}
	analysis.Entities = rules.ResolveEntities(spans)
	analysis.Platform = uc.engine.DetectPlatform(text)
	analysis.Amount = uc.engine.ExtractAmount(text)

	return analysis, nil
}

func (uc *AnalyzeDocumentUseCase) publish(ctx context.Context, analysis *domain.Analysis) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishAnalysisCompleted(ctx, analysis); err != nil {
		slog.Warn("analysis_event_publish_failed", "error", err)
	}
}
