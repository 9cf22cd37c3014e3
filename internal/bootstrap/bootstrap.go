// Package bootstrap wires configuration, rules, extractors and the NER
// client into a ready-to-serve application.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/config"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/ports"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/rules"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/usecase"
	natsevents "github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/infrastructure/events/nats"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/infrastructure/extractor/pdfdoc"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/infrastructure/extractor/tesseract"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/infrastructure/ner/huggingface"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/infrastructure/resilience"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/observability/metrics"
)

type App struct {
	Config   config.Config
	Analyzer ports.DocumentAnalyzer
	Metrics  *metrics.HTTPServerMetrics

	closeFn func()
}

func New(cfg config.Config) (*App, error) {
	ruleSet := rules.Defaults()
	if cfg.RulesPath != "" {
		loaded, err := rules.LoadFile(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules %s: %w", cfg.RulesPath, err)
		}
		ruleSet = loaded
	}
	engine, err := rules.NewEngine(ruleSet)
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	ocr, err := tesseract.New(cfg.OCRLanguage, cfg.OCRWorkers)
	if err != nil {
		return nil, fmt.Errorf("init ocr: %w", err)
	}
	pdfExtractor := pdfdoc.New(ocr, cfg.PDFRasterDPI)

	recognizer := huggingface.New(cfg.NERBaseURL, cfg.NERModel, executor)

	var publisher ports.AnalysisPublisher
	var natsPublisher *natsevents.Publisher
	if cfg.NATSURL != "" {
		natsPublisher, err = natsevents.New(cfg.NATSURL, cfg.NATSSubject, natsevents.Options{
			ResilienceExecutor: executor,
		})
		if err != nil {
			_ = ocr.Close()
			return nil, fmt.Errorf("init event publisher: %w", err)
		}
		publisher = natsPublisher
	}

	analyzer := usecase.NewAnalyzeDocumentUseCase(
		ocr,
		pdfExtractor,
		recognizer,
		engine,
		publisher,
		time.Duration(cfg.AnalyzeTimeoutSeconds)*time.Second,
	)

	return &App{
		Config:   cfg,
		Analyzer: analyzer,
		Metrics:  metrics.NewHTTPServerMetrics("cybercrime-api"),

		closeFn: func() {
			if natsPublisher != nil {
				natsPublisher.Close()
			}
			_ = ocr.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
