// Package nats publishes completed analyses to a NATS subject so downstream
// consumers (dashboards, case-management) can react without the service
// holding any state.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/infrastructure/resilience"
)

type Publisher struct {
	conn     *nats.Conn
	subject  string
	executor *resilience.Executor
}

type Options struct {
	ConnectTimeout     time.Duration
	ReconnectWait      time.Duration
	MaxReconnects      int
	ResilienceExecutor *resilience.Executor
}

func New(url, subject string, options Options) (*Publisher, error) {
	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 2 * time.Second
	}
	reconnectWait := options.ReconnectWait
	if reconnectWait <= 0 {
		reconnectWait = 2 * time.Second
	}
	maxReconnects := options.MaxReconnects
	if maxReconnects <= 0 {
		maxReconnects = 60
	}

	conn, err := nats.Connect(
		url,
		nats.Name("cybercrime-analyzer"),
		nats.Timeout(connectTimeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("nats_disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats_reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{
		conn:     conn,
		subject:  subject,
		executor: options.ResilienceExecutor,
	}, nil
}

func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// analysisEvent omits the extracted text: consumers get the verdict, not the
// complaint contents.
type analysisEvent struct {
	CrimeType       string   `json:"crime_type"`
	Severity        string   `json:"severity"`
	SeverityScore   int      `json:"severity_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	Platform        *string  `json:"platform"`
	Amount          *float64 `json:"amount"`
	OccurredAt      string   `json:"occurred_at"`
}

func (p *Publisher) PublishAnalysisCompleted(ctx context.Context, analysis *domain.Analysis) error {
	payload, err := json.Marshal(analysisEvent{
		CrimeType:       analysis.CrimeType,
		Severity:        analysis.Severity,
		SeverityScore:   analysis.SeverityScore,
		MatchedKeywords: analysis.MatchedKeywords,
		Platform:        analysis.Platform,
		Amount:          analysis.Amount,
		OccurredAt:      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal analysis event: %w", err)
	}

	call := func(context.Context) error {
		if err := p.conn.Publish(p.subject, payload); err != nil {
			return fmt.Errorf("nats publish: %w", err)
		}
		return nil
	}
	if p.executor != nil {
		return p.executor.Do(ctx, "nats.publish", call, classifyNATSError)
	}
	return call(ctx)
}
