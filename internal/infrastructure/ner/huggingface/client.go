// Package huggingface talks to a token-classification inference server
// (Hugging Face inference API wire format) to run named-entity recognition.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/infrastructure/resilience"
)

// Client is an EntityRecognizer backed by a BERT-style NER model served over
// HTTP. Spans come back already aggregated ("simple" strategy), in text
// order. Safe for concurrent use.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL, model string, executor *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		executor:   executor,
	}
}

type recognizeRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

func (c *Client) Recognize(ctx context.Context, text string) ([]domain.EntitySpan, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	payload := recognizeRequest{
		Inputs:     text,
		Parameters: map[string]string{"aggregation_strategy": "simple"},
	}

	var spans []domain.EntitySpan
	call := func(ctx context.Context) error {
		return c.postJSON(ctx, "/models/"+c.model, payload, &spans)
	}

	var err error
	if c.executor != nil {
		err = c.executor.Do(ctx, "ner.recognize", call, classifyNERError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, wrapTemporaryIfNeeded("recognize entities", err)
	}
	return spans, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal ner request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create ner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ner request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode ner response: %w", err)
	}
	return nil
}
