package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Sender delivers a single report to the collection endpoint. Senders are
// stateless between calls; the client never retries a failed send.
type Sender interface {
	Send(ctx context.Context, report *Report) error
}

// httpSender posts JSON reports to {endpoint}/api/errors with the API key
// as a header credential. No timeout is configured; the transport's default
// behavior applies.
type httpSender struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func newHTTPSender(endpoint, apiKey string) *httpSender {
	return &httpSender{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{},
	}
}

func (s *httpSender) Send(ctx context.Context, report *Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/api/errors", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Response body content is ignored by contract; drain it so the
	// connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("collector returned status %d", resp.StatusCode)
	}
	return nil
}
