package pose

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Result is what the external pose-matching service hands back. Both fields
// are opaque to the game; similarity is never computed locally.
type Result struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

type Scorer interface {
	Score(ctx context.Context, jpeg []byte) (Result, error)
}

// HTTPScorer posts the captured still to a scoring endpoint and decodes the
// JSON result.
type HTTPScorer struct {
	URL    string
	Client *http.Client
}

func NewHTTPScorer(url string) *HTTPScorer {
	return &HTTPScorer{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPScorer) Score(ctx context.Context, jpeg []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(jpeg))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := s.Client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("pose scorer: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("pose scorer: status %d", resp.StatusCode)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("pose scorer: decode: %w", err)
	}
	return out, nil
}

// Stub stands in when no scorer endpoint is configured.
type Stub struct{}

func (Stub) Score(context.Context, []byte) (Result, error) {
	return Result{Score: 0, Feedback: "pose scoring not configured"}, nil
}
