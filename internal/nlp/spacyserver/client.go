package spacyserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rajan170/ai-resume-analyzer/internal/nlp"
)

// Client implements nlp.Recognizer against a spaCy HTTP sidecar
// (POST /ent with {"text": ...}, the layout spacy-server exposes).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a recognizer client for the sidecar at baseURL.
func New(baseURL string) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("NER_SERVER_URL is required")
	}
	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

type entRequest struct {
	Text string `json:"text"`
}

type entResponse struct {
	Entities []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	} `json:"entities"`
}

// Entities returns the tagged spans found in text.
func (c *Client) Entities(ctx context.Context, text string) ([]nlp.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	payload, err := json.Marshal(entRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("ner: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ent", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("ner: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner: %w: %v", nlp.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ner: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner: status %d", resp.StatusCode)
	}

	var parsed entResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("ner: decode response: %w", err)
	}

	out := make([]nlp.Entity, 0, len(parsed.Entities))
	for _, ent := range parsed.Entities {
		out = append(out, nlp.Entity{
			Text:  ent.Text,
			Label: nlp.Label(strings.ToUpper(strings.TrimSpace(ent.Label))),
		})
	}
	return out, nil
}
