package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPConfig configures the HTTP token provider.
type HTTPConfig struct {
	// BaseURL is the parser sidecar address, e.g. http://localhost:9010.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Pipeline selects the parser model on the sidecar,
	// e.g. en_core_web_md.
	Pipeline string `json:"pipeline" yaml:"pipeline"`
}

// HTTPProvider parses sentences through a spaCy-style REST sidecar.
// The sidecar returns flat token rows with head indexes; the provider
// rebuilds the child lists so callers can walk the dependency tree.
type HTTPProvider struct {
	cfg    HTTPConfig
	client *http.Client
}

// NewHTTPProvider creates a provider for a parser sidecar.
func NewHTTPProvider(cfg HTTPConfig) *HTTPProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:9010"
	}
	if cfg.Pipeline == "" {
		cfg.Pipeline = "en_core_web_md"
	}
	return &HTTPProvider{
		cfg: cfg,
		// Generous for first-request model loading on a cold sidecar.
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type parseRequest struct {
	Pipeline string `json:"pipeline"`
	Text     string `json:"text"`
}

// tokenRow is one token as emitted by the sidecar: flat, with the head
// referenced by sentence index rather than by pointer.
type tokenRow struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Dep   string `json:"dep"`
	Head  int    `json:"head"`
	Index int    `json:"index"`
}

type parseResponse struct {
	Tokens []tokenRow `json:"tokens"`
}

// Parse sends the lowercased sentence to the sidecar and rebuilds the
// token tree from the returned rows.
func (p *HTTPProvider) Parse(ctx context.Context, sentence string) ([]*Token, error) {
	body, err := json.Marshal(parseRequest{
		Pipeline: p.cfg.Pipeline,
		Text:     strings.ToLower(sentence),
	})
	if err != nil {
		return nil, err
	}

	url := p.cfg.BaseURL + "/parse"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nlp: parse request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nlp: reading parse response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nlp: parse error %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed parseResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("nlp: decoding parse response: %w", err)
	}

	return link(parsed.Tokens)
}

// link converts flat head-indexed token rows into a token slice with
// resolved child pointers. A token whose head index equals its own
// index is a root.
func link(rows []tokenRow) ([]*Token, error) {
	tokens := make([]*Token, len(rows))
	for i, r := range rows {
		tokens[i] = &Token{
			Text:  r.Text,
			Lemma: r.Lemma,
			POS:   r.POS,
			Dep:   r.Dep,
			Index: r.Index,
		}
	}
	for i, r := range rows {
		if r.Head == r.Index {
			continue // root
		}
		if r.Head < 0 || r.Head >= len(rows) {
			return nil, fmt.Errorf("nlp: token %d has out-of-range head %d", i, r.Head)
		}
		head := tokens[r.Head]
		head.Children = append(head.Children, tokens[i])
	}
	return tokens, nil
}
