// Package reqchain converts natural-language requirement statements
// into chains of semantic relationships usable as acceptance-test
// steps. Each requirement sentence is parsed by an external token
// provider, matched against a catalog of relation templates, and the
// resulting relationships are linked into acyclic chains representing
// candidate end-to-end test flows.
package reqchain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reqchain/reqchain/ingest"
	"github.com/reqchain/reqchain/network"
	"github.com/reqchain/reqchain/nlp"
	"github.com/reqchain/reqchain/pattern"
	"github.com/reqchain/reqchain/store"
)

// Extractor runs the extraction pipeline: ingest → match → aggregate →
// link. It is single-threaded and synchronous; one extraction batch is
// one call.
type Extractor struct {
	provider nlp.Provider
	registry *ingest.Registry
	cfg      Config
}

// Result is the outcome of one extraction batch.
type Result struct {
	// Requirements are the validated input requirements, "will not"
	// lines included (numbered but never matched).
	Requirements []ingest.Requirement

	// Store holds the aggregated relationships.
	Store *store.Store

	// Network is the head index built over the store.
	Network *network.Network

	// Chains are the enumerated acceptance-test flows.
	Chains []network.Chain
}

// New creates an extractor. The provider is required; configuration
// falls back to defaults for unset styles.
func New(provider nlp.Provider, cfg Config) (*Extractor, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	if cfg.PatternStyle == "" {
		cfg.PatternStyle = PatternDirect
	}
	if cfg.ChainStyle == "" {
		cfg.ChainStyle = ChainWholeGroup
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{
		provider: provider,
		registry: ingest.NewRegistry(),
		cfg:      cfg,
	}, nil
}

// ExtractFile loads a requirement document and runs a full extraction
// batch over it.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*Result, error) {
	reqs, err := e.registry.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.Extract(ctx, reqs)
}

// Extract runs one batch over already-validated requirements. A token
// provider failure aborts the batch with no partial state: the
// returned error wraps ErrProviderUnavailable and no Result is
// produced.
func (e *Extractor) Extract(ctx context.Context, reqs []ingest.Requirement) (*Result, error) {
	adjacency := pattern.Direct
	if e.cfg.PatternStyle == PatternNested {
		adjacency = pattern.AnyDepth
	}
	matcher := pattern.NewMatcher(e.provider, pattern.Catalog(adjacency))

	s := store.New()
	for _, req := range reqs {
		if !req.Eligible() {
			slog.Debug("skipping deferred requirement", "number", req.Number, "text", req.Text)
			continue
		}

		tokens, err := e.provider.Parse(ctx, strings.ToLower(req.Text))
		if err != nil {
			return nil, fmt.Errorf("%w: requirement %d: %v", ErrProviderUnavailable, req.Number, err)
		}

		matches, err := matcher.FindAll(ctx, tokens)
		if err != nil {
			return nil, fmt.Errorf("%w: requirement %d: %v", ErrProviderUnavailable, req.Number, err)
		}

		for _, m := range matches {
			s.Add(m, req.Number, req.Priority)
		}
		slog.Debug("assessed requirement",
			"number", req.Number,
			"priority", req.Priority,
			"relationships", len(matches))
	}

	n := network.New(s)
	style := network.WholeGroup
	if e.cfg.ChainStyle == ChainLastWord {
		style = network.LastWord
	}
	chains := n.Chains(style)

	slog.Info("extraction batch complete",
		"requirements", len(reqs),
		"relationships", s.Len(),
		"chains", len(chains))

	return &Result{
		Requirements: reqs,
		Store:        s,
		Network:      n,
		Chains:       chains,
	}, nil
}
