// Package nlp defines the token model and the parsing contract used by
// the pattern matcher. Parsing itself is delegated to an external
// dependency-parser service; this package only reconstructs its output
// into token trees.
package nlp

import "context"

// Provider parses one sentence into an ordered sequence of annotated
// tokens. Implementations must return tokens in sentence order with
// child links already resolved.
//
// A Provider failure is fatal to the extraction batch that triggered
// it: callers are expected to discard any partial state and start over
// from an empty store.
type Provider interface {
	Parse(ctx context.Context, sentence string) ([]*Token, error)
}

// Root returns the first token carrying the ROOT dependency label, or
// nil when the parse has no root (an empty sentence).
func Root(tokens []*Token) *Token {
	for _, t := range tokens {
		if t.Dep == DepRoot {
			return t
		}
	}
	return nil
}
