// Package network links relationships into acyclic chains. A chain is
// a candidate end-to-end acceptance-test flow: each step's object
// connects to the next step's subject under the active chain style.
package network

import (
	"strings"

	"github.com/reqchain/reqchain/nlp"
	"github.com/reqchain/reqchain/store"
)

// Style selects how a token group canonicalizes into a chain term.
type Style int

const (
	// WholeGroup compares the space-joined lemma sequence of the
	// whole group.
	WholeGroup Style = iota

	// LastWord compares only the lemma of the group's final token.
	LastWord
)

// String returns the configuration name of the style.
func (s Style) String() string {
	if s == LastWord {
		return "last-word"
	}
	return "whole-group"
}

// Chain is an ordered sequence of distinct relationship keys. A chain
// of length 1 is valid on its own.
type Chain []string

// Network indexes a relationship store by canonical head (the lemma
// form of each relationship's subject group) and enumerates chains.
// The store must not change while the network is in use; rebuild with
// New after mutating it.
type Network struct {
	store     *store.Store
	headOrder []string
	heads     map[string][]string
}

// New builds the head index for the current store contents.
func New(s *store.Store) *Network {
	n := &Network{
		store: s,
		heads: make(map[string][]string),
	}
	for _, rel := range s.Relationships() {
		head := nlp.JoinLemmas(rel.Groups[0])
		if _, ok := n.heads[head]; !ok {
			n.headOrder = append(n.headOrder, head)
		}
		n.heads[head] = append(n.heads[head], rel.Key)
	}
	return n
}

// Heads returns the canonical head forms in first-seen order.
func (n *Network) Heads() []string {
	return append([]string(nil), n.headOrder...)
}

// Tails returns the relationship keys sharing the given head form.
func (n *Network) Tails(head string) []string {
	return append([]string(nil), n.heads[head]...)
}

// searchTerm canonicalizes a relationship's object group: the term a
// chain ending in this relationship searches for.
func searchTerm(rel *store.Relationship, style Style) string {
	return term(rel.Groups[2], style)
}

// testTerm canonicalizes a relationship's subject group: the term a
// candidate extension is tested against.
func testTerm(rel *store.Relationship, style Style) string {
	return term(rel.Groups[0], style)
}

func term(group []*nlp.Token, style Style) string {
	if len(group) == 0 {
		return ""
	}
	if style == LastWord {
		return group[len(group)-1].Lemma
	}
	return nlp.JoinLemmas(group)
}

// partial is one work item of the chain search: a chain plus the
// search term of its tail relationship.
type partial struct {
	chain Chain
	tail  string
}

// Chains enumerates every acyclic chain over the store. Each
// relationship seeds a singleton chain; a chain ending at relationship
// X extends into every relationship C (full store scan) whose key is
// not yet in the chain and whose test term equals X's search term.
// Every chain produced at every depth is retained, so the result set
// is closed under prefixes; identical ordered key sequences are
// deduplicated globally. Results appear in discovery order.
//
// Each extension consumes a relationship not yet in the chain, so the
// search terminates after at most Len(store) steps per branch. The
// work list is explicit: no search state survives between calls.
func (n *Network) Chains(style Style) []Chain {
	rels := n.store.Relationships()

	var out []Chain
	seen := make(map[string]bool)
	emit := func(c Chain) {
		id := strings.Join(c, "\x1e")
		if !seen[id] {
			seen[id] = true
			out = append(out, c)
		}
	}

	var stack []partial
	for _, rel := range rels {
		stack = append(stack[:0], partial{
			chain: Chain{rel.Key},
			tail:  searchTerm(rel, style),
		})

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			emit(p.chain)

			// Push extensions in reverse so the store-order
			// extension is explored first.
			for i := len(rels) - 1; i >= 0; i-- {
				cand := rels[i]
				if p.chain.contains(cand.Key) {
					continue
				}
				if testTerm(cand, style) != p.tail {
					continue
				}
				next := make(Chain, len(p.chain), len(p.chain)+1)
				copy(next, p.chain)
				next = append(next, cand.Key)
				stack = append(stack, partial{
					chain: next,
					tail:  searchTerm(cand, style),
				})
			}
		}
	}
	return out
}

// contains reports whether the chain already holds the key. Reusing a
// key would close a cycle; candidates that do are silently excluded
// from the search rather than surfaced as errors.
func (c Chain) contains(key string) bool {
	for _, k := range c {
		if k == key {
			return true
		}
	}
	return false
}
