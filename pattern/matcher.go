package pattern

import (
	"context"
	"fmt"
	"strings"

	"github.com/reqchain/reqchain/nlp"
)

// Match is one relationship resolved from a template embedding: the
// three ordered token groups plus the canonical key derived from their
// lemma sequences.
type Match struct {
	// Template is the name of the template that produced the match.
	Template string

	// Groups are the resolved subject, predicate and object token
	// groups, compounds included.
	Groups [3][]*nlp.Token

	// Key is the canonical identifier: the order-sensitive lemma
	// sequence of each group.
	Key string
}

// Key builds the canonical relationship key for three token groups.
// Groups are joined on a separator that cannot appear in a lemma so
// that distinct group splits never collide.
func Key(groups [3][]*nlp.Token) string {
	parts := make([]string, 3)
	for i, g := range groups {
		parts[i] = nlp.JoinLemmas(g)
	}
	return strings.Join(parts, "\x1f")
}

// Matcher finds template embeddings in parsed sentences. The provider
// is needed to resolve literal filler phrases into tokens.
type Matcher struct {
	provider  nlp.Provider
	templates []Template
}

// NewMatcher creates a matcher over the given template catalog.
func NewMatcher(provider nlp.Provider, templates []Template) *Matcher {
	return &Matcher{provider: provider, templates: templates}
}

// FindAll runs every template against one sentence's token graph and
// returns the resolved matches, deduplicated by canonical key within
// the sentence. First-seen token groups win on key collision, whether
// the collision comes from the same template or a different one.
// A template with zero embeddings contributes nothing; that is not an
// error.
func (m *Matcher) FindAll(ctx context.Context, tokens []*nlp.Token) ([]Match, error) {
	var out []Match
	seen := make(map[string]bool)

	for _, tpl := range m.templates {
		assignments := embed(tokens, tpl)
		for _, a := range assignments {
			match, err := m.resolve(ctx, tpl, a)
			if err != nil {
				return nil, err
			}
			if seen[match.Key] {
				continue
			}
			seen[match.Key] = true
			out = append(out, match)
		}
	}
	return out, nil
}

// embed performs the constrained subgraph search for one template:
// assign a token to every role such that the role's predicates hold
// and the adjacency operator to its anchor is satisfied. Every valid
// total assignment is returned.
func embed(tokens []*nlp.Token, tpl Template) [][]*nlp.Token {
	var results [][]*nlp.Token
	assignment := make([]*nlp.Token, len(tpl.Roles))

	var assign func(roleIdx int)
	assign = func(roleIdx int) {
		if roleIdx == len(tpl.Roles) {
			results = append(results, append([]*nlp.Token(nil), assignment...))
			return
		}

		role := tpl.Roles[roleIdx]
		for _, cand := range candidates(tokens, assignment, role) {
			if !satisfies(cand, role) {
				continue
			}
			assignment[roleIdx] = cand
			assign(roleIdx + 1)
			assignment[roleIdx] = nil
		}
	}
	assign(0)
	return results
}

// candidates returns the token pool for a role: the whole sentence for
// the root role, otherwise the anchor token's children or descendants
// depending on the adjacency operator.
func candidates(tokens []*nlp.Token, assignment []*nlp.Token, role Role) []*nlp.Token {
	if role.Anchor == RootAnchor {
		return tokens
	}
	anchor := assignment[role.Anchor]
	if role.Adjacency == Direct {
		return anchor.Children
	}
	return anchor.Descendants()
}

func satisfies(t *nlp.Token, role Role) bool {
	for _, p := range role.Predicates {
		if !p.holds(t) {
			return false
		}
	}
	return true
}

// resolve turns a role assignment into the three ordered token groups.
// Role references expand to the role token's compound modifiers
// followed by the token itself; literal fillers are parsed through the
// token provider.
func (m *Matcher) resolve(ctx context.Context, tpl Template, assignment []*nlp.Token) (Match, error) {
	var groups [3][]*nlp.Token
	for gi, items := range tpl.Groups {
		var group []*nlp.Token
		for _, item := range items {
			if item.Literal != "" {
				parsed, err := m.provider.Parse(ctx, strings.ToLower(item.Literal))
				if err != nil {
					return Match{}, fmt.Errorf("pattern: parsing filler %q: %w", item.Literal, err)
				}
				group = append(group, parsed...)
				continue
			}
			t := assignment[item.Role]
			group = append(group, Compounds(t)...)
			group = append(group, t)
		}
		groups[gi] = group
	}

	return Match{
		Template: tpl.Name,
		Groups:   groups,
		Key:      Key(groups),
	}, nil
}
