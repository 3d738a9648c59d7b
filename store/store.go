// Package store aggregates relationships extracted from requirement
// sentences and optionally persists finished extraction runs to
// SQLite.
package store

import (
	"github.com/reqchain/reqchain/nlp"
	"github.com/reqchain/reqchain/pattern"
)

// moscowOrder lists MoSCoW priorities from highest to lowest.
var moscowOrder = []string{"must", "should", "could", "will not"}

// Relationship is a canonicalized (subject, predicate, object) token
// triple, possibly shared by several requirements. The accumulation
// lists grow by one entry per contributing requirement, in ingestion
// order.
type Relationship struct {
	// Key is the canonical identifier: the order-sensitive lemma
	// sequence of the three groups.
	Key string

	// Groups are the first-seen subject, predicate and object token
	// groups for this key.
	Groups [3][]*nlp.Token

	// Requirements are the numbers of every requirement the
	// relationship was found in.
	Requirements []int

	// Priorities are the MoSCoW priorities of those requirements,
	// index-aligned with Requirements.
	Priorities []string

	// Templates are the names of the templates that produced the
	// relationship, index-aligned with Requirements.
	Templates []string
}

// HighestPriority returns the highest MoSCoW priority accumulated on
// the relationship.
func (r *Relationship) HighestPriority() string {
	for _, p := range moscowOrder {
		for _, have := range r.Priorities {
			if have == p {
				return p
			}
		}
	}
	return ""
}

// Store holds relationships merged by canonical key, in ingestion
// order. It performs no validation of its own: requirements that must
// not contribute (malformed lines, "will not" priorities) are filtered
// before matching ever runs.
type Store struct {
	order []string
	byKey map[string]*Relationship
}

// New creates an empty store.
func New() *Store {
	return &Store{byKey: make(map[string]*Relationship)}
}

// Add merges one matcher result into the store. A new key inserts the
// match's token groups; a recurring key keeps the stored groups. The
// requirement number, priority and template name are appended
// unconditionally so recurring relationships aggregate every
// contributing requirement.
func (s *Store) Add(m pattern.Match, requirement int, priority string) {
	rel, ok := s.byKey[m.Key]
	if !ok {
		rel = &Relationship{Key: m.Key, Groups: m.Groups}
		s.byKey[m.Key] = rel
		s.order = append(s.order, m.Key)
	}
	rel.Requirements = append(rel.Requirements, requirement)
	rel.Priorities = append(rel.Priorities, priority)
	rel.Templates = append(rel.Templates, m.Template)
}

// Get returns the relationship stored under key.
func (s *Store) Get(key string) (*Relationship, bool) {
	rel, ok := s.byKey[key]
	return rel, ok
}

// Relationships returns every stored relationship in ingestion order.
func (s *Store) Relationships() []*Relationship {
	out := make([]*Relationship, len(s.order))
	for i, k := range s.order {
		out[i] = s.byKey[k]
	}
	return out
}

// Len returns the number of distinct relationship keys.
func (s *Store) Len() int {
	return len(s.order)
}
