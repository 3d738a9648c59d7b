// Package pattern recognizes semantic relationships in parsed
// requirement sentences. A fixed catalog of structural templates is
// matched against the dependency tree of each sentence; every match
// resolves to a (subject, predicate, object) token-group triple.
package pattern

import "github.com/reqchain/reqchain/nlp"

// Adjacency is the operator relating a role to its anchor role.
type Adjacency int

const (
	// Direct requires a role's token to be an immediate child of its
	// anchor's token.
	Direct Adjacency = iota

	// AnyDepth accepts a role's token anywhere below its anchor's
	// token in the dependency tree.
	AnyDepth
)

// String returns the configuration name of the adjacency operator.
func (a Adjacency) String() string {
	if a == AnyDepth {
		return "nested"
	}
	return "direct"
}

// PredicateKind selects which token attribute a Predicate constrains.
type PredicateKind int

const (
	// ByPOS constrains the coarse part-of-speech tag.
	ByPOS PredicateKind = iota
	// ByDep constrains the dependency-relation label.
	ByDep
	// ByLemma constrains the lemma.
	ByLemma
)

// Predicate is a single attribute constraint with inclusion or
// exclusion set semantics. An empty In set means any value is
// acceptable unless it appears in NotIn.
type Predicate struct {
	Kind  PredicateKind
	In    []string
	NotIn []string
}

// holds reports whether the token attribute selected by Kind satisfies
// the inclusion and exclusion sets.
func (p Predicate) holds(t *nlp.Token) bool {
	var v string
	switch p.Kind {
	case ByPOS:
		v = t.POS
	case ByDep:
		v = t.Dep
	case ByLemma:
		v = t.Lemma
	}
	if len(p.In) > 0 && !contains(p.In, v) {
		return false
	}
	return !contains(p.NotIn, v)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Role is one node of a template. The first role of every template is
// the search root (Anchor == RootAnchor); every other role is tied to
// an earlier role by the catalog's adjacency operator.
type Role struct {
	// Anchor is the index of the role this one hangs off, or
	// RootAnchor for the template's root role.
	Anchor int

	// Adjacency relates this role's token to its anchor's token.
	// Unused on the root role.
	Adjacency Adjacency

	// Predicates must all hold for a candidate token.
	Predicates []Predicate
}

// RootAnchor marks a role with no anchor.
const RootAnchor = -1

// GroupItem is one element of an index group: either a reference to a
// matched role or a literal filler phrase parsed through the token
// provider.
type GroupItem struct {
	// Role is the referenced role index; ignored when Literal is set.
	Role int

	// Literal, when non-empty, is parsed into tokens at resolution
	// time instead of referencing a matched role.
	Literal string
}

// RoleRef makes a role-reference group item.
func RoleRef(i int) GroupItem { return GroupItem{Role: i} }

// LiteralRef makes a literal filler group item.
func LiteralRef(s string) GroupItem { return GroupItem{Role: -1, Literal: s} }

// Template is a named structural pattern: an ordered list of role
// constraints plus the three index groups (subject, predicate, object)
// a match resolves into.
type Template struct {
	Name   string
	Roles  []Role
	Groups [3][]GroupItem
}
