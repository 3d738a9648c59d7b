package pattern

import "github.com/reqchain/reqchain/nlp"

func pos(vals ...string) Predicate   { return Predicate{Kind: ByPOS, In: vals} }
func dep(vals ...string) Predicate   { return Predicate{Kind: ByDep, In: vals} }
func lemma(vals ...string) Predicate { return Predicate{Kind: ByLemma, In: vals} }

func notLemma(vals ...string) Predicate { return Predicate{Kind: ByLemma, NotIn: vals} }

func noun() Predicate    { return pos(nlp.POSNoun, nlp.POSPropNoun) }
func subject() Predicate { return dep(nlp.DepNSubj, nlp.DepNSubjPass) }
func object() Predicate  { return dep(nlp.DepDObj, nlp.DepPObj) }

// Catalog returns the fixed, ordered template catalog. The adjacency
// operator applies to every anchored role in every template; it is the
// only runtime parameterization the catalog has.
//
// Literal fillers ("is", "has") inject link verbs into relationships
// whose predicate is implied by structure rather than present as a
// token, e.g. "the fast car" becomes (car, is, fast).
func Catalog(adj Adjacency) []Template {
	role := func(anchor int, preds ...Predicate) Role {
		return Role{Anchor: anchor, Adjacency: adj, Predicates: preds}
	}

	return []Template{
		{
			Name: "NOUN-ADJ",
			Roles: []Role{
				role(RootAnchor, noun()),
				role(0, pos(nlp.POSAdjective), dep(nlp.DepAMod)),
			},
			Groups: [3][]GroupItem{
				{RoleRef(0)}, {LiteralRef("is")}, {RoleRef(1)},
			},
		},
		{
			Name: "NOUN-NOUN",
			Roles: []Role{
				role(RootAnchor, noun()),
				role(0, noun(), dep(nlp.DepCompound)),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {LiteralRef("has")}, {RoleRef(0)},
			},
		},
		{
			Name: "VERB-NOUN-ADJ",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb)),
				role(0, noun(), subject()),
				role(0, pos(nlp.POSAdjective), dep(nlp.DepAComp), notLemma("able")),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {LiteralRef("is")}, {RoleRef(2)},
			},
		},
		{
			Name: "VERB-NOUN-VERB",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb)),
				role(0, noun(), subject()),
				role(0, pos(nlp.POSVerb), dep(nlp.DepAComp), notLemma("able")),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {LiteralRef("is")}, {RoleRef(2)},
			},
		},
		{
			Name: "have-NOUN-NOUN",
			Roles: []Role{
				role(RootAnchor, lemma("have")),
				role(0, noun(), subject()),
				role(0, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {LiteralRef("has")}, {RoleRef(2)},
			},
		},
		{
			Name: "VERB-NOUN-NOUN",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb), notLemma("have")),
				role(0, noun(), subject()),
				role(0, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {RoleRef(0)}, {RoleRef(2)},
			},
		},
		{
			Name: "VERB-NOUN-ADP-NOUN",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb)),
				role(0, noun(), subject()),
				role(0, pos(nlp.POSAdposition), dep(nlp.DepPrep)),
				role(2, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {RoleRef(0), RoleRef(2)}, {RoleRef(3)},
			},
		},
		{
			Name: "NOUN-VERB-ADP-NOUN",
			Roles: []Role{
				role(RootAnchor, noun()),
				role(0, pos(nlp.POSVerb), dep(nlp.DepACl)),
				role(1, pos(nlp.POSAdposition), dep(nlp.DepPrep)),
				role(2, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(0)}, {RoleRef(1), RoleRef(2)}, {RoleRef(3)},
			},
		},
		{
			Name: "VERB-NOUN-ADJ-ADP-NOUN",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb)),
				role(0, noun(), subject()),
				role(0, pos(nlp.POSAdjective), dep(nlp.DepAComp)),
				role(2, pos(nlp.POSAdposition), dep(nlp.DepPrep)),
				role(3, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {RoleRef(2), RoleRef(3)}, {RoleRef(4)},
			},
		},
		{
			Name: "VERB-NOUN-ADJ-VERB-NOUN",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb)),
				role(0, noun(), subject()),
				role(0, pos(nlp.POSAdjective), dep(nlp.DepAComp)),
				role(2, pos(nlp.POSVerb), dep(nlp.DepXComp)),
				role(3, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {RoleRef(3)}, {RoleRef(4)},
			},
		},
		{
			Name: "VERB-NOUN-NOUN-ADP-NOUN",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb)),
				role(0, noun(), subject()),
				role(0, noun(), object()),
				role(0, pos(nlp.POSAdposition), dep(nlp.DepPrep)),
				role(3, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {RoleRef(0), RoleRef(2)}, {RoleRef(3), RoleRef(4)},
			},
		},
		{
			Name: "VERB-NOUN-ADJ-VERB-ADP-NOUN",
			Roles: []Role{
				role(RootAnchor, pos(nlp.POSVerb), dep(nlp.DepRoot, nlp.DepCComp)),
				role(0, noun(), subject()),
				role(0, pos(nlp.POSAdjective), dep(nlp.DepAComp)),
				role(2, pos(nlp.POSVerb), dep(nlp.DepXComp)),
				role(3, pos(nlp.POSAdposition), dep(nlp.DepPrep)),
				role(4, noun(), object()),
			},
			Groups: [3][]GroupItem{
				{RoleRef(1)}, {RoleRef(3), RoleRef(4)}, {RoleRef(5)},
			},
		},
	}
}
