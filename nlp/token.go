package nlp

import "strings"

// Coarse part-of-speech tags used by pattern constraints and compound
// expansion. The set mirrors the Universal POS tags emitted by the
// tagger sidecar.
const (
	POSNoun       = "NOUN"
	POSPropNoun   = "PROPN"
	POSVerb       = "VERB"
	POSAdjective  = "ADJ"
	POSAdverb     = "ADV"
	POSAdposition = "ADP"
	POSParticle   = "PART"
	POSSubConj    = "SCONJ"
	POSNumeral    = "NUM"
	POSAuxiliary  = "AUX"
	POSDeterminer = "DET"
)

// Dependency-relation labels used by pattern constraints and compound
// expansion.
const (
	DepNSubj     = "nsubj"
	DepNSubjPass = "nsubjpass"
	DepDObj      = "dobj"
	DepPObj      = "pobj"
	DepAMod      = "amod"
	DepCompound  = "compound"
	DepAComp     = "acomp"
	DepXComp     = "xcomp"
	DepACl       = "acl"
	DepPrep      = "prep"
	DepAdvMod    = "advmod"
	DepNPAdvMod  = "npadvmod"
	DepNeg       = "neg"
	DepQuantMod  = "quantmod"
	DepNumMod    = "nummod"
	DepRoot      = "ROOT"
	DepCComp     = "ccomp"
	DepDet       = "det"
	DepAux       = "aux"
)

// Token is a single lexical unit of a parsed sentence. Tokens are owned
// by the parse that produced them and must not be mutated afterwards.
type Token struct {
	// Text is the surface form as it appeared in the sentence.
	Text string `json:"text"`

	// Lemma is the base form of the word.
	Lemma string `json:"lemma"`

	// POS is the coarse part-of-speech tag.
	POS string `json:"pos"`

	// Dep is the dependency-relation label to the token's head.
	Dep string `json:"dep"`

	// Index is the position of the token within its sentence.
	Index int `json:"index"`

	// Children are the syntactic dependents, in sentence order.
	Children []*Token `json:"-"`
}

// Descendants returns every token reachable through child links, in
// depth-first sentence order. The receiver itself is not included.
func (t *Token) Descendants() []*Token {
	var out []*Token
	for _, c := range t.Children {
		out = append(out, c)
		out = append(out, c.Descendants()...)
	}
	return out
}

// Texts returns the surface forms of a token group.
func Texts(tokens []*Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// Lemmas returns the lemmas of a token group.
func Lemmas(tokens []*Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Lemma
	}
	return out
}

// JoinLemmas returns the space-joined lemma sequence of a token group.
func JoinLemmas(tokens []*Token) string {
	return strings.Join(Lemmas(tokens), " ")
}
