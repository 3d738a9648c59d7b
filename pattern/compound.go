package pattern

import "github.com/reqchain/reqchain/nlp"

// compoundCategory is one (POS, dependency-label) pair that qualifies
// a child token as part of its head's compound group.
type compoundCategory struct {
	pos string
	dep string
}

// compoundCategories are the modifier kinds carried into a token's
// group: numeral, verbal-adjective, noun compound, adverbial,
// adjectival, noun-adverbial, negation and quantifier modifiers.
var compoundCategories = []compoundCategory{
	{nlp.POSNumeral, nlp.DepNumMod},
	{nlp.POSVerb, nlp.DepAMod},
	{nlp.POSNoun, nlp.DepCompound},
	{nlp.POSAdverb, nlp.DepAdvMod},
	{nlp.POSAdjective, nlp.DepAMod},
	{nlp.POSNoun, nlp.DepNPAdvMod},
	{nlp.POSParticle, nlp.DepNeg},
	{nlp.POSSubConj, nlp.DepQuantMod},
}

// Compounds collects the qualifying modifier tokens of a token,
// recursively expanding each modifier's own qualifying children.
// Tokens are emitted modifier-before-head, so a caller appending the
// head token after this slice gets the natural reading order.
func Compounds(t *nlp.Token) []*nlp.Token {
	var out []*nlp.Token
	for _, child := range t.Children {
		if !isCompound(child) {
			continue
		}
		out = append(out, Compounds(child)...)
		out = append(out, child)
	}
	return out
}

func isCompound(t *nlp.Token) bool {
	for _, c := range compoundCategories {
		if t.POS == c.pos && t.Dep == c.dep {
			return true
		}
	}
	return false
}
