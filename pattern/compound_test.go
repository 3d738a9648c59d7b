package pattern

import (
	"testing"

	"github.com/reqchain/reqchain/nlp"
)

func TestCompoundsNestedModifiers(t *testing.T) {
	// An adjectival modifier carrying its own adverbial modifier:
	// "very large dataset" resolves to exactly three tokens, in
	// modifier-before-head order.
	very := tok("very", nlp.POSAdverb, nlp.DepAdvMod)
	large := tok("large", nlp.POSAdjective, nlp.DepAMod, very)
	dataset := tok("dataset", nlp.POSNoun, nlp.DepDObj, large)

	group := append(Compounds(dataset), dataset)
	if len(group) != 3 {
		t.Fatalf("group has %d tokens, want 3: %v", len(group), nlp.Texts(group))
	}
	want := []string{"very", "large", "dataset"}
	for i, w := range want {
		if group[i].Text != w {
			t.Errorf("group[%d] = %q, want %q", i, group[i].Text, w)
		}
	}
}

func TestCompoundsCategories(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		dep  string
		want bool
	}{
		{"numeral modifier", nlp.POSNumeral, nlp.DepNumMod, true},
		{"verbal adjective", nlp.POSVerb, nlp.DepAMod, true},
		{"noun compound", nlp.POSNoun, nlp.DepCompound, true},
		{"adverbial modifier", nlp.POSAdverb, nlp.DepAdvMod, true},
		{"adjectival modifier", nlp.POSAdjective, nlp.DepAMod, true},
		{"noun adverbial", nlp.POSNoun, nlp.DepNPAdvMod, true},
		{"negation particle", nlp.POSParticle, nlp.DepNeg, true},
		{"quantifier modifier", nlp.POSSubConj, nlp.DepQuantMod, true},
		{"determiner", "DET", "det", false},
		{"adjective with wrong label", nlp.POSAdjective, nlp.DepAComp, false},
		{"particle with wrong label", nlp.POSParticle, nlp.DepAMod, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := tok("child", tt.pos, tt.dep)
			head := tok("head", nlp.POSNoun, nlp.DepRoot, child)
			got := len(Compounds(head)) == 1
			if got != tt.want {
				t.Errorf("qualifies = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompoundsEmptyForLeaf(t *testing.T) {
	if got := Compounds(tok("word", nlp.POSNoun, nlp.DepRoot)); len(got) != 0 {
		t.Errorf("leaf token produced %d compounds, want 0", len(got))
	}
}
