package store

import (
	"reflect"
	"testing"

	"github.com/reqchain/reqchain/nlp"
	"github.com/reqchain/reqchain/pattern"
)

func tok(text string) *nlp.Token {
	return &nlp.Token{Text: text, Lemma: text, POS: nlp.POSNoun}
}

func group(words ...string) []*nlp.Token {
	out := make([]*nlp.Token, len(words))
	for i, w := range words {
		out[i] = tok(w)
	}
	return out
}

func match(template string, subject, predicate, object []*nlp.Token) pattern.Match {
	groups := [3][]*nlp.Token{subject, predicate, object}
	return pattern.Match{
		Template: template,
		Groups:   groups,
		Key:      pattern.Key(groups),
	}
}

func TestAddInsertsNewKey(t *testing.T) {
	s := New()
	m := match("NOUN-ADJ", group("car"), group("is"), group("fast"))
	s.Add(m, 1, "must")

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	rel, ok := s.Get(m.Key)
	if !ok {
		t.Fatal("relationship not found by key")
	}
	if !reflect.DeepEqual(rel.Requirements, []int{1}) {
		t.Errorf("Requirements = %v, want [1]", rel.Requirements)
	}
	if !reflect.DeepEqual(rel.Priorities, []string{"must"}) {
		t.Errorf("Priorities = %v, want [must]", rel.Priorities)
	}
	if !reflect.DeepEqual(rel.Templates, []string{"NOUN-ADJ"}) {
		t.Errorf("Templates = %v, want [NOUN-ADJ]", rel.Templates)
	}
}

func TestAddMergesRecurringKey(t *testing.T) {
	s := New()
	first := match("NOUN-ADJ", group("car"), group("is"), group("fast"))
	second := match("VERB-NOUN-ADJ", group("car"), group("is"), group("fast"))

	s.Add(first, 1, "must")
	s.Add(second, 3, "could")

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after merge", s.Len())
	}
	rel, _ := s.Get(first.Key)
	if !reflect.DeepEqual(rel.Requirements, []int{1, 3}) {
		t.Errorf("Requirements = %v, want [1 3]", rel.Requirements)
	}
	if !reflect.DeepEqual(rel.Priorities, []string{"must", "could"}) {
		t.Errorf("Priorities = %v, want [must could]", rel.Priorities)
	}
	if !reflect.DeepEqual(rel.Templates, []string{"NOUN-ADJ", "VERB-NOUN-ADJ"}) {
		t.Errorf("Templates = %v, want both template names", rel.Templates)
	}

	// First-seen token groups win.
	if rel.Groups[0][0] != first.Groups[0][0] {
		t.Error("merge replaced first-seen token groups")
	}
}

func TestRelationshipsKeepIngestionOrder(t *testing.T) {
	s := New()
	a := match("NOUN-ADJ", group("car"), group("is"), group("fast"))
	b := match("NOUN-NOUN", group("page"), group("has"), group("title"))
	c := match("NOUN-ADJ", group("report"), group("is"), group("long"))

	s.Add(a, 1, "must")
	s.Add(b, 1, "must")
	s.Add(c, 2, "should")
	s.Add(a, 2, "should") // recurring, must not reorder

	rels := s.Relationships()
	if len(rels) != 3 {
		t.Fatalf("got %d relationships, want 3", len(rels))
	}
	wantOrder := []string{a.Key, b.Key, c.Key}
	for i, rel := range rels {
		if rel.Key != wantOrder[i] {
			t.Errorf("rels[%d].Key = %q, want %q", i, rel.Key, wantOrder[i])
		}
	}
}

func TestHighestPriority(t *testing.T) {
	tests := []struct {
		priorities []string
		want       string
	}{
		{[]string{"could", "must", "should"}, "must"},
		{[]string{"could", "should"}, "should"},
		{[]string{"could"}, "could"},
		{nil, ""},
	}
	for _, tt := range tests {
		rel := &Relationship{Priorities: tt.priorities}
		if got := rel.HighestPriority(); got != tt.want {
			t.Errorf("HighestPriority(%v) = %q, want %q", tt.priorities, got, tt.want)
		}
	}
}
