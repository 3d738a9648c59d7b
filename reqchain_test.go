package reqchain

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/reqchain/reqchain/ingest"
	"github.com/reqchain/reqchain/nlp"
)

// stubProvider serves canned parse trees keyed by the exact lowercased
// sentence. Unknown sentences are an error so a test notices when the
// pipeline parses something it should have skipped.
type stubProvider struct {
	parses map[string]func() []*nlp.Token
}

func (p *stubProvider) Parse(_ context.Context, sentence string) ([]*nlp.Token, error) {
	build, ok := p.parses[sentence]
	if !ok {
		return nil, fmt.Errorf("no canned parse for %q", sentence)
	}
	return build(), nil
}

func tok(text, lemma, pos, dep string, index int) *nlp.Token {
	return &nlp.Token{Text: text, Lemma: lemma, POS: pos, Dep: dep, Index: index}
}

// systemHasPage builds the tree for a sentence shaped like
// "<det> system must have a login page.".
func systemHasPage(det string) []*nlp.Token {
	the := tok(det, det, nlp.POSDeterminer, nlp.DepDet, 0)
	system := tok("system", "system", nlp.POSNoun, nlp.DepNSubj, 1)
	must := tok("must", "must", nlp.POSAuxiliary, nlp.DepAux, 2)
	have := tok("have", "have", nlp.POSVerb, nlp.DepRoot, 3)
	a := tok("a", "a", nlp.POSDeterminer, nlp.DepDet, 4)
	login := tok("login", "login", nlp.POSNoun, nlp.DepCompound, 5)
	page := tok("page", "page", nlp.POSNoun, nlp.DepDObj, 6)

	system.Children = []*nlp.Token{the}
	page.Children = []*nlp.Token{a, login}
	have.Children = []*nlp.Token{system, must, page}
	return []*nlp.Token{the, system, must, have, a, login, page}
}

func pageShowsForm() []*nlp.Token {
	a1 := tok("a", "a", nlp.POSDeterminer, nlp.DepDet, 0)
	login := tok("login", "login", nlp.POSNoun, nlp.DepCompound, 1)
	page := tok("page", "page", nlp.POSNoun, nlp.DepNSubj, 2)
	must := tok("must", "must", nlp.POSAuxiliary, nlp.DepAux, 3)
	show := tok("show", "show", nlp.POSVerb, nlp.DepRoot, 4)
	a2 := tok("a", "a", nlp.POSDeterminer, nlp.DepDet, 5)
	form := tok("form", "form", nlp.POSNoun, nlp.DepDObj, 6)

	page.Children = []*nlp.Token{a1, login}
	form.Children = []*nlp.Token{a2}
	show.Children = []*nlp.Token{page, must, form}
	return []*nlp.Token{a1, login, page, must, show, a2, form}
}

func newStubProvider() *stubProvider {
	return &stubProvider{parses: map[string]func() []*nlp.Token{
		"is": func() []*nlp.Token {
			return []*nlp.Token{tok("is", "be", nlp.POSAuxiliary, nlp.DepRoot, 0)}
		},
		"has": func() []*nlp.Token {
			return []*nlp.Token{tok("has", "have", nlp.POSVerb, nlp.DepRoot, 0)}
		},
		"the system must have a login page.": func() []*nlp.Token {
			return systemHasPage("the")
		},
		"a login page must show a form.": pageShowsForm,
		"a system must have a login page.": func() []*nlp.Token {
			return systemHasPage("a")
		},
	}}
}

func testRequirements() []ingest.Requirement {
	return []ingest.Requirement{
		{Number: 1, Priority: "must", Text: "The system must have a login page."},
		{Number: 2, Priority: "should", Text: "A login page must show a form."},
		{Number: 3, Priority: "could", Text: "A system must have a login page."},
		// Deferred requirements are numbered but never parsed; the
		// stub provider has no tree for this sentence on purpose.
		{Number: 4, Priority: ingest.PriorityWillNot, Text: "The report will not be exported."},
	}
}

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := New(newStubProvider(), DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestExtractAccumulatesAcrossRequirements(t *testing.T) {
	e := newTestExtractor(t)
	res, err := e.Extract(context.Background(), testRequirements())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(res.Requirements) != 4 {
		t.Fatalf("got %d requirements, want 4", len(res.Requirements))
	}
	if res.Store.Len() != 3 {
		t.Fatalf("got %d relationships, want 3", res.Store.Len())
	}

	hasPage, ok := res.Store.Get("system\x1fhave\x1flogin page")
	if !ok {
		t.Fatal("missing (system, have, login page)")
	}
	if !reflect.DeepEqual(hasPage.Requirements, []int{1, 3}) {
		t.Errorf("requirements = %v, want [1 3]", hasPage.Requirements)
	}
	if !reflect.DeepEqual(hasPage.Priorities, []string{"must", "could"}) {
		t.Errorf("priorities = %v", hasPage.Priorities)
	}
	if got := hasPage.HighestPriority(); got != "must" {
		t.Errorf("HighestPriority() = %q, want %q", got, "must")
	}

	// The implied (login, have, login page) relationship surfaces in
	// every sentence containing the compound, so it accumulates all
	// three eligible requirements.
	implied, ok := res.Store.Get("login\x1fhave\x1flogin page")
	if !ok {
		t.Fatal("missing (login, have, login page)")
	}
	if !reflect.DeepEqual(implied.Requirements, []int{1, 2, 3}) {
		t.Errorf("requirements = %v, want [1 2 3]", implied.Requirements)
	}
}

func TestExtractChains(t *testing.T) {
	e := newTestExtractor(t)
	res, err := e.Extract(context.Background(), testRequirements())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	implied := "login\x1fhave\x1flogin page"
	hasPage := "system\x1fhave\x1flogin page"
	shows := "login page\x1fshow\x1fform"

	want := [][]string{
		{implied},
		{implied, shows},
		{hasPage},
		{hasPage, shows},
		{shows},
	}
	if len(res.Chains) != len(want) {
		t.Fatalf("got %d chains, want %d: %q", len(res.Chains), len(want), res.Chains)
	}
	for i, chain := range res.Chains {
		if !reflect.DeepEqual([]string(chain), want[i]) {
			t.Errorf("chain %d = %q, want %q", i, chain, want[i])
		}
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	e := newTestExtractor(t)

	first, err := e.Extract(context.Background(), testRequirements())
	if err != nil {
		t.Fatalf("first Extract: %v", err)
	}
	second, err := e.Extract(context.Background(), testRequirements())
	if err != nil {
		t.Fatalf("second Extract: %v", err)
	}

	if !reflect.DeepEqual(first.Chains, second.Chains) {
		t.Errorf("chains differ between runs:\n%q\n%q", first.Chains, second.Chains)
	}
	if first.Store.Len() != second.Store.Len() {
		t.Errorf("store sizes differ: %d vs %d", first.Store.Len(), second.Store.Len())
	}
}

func TestExtractProviderFailureAbortsBatch(t *testing.T) {
	provider := newStubProvider()
	delete(provider.parses, "a login page must show a form.")

	e, err := New(provider, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := e.Extract(context.Background(), testRequirements())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if res != nil {
		t.Fatalf("got partial result %+v, want nil", res)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil, DefaultConfig()); !errors.Is(err, ErrNoProvider) {
		t.Errorf("nil provider: err = %v, want ErrNoProvider", err)
	}

	cfg := DefaultConfig()
	cfg.PatternStyle = "fuzzy"
	if _, err := New(newStubProvider(), cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad pattern style: err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewDefaultsStyles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PatternStyle = ""
	cfg.ChainStyle = ""
	e, err := New(newStubProvider(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.cfg.PatternStyle != PatternDirect {
		t.Errorf("pattern style = %q, want %q", e.cfg.PatternStyle, PatternDirect)
	}
	if e.cfg.ChainStyle != ChainWholeGroup {
		t.Errorf("chain style = %q, want %q", e.cfg.ChainStyle, ChainWholeGroup)
	}
}
