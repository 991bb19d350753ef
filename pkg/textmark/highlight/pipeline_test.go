package highlight

import (
	"testing"

	"github.com/braglog/textmark/pkg/textmark/dict"
)

func testCategories() []Category {
	techniques := dict.NewDictionary([]dict.Entry{
		{Phrase: "circuit breaker", Variants: []string{"circuit-breaker"}, Info: "stops cascading failures"},
	})
	glossary := dict.NewDictionary([]dict.Entry{
		{Phrase: "deploy", Info: "release to production"},
		{Phrase: "breaker"}, // shorter key contained in the technique phrase
	})
	verbs := dict.NewWordList([]string{"cut", "led"})
	emphasis := []string{"using", "cut"} // "cut" must be ceded to the verb category

	return DefaultCategories(techniques, glossary, verbs, emphasis)
}

func TestDecorateFullPriorityOrder(t *testing.T) {
	text := "Cut deploy time by 40% using a circuit breaker"
	atoms := Decorate(text, testCategories())

	type expect struct {
		text string
		kind Kind // "" for plain
	}
	want := []expect{
		{"Cut", KindVerb},
		{" ", ""},
		{"deploy", KindTerm},
		{" time by ", ""},
		{"40%", KindMetric},
		{" ", ""},
		{"using", KindEmphasis},
		{" a ", ""},
		{"circuit breaker", KindTechnique},
	}

	if len(atoms) != len(want) {
		t.Fatalf("got %d atoms, want %d: %+v", len(atoms), len(want), atoms)
	}
	for i, w := range want {
		if atoms[i].Text != w.text {
			t.Errorf("atom %d text = %q, want %q", i, atoms[i].Text, w.text)
		}
		switch {
		case w.kind == "" && atoms[i].Decoration != nil:
			t.Errorf("atom %d should be plain, got %+v", i, atoms[i].Decoration)
		case w.kind != "" && (atoms[i].Decoration == nil || atoms[i].Decoration.Kind != w.kind):
			t.Errorf("atom %d decoration = %+v, want kind %q", i, atoms[i].Decoration, w.kind)
		}
	}

	if got := Flatten(atoms); got != text {
		t.Errorf("round-trip = %q, want %q", got, text)
	}
}

func TestDecorateNoDoubleHighlight(t *testing.T) {
	// "breaker" is a glossary key, but the technique category claims
	// "circuit breaker" first; the glossary must never re-scan inside it.
	text := "a circuit breaker saved us"
	atoms := Decorate(text, testCategories())

	for _, a := range atoms {
		if a.Decoration != nil && a.Decoration.Kind == KindTerm && a.Text == "breaker" {
			t.Fatalf("glossary re-decorated text inside a technique match: %+v", atoms)
		}
	}
}

func TestDecorateTooltipInfo(t *testing.T) {
	atoms := Decorate("add a circuit breaker", testCategories())

	var found bool
	for _, a := range atoms {
		if a.Decoration != nil && a.Decoration.Kind == KindTechnique {
			found = true
			if a.Decoration.Info != "stops cascading failures" {
				t.Errorf("Info = %q, want dictionary summary", a.Decoration.Info)
			}
			if a.Decoration.Text != "circuit breaker" {
				t.Errorf("Decoration.Text = %q, want matched text", a.Decoration.Text)
			}
		}
	}
	if !found {
		t.Fatal("no technique decoration produced")
	}
}

func TestDecorateNoMatchFastPath(t *testing.T) {
	text := "plain narrative with nothing remarkable"
	atoms := Decorate(text, testCategories())

	if len(atoms) != 1 {
		t.Fatalf("expected a single plain atom, got %d: %+v", len(atoms), atoms)
	}
	if atoms[0].Text != text || atoms[0].Decoration != nil {
		t.Errorf("atom = %+v, want plain original text", atoms[0])
	}
}

func TestDecorateEmptyText(t *testing.T) {
	atoms := Decorate("", testCategories())

	if len(atoms) != 1 || atoms[0].Text != "" || atoms[0].Decoration != nil {
		t.Errorf("empty text should yield one empty plain atom, got %+v", atoms)
	}
}

func TestDecorateNoCategories(t *testing.T) {
	text := "Cut deploy time by 40%"
	atoms := Decorate(text, nil)

	if len(atoms) != 1 || atoms[0].Text != text || atoms[0].Decoration != nil {
		t.Errorf("no categories should yield the text unchanged, got %+v", atoms)
	}
}

func TestDecorateRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"Cut deploy time by 40% using a circuit breaker",
		"Led 12 engineers, cut costs $1.5M, 10x throughput",
		"no matches at all here",
		"40%40%40%",
		"circuit breaker circuit breaker",
	}
	cats := testCategories()
	for _, text := range texts {
		if got := Flatten(Decorate(text, cats)); got != text {
			t.Errorf("round-trip(%q) = %q", text, got)
		}
	}
}

func TestDecorateIdempotent(t *testing.T) {
	text := "Led the effort and cut deploy time by 40%"
	cats := testCategories()

	first := Decorate(text, cats)
	second := Decorate(text, cats)

	if len(first) != len(second) {
		t.Fatalf("repeated calls differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text {
			t.Errorf("atom %d text drifted: %q vs %q", i, first[i].Text, second[i].Text)
		}
		a, b := first[i].Decoration, second[i].Decoration
		if (a == nil) != (b == nil) || (a != nil && *a != *b) {
			t.Errorf("atom %d decoration drifted: %+v vs %+v", i, a, b)
		}
	}
}

func TestDecorateStatelessAcrossCalls(t *testing.T) {
	// Alternating no-match and match inputs on the same category set; a
	// matcher holding a cursor between calls would alternate between
	// correct and incorrect results.
	cats := testCategories()
	calls := []struct {
		text      string
		decorated int
	}{
		{"nothing to see", 0},
		{"cut deploy time by 40%", 3}, // cut, deploy, 40%
		{"still nothing to see", 0},
		{"cut deploy time by 40%", 3},
	}
	for i, c := range calls {
		atoms := Decorate(c.text, cats)
		var decorated int
		for _, a := range atoms {
			if a.Decoration != nil {
				decorated++
			}
		}
		if decorated != c.decorated {
			t.Errorf("call %d: Decorate(%q) produced %d decorated atoms, want %d",
				i, c.text, decorated, c.decorated)
		}
		if got := Flatten(atoms); got != c.text {
			t.Errorf("call %d: round-trip = %q, want %q", i, got, c.text)
		}
	}
}

func TestDecorateVerbWinsOverEmphasis(t *testing.T) {
	// "cut" appears in both the verb list and the emphasis list; it must be
	// decorated exactly once, as a verb.
	atoms := Decorate("cut the release time", testCategories())

	var kinds []Kind
	for _, a := range atoms {
		if a.Decoration != nil && a.Decoration.Text == "cut" {
			kinds = append(kinds, a.Decoration.Kind)
		}
	}
	if len(kinds) != 1 || kinds[0] != KindVerb {
		t.Errorf("decorations for %q = %v, want exactly [verb]", "cut", kinds)
	}
}

func TestDecorateDropsZeroLengthPlainRuns(t *testing.T) {
	// Adjacent matches leave no plain run between them.
	atoms := Decorate("40%40%", []Category{MetricCategory()})

	if len(atoms) != 2 {
		t.Fatalf("expected 2 atoms, got %d: %+v", len(atoms), atoms)
	}
	for i, a := range atoms {
		if a.Text != "40%" || a.Decoration == nil {
			t.Errorf("atom %d = %+v, want decorated %q", i, a, "40%")
		}
	}
}

func TestDecorateSkipsMalformedSpans(t *testing.T) {
	// A matcher returning overlapping or out-of-bounds spans must not break
	// the round-trip guarantee.
	bad := Category{
		Kind: KindEmphasis,
		Match: func(run string) []dict.Span {
			return []dict.Span{{Start: 0, End: 4}, {Start: 2, End: 6}, {Start: 5, End: 100}, {Start: 7, End: 7}}
		},
	}
	text := "0123456789"
	atoms := Decorate(text, []Category{bad})

	if got := Flatten(atoms); got != text {
		t.Errorf("round-trip = %q, want %q", got, text)
	}
	if atoms[0].Text != "0123" || atoms[0].Decoration == nil {
		t.Errorf("first well-formed span should still decorate, got %+v", atoms[0])
	}
}
