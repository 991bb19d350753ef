// Package highlight decorates narrative text with priority-ordered semantic
// categories: quantified metrics, named techniques, glossary terms, ownership
// verbs, and emphasis words.
//
// Categories are applied as a fold: each category only examines the plain
// runs left by higher-priority categories, so a piece of text is decorated at
// most once. Concatenating the output atoms always reproduces the input
// exactly.
package highlight

import "github.com/braglog/textmark/pkg/textmark/dict"

// Kind identifies which category decorated a run.
type Kind string

const (
	KindMetric    Kind = "metric"
	KindTechnique Kind = "technique"
	KindTerm      Kind = "term"
	KindVerb      Kind = "verb"
	KindEmphasis  Kind = "emphasis"
)

// Decoration is a presentation-agnostic descriptor for a decorated run. The
// rendering layer maps it to color, tooltip, and click affordances.
type Decoration struct {
	Kind Kind
	Text string // the matched text
	Info string // optional tooltip source (dictionary description)
}

// Atom is a contiguous slice of the input text, either plain or wrapping
// exactly one matched range.
type Atom struct {
	Text       string
	Decoration *Decoration // nil for plain runs
}

// Category is one priority-ordered matching-and-decoration rule. Categories
// are supplied to Decorate highest-priority first; a category never
// subdivides text claimed by an earlier one.
//
// Match returns non-overlapping spans within a single plain run, in run
// order. It must be stateless: repeated calls on any inputs, in any order,
// yield the same spans. Decorate produces the descriptor for one matched
// range; a nil Decorate yields a bare descriptor carrying only Kind and Text.
type Category struct {
	Kind     Kind
	Match    func(run string) []dict.Span
	Decorate func(matched string) Decoration
}

// MetricCategory matches quantified achievements: percentages, multipliers,
// currency amounts, and counts followed by a known unit word.
func MetricCategory() Category {
	return Category{
		Kind:  KindMetric,
		Match: matchMetrics,
	}
}

// TechniqueCategory matches named techniques and design-pattern phrases from
// the given dictionary, longest key first.
func TechniqueCategory(d *dict.Dictionary) Category {
	return dictionaryCategory(KindTechnique, d)
}

// GlossaryCategory matches technical glossary terms from the given
// dictionary, longest key first.
func GlossaryCategory(d *dict.Dictionary) Category {
	return dictionaryCategory(KindTerm, d)
}

// VerbCategory matches ownership and action verbs at word boundaries.
func VerbCategory(verbs *dict.WordList) Category {
	if verbs == nil {
		verbs = dict.NewWordList(nil)
	}
	return Category{
		Kind:  KindVerb,
		Match: verbs.Match,
	}
}

// EmphasisCategory matches a per-call word list at word boundaries. Words
// already claimed by the verb list are removed first so a word is never
// decorated twice under different semantics.
func EmphasisCategory(words []string, verbs *dict.WordList) Category {
	list := dict.NewWordList(words).Without(verbs)
	return Category{
		Kind:  KindEmphasis,
		Match: list.Match,
	}
}

// DefaultCategories assembles the five categories in their fixed priority
// order: metrics, techniques, glossary terms, verbs, emphasis words.
func DefaultCategories(techniques, glossary *dict.Dictionary, verbs *dict.WordList, emphasis []string) []Category {
	return []Category{
		MetricCategory(),
		TechniqueCategory(techniques),
		GlossaryCategory(glossary),
		VerbCategory(verbs),
		EmphasisCategory(emphasis, verbs),
	}
}

func dictionaryCategory(kind Kind, d *dict.Dictionary) Category {
	if d == nil {
		d = dict.NewDictionary(nil)
	}
	return Category{
		Kind:  kind,
		Match: d.Match,
		Decorate: func(matched string) Decoration {
			deco := Decoration{Kind: kind, Text: matched}
			if entry, ok := d.Lookup(matched); ok {
				deco.Info = entry.Info
			}
			return deco
		},
	}
}
