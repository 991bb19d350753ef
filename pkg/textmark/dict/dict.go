// Package dict provides the case-insensitive phrase dictionaries and word
// lists that back the highlight categories.
//
// Design principles:
// - Longest-key-first: a short key must never shadow a longer key that
//   contains it ("breaker" vs "circuit breaker")
// - Stateless matching: every match call scans from the start of its input
//   and retains no cursor between calls
// - Case-insensitive: all keys normalized to lowercase, matching ignores case
package dict

import (
	"regexp"
	"sort"
	"strings"
)

// Span is a half-open [Start, End) byte range within a matched string.
type Span struct {
	Start int
	End   int
}

// Entry represents a dictionary entry for a phrase and its variants
type Entry struct {
	Phrase   string   // canonical form, may contain spaces and hyphens
	Variants []string // alternate spellings ("circuit-breaker" for "circuit breaker")
	Info     string   // free-form description, surfaced as tooltip metadata
}

// Dictionary matches known phrases inside free text and maps each matched
// form back to its entry.
type Dictionary struct {
	entries map[string]Entry // lowercased phrase/variant -> entry
	re      *regexp.Regexp   // nil when the dictionary is empty
}

// NewDictionary builds a dictionary from the given entries. Entries with an
// empty phrase are skipped. Variants share the canonical entry's Info.
func NewDictionary(entries []Entry) *Dictionary {
	dict := make(map[string]Entry)
	for _, e := range entries {
		phrase := strings.ToLower(strings.TrimSpace(e.Phrase))
		if phrase == "" {
			continue
		}
		dict[phrase] = e
		for _, v := range e.Variants {
			variant := strings.ToLower(strings.TrimSpace(v))
			if variant == "" {
				continue
			}
			dict[variant] = e
		}
	}
	return &Dictionary{
		entries: dict,
		re:      compileTerms(keysOf(dict)),
	}
}

// Len returns the number of distinct keys (phrases plus variants).
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Match returns the non-overlapping spans of dictionary keys within text, in
// text order. Keys are tried longest-first at each position so a longer key
// always wins over a shorter one starting at the same offset.
func (d *Dictionary) Match(text string) []Span {
	if d.re == nil {
		return nil
	}
	return spansOf(d.re, text)
}

// Lookup returns the entry for a matched form, case-insensitively.
func (d *Dictionary) Lookup(phrase string) (Entry, bool) {
	e, ok := d.entries[strings.ToLower(phrase)]
	return e, ok
}

// WordList matches a fixed set of single words at word boundaries.
type WordList struct {
	words map[string]struct{}
	re    *regexp.Regexp
}

// NewWordList builds a word list. Words are lowercased; empty strings are
// skipped.
func NewWordList(words []string) *WordList {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for w := range set {
		keys = append(keys, w)
	}
	return &WordList{words: set, re: compileTerms(keys)}
}

// Contains reports whether word is in the list, case-insensitively.
func (w *WordList) Contains(word string) bool {
	_, ok := w.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the list.
func (w *WordList) Len() int {
	return len(w.words)
}

// Match returns the non-overlapping, word-boundary-delimited spans of list
// words within text, in text order.
func (w *WordList) Match(text string) []Span {
	if w.re == nil {
		return nil
	}
	return spansOf(w.re, text)
}

// Without returns a new list with every word of other removed. Used to keep
// emphasis words from re-matching text the verb list already claims.
func (w *WordList) Without(other *WordList) *WordList {
	if other == nil || other.Len() == 0 {
		return w
	}
	var kept []string
	for word := range w.words {
		if !other.Contains(word) {
			kept = append(kept, word)
		}
	}
	return NewWordList(kept)
}

// compileTerms builds a case-insensitive, word-boundary-delimited alternation
// over the given terms, sorted longest-first. Go's regexp tries alternatives
// in order, so the sort is what makes the longest key win at a position.
// Returns nil for an empty term set.
func compileTerms(terms []string) *regexp.Regexp {
	if len(terms) == 0 {
		return nil
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// spansOf runs a full scan of text. FindAllStringIndex carries no position
// state between calls, which is what keeps repeated matching deterministic.
func spansOf(re *regexp.Regexp, text string) []Span {
	idx := re.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	spans := make([]Span, len(idx))
	for i, pair := range idx {
		spans[i] = Span{Start: pair[0], End: pair[1]}
	}
	return spans
}

func keysOf(m map[string]Entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
