package highlight

// Decorate applies the categories to text in the order supplied (highest
// priority first) and returns the resulting ordered atom list.
//
// Each category sees only the plain runs left by the categories before it;
// atoms already decorated are passed through untouched. Zero-length plain
// runs are dropped, and concatenating the returned atoms' Text reproduces
// text exactly.
//
// Decorate is total over its inputs: empty text, an empty category list, or
// categories that match nothing all yield a single plain atom equal to the
// input. A matcher that panics is a configuration bug and is allowed to
// propagate.
func Decorate(text string, categories []Category) []Atom {
	atoms := []Atom{{Text: text}}

	for _, cat := range categories {
		if cat.Match == nil {
			continue
		}
		var next []Atom
		for _, atom := range atoms {
			if atom.Decoration != nil {
				next = append(next, atom)
				continue
			}
			next = appendSplitRun(next, atom.Text, cat)
		}
		atoms = next
	}

	if len(atoms) == 0 {
		atoms = []Atom{{Text: text}}
	}
	return atoms
}

// appendSplitRun splits one plain run by the category's matches and appends
// the resulting plain/decorated interleaving to dst. Spans that are empty,
// out of bounds, or out of order are skipped rather than breaking the
// round-trip guarantee.
func appendSplitRun(dst []Atom, run string, cat Category) []Atom {
	cursor := 0
	for _, span := range cat.Match(run) {
		if span.Start < cursor || span.End > len(run) || span.Start >= span.End {
			continue
		}
		if span.Start > cursor {
			dst = append(dst, Atom{Text: run[cursor:span.Start]})
		}
		matched := run[span.Start:span.End]
		deco := Decoration{Kind: cat.Kind, Text: matched}
		if cat.Decorate != nil {
			deco = cat.Decorate(matched)
		}
		dst = append(dst, Atom{Text: matched, Decoration: &deco})
		cursor = span.End
	}
	if cursor < len(run) {
		dst = append(dst, Atom{Text: run[cursor:]})
	}
	return dst
}

// Flatten concatenates the atoms' text. The result equals the original
// Decorate input for any category set.
func Flatten(atoms []Atom) string {
	var total int
	for _, a := range atoms {
		total += len(a.Text)
	}
	buf := make([]byte, 0, total)
	for _, a := range atoms {
		buf = append(buf, a.Text...)
	}
	return string(buf)
}
