package annotate

import "sort"

// Segment is a contiguous slice of a section's text, optionally bound to one
// surviving annotation. Segments are recomputed on every call and never
// persisted.
type Segment struct {
	Text       string
	Annotation *Annotation // nil for plain segments
}

// Split produces an ordered, gap-free segmentation of text under the given
// annotations. Concatenating the Text of the returned segments always
// reproduces text exactly.
//
// Asides and stale annotations are silently excluded. Survivors are ordered
// by start offset; an annotation whose span overlaps one already claimed by
// an earlier-starting survivor is dropped (first-claimed-wins). Two
// annotations sharing a start offset keep their input order, so the one
// supplied first wins.
//
// Split never fails: any input shape yields at least one segment covering
// the whole text, which for empty text is a single empty plain segment.
func Split(text string, annotations []Annotation) []Segment {
	valid := make([]Annotation, 0, len(annotations))
	for _, a := range annotations {
		if a.ValidFor(text) {
			valid = append(valid, a)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].StartOffset < valid[j].StartOffset
	})

	var segments []Segment
	cursor := 0
	for _, a := range valid {
		if a.StartOffset < cursor {
			// Overlaps a span claimed by an earlier-starting annotation.
			continue
		}
		if cursor < a.StartOffset {
			segments = append(segments, Segment{Text: text[cursor:a.StartOffset]})
		}
		bound := a
		segments = append(segments, Segment{
			Text:       text[a.StartOffset:a.EndOffset],
			Annotation: &bound,
		})
		cursor = a.EndOffset
	}

	if cursor < len(text) {
		segments = append(segments, Segment{Text: text[cursor:]})
	}
	if len(segments) == 0 {
		segments = []Segment{{Text: text}}
	}
	return segments
}

// Asides returns the aside annotations in input order. They are rendered as
// margin notes keyed by ID rather than inline segments.
func Asides(annotations []Annotation) []Annotation {
	var asides []Annotation
	for _, a := range annotations {
		if a.IsAside() {
			asides = append(asides, a)
		}
	}
	return asides
}
