// Package annotate segments narrative text against its persisted annotations.
//
// Annotations address text by byte offsets captured at creation time. The
// underlying text is edited independently, so offsets go stale; the package
// follows a snapshot-and-validate model: the substring captured at creation
// is stored alongside the offsets and re-compared on every read. Annotations
// that no longer match are dropped, never repaired.
package annotate

// AsideOffset is the sentinel offset marking an annotation with no bound
// span. An aside carries a note but does not participate in segmentation.
const AsideOffset = -1

// Style identifies the presentation variant of an annotation. Only the
// aside/non-aside distinction affects segmentation.
type Style string

const (
	StyleHighlight Style = "highlight"
	StyleAside     Style = "aside"
	StyleUnderline Style = "underline"
	StyleStrike    Style = "strike"
)

// Annotation is a persisted note bound to a byte range of a section's text,
// or detached from any span (an aside). Offsets are half-open [Start, End).
type Annotation struct {
	ID            string
	SectionKey    string
	StartOffset   int
	EndOffset     int
	AnnotatedText string // exact substring captured at creation time
	Style         Style
	Note          string
}

// IsAside reports whether the annotation has no bound span.
func (a Annotation) IsAside() bool {
	return a.StartOffset == AsideOffset
}

// ValidFor reports whether the annotation still addresses text correctly:
// offsets in bounds and the live substring equal to the creation-time
// capture. Asides are never valid for segmentation. A false result is the
// normal outcome of an unrelated text edit, not an error.
func (a Annotation) ValidFor(text string) bool {
	if a.IsAside() {
		return false
	}
	if a.StartOffset < 0 || a.EndOffset <= a.StartOffset || a.EndOffset > len(text) {
		return false
	}
	return text[a.StartOffset:a.EndOffset] == a.AnnotatedText
}
