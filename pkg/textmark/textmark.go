// Package textmark composes the annotation segmenter and the semantic
// highlight pipeline with a section store into one facade for the
// achievement-journal rendering layer.
package textmark

import (
	"context"
	"fmt"
	"time"

	"github.com/braglog/textmark/pkg/textmark/annotate"
	"github.com/braglog/textmark/pkg/textmark/dict"
	"github.com/braglog/textmark/pkg/textmark/highlight"
	"github.com/braglog/textmark/pkg/textmark/internalerr"
	"github.com/braglog/textmark/pkg/textmark/store"
)

// Textmark is the main text-markup engine facade
type Textmark struct {
	store      store.Store
	techniques *dict.Dictionary
	glossary   *dict.Dictionary
	verbs      *dict.WordList
	ids        *annotate.IDGen
}

// Options configures a Textmark instance
type Options struct {
	Store      store.Store
	Techniques *dict.Dictionary
	Glossary   *dict.Dictionary
	Verbs      *dict.WordList
}

// New creates a Textmark instance with the given dependencies
func New(opts Options) *Textmark {
	return &Textmark{
		store:      opts.Store,
		techniques: opts.Techniques,
		glossary:   opts.Glossary,
		verbs:      opts.Verbs,
		ids:        annotate.NewIDGen(),
	}
}

// Close cleanly shuts down the Textmark instance
func (t *Textmark) Close() error {
	return t.store.Close()
}

// SectionView loads a section and its annotations and returns the ordered,
// gap-free segmentation of the section's current text. Stale and aside
// annotations are excluded by the segmenter, not treated as errors.
func (t *Textmark) SectionView(ctx context.Context, sectionKey string) ([]annotate.Segment, error) {
	sec, found, err := t.store.GetSection(ctx, sectionKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("section %q: %w", sectionKey, internalerr.ErrNotFound)
	}

	records, err := t.store.GetAnnotationsBySection(ctx, sectionKey)
	if err != nil {
		return nil, err
	}

	return annotate.Split(sec.Text, toAnnotations(records)), nil
}

// AnnotationRequest describes a new annotation. Offsets of (-1, -1) create
// an aside, a note carried by the section without a bound span.
type AnnotationRequest struct {
	SectionKey  string
	StartOffset int
	EndOffset   int
	Style       annotate.Style
	Note        string
}

// CreateAnnotation captures the addressed substring from the section's
// current text, stamps a fresh ID, and persists the annotation. The capture
// is what later staleness detection compares against.
func (t *Textmark) CreateAnnotation(ctx context.Context, req AnnotationRequest) (annotate.Annotation, error) {
	sec, found, err := t.store.GetSection(ctx, req.SectionKey)
	if err != nil {
		return annotate.Annotation{}, err
	}
	if !found {
		return annotate.Annotation{}, fmt.Errorf("section %q: %w", req.SectionKey, internalerr.ErrNotFound)
	}

	ann := annotate.Annotation{
		ID:          t.ids.NewID(),
		SectionKey:  req.SectionKey,
		StartOffset: req.StartOffset,
		EndOffset:   req.EndOffset,
		Style:       req.Style,
		Note:        req.Note,
	}

	if req.StartOffset == annotate.AsideOffset && req.EndOffset == annotate.AsideOffset {
		ann.Style = annotate.StyleAside
	} else {
		if req.StartOffset < 0 || req.EndOffset <= req.StartOffset || req.EndOffset > len(sec.Text) {
			return annotate.Annotation{}, fmt.Errorf("offsets [%d,%d) for section %q: %w",
				req.StartOffset, req.EndOffset, req.SectionKey, internalerr.ErrInvalidInput)
		}
		ann.AnnotatedText = sec.Text[req.StartOffset:req.EndOffset]
	}

	if err := t.store.UpsertAnnotation(ctx, toRecord(ann, time.Now())); err != nil {
		return annotate.Annotation{}, err
	}
	return ann, nil
}

// DeleteAnnotation removes a persisted annotation.
func (t *Textmark) DeleteAnnotation(ctx context.Context, id string) error {
	return t.store.DeleteAnnotation(ctx, id)
}

// Asides returns a section's aside annotations for margin rendering.
func (t *Textmark) Asides(ctx context.Context, sectionKey string) ([]annotate.Annotation, error) {
	records, err := t.store.GetAnnotationsBySection(ctx, sectionKey)
	if err != nil {
		return nil, err
	}
	return annotate.Asides(toAnnotations(records)), nil
}

// Highlight decorates text with the configured dictionaries plus a per-call
// emphasis word list, in fixed priority order.
func (t *Textmark) Highlight(text string, emphasis []string) []highlight.Atom {
	cats := highlight.DefaultCategories(t.techniques, t.glossary, t.verbs, emphasis)
	return highlight.Decorate(text, cats)
}

// Metrics returns the quantified-metric substrings of text, deduplicated
// and capped at max.
func (t *Textmark) Metrics(text string, max int) []string {
	return highlight.ExtractMetrics(text, max)
}

func toAnnotations(records []store.Annotation) []annotate.Annotation {
	anns := make([]annotate.Annotation, len(records))
	for i, r := range records {
		anns[i] = annotate.Annotation{
			ID:            r.ID,
			SectionKey:    r.SectionKey,
			StartOffset:   r.StartOffset,
			EndOffset:     r.EndOffset,
			AnnotatedText: r.AnnotatedText,
			Style:         annotate.Style(r.Style),
			Note:          r.Note,
		}
	}
	return anns
}

func toRecord(a annotate.Annotation, createdAt time.Time) store.Annotation {
	return store.Annotation{
		ID:            a.ID,
		SectionKey:    a.SectionKey,
		StartOffset:   a.StartOffset,
		EndOffset:     a.EndOffset,
		AnnotatedText: a.AnnotatedText,
		Style:         string(a.Style),
		Note:          a.Note,
		CreatedAt:     createdAt,
	}
}
