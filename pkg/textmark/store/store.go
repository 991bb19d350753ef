// Package store defines persistence for narrative sections and their
// annotations. The segmentation and highlight engines never touch a store;
// only the textmark facade composes the two sides.
package store

import (
	"context"
	"time"
)

// Store is the interface for persisting sections and annotations
type Store interface {
	Close() error

	// Sections
	UpsertSection(ctx context.Context, s Section) error
	GetSection(ctx context.Context, key string) (Section, bool, error)
	DeleteSection(ctx context.Context, key string) error

	// Annotations
	UpsertAnnotation(ctx context.Context, a Annotation) error
	GetAnnotation(ctx context.Context, id string) (Annotation, error)
	GetAnnotationsBySection(ctx context.Context, key string) ([]Annotation, error)
	DeleteAnnotation(ctx context.Context, id string) error
}

// Section is a stored block of narrative text, addressed by an opaque key
// such as "situation" or "result".
type Section struct {
	Key       string
	Text      string
	UpdatedAt time.Time
}

// Annotation is the stored form of an annotation. Offsets address the
// section text as it was at creation time; validation against the live text
// happens in the annotate package, never here.
type Annotation struct {
	ID            string
	SectionKey    string
	StartOffset   int
	EndOffset     int
	AnnotatedText string
	Style         string
	Note          string
	CreatedAt     time.Time
}
