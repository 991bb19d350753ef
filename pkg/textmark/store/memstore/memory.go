package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/braglog/textmark/pkg/textmark/internalerr"
	"github.com/braglog/textmark/pkg/textmark/store"
)

// Store is an in-memory implementation of store.Store for tests and examples.
type Store struct {
	mu          sync.RWMutex
	sections    map[string]store.Section
	annotations map[string]store.Annotation
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		sections:    make(map[string]store.Section),
		annotations: make(map[string]store.Annotation),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertSection inserts or replaces a section, keyed by Key.
func (s *Store) UpsertSection(ctx context.Context, sec store.Section) error {
	if sec.Key == "" {
		return fmt.Errorf("section key: %w", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections[sec.Key] = sec
	return nil
}

// GetSection returns a section by key.
func (s *Store) GetSection(ctx context.Context, key string) (store.Section, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sec, ok := s.sections[key]; ok {
		return sec, true, nil
	}
	return store.Section{}, false, nil
}

// DeleteSection removes a section and every annotation attached to it.
func (s *Store) DeleteSection(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sections, key)
	for id, a := range s.annotations {
		if a.SectionKey == key {
			delete(s.annotations, id)
		}
	}
	return nil
}

// UpsertAnnotation inserts or replaces an annotation, keyed by ID.
func (s *Store) UpsertAnnotation(ctx context.Context, a store.Annotation) error {
	if a.ID == "" || a.SectionKey == "" {
		return fmt.Errorf("annotation id/section: %w", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.annotations[a.ID] = a
	return nil
}

// GetAnnotation returns an annotation by ID, or internalerr.ErrNotFound.
func (s *Store) GetAnnotation(ctx context.Context, id string) (store.Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.annotations[id]; ok {
		return a, nil
	}
	return store.Annotation{}, fmt.Errorf("annotation %q: %w", id, internalerr.ErrNotFound)
}

// GetAnnotationsBySection returns the annotations for a section, ordered by
// creation time then ID for deterministic output.
func (s *Store) GetAnnotationsBySection(ctx context.Context, key string) ([]store.Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Annotation
	for _, a := range s.annotations {
		if a.SectionKey == key {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteAnnotation removes an annotation by ID. Deleting an unknown ID is a
// no-op.
func (s *Store) DeleteAnnotation(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.annotations, id)
	return nil
}
