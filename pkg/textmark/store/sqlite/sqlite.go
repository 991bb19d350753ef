package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/braglog/textmark/pkg/textmark/internalerr"
	"github.com/braglog/textmark/pkg/textmark/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sections (
	section_key TEXT PRIMARY KEY,
	body TEXT NOT NULL,
	updated_at TEXT
);

CREATE TABLE IF NOT EXISTS annotations (
	id TEXT PRIMARY KEY,
	section_key TEXT NOT NULL,
	start_offset INTEGER NOT NULL,
	end_offset INTEGER NOT NULL,
	annotated_text TEXT NOT NULL,
	style TEXT NOT NULL,
	note TEXT,
	created_at TEXT,
	FOREIGN KEY(section_key) REFERENCES sections(section_key) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_annotations_section ON annotations(section_key);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertSection inserts or replaces a section, keyed by section_key.
func (s *sqliteStore) UpsertSection(ctx context.Context, sec store.Section) error {
	if sec.Key == "" {
		return fmt.Errorf("section key: %w", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (section_key, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(section_key) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at`,
		sec.Key, sec.Text, sec.UpdatedAt.UTC().Format(time.RFC3339))
	return err
}

// GetSection returns a section by key.
func (s *sqliteStore) GetSection(ctx context.Context, key string) (store.Section, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT section_key, body, updated_at FROM sections WHERE section_key = ?`, key)

	var sec store.Section
	var updated sql.NullString
	err := row.Scan(&sec.Key, &sec.Text, &updated)
	if err == sql.ErrNoRows {
		return store.Section{}, false, nil
	}
	if err != nil {
		return store.Section{}, false, err
	}
	sec.UpdatedAt = parseTime(updated)
	return sec, true, nil
}

// DeleteSection removes a section and its annotations. The explicit
// annotation delete does not rely on the foreign_keys pragma being set on
// whichever pooled connection runs the statement.
func (s *sqliteStore) DeleteSection(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM annotations WHERE section_key = ?`, key); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM sections WHERE section_key = ?`, key)
	return err
}

// UpsertAnnotation inserts or replaces an annotation, keyed by ID.
func (s *sqliteStore) UpsertAnnotation(ctx context.Context, a store.Annotation) error {
	if a.ID == "" || a.SectionKey == "" {
		return fmt.Errorf("annotation id/section: %w", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO annotations (id, section_key, start_offset, end_offset, annotated_text, style, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			section_key = excluded.section_key,
			start_offset = excluded.start_offset,
			end_offset = excluded.end_offset,
			annotated_text = excluded.annotated_text,
			style = excluded.style,
			note = excluded.note`,
		a.ID, a.SectionKey, a.StartOffset, a.EndOffset, a.AnnotatedText,
		a.Style, a.Note, a.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// GetAnnotation returns an annotation by ID, or internalerr.ErrNotFound.
func (s *sqliteStore) GetAnnotation(ctx context.Context, id string) (store.Annotation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, section_key, start_offset, end_offset, annotated_text, style, note, created_at
		FROM annotations WHERE id = ?`, id)

	a, err := scanAnnotation(row)
	if err == sql.ErrNoRows {
		return store.Annotation{}, fmt.Errorf("annotation %q: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Annotation{}, err
	}
	return a, nil
}

// GetAnnotationsBySection returns the annotations for a section, ordered by
// creation time then ID.
func (s *sqliteStore) GetAnnotationsBySection(ctx context.Context, key string) ([]store.Annotation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, section_key, start_offset, end_offset, annotated_text, style, note, created_at
		FROM annotations WHERE section_key = ?
		ORDER BY created_at, id`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Annotation
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteAnnotation removes an annotation by ID. Deleting an unknown ID is a
// no-op.
func (s *sqliteStore) DeleteAnnotation(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM annotations WHERE id = ?`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnnotation(row rowScanner) (store.Annotation, error) {
	var a store.Annotation
	var note, created sql.NullString
	err := row.Scan(&a.ID, &a.SectionKey, &a.StartOffset, &a.EndOffset,
		&a.AnnotatedText, &a.Style, &note, &created)
	if err != nil {
		return store.Annotation{}, err
	}
	a.Note = note.String
	a.CreatedAt = parseTime(created)
	return a, nil
}

func parseTime(s sql.NullString) time.Time {
	if !s.Valid {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339, s.String); err == nil {
		return parsed
	}
	return time.Time{}
}
