// Package sqlite provides a SQLite-backed implementation of the corpus store.
// It suits corpora that outgrow the embedded seed set or are shared between
// tools, at the cost of a database file on disk.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/corpus/sqlite/migrations"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store is a SQLite-backed corpus store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite corpus store at the specified data directory.
// If dataDir is empty, defaults to ~/.lessonsmith/data/corpus.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lessonsmith", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// All returns every reference document in the corpus, ordered by ID.
func (s *Store) All(ctx context.Context) ([]domain.ReferenceDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, subject_category, applicable_grades, keywords, body,
		       source_citation, suggested_activities, concept_tags,
		       pedagogical_level, cross_links
		FROM documents
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.ReferenceDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// Get retrieves a single document by ID.
// Returns domain.ErrNotFound if no document has that ID.
func (s *Store) Get(ctx context.Context, id int) (*domain.ReferenceDocument, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, subject_category, applicable_grades, keywords, body,
		       source_citation, suggested_activities, concept_tags,
		       pedagogical_level, cross_links
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return &doc, nil
}

// Count returns the number of documents in the corpus.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

// Import stores documents, replacing any existing document with the same ID.
// All documents are imported in a single transaction.
func (s *Store) Import(ctx context.Context, docs []domain.ReferenceDocument) error {
	if len(docs) == 0 {
		return fmt.Errorf("import: %w: no documents provided", domain.ErrInvalidInput)
	}

	for _, doc := range docs {
		if err := validateDocument(doc); err != nil {
			return fmt.Errorf("import document %d: %w", doc.ID, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, doc := range docs {
		grades, err := marshalList(doc.ApplicableGrades)
		if err != nil {
			return fmt.Errorf("marshalling grades for document %d: %w", doc.ID, err)
		}
		keywords, err := marshalList(doc.Keywords)
		if err != nil {
			return fmt.Errorf("marshalling keywords for document %d: %w", doc.ID, err)
		}
		activities, err := marshalList(doc.SuggestedActivities)
		if err != nil {
			return fmt.Errorf("marshalling activities for document %d: %w", doc.ID, err)
		}
		tags, err := marshalList(doc.ConceptTags)
		if err != nil {
			return fmt.Errorf("marshalling concept tags for document %d: %w", doc.ID, err)
		}
		links, err := marshalList(doc.CrossLinks)
		if err != nil {
			return fmt.Errorf("marshalling cross links for document %d: %w", doc.ID, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO documents (id, subject_category, applicable_grades, keywords, body,
			                       source_citation, suggested_activities, concept_tags,
			                       pedagogical_level, cross_links)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				subject_category = excluded.subject_category,
				applicable_grades = excluded.applicable_grades,
				keywords = excluded.keywords,
				body = excluded.body,
				source_citation = excluded.source_citation,
				suggested_activities = excluded.suggested_activities,
				concept_tags = excluded.concept_tags,
				pedagogical_level = excluded.pedagogical_level,
				cross_links = excluded.cross_links,
				updated_at = CURRENT_TIMESTAMP
		`, doc.ID, doc.SubjectCategory, grades, keywords, doc.Body,
			doc.SourceCitation, activities, tags,
			string(doc.PedagogicalLevel), links)
		if err != nil {
			return fmt.Errorf("inserting document %d: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// validateDocument enforces corpus invariants before persisting.
func validateDocument(doc domain.ReferenceDocument) error {
	if len(doc.ApplicableGrades) == 0 {
		return fmt.Errorf("%w: applicable grades must not be empty", domain.ErrInvalidDocument)
	}
	if len(doc.Keywords) == 0 && doc.Body == "" {
		return fmt.Errorf("%w: keywords and body must not both be empty", domain.ErrInvalidDocument)
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanDocument.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDocument reads a single document row.
func scanDocument(row rowScanner) (domain.ReferenceDocument, error) {
	var doc domain.ReferenceDocument
	var grades, keywords, activities, tags, links, level string

	err := row.Scan(&doc.ID, &doc.SubjectCategory, &grades, &keywords, &doc.Body,
		&doc.SourceCitation, &activities, &tags, &level, &links)
	if err != nil {
		return domain.ReferenceDocument{}, err
	}

	doc.PedagogicalLevel = domain.PedagogicalLevel(level)
	if doc.ApplicableGrades, err = unmarshalList(grades); err != nil {
		return domain.ReferenceDocument{}, fmt.Errorf("unmarshalling grades for document %d: %w", doc.ID, err)
	}
	if doc.Keywords, err = unmarshalList(keywords); err != nil {
		return domain.ReferenceDocument{}, fmt.Errorf("unmarshalling keywords for document %d: %w", doc.ID, err)
	}
	if doc.SuggestedActivities, err = unmarshalList(activities); err != nil {
		return domain.ReferenceDocument{}, fmt.Errorf("unmarshalling activities for document %d: %w", doc.ID, err)
	}
	if doc.ConceptTags, err = unmarshalList(tags); err != nil {
		return domain.ReferenceDocument{}, fmt.Errorf("unmarshalling concept tags for document %d: %w", doc.ID, err)
	}
	if doc.CrossLinks, err = unmarshalList(links); err != nil {
		return domain.ReferenceDocument{}, fmt.Errorf("unmarshalling cross links for document %d: %w", doc.ID, err)
	}

	return doc, nil
}

// marshalList serialises a string slice to a JSON array, never null.
func marshalList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// unmarshalList deserialises a JSON array column.
func unmarshalList(data string) ([]string, error) {
	if data == "" || data == "null" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}
