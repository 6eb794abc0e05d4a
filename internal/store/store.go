// Package store persists retrieved papers and search history to SQLite.
// Persistence is an optional sink: the pipeline works without it, and sink
// failures never fail a run.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/paperscope/paperscope/internal/model"
)

// Store manages the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating the schema if it
// does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			arxiv_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors TEXT,
			summary TEXT,
			published TEXT,
			url TEXT,
			pdf_url TEXT,
			categories TEXT,
			venue TEXT,
			venue_type TEXT,
			ccf_grade TEXT,
			citation_count INTEGER,
			authority_score INTEGER,
			search_query TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_search_query ON papers(search_query)`,
		`CREATE TABLE IF NOT EXISTS search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			result_count INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SavePapers upserts a batch keyed by arXiv id, tagged with the query that
// retrieved it.
func (s *Store) SavePapers(ctx context.Context, query string, papers []model.Paper) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO papers
		(arxiv_id, title, authors, summary, published, url, pdf_url, categories,
		 venue, venue_type, ccf_grade, citation_count, authority_score,
		 search_query, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(arxiv_id) DO UPDATE SET
			title=excluded.title,
			authors=excluded.authors,
			summary=excluded.summary,
			published=excluded.published,
			venue=excluded.venue,
			venue_type=excluded.venue_type,
			ccf_grade=excluded.ccf_grade,
			citation_count=excluded.citation_count,
			authority_score=excluded.authority_score,
			updated_at=excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range papers {
		authors, err := json.Marshal(p.Authors)
		if err != nil {
			return fmt.Errorf("marshal authors for %s: %w", p.ID, err)
		}

		var citations interface{}
		if p.CitationCount != nil {
			citations = *p.CitationCount
		}

		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Title, string(authors), p.Abstract, p.Published, p.URL,
			p.PDFURL, p.Categories, p.Venue, string(p.VenueType),
			string(p.CCFGrade), citations, p.AuthorityScore, query, now, now,
		); err != nil {
			return fmt.Errorf("upsert paper %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// RecordSearch appends one row of search history.
func (s *Store) RecordSearch(ctx context.Context, query string, resultCount int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_history (query, result_count, created_at) VALUES (?, ?, ?)`,
		query, resultCount, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}
