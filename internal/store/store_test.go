package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/paperscope/paperscope/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "papers.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSavePapers_InsertAndRead(t *testing.T) {
	s := openTestStore(t)
	citations := 42

	papers := []model.Paper{
		{
			ID:             "2301.12345v1",
			Title:          "A stored paper",
			Authors:        []string{"First Author", "Second Author"},
			Abstract:       "stored abstract",
			Published:      "2023-01-30T18:00:00Z",
			Venue:          "CVPR",
			VenueType:      model.VenueConference,
			CCFGrade:       model.CCFGradeA,
			CitationCount:  &citations,
			AuthorityScore: 75,
		},
		{
			ID:    "2302.00001v1",
			Title: "No citations known",
		},
	}

	if err := s.SavePapers(context.Background(), "stored query", papers); err != nil {
		t.Fatalf("SavePapers failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM papers`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 rows, got %d", count)
	}

	var venue, authors string
	var stored sql.NullInt64
	row := s.db.QueryRow(`SELECT venue, authors, citation_count FROM papers WHERE arxiv_id = ?`, "2301.12345v1")
	if err := row.Scan(&venue, &authors, &stored); err != nil {
		t.Fatalf("row scan failed: %v", err)
	}
	if venue != "CVPR" {
		t.Errorf("venue = %q", venue)
	}
	if authors != `["First Author","Second Author"]` {
		t.Errorf("authors = %q", authors)
	}
	if !stored.Valid || stored.Int64 != 42 {
		t.Errorf("citation_count = %+v, want 42", stored)
	}

	// unknown citation counts persist as NULL, not zero
	row = s.db.QueryRow(`SELECT citation_count FROM papers WHERE arxiv_id = ?`, "2302.00001v1")
	if err := row.Scan(&stored); err != nil {
		t.Fatalf("row scan failed: %v", err)
	}
	if stored.Valid {
		t.Errorf("Expected NULL citation_count, got %d", stored.Int64)
	}
}

func TestSavePapers_UpsertUpdatesExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	original := []model.Paper{{ID: "2301.12345v1", Title: "v1 title", AuthorityScore: 10}}
	if err := s.SavePapers(ctx, "q", original); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	revised := []model.Paper{{ID: "2301.12345v1", Title: "revised title", AuthorityScore: 55}}
	if err := s.SavePapers(ctx, "q", revised); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	var count, score int
	var title string
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM papers`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 row after upsert, got %d", count)
	}
	row := s.db.QueryRow(`SELECT title, authority_score FROM papers WHERE arxiv_id = ?`, "2301.12345v1")
	if err := row.Scan(&title, &score); err != nil {
		t.Fatalf("row scan failed: %v", err)
	}
	if title != "revised title" || score != 55 {
		t.Errorf("Upsert did not apply: title=%q score=%d", title, score)
	}
}

func TestSavePapers_EmptyBatch(t *testing.T) {
	s := openTestStore(t)

	if err := s.SavePapers(context.Background(), "q", nil); err != nil {
		t.Errorf("Empty batch must commit cleanly, got %v", err)
	}
}

func TestRecordSearch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.RecordSearch(ctx, "transformers", 12); err != nil {
		t.Fatalf("RecordSearch failed: %v", err)
	}
	if err := s.RecordSearch(ctx, "transformers", 3); err != nil {
		t.Fatalf("RecordSearch failed: %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM search_history WHERE query = ?`, "transformers").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 history rows, got %d", count)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "papers.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if err := s.RecordSearch(context.Background(), "q", 0); err != nil {
		t.Errorf("store unusable after nested open: %v", err)
	}
}
