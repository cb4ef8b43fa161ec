// Copyright DarkStarStrix, 2026. All rights reserved.

// Package corpus persists combined chunk corpora in a SQLite database and
// serves full-text queries over them.
package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

const dbFile = "corpus.db"

// Store manages the corpus SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the corpus database at indexDir/corpus.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CorpusConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS chunks (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			domain TEXT NOT NULL,
			chunk_type TEXT NOT NULL,
			text TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chunks_domain ON chunks(domain)`,
		`CREATE INDEX IF NOT EXISTS idx_chunks_type ON chunks(chunk_type)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='chunks_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE chunks_fts USING fts5(text, content=chunks, content_rowid=rowid)`,
			`CREATE TRIGGER chunks_ai AFTER INSERT ON chunks BEGIN
				INSERT INTO chunks_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
			`CREATE TRIGGER chunks_ad AFTER DELETE ON chunks BEGIN
				INSERT INTO chunks_fts(chunks_fts, rowid, text) VALUES('delete', old.rowid, old.text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest loads a corpus JSON file (an array of chunks, as written by the
// combine stage or a per-document chunk file) into the index, replacing
// any previously indexed contents. The load is one transaction: a failed
// ingest leaves the previous index intact.
func (s *Store) Ingest(ctx context.Context, jsonPath string, w io.Writer) (int, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("reading corpus file: %w", err)
	}

	var chunks []types.Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return 0, fmt.Errorf("parsing corpus file %s: %w", jsonPath, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks`); err != nil {
		return 0, fmt.Errorf("clearing previous index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chunks (domain, chunk_type, text) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range chunks {
		if _, err := stmt.ExecContext(ctx, c.Domain, string(c.Type), c.Text); err != nil {
			return 0, fmt.Errorf("inserting chunk: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "indexed %d chunks from %s\n", len(chunks), jsonPath)
	return len(chunks), nil
}

// QueryOptions holds parameters for corpus queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string.
	Query string

	// Domain filters by domain label.
	Domain string

	// Type filters by chunk type.
	Type types.ChunkType

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Domain == "" && q.Type == ""
}

// Retrieve queries the corpus with optional full-text search and
// structured filters. Full-text queries are ranked by FTS relevance;
// filter-only queries come back in insertion order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.Chunk, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.domain, c.chunk_type, c.text
			FROM chunks_fts
			JOIN chunks c ON c.rowid = chunks_fts.rowid
			WHERE chunks_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT c.domain, c.chunk_type, c.text
			FROM chunks c
			WHERE 1=1`)
	}

	if opts.Domain != "" {
		qb.WriteString(` AND c.domain = ?`)
		args = append(args, opts.Domain)
	}
	if opts.Type != "" {
		qb.WriteString(` AND c.chunk_type = ?`)
		args = append(args, string(opts.Type))
	}

	if useFTS {
		qb.WriteString(` ORDER BY chunks_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY c.rowid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying corpus: %w", err)
	}
	defer rows.Close()

	var results []types.Chunk
	for rows.Next() {
		var c types.Chunk
		var chunkType string
		if err := rows.Scan(&c.Domain, &chunkType, &c.Text); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		c.Type = types.ChunkType(chunkType)
		results = append(results, c)
	}
	return results, rows.Err()
}

// Stats summarizes the indexed corpus.
type Stats struct {
	Total    int
	ByDomain map[string]int
	ByType   map[string]int
}

// CorpusStats returns chunk counts overall, per domain, and per type.
func (s *Store) CorpusStats(ctx context.Context) (Stats, error) {
	stats := Stats{
		ByDomain: make(map[string]int),
		ByType:   make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM chunks`).Scan(&stats.Total); err != nil {
		return stats, fmt.Errorf("counting chunks: %w", err)
	}

	group := func(column string, dest map[string]int) error {
		rows, err := s.db.QueryContext(ctx,
			fmt.Sprintf(`SELECT %s, count(*) FROM chunks GROUP BY %s`, column, column))
		if err != nil {
			return fmt.Errorf("grouping by %s: %w", column, err)
		}
		defer rows.Close()
		for rows.Next() {
			var key string
			var n int
			if err := rows.Scan(&key, &n); err != nil {
				return fmt.Errorf("scanning %s row: %w", column, err)
			}
			dest[key] = n
		}
		return rows.Err()
	}

	if err := group("domain", stats.ByDomain); err != nil {
		return stats, err
	}
	if err := group("chunk_type", stats.ByType); err != nil {
		return stats, err
	}
	return stats, nil
}
