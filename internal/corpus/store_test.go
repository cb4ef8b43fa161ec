// Copyright DarkStarStrix, 2026. All rights reserved.

package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.CorpusConfig{IndexDir: t.TempDir(), MaxResults: 10})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func writeCorpus(t *testing.T, chunks []types.Chunk) string {
	t.Helper()
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

var testChunks = []types.Chunk{
	{Domain: "Physics", Type: types.ChunkGeneral, Text: "We study quantum entanglement."},
	{Domain: "Physics", Type: types.ChunkSpecialized, Text: "The Hamiltonian was diagonalized numerically."},
	{Domain: "Computer Science", Type: types.ChunkGeneral, Text: "Transformers dominate language modeling."},
}

func TestIngestAndStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var buf bytes.Buffer
	n, err := s.Ingest(ctx, writeCorpus(t, testChunks), &buf)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Ingest() = %d, want 3", n)
	}

	stats, err := s.CorpusStats(ctx)
	if err != nil {
		t.Fatalf("CorpusStats() error = %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.ByDomain["Physics"] != 2 {
		t.Errorf("ByDomain[Physics] = %d, want 2", stats.ByDomain["Physics"])
	}
	if stats.ByType["general"] != 2 || stats.ByType["specialized"] != 1 {
		t.Errorf("ByType = %v", stats.ByType)
	}
}

func TestIngestReplacesPreviousContents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var buf bytes.Buffer
	if _, err := s.Ingest(ctx, writeCorpus(t, testChunks), &buf); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Ingest(ctx, writeCorpus(t, testChunks[:1]), &buf); err != nil {
		t.Fatal(err)
	}

	stats, err := s.CorpusStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 1 {
		t.Errorf("Total after re-ingest = %d, want 1", stats.Total)
	}
}

func TestIngestBadFileLeavesIndexIntact(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var buf bytes.Buffer
	if _, err := s.Ingest(ctx, writeCorpus(t, testChunks), &buf); err != nil {
		t.Fatal(err)
	}

	badPath := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Ingest(ctx, badPath, &buf); err == nil {
		t.Fatal("Ingest() error = nil, want parse error")
	}

	stats, err := s.CorpusStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Total != 3 {
		t.Errorf("Total after failed ingest = %d, want 3 (previous index intact)", stats.Total)
	}
}

func TestRetrieveFullText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var buf bytes.Buffer
	if _, err := s.Ingest(ctx, writeCorpus(t, testChunks), &buf); err != nil {
		t.Fatal(err)
	}

	results, err := s.Retrieve(ctx, QueryOptions{Query: "entanglement"})
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Domain != "Physics" || results[0].Type != types.ChunkGeneral {
		t.Errorf("result = %+v", results[0])
	}
}

func TestRetrieveFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var buf bytes.Buffer
	if _, err := s.Ingest(ctx, writeCorpus(t, testChunks), &buf); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts QueryOptions
		want int
	}{
		{"by domain", QueryOptions{Domain: "Physics"}, 2},
		{"by type", QueryOptions{Type: types.ChunkGeneral}, 2},
		{"domain and type", QueryOptions{Domain: "Physics", Type: types.ChunkSpecialized}, 1},
		{"fts with domain filter", QueryOptions{Query: "quantum", Domain: "Computer Science"}, 0},
		{"max results", QueryOptions{Domain: "Physics", MaxResults: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.Retrieve(ctx, tt.opts)
			if err != nil {
				t.Fatalf("Retrieve() error = %v", err)
			}
			if len(results) != tt.want {
				t.Errorf("len(results) = %d, want %d", len(results), tt.want)
			}
		})
	}
}
