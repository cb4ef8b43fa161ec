// Copyright DarkStarStrix, 2026. All rights reserved.

// Package extract turns downloaded PDFs into per-document chunk files.
// It reads each paper's full text, segments it with the chunker, and
// writes one pretty-printed JSON array of chunks per document.
package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/chunker"
	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

const (
	// jsonDir is the per-domain subdirectory for chunk files.
	jsonDir = "json"
	pdfExt  = ".pdf"
)

// Extractor returns the full plain-text content of a document file.
// The production implementation is PDFExtractor; tests supply fakes.
type Extractor interface {
	Extract(path string) (string, error)
}

// BatchResult holds the outcome of a batch processing run.
type BatchResult struct {
	Processed int
	Empty     int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Processed + r.Empty + r.Failed
}

// HasFailures reports whether any documents failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessPaper extracts the text of one document and chunks it. Every
// section becomes one Chunk tagged with the paper's domain, in source
// order. A document whose text contains no recognized section heading
// yields a single general chunk.
func ProcessPaper(e Extractor, path, domain string) ([]types.Chunk, error) {
	text, err := e.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	sections := chunker.Split(text)
	chunks := make([]types.Chunk, 0, len(sections))
	for _, s := range sections {
		chunks = append(chunks, types.Chunk{
			Domain: domain,
			Type:   s.Type,
			Text:   s.Text,
		})
	}
	return chunks, nil
}

// WriteChunks writes chunks as a pretty-printed JSON array using a
// temporary file so a failed write leaves no partial artifact; an
// existing file is replaced whole by the rename.
func WriteChunks(chunks []types.Chunk, path string) error {
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling chunks: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".extract-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing chunks: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ProcessDomain walks every configured source directory under
// papersDir/<domain>/, processes each PDF, and writes non-empty chunk
// lists to papersDir/<domain>/json/<id>.json. Individual document
// failures are reported to w and skipped; the batch continues. Documents
// are visited in directory-listing order, which is not guaranteed stable
// across filesystems.
func ProcessDomain(e Extractor, domain string, cfg types.ProcessConfig, w io.Writer) (BatchResult, error) {
	outDir := filepath.Join(cfg.PapersDir, domain, jsonDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	var result BatchResult
	for _, source := range cfg.Sources {
		srcDir := filepath.Join(cfg.PapersDir, domain, source)
		entries, err := os.ReadDir(srcDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			fmt.Fprintf(w, "warning: reading %s: %v\n", srcDir, err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), pdfExt) {
				continue
			}
			id := strings.TrimSuffix(entry.Name(), pdfExt)
			path := filepath.Join(srcDir, entry.Name())

			chunks, err := ProcessPaper(e, path, domain)
			if err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
				result.Failed++
				continue
			}
			if len(chunks) == 0 {
				fmt.Fprintf(w, "empty:   %s (no chunks)\n", id)
				result.Empty++
				continue
			}

			outPath := filepath.Join(outDir, id+".json")
			if err := WriteChunks(chunks, outPath); err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", id, err)
				result.Failed++
				continue
			}
			fmt.Fprintf(w, "processed: %s (%d chunks)\n", id, len(chunks))
			result.Processed++
		}
	}

	fmt.Fprintf(w, "\n%s: %d processed, %d empty, %d failed (total: %d)\n",
		domain, result.Processed, result.Empty, result.Failed, result.Total())
	return result, nil
}
