// Copyright DarkStarStrix, 2026. All rights reserved.

// Package harvest downloads papers from preprint repositories.
//
// Each repository implements the Source interface; HarvestDomain lists the
// candidate papers per source and downloads the ones not already on disk to
// papersDir/<domain>/<source>/<id>.pdf, writing a YAML metadata record per
// download. Downloads are strictly sequential with no retry: a failed item
// is reported and skipped, never re-attempted.
package harvest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

// metadataDir is the per-domain subdirectory for paper metadata records.
const metadataDir = "metadata"

// Listing is one downloadable paper advertised by a source.
type Listing struct {
	// ID is the provider-assigned identifier, used as the PDF file stem.
	ID string

	// PDFURL is the direct download URL for the paper's PDF.
	PDFURL string

	// Metadata, when the listing API supplies it.
	Title    string
	Authors  []string
	Date     time.Time
	Abstract string
}

// Source lists candidate papers from one repository. Each repository
// (arXiv, ChemRxiv) implements this interface per the Strategy pattern.
type Source interface {
	Name() string
	List(ctx context.Context, query string, cfg types.HarvestConfig) ([]Listing, error)
}

// BatchResult holds the outcome of a per-domain harvest run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the total number of listings processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any downloads failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// HarvestDomain lists papers from every source and downloads the ones not
// already present under papersDir/<domain>/<source>/. A listing failure
// skips that source; a download failure skips that paper; neither aborts
// the domain's batch. Progress is written to w.
func HarvestDomain(ctx context.Context, client *http.Client, domain, query string, sources []Source, cfg types.HarvestConfig, w io.Writer) BatchResult {
	var result BatchResult

	for _, source := range sources {
		listings, err := source.List(ctx, query, cfg)
		if err != nil {
			fmt.Fprintf(w, "warning: %s listing failed: %v\n", source.Name(), err)
			continue
		}

		srcDir := filepath.Join(cfg.PapersDir, domain, source.Name())
		metaDir := filepath.Join(cfg.PapersDir, domain, metadataDir)
		if err := makeDirs(srcDir, metaDir); err != nil {
			fmt.Fprintf(w, "warning: %s: %v\n", source.Name(), err)
			continue
		}

		for i, l := range listings {
			pdfPath := filepath.Join(srcDir, l.ID+".pdf")
			if _, err := os.Stat(pdfPath); err == nil {
				fmt.Fprintf(w, "skipped: %s/%s (already exists)\n", source.Name(), l.ID)
				result.Skipped++
				continue
			}

			if i > 0 && cfg.DownloadDelay > 0 {
				time.Sleep(cfg.DownloadDelay)
			}

			if err := downloadFile(ctx, client, l.PDFURL, pdfPath, cfg); err != nil {
				fmt.Fprintf(w, "failed:  %s/%s (%v)\n", source.Name(), l.ID, err)
				result.Failed++
				continue
			}

			paper := &types.Paper{
				ID:        l.ID,
				Domain:    domain,
				Source:    source.Name(),
				SourceURL: l.PDFURL,
				PDFPath:   pdfPath,
				Title:     l.Title,
				Authors:   l.Authors,
				Date:      l.Date,
				Abstract:  l.Abstract,
			}
			metaPath := filepath.Join(metaDir, l.ID+".yaml")
			if err := WritePaperMetadata(paper, metaPath); err != nil {
				fmt.Fprintf(w, "  warning: metadata write failed for %s: %v\n", l.ID, err)
			}

			fmt.Fprintf(w, "downloaded: %s/%s\n", source.Name(), l.ID)
			result.Downloaded++
		}
	}

	fmt.Fprintf(w, "\n%s: %d downloaded, %d skipped, %d failed (total: %d)\n",
		domain, result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

func makeDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// downloadFile fetches url to destPath using a temporary file so a failed
// download leaves no partial PDF behind. It sets User-Agent and requests
// PDF via the Accept header; the HTTP client handles redirect following.
func downloadFile(ctx context.Context, client *http.Client, url, destPath string, cfg types.HarvestConfig) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".harvest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
