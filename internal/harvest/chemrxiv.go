// Copyright DarkStarStrix, 2026. All rights reserved.

package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

// chemrxivAPIBase is the ChemRxiv items endpoint. Declared as a var so
// tests can substitute an httptest server.
var chemrxivAPIBase = "https://chemrxiv.org/engage/api/v1/items"

// ChemrxivSource lists the latest ChemRxiv preprints. The items API has no
// topic search, so the domain query is ignored and the newest items are
// returned site-wide.
type ChemrxivSource struct {
	Client *http.Client
}

// Name returns the source identifier.
func (s *ChemrxivSource) Name() string { return "chemrxiv" }

// chemrxivItems captures the fields we need from the items response.
type chemrxivItems struct {
	Items []chemrxivItem `json:"items"`
}

type chemrxivItem struct {
	ID     string `json:"id"`
	PDFURL string `json:"pdfUrl"`
}

// List fetches up to MaxResults items and returns one Listing per item
// that advertises a PDF URL. Items without one are dropped.
func (s *ChemrxivSource) List(ctx context.Context, _ string, cfg types.HarvestConfig) ([]Listing, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	url := fmt.Sprintf("%s?limit=%d", chemrxivAPIBase, maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ChemRxiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ChemRxiv API returned HTTP %d", resp.StatusCode)
	}

	var items chemrxivItems
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("parsing ChemRxiv response: %w", err)
	}

	var listings []Listing
	for _, item := range items.Items {
		if item.ID == "" || item.PDFURL == "" {
			continue
		}
		listings = append(listings, Listing{ID: item.ID, PDFURL: item.PDFURL})
	}
	return listings, nil
}
