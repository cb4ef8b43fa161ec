// Copyright DarkStarStrix, 2026. All rights reserved.

package types

import "time"

// Paper holds metadata and file paths for a harvested paper. A record is
// written as YAML alongside the raw PDFs so later stages and humans can tell
// where a file came from without re-querying the source API.
type Paper struct {
	// ID is the provider-assigned identifier (e.g. "2301.07041" for arXiv).
	ID string `json:"id" yaml:"id"`

	// Domain is the subject-area label the paper was harvested under.
	Domain string `json:"domain" yaml:"domain"`

	// Source identifies which repository provided the PDF ("arxiv", "chemrxiv").
	Source string `json:"source" yaml:"source"`

	// SourceURL is the URL the PDF was downloaded from.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// PDFPath is the local filesystem path to the downloaded PDF.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// Title is the paper title, when the source API supplies one.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Date is the publication or preprint date.
	Date time.Time `json:"date,omitempty" yaml:"date,omitempty"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}
