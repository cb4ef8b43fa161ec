// Copyright DarkStarStrix, 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/dslipak/pdf"
)

// PDFExtractor extracts plain text from PDF files, concatenating the text
// of every page in document order.
type PDFExtractor struct{}

// Extract opens the PDF at path and returns its full text. The file handle
// is released before returning, success or not. A failure on any page
// aborts extraction for the whole document.
func (PDFExtractor) Extract(path string) (text string, err error) {
	// The pdf reader panics on some malformed files; convert that to an
	// error so a corrupt document skips instead of killing the batch.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading PDF %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stating PDF: %w", err)
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("reading PDF %s: %w", path, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d: %w", i, err)
		}
		b.WriteString(content)
	}
	return b.String(), nil
}
