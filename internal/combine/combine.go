// Copyright DarkStarStrix, 2026. All rights reserved.

// Package combine merges per-document chunk files into one corpus file.
//
// Every *.json file under the given directories is parsed and appended to a
// single accumulating array: files holding an array contribute their
// elements (flattened one level), files holding any other JSON value
// contribute that value as one element. The result is written once, as a
// pretty-printed array.
package combine

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Summary holds counts from a combine run.
type Summary struct {
	Files        int
	Entries      int
	SkippedDirs  int
	SkippedFiles int
}

// Combine reads every JSON file in dirs, in the order the directories are
// given, and writes the accumulated array to outputPath, creating missing
// parent directories first. Missing directories and unparsable files are
// reported to w and skipped; only a failure to write the output itself is
// an error. Files within one directory are visited in directory-listing
// order, which callers must not rely on.
func Combine(dirs []string, outputPath string, w io.Writer) (Summary, error) {
	var summary Summary
	entries := make([]any, 0)

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			fmt.Fprintf(w, "warning: directory %s does not exist, skipping\n", dir)
			summary.SkippedDirs++
			continue
		}

		paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			// Only a malformed pattern errors here, and ours is fixed.
			return summary, fmt.Errorf("globbing %s: %w", dir, err)
		}
		fmt.Fprintf(w, "found %d JSON files in %s\n", len(paths), dir)

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(w, "warning: reading %s: %v\n", path, err)
				summary.SkippedFiles++
				continue
			}

			var value any
			if err := json.Unmarshal(data, &value); err != nil {
				fmt.Fprintf(w, "warning: parsing %s: %v\n", path, err)
				summary.SkippedFiles++
				continue
			}

			// Arrays are flattened one level; anything else is one element.
			if list, ok := value.([]any); ok {
				entries = append(entries, list...)
			} else {
				entries = append(entries, value)
			}
			summary.Files++
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return summary, fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return summary, fmt.Errorf("marshaling combined corpus: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return summary, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	summary.Entries = len(entries)
	fmt.Fprintf(w, "combined %d files into %s (%d entries)\n",
		summary.Files, outputPath, summary.Entries)
	return summary, nil
}
