// Copyright DarkStarStrix, 2026. All rights reserved.

package chunker

import (
	"reflect"
	"strings"
	"testing"

	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

func TestSplitNoHeadings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Section
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n\t\n  ", nil},
		{
			"plain prose",
			"This paper has no recognizable structure.\nJust text.",
			[]Section{{Type: types.ChunkGeneral, Text: "This paper has no recognizable structure.\nJust text."}},
		},
		{
			"prose is trimmed",
			"\n\n  Some text.  \n\n",
			[]Section{{Type: types.ChunkGeneral, Text: "Some text."}},
		},
		{
			"heading token mid-sentence does not split",
			"See Methods below for details.\nThe results were good.",
			[]Section{{Type: types.ChunkGeneral, Text: "See Methods below for details.\nThe results were good."}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitWorkedExample(t *testing.T) {
	text := "Introduction\nWe study X.\nMethods\nWe did Y.\nConclusion\nZ."
	want := []Section{
		{Type: types.ChunkGeneral, Text: "We study X."},
		{Type: types.ChunkSpecialized, Text: "We did Y."},
		{Type: types.ChunkGeneral, Text: "Z."},
	}
	got := Split(text)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %v, want %v", got, want)
	}
}

func TestSplitClassification(t *testing.T) {
	tests := []struct {
		heading string
		want    types.ChunkType
	}{
		{"abstract", types.ChunkGeneral},
		{"introduction", types.ChunkGeneral},
		{"conclusion", types.ChunkGeneral},
		{"methods", types.ChunkSpecialized},
		{"results", types.ChunkSpecialized},
		{"discussion", types.ChunkSpecialized},
	}
	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			got := Split(tt.heading + "\nbody text")
			if len(got) != 1 {
				t.Fatalf("Split() returned %d sections, want 1", len(got))
			}
			if got[0].Type != tt.want {
				t.Errorf("type = %q, want %q", got[0].Type, tt.want)
			}
			if got[0].Text != "body text" {
				t.Errorf("text = %q, want %q", got[0].Text, "body text")
			}
		})
	}
}

func TestSplitHeadingMatching(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		matches bool
	}{
		{"lowercase", "abstract", true},
		{"capitalized", "Abstract", true},
		{"uppercase", "ABSTRACT", true},
		{"trailing colon", "Methods:", true},
		{"colon with spaces", "  results : ", true},
		{"surrounding whitespace", "\tConclusion\t", true},
		{"token in sentence", "The abstract follows.", false},
		{"token with suffix", "Methodsology", false},
		{"unrecognized heading", "Acknowledgements", false},
		{"double colon", "methods::", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := matchHeading(tt.line)
			if got != tt.matches {
				t.Errorf("matchHeading(%q) = %v, want %v", tt.line, got, tt.matches)
			}
		})
	}
}

func TestSplitDiscardsPreamble(t *testing.T) {
	text := "Title of the Paper\nAuthor One, Author Two\nAbstract\nThe abstract body."
	got := Split(text)
	if len(got) != 1 {
		t.Fatalf("Split() returned %d sections, want 1", len(got))
	}
	if got[0].Text != "The abstract body." {
		t.Errorf("text = %q, want the abstract body only", got[0].Text)
	}
}

func TestSplitHeadingAsFirstLine(t *testing.T) {
	// A heading with no preceding text starts a section normally.
	got := Split("Abstract\nBody.")
	want := []Section{{Type: types.ChunkGeneral, Text: "Body."}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %v, want %v", got, want)
	}
}

func TestSplitEmptyBodiesFiltered(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"heading immediately before heading", "Abstract\nMethods\nBody.", 1},
		{"heading at end of document", "Introduction\nBody.\nConclusion", 1},
		{"heading with blank body", "Introduction\n\n   \nMethods\nBody.", 1},
		{"all headings no bodies", "Abstract\nMethods\nResults", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if len(got) != tt.want {
				t.Errorf("Split(%q) returned %d sections, want %d", tt.text, len(got), tt.want)
			}
			for _, s := range got {
				if s.Text == "" {
					t.Errorf("Split(%q) produced an empty body", tt.text)
				}
			}
		})
	}
}

func TestSplitConsecutiveIdenticalHeadings(t *testing.T) {
	text := "Results\nFirst batch.\nResults\nSecond batch."
	got := Split(text)
	if len(got) != 2 {
		t.Fatalf("Split() returned %d sections, want 2", len(got))
	}
	for i, s := range got {
		if s.Type != types.ChunkSpecialized {
			t.Errorf("section %d type = %q, want %q", i, s.Type, types.ChunkSpecialized)
		}
	}
	if got[0].Text != "First batch." || got[1].Text != "Second batch." {
		t.Errorf("sections not kept separate: %v", got)
	}
}

func TestSplitAtMostNChunks(t *testing.T) {
	// N recognized headings yield at most N sections, all non-empty,
	// in source order.
	text := strings.Join([]string{
		"Abstract", "An abstract.",
		"Introduction", "An intro.",
		"Methods",
		"Results", "Numbers.",
		"Discussion", "Words.",
		"Conclusion", "Done.",
	}, "\n")
	got := Split(text)
	if len(got) > 6 {
		t.Fatalf("Split() returned %d sections, want at most 6", len(got))
	}
	if len(got) != 5 {
		t.Fatalf("Split() returned %d sections, want 5 (Methods body is empty)", len(got))
	}
	wantOrder := []string{"An abstract.", "An intro.", "Numbers.", "Words.", "Done."}
	for i, s := range got {
		if s.Text != wantOrder[i] {
			t.Errorf("section %d text = %q, want %q", i, s.Text, wantOrder[i])
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	text := "Introduction\nOnce.\nMethods\nTwice."
	first := Split(text)
	second := Split(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Split is not deterministic: %v vs %v", first, second)
	}
}
