// Copyright DarkStarStrix, 2026. All rights reserved.

// Package chunker segments extracted paper text into labeled sections.
//
// The splitter recognizes six standard section headings and partitions the
// text into (heading, body) pairs. Headings aimed at a general audience
// (abstract, introduction, conclusion) produce general chunks; technical
// headings (methods, results, discussion) produce specialized chunks.
package chunker

import (
	"strings"

	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

// sectionTypes maps recognized heading tokens (lowercased) to the chunk
// type their body is labeled with.
var sectionTypes = map[string]types.ChunkType{
	"abstract":     types.ChunkGeneral,
	"introduction": types.ChunkGeneral,
	"conclusion":   types.ChunkGeneral,
	"methods":      types.ChunkSpecialized,
	"results":      types.ChunkSpecialized,
	"discussion":   types.ChunkSpecialized,
}

// Section is one labeled span of a document's text.
type Section struct {
	Type types.ChunkType
	Text string
}

// mark records a recognized heading line found during the scan.
type mark struct {
	typ       types.ChunkType
	lineStart int // offset of the heading line itself
	bodyStart int // offset just past the heading line's newline
}

// Split partitions text into labeled sections.
//
// A heading is a line whose entire trimmed content is one of the six
// recognized tokens, case-insensitively, with an optional trailing colon.
// Each heading starts a section whose body runs to the next heading or the
// end of the text; bodies are trimmed and empty bodies are dropped. Text
// before the first heading is discarded. If no heading is found anywhere,
// the whole trimmed text becomes a single general section (or nothing, if
// the text is blank).
//
// The scan is a single pass over the text recording heading offsets, so the
// result does not depend on any regex engine's split semantics. Split is
// pure: the same input always yields the same sections.
func Split(text string) []Section {
	var marks []mark

	for start := 0; start <= len(text); {
		end := strings.IndexByte(text[start:], '\n')
		lineEnd := len(text)
		next := len(text) + 1
		if end >= 0 {
			lineEnd = start + end
			next = lineEnd + 1
		}

		if typ, ok := matchHeading(text[start:lineEnd]); ok {
			marks = append(marks, mark{typ: typ, lineStart: start, bodyStart: next})
		}
		start = next
	}

	if len(marks) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []Section{{Type: types.ChunkGeneral, Text: trimmed}}
	}

	var sections []Section
	for i, m := range marks {
		bodyEnd := len(text)
		if i+1 < len(marks) {
			bodyEnd = marks[i+1].lineStart
		}
		bodyStart := m.bodyStart
		if bodyStart > bodyEnd {
			bodyStart = bodyEnd
		}
		body := strings.TrimSpace(text[bodyStart:bodyEnd])
		if body == "" {
			continue
		}
		sections = append(sections, Section{Type: m.typ, Text: body})
	}
	return sections
}

// matchHeading reports whether line consists solely of a recognized section
// token, optionally followed by a colon, ignoring case and surrounding
// whitespace. Tokens embedded mid-sentence never match.
func matchHeading(line string) (types.ChunkType, bool) {
	trimmed := strings.TrimSpace(line)
	if t, ok := strings.CutSuffix(trimmed, ":"); ok {
		trimmed = strings.TrimSpace(t)
	}
	typ, ok := sectionTypes[strings.ToLower(trimmed)]
	return typ, ok
}
