// Copyright DarkStarStrix, 2026. All rights reserved.

// Package types defines shared data structures for the corpus pipeline:
// Chunk and ChunkType for the segmentation output, Paper for acquisition
// metadata, and the per-stage configuration structs.
package types

// ChunkType labels a chunk as broadly readable or domain-technical.
type ChunkType string

const (
	// ChunkGeneral marks sections aimed at a general reader:
	// abstract, introduction, conclusion.
	ChunkGeneral ChunkType = "general"

	// ChunkSpecialized marks sections with technical depth:
	// methods, results, discussion.
	ChunkSpecialized ChunkType = "specialized"
)

// Chunk is one labeled span of a paper's text. Chunks carry no identity
// beyond their position in the output sequence, which mirrors the order
// the sections appeared in the source document.
type Chunk struct {
	// Domain is the subject-area label the paper was harvested under
	// (e.g. "Physics").
	Domain string `json:"domain" yaml:"domain"`

	// Type classifies the section the chunk came from.
	Type ChunkType `json:"chunk_type" yaml:"chunk_type"`

	// Text is the trimmed body of the section.
	Text string `json:"text" yaml:"text"`
}
