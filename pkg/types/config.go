package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "llm-research-repo/0.1"). Repository operators use it to
	// identify and contact the crawler.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// HarvestConfig holds settings for the harvest stage.
type HarvestConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of papers requested per source (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// PapersDir is the base directory for downloads. PDFs land under
	// <PapersDir>/<domain>/<source>/.
	PapersDir string `json:"papers_dir" yaml:"papers_dir"`
}

// ProcessConfig holds settings for the extraction and chunking stage.
type ProcessConfig struct {
	// PapersDir is the base directory for papers. Chunk files are written
	// under <PapersDir>/<domain>/json/.
	PapersDir string `json:"papers_dir" yaml:"papers_dir"`

	// Sources lists the per-domain source subdirectories to scan for PDFs.
	Sources []string `json:"sources" yaml:"sources"`
}

// CombineConfig holds settings for the aggregation stage.
type CombineConfig struct {
	// OutputPath is the file the combined corpus array is written to.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// CorpusConfig holds settings for the corpus index stage.
type CorpusConfig struct {
	// IndexDir is the directory holding the SQLite index database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for a full pipeline run.
type PipelineConfig struct {
	// Domains maps a domain label to its search query
	// (e.g. "Physics" -> "quantum physics").
	Domains map[string]string `json:"domains" yaml:"domains"`

	Harvest HarvestConfig `json:"harvest" yaml:"harvest"`
	Process ProcessConfig `json:"process" yaml:"process"`
	Combine CombineConfig `json:"combine" yaml:"combine"`
	Corpus  CorpusConfig  `json:"corpus" yaml:"corpus"`
}
