// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/corpus"
	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Load the combined corpus into the full-text search index",
	Long: `Index reads a combined corpus file and loads its chunks into a SQLite
FTS5 database, replacing any previously indexed contents.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("corpus", defaultCombinedOutput, "corpus JSON file to index")
	indexCmd.Flags().String("index-dir", defaultIndexDir, "directory for the index database")

	rootCmd.AddCommand(indexCmd)
}

// corpusStore opens the store at the command's --index-dir. maxResults
// is only meaningful for retrieval; commands without a --max-results
// flag pass zero and the store default applies.
func corpusStore(cmd *cobra.Command, maxResults int) (*corpus.Store, error) {
	indexDir, _ := cmd.Flags().GetString("index-dir")
	return corpus.NewStore(types.CorpusConfig{IndexDir: indexDir, MaxResults: maxResults})
}

func runIndex(cmd *cobra.Command, args []string) error {
	corpusPath, _ := cmd.Flags().GetString("corpus")

	store, err := corpusStore(cmd, 0)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(cmd.Context(), corpusPath, os.Stdout)
	return err
}
