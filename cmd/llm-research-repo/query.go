// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/corpus"
	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [search terms...]",
	Short: "Search the indexed corpus",
	Long: `Query runs a full-text search over the indexed corpus, optionally
filtered by domain and chunk type. Without search terms it lists chunks
matching the filters alone.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("domain", "", "filter by domain label")
	queryCmd.Flags().String("type", "", "filter by chunk type (general or specialized)")
	queryCmd.Flags().Int("max-results", 20, "maximum number of results")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	queryCmd.Flags().String("index-dir", defaultIndexDir, "directory for the index database")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	domain, _ := cmd.Flags().GetString("domain")
	chunkType, _ := cmd.Flags().GetString("type")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")

	opts := corpus.QueryOptions{
		Query:      strings.Join(args, " "),
		Domain:     domain,
		Type:       types.ChunkType(chunkType),
		MaxResults: maxResults,
	}
	if opts.IsEmpty() {
		return fmt.Errorf("provide search terms or a --domain/--type filter")
	}

	store, err := corpusStore(cmd, maxResults)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	for i, c := range results {
		fmt.Printf("%d. [%s/%s] %s\n", i+1, c.Domain, c.Type, snippet(c.Text, 120))
	}
	fmt.Printf("\n%d results\n", len(results))
	return nil
}

// snippet collapses whitespace and truncates text for one-line display.
// Truncation counts runes, not bytes, so multibyte text is never split
// mid-character.
func snippet(text string, max int) string {
	s := strings.Join(strings.Fields(text), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
