// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print chunk counts for the indexed corpus",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("index-dir", defaultIndexDir, "directory for the index database")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := corpusStore(cmd, 0)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.CorpusStats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("chunks: %d\n", stats.Total)

	fmt.Println("\nby domain:")
	for _, k := range sortedKeys(stats.ByDomain) {
		fmt.Printf("  %-20s %d\n", k, stats.ByDomain[k])
	}

	fmt.Println("\nby type:")
	for _, k := range sortedKeys(stats.ByType) {
		fmt.Printf("  %-20s %d\n", k, stats.ByType[k])
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
