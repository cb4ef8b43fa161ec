// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/combine"
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Merge per-document chunk files into one corpus file",
	Long: `Combine walks every configured domain's json/ directory and merges the
chunk files into a single pretty-printed JSON array. Missing directories
and unparsable files are reported and skipped.`,
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().String("papers-dir", "papers", "base directory for papers")
	combineCmd.Flags().String("out", defaultCombinedOutput, "path for the combined corpus file")

	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	papersDir, _ := cmd.Flags().GetString("papers-dir")
	out, _ := cmd.Flags().GetString("out")

	dirs := make([]string, 0, len(configuredDomains()))
	for _, domain := range domainNames() {
		dirs = append(dirs, filepath.Join(papersDir, domain, "json"))
	}

	_, err := combine.Combine(dirs, out, os.Stdout)
	return err
}
