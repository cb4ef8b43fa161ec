// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/combine"
	"github.com/DarkStarStrix/LLM-Research-Repo/internal/extract"
	"github.com/DarkStarStrix/LLM-Research-Repo/internal/harvest"
	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run harvest, process, and combine for every configured domain",
	Long: `Pipeline runs the full corpus build: for each configured domain it
downloads new papers and chunks them, then merges every domain's chunk
files into the combined corpus file. Individual paper failures never
abort the run.`,
	RunE: runPipeline,
}

func init() {
	pipelineCmd.Flags().String("papers-dir", "papers", "base directory for papers")
	pipelineCmd.Flags().Int("max-results", defaultMaxResults, "maximum papers requested per source")
	pipelineCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	pipelineCmd.Flags().Duration("delay", defaultDelay, "delay between consecutive downloads")
	pipelineCmd.Flags().String("out", defaultCombinedOutput, "path for the combined corpus file")

	rootCmd.AddCommand(pipelineCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg := harvestConfig(cmd)
	out, _ := cmd.Flags().GetString("out")
	client := &http.Client{Timeout: cfg.Timeout}
	queries := configuredDomains()
	processCfg := types.ProcessConfig{PapersDir: cfg.PapersDir, Sources: harvestSources}

	for _, domain := range domainNames() {
		fmt.Fprintf(os.Stdout, "=== %s ===\n", domain)

		harvest.HarvestDomain(cmd.Context(), client, domain, queries[domain],
			sourcesForDomain(client, domain), cfg, os.Stdout)

		if _, err := extract.ProcessDomain(extract.PDFExtractor{}, domain, processCfg, os.Stdout); err != nil {
			return err
		}
	}

	dirs := make([]string, 0, len(queries))
	for _, domain := range domainNames() {
		dirs = append(dirs, filepath.Join(cfg.PapersDir, domain, "json"))
	}

	_, err := combine.Combine(dirs, out, os.Stdout)
	return err
}
