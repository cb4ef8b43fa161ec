// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/harvest"
	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Download papers from arXiv and ChemRxiv per configured domain",
	Long: `Harvest queries each configured domain's search terms against arXiv
(and ChemRxiv, where enabled) and downloads the resulting PDFs to
<papers-dir>/<domain>/<source>/<id>.pdf. Papers already on disk are
skipped; individual download failures are reported and skipped.`,
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().String("papers-dir", "papers", "base directory for downloads")
	harvestCmd.Flags().Int("max-results", defaultMaxResults, "maximum papers requested per source")
	harvestCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	harvestCmd.Flags().Duration("delay", defaultDelay, "delay between consecutive downloads")
	harvestCmd.Flags().String("domain", "", "harvest a single domain instead of all configured domains")

	rootCmd.AddCommand(harvestCmd)
}

func harvestConfig(cmd *cobra.Command) types.HarvestConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	delay, _ := cmd.Flags().GetDuration("delay")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	papersDir, _ := cmd.Flags().GetString("papers-dir")

	return types.HarvestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent(),
		},
		MaxResults:    maxResults,
		DownloadDelay: delay,
		PapersDir:     papersDir,
	}
}

func runHarvest(cmd *cobra.Command, args []string) error {
	only, _ := cmd.Flags().GetString("domain")
	domains, err := selectDomains(only)
	if err != nil {
		return err
	}

	cfg := harvestConfig(cmd)
	client := &http.Client{Timeout: cfg.Timeout}
	queries := configuredDomains()

	failed := 0
	for _, domain := range domains {
		fmt.Fprintf(os.Stdout, "harvesting domain: %s\n", domain)
		result := harvest.HarvestDomain(cmd.Context(), client, domain, queries[domain],
			sourcesForDomain(client, domain), cfg, os.Stdout)
		failed += result.Failed
	}

	if failed > 0 {
		return fmt.Errorf("%d download(s) failed", failed)
	}
	return nil
}
