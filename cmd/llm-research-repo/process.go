// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/extract"
	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Extract and chunk downloaded PDFs into per-document JSON files",
	Long: `Process reads every PDF under <papers-dir>/<domain>/<source>/, extracts
its full text, segments it into labeled chunks, and writes one JSON array
per document to <papers-dir>/<domain>/json/. Corrupt or unreadable
documents are reported and skipped.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().String("papers-dir", "papers", "base directory for papers")
	processCmd.Flags().String("domain", "", "process a single domain instead of all configured domains")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	only, _ := cmd.Flags().GetString("domain")
	domains, err := selectDomains(only)
	if err != nil {
		return err
	}

	papersDir, _ := cmd.Flags().GetString("papers-dir")
	cfg := types.ProcessConfig{PapersDir: papersDir, Sources: harvestSources}

	failed := 0
	for _, domain := range domains {
		fmt.Fprintf(os.Stdout, "processing domain: %s\n", domain)
		result, err := extract.ProcessDomain(extract.PDFExtractor{}, domain, cfg, os.Stdout)
		if err != nil {
			return err
		}
		failed += result.Failed
	}

	if failed > 0 {
		return fmt.Errorf("%d document(s) failed processing", failed)
	}
	return nil
}
