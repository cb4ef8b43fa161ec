// Copyright DarkStarStrix, 2026. All rights reserved.

// Package main is the entry point for the llm-research-repo CLI.
// The pipeline stages are subcommands: harvest downloads papers, process
// extracts and chunks them, combine merges the chunk files into one corpus,
// and index/query/stats serve the corpus search index.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the llm-research-repo CLI.
var rootCmd = &cobra.Command{
	Use:   "llm-research-repo",
	Short: "Build an LM training corpus from scientific preprints",
	Long: `llm-research-repo harvests papers from public preprint repositories
(arXiv, ChemRxiv), extracts their text, segments it into labeled chunks,
and aggregates everything into a single corpus file.

Each pipeline stage is a subcommand: harvest, process, combine, index,
query, and stats. The pipeline subcommand runs the full sequence for
every configured domain.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./llm-research-repo.yaml or ~/.config/llm-research-repo/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("llm-research-repo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "llm-research-repo"))
		}
	}

	viper.SetEnvPrefix("LLM_RESEARCH_REPO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
