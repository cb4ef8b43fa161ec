// Copyright DarkStarStrix, 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/spf13/viper"

	"github.com/DarkStarStrix/LLM-Research-Repo/internal/harvest"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultDelay      = 1 * time.Second
	defaultMaxResults = 50
	defaultUserAgent  = "llm-research-repo/0.1"

	defaultCombinedOutput = "papers/combined_scientific_papers.json"
	defaultIndexDir       = "papers/index"
)

// defaultDomains maps each built-in domain label to its search query.
// A domains: map in the config file replaces the whole set.
var defaultDomains = map[string]string{
	"Materials Science": "materials science",
	"Physics":           "quantum physics",
	"Computer Science":  "machine learning",
}

// defaultChemrxivDomains lists the domains that also pull from ChemRxiv.
var defaultChemrxivDomains = []string{"Materials Science"}

// harvestSources lists the per-domain source subdirectories every stage
// knows about.
var harvestSources = []string{"arxiv", "chemrxiv"}

// configuredDomains returns the domain -> search query map from the config
// file, falling back to the built-in set.
func configuredDomains() map[string]string {
	if m := viper.GetStringMapString("domains"); len(m) > 0 {
		return m
	}
	return defaultDomains
}

// domainNames returns the configured domain labels in a stable order.
func domainNames() []string {
	domains := configuredDomains()
	names := make([]string, 0, len(domains))
	for name := range domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// selectDomains narrows the configured domains to the --domain flag value
// when one is given.
func selectDomains(only string) ([]string, error) {
	if only == "" {
		return domainNames(), nil
	}
	if _, ok := configuredDomains()[only]; !ok {
		return nil, fmt.Errorf("unknown domain %q (configured: %v)", only, domainNames())
	}
	return []string{only}, nil
}

// chemrxivEnabled reports whether a domain also harvests from ChemRxiv.
func chemrxivEnabled(domain string) bool {
	enabled := viper.GetStringSlice("chemrxiv_domains")
	if len(enabled) == 0 {
		enabled = defaultChemrxivDomains
	}
	for _, d := range enabled {
		if d == domain {
			return true
		}
	}
	return false
}

// sourcesForDomain builds the harvest sources for a domain: arXiv always,
// ChemRxiv only where enabled.
func sourcesForDomain(client *http.Client, domain string) []harvest.Source {
	sources := []harvest.Source{&harvest.ArxivSource{Client: client}}
	if chemrxivEnabled(domain) {
		sources = append(sources, &harvest.ChemrxivSource{Client: client})
	}
	return sources
}

// userAgent returns the crawler User-Agent, extended with the contact
// email from .secrets/ when one is configured.
func userAgent() string {
	if email, ok := loadedSecrets["contact-email"]; ok {
		return fmt.Sprintf("%s (%s)", defaultUserAgent, email)
	}
	return defaultUserAgent
}
