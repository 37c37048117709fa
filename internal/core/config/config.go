// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-08

// Package config handles loading and merging triage configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	// Extends allows inheriting from a remote config (e.g., "org/repo@branch").
	Extends string `yaml:"extends,omitempty"`

	// Org and Repo identify the repository to report on.
	Org  string `yaml:"org"`
	Repo string `yaml:"repo"`

	// CodeownersPath is the repository path of the ownership rule file.
	CodeownersPath string `yaml:"codeowners_path,omitempty"`

	// TeamPrefix is the owner-token prefix that marks a team reference
	// (e.g. "@similigh/"). Owners without it are ignored.
	TeamPrefix string `yaml:"team_prefix,omitempty"`

	// PriorityLabels routes labeled PRs to the high-priority bucket.
	PriorityLabels []string `yaml:"priority_labels,omitempty"`

	// FastTrack maps single-owner fast-track team names to the display
	// label of their dedicated review bucket.
	FastTrack map[string]string `yaml:"fast_track,omitempty"`

	// Members lists logins counted as team members; authors outside the
	// list are community contributors. When empty and FetchMembers is
	// true, membership is fetched from the GitHub org.
	Members      []string `yaml:"members,omitempty"`
	FetchMembers bool     `yaml:"fetch_members,omitempty"`

	// Staleness contains the attention thresholds and activity scope.
	Staleness StalenessConfig `yaml:"staleness"`

	// Workers bounds the concurrent per-PR fetch fan-out.
	Workers int `yaml:"workers,omitempty"`
}

// StalenessConfig holds staleness policy settings. Thresholds are in
// business days.
type StalenessConfig struct {
	// ActivityScope is "all" or "exclude_author".
	ActivityScope string `yaml:"activity_scope,omitempty"`

	StaleDays            int `yaml:"stale_days,omitempty"`
	DraftAgeDays         int `yaml:"draft_age_days,omitempty"`
	ChangesRequestedDays int `yaml:"changes_requested_days,omitempty"`
	ApprovedDays         int `yaml:"approved_days,omitempty"`
}

// Default returns a config with only the defaults applied, for runs
// without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a config file from the given path and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadWithInheritance loads a config and resolves the 'extends' chain.
// The fetcher function is used to retrieve remote configs, so org-wide
// triage policy can live in one shared repository.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if cfg.Extends == "" {
		return cfg, nil
	}

	// Fetch and parse the parent config
	parentData, err := fetcher(cfg.Extends)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent config '%s': %w", cfg.Extends, err)
	}

	expanded := os.ExpandEnv(string(parentData))
	var parentCfg Config
	if err := yaml.Unmarshal([]byte(expanded), &parentCfg); err != nil {
		return nil, fmt.Errorf("failed to parse parent config: %w", err)
	}

	// Merge: child overrides parent
	merged := mergeConfigs(&parentCfg, cfg)
	merged.applyDefaults()

	return merged, nil
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	// Search in common locations
	candidates := []string{
		".github/triage.yaml",
		".github/triage.yml",
		".triage.yaml",
		".triage.yml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.CodeownersPath == "" {
		c.CodeownersPath = ".github/CODEOWNERS"
	}
	if c.TeamPrefix == "" && c.Org != "" {
		c.TeamPrefix = "@" + c.Org + "/"
	}
	if c.Staleness.ActivityScope == "" {
		c.Staleness.ActivityScope = "all"
	}
	if c.Staleness.StaleDays == 0 {
		c.Staleness.StaleDays = 7
	}
	if c.Staleness.DraftAgeDays == 0 {
		c.Staleness.DraftAgeDays = 7
	}
	if c.Staleness.ChangesRequestedDays == 0 {
		c.Staleness.ChangesRequestedDays = 3
	}
	if c.Staleness.ApprovedDays == 0 {
		c.Staleness.ApprovedDays = 2
	}
	if c.Workers == 0 {
		c.Workers = 15
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent

	if child.Org != "" {
		result.Org = child.Org
	}
	if child.Repo != "" {
		result.Repo = child.Repo
	}
	if child.CodeownersPath != "" {
		result.CodeownersPath = child.CodeownersPath
	}
	if child.TeamPrefix != "" {
		result.TeamPrefix = child.TeamPrefix
	}
	if len(child.PriorityLabels) > 0 {
		result.PriorityLabels = child.PriorityLabels
	}
	if len(child.FastTrack) > 0 {
		result.FastTrack = child.FastTrack
	}
	if len(child.Members) > 0 {
		result.Members = child.Members
	}
	// FetchMembers: always take the child value so it can override parent true -> false and vice versa
	result.FetchMembers = child.FetchMembers

	if child.Staleness.ActivityScope != "" {
		result.Staleness.ActivityScope = child.Staleness.ActivityScope
	}
	if child.Staleness.StaleDays != 0 {
		result.Staleness.StaleDays = child.Staleness.StaleDays
	}
	if child.Staleness.DraftAgeDays != 0 {
		result.Staleness.DraftAgeDays = child.Staleness.DraftAgeDays
	}
	if child.Staleness.ChangesRequestedDays != 0 {
		result.Staleness.ChangesRequestedDays = child.Staleness.ChangesRequestedDays
	}
	if child.Staleness.ApprovedDays != 0 {
		result.Staleness.ApprovedDays = child.Staleness.ApprovedDays
	}
	if child.Workers != 0 {
		result.Workers = child.Workers
	}

	return &result
}

// ParseExtendsRef parses "org/repo@branch" into components.
func ParseExtendsRef(ref string) (org, repo, branch, path string, err error) {
	// Format: org/repo@branch or org/repo@branch:path
	parts := strings.SplitN(ref, "@", 2)
	if len(parts) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo@branch)", ref)
	}

	orgRepo := strings.SplitN(parts[0], "/", 2)
	if len(orgRepo) != 2 {
		return "", "", "", "", fmt.Errorf("invalid extends reference: %s (expected org/repo)", ref)
	}

	org = orgRepo[0]
	repo = orgRepo[1]

	// Check for path
	branchPath := strings.SplitN(parts[1], ":", 2)
	branch = branchPath[0]
	if len(branchPath) == 2 {
		path = branchPath[1]
	} else {
		path = ".github/triage.yaml" // default path
	}

	return org, repo, branch, path, nil
}
