// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-03-05
// Last Modified: 2026-03-08

package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/similigh/pr-triage/internal/analyze"
	"github.com/similigh/pr-triage/internal/core/config"
	"github.com/similigh/pr-triage/internal/integrations/github"
	"github.com/similigh/pr-triage/internal/report"
)

var (
	reportOrg            string
	reportRepo           string
	reportFile           string
	reportCodeownersFile string
	reportFormat         string
	reportOutFile        string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the full triage report for open pull requests",
	Long: `Generate the full triage report: every open PR is resolved against
the CODEOWNERS rules, its age and staleness are computed in business days,
and it is placed into exactly one triage bucket.

PRs are fetched live from GitHub, or from a JSON snapshot file for offline
runs on historical data (no API access, no token needed).`,
	Run: func(cmd *cobra.Command, args []string) {
		runReport(false)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportOrg, "org", "", "Organization name (overrides config)")
	reportCmd.Flags().StringVar(&reportRepo, "repo", "", "Repository name (overrides config)")
	reportCmd.Flags().StringVar(&reportFile, "file", "", "Path to JSON snapshot of PRs (offline mode)")
	reportCmd.Flags().StringVar(&reportCodeownersFile, "codeowners-file", "", "Path to a local CODEOWNERS file (offline mode)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "Output format: json, csv or text")
	reportCmd.Flags().StringVar(&reportOutFile, "out-file", "", "Output file path (stdout if not specified)")
}

// runReport drives one analysis run. attention selects the stale-focused
// grouping instead of the primary buckets.
func runReport(attention bool) {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if reportOrg != "" {
		cfg.Org = reportOrg
	}
	if reportRepo != "" {
		cfg.Repo = reportRepo
	}
	if cfg.TeamPrefix == "" && cfg.Org != "" {
		cfg.TeamPrefix = "@" + cfg.Org + "/"
	}

	prs, fetcher, codeowners, members, err := gatherInputs(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("Analyzing %d open PRs with %d workers...\n", len(prs), cfg.Workers)
	}

	analyzer := buildAnalyzer(cfg, fetcher, codeowners, members)
	classified := analyzer.Run(ctx, prs)

	var rep *report.Report
	if attention {
		rep = report.NewAttention(cfg.Org, cfg.Repo, classified, time.Now())
	} else {
		rep = report.New(cfg.Org, cfg.Repo, classified, time.Now())
	}

	if err := outputReport(rep, reportFormat, reportOutFile); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

// gatherInputs collects the raw PRs, the per-PR fetcher, the ownership
// rule text and the member list for either live or snapshot mode.
//
// Failures here are wholesale (auth, rule file, PR listing) and abort the
// run; per-PR failures later degrade individual PRs only.
func gatherInputs(ctx context.Context, cfg *config.Config) ([]analyze.RawPR, analyze.Fetcher, []byte, []string, error) {
	if reportFile != "" {
		prs, fetcher, err := loadSnapshot(reportFile)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		var codeowners []byte
		if reportCodeownersFile != "" {
			codeowners, err = os.ReadFile(reportCodeownersFile)
			if err != nil {
				return nil, nil, nil, nil, fmt.Errorf("failed to read codeowners file: %w", err)
			}
		}
		return prs, fetcher, codeowners, cfg.Members, nil
	}

	if cfg.Org == "" || cfg.Repo == "" {
		return nil, nil, nil, nil, fmt.Errorf("org and repo are required (config or --org/--repo)")
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		fmt.Println("ℹ No GITHUB_TOKEN found, using unauthenticated client")
	}
	client := github.NewClient(ctx, token, cfg.Org, cfg.Repo)

	codeowners, err := client.GetCodeowners(ctx, cfg.CodeownersPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to fetch ownership rules: %w", err)
	}

	prs, err := client.ListOpenPullRequests(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	members := cfg.Members
	if len(members) == 0 && cfg.FetchMembers {
		members, err = client.ListOrgMembers(ctx)
		if err != nil {
			// Community detection degrades to off rather than failing the run.
			fmt.Printf("Warning: could not list org members: %v\n", err)
			members = nil
		}
	}

	return prs, client, codeowners, members, nil
}
