// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-03-05
// Last Modified: 2026-03-08

package commands

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/similigh/pr-triage/internal/analyze"
	"github.com/similigh/pr-triage/internal/core/config"
	"github.com/similigh/pr-triage/internal/integrations/github"
	"github.com/similigh/pr-triage/internal/metrics"
	"github.com/similigh/pr-triage/internal/ownership"
	"github.com/similigh/pr-triage/internal/report"
	"github.com/similigh/pr-triage/internal/triage"
)

// loadConfig loads the triage configuration, resolving the 'extends'
// chain through the GitHub API when a token is available.
func loadConfig() (*config.Config, error) {
	cfgPath := config.FindConfigPath(cfgFile)
	if cfgPath == "" {
		if cfgFile != "" {
			return nil, fmt.Errorf("config file %s not found", cfgFile)
		}
		if verbose {
			fmt.Println("No configuration file found. Using defaults and flags.")
		}
		return config.Default(), nil
	}

	configToken := os.Getenv("GITHUB_TOKEN")
	fetcher := func(ref string) ([]byte, error) {
		org, repo, branch, path, err := config.ParseExtendsRef(ref)
		if err != nil {
			return nil, err
		}
		if configToken == "" {
			return nil, fmt.Errorf("GITHUB_TOKEN required to fetch remote config %s", ref)
		}
		ghClient := github.NewClient(context.Background(), configToken, org, repo)
		return ghClient.GetFileContent(context.Background(), org, repo, path, branch)
	}

	cfg, err := config.LoadWithInheritance(cfgPath, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", cfgPath, err)
	}
	if verbose {
		fmt.Printf("Loaded config from %s\n", cfgPath)
	}
	return cfg, nil
}

// snapshotPR is one PR record in an offline snapshot file: the raw PR
// plus the detail records the live mode would fetch per PR.
type snapshotPR struct {
	analyze.RawPR
	Files    []string          `json:"files,omitempty"`
	Comments []metrics.Comment `json:"comments,omitempty"`
	Reviews  []metrics.Review  `json:"reviews,omitempty"`
}

// snapshotFetcher serves per-PR details from a loaded snapshot instead of
// the API, so historical data can be re-triaged offline.
type snapshotFetcher struct {
	byNumber map[int]snapshotPR
}

func (f *snapshotFetcher) ListChangedFiles(_ context.Context, number int) ([]string, error) {
	pr, ok := f.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("PR #%d not in snapshot", number)
	}
	return pr.Files, nil
}

func (f *snapshotFetcher) ListComments(_ context.Context, number int) ([]metrics.Comment, error) {
	pr, ok := f.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("PR #%d not in snapshot", number)
	}
	return pr.Comments, nil
}

func (f *snapshotFetcher) ListReviews(_ context.Context, number int) ([]metrics.Review, error) {
	pr, ok := f.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("PR #%d not in snapshot", number)
	}
	return pr.Reviews, nil
}

// loadSnapshot reads a JSON snapshot file into raw PRs and a fetcher over
// their detail records.
func loadSnapshot(path string) ([]analyze.RawPR, analyze.Fetcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot []snapshotPR
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if len(snapshot) == 0 {
		return nil, nil, fmt.Errorf("no pull requests found in %s", path)
	}

	prs := make([]analyze.RawPR, 0, len(snapshot))
	byNumber := make(map[int]snapshotPR, len(snapshot))
	for i, pr := range snapshot {
		if pr.Number == 0 {
			return nil, nil, fmt.Errorf("snapshot entry at index %d missing number", i)
		}
		prs = append(prs, pr.RawPR)
		byNumber[pr.Number] = pr
	}
	return prs, &snapshotFetcher{byNumber: byNumber}, nil
}

// buildAnalyzer assembles the analyzer for one run: ownership index,
// triage policy, thresholds and member set from config, plus the fetcher
// for the selected mode.
func buildAnalyzer(cfg *config.Config, fetcher analyze.Fetcher, codeowners []byte, members []string) *analyze.Analyzer {
	index := ownership.Load(string(codeowners), cfg.TeamPrefix)
	if verbose {
		fmt.Printf("Compiled %d ownership rules\n", index.Len())
	}

	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}

	scope := metrics.ScopeAll
	if cfg.Staleness.ActivityScope == string(metrics.ScopeExcludeAuthor) {
		scope = metrics.ScopeExcludeAuthor
	}

	return &analyze.Analyzer{
		Fetcher: fetcher,
		Index:   index,
		Policy: triage.Policy{
			PriorityLabels: cfg.PriorityLabels,
			FastTrack:      cfg.FastTrack,
		},
		Thresholds: triage.Thresholds{
			Stale:            cfg.Staleness.StaleDays,
			DraftAge:         cfg.Staleness.DraftAgeDays,
			ChangesRequested: cfg.Staleness.ChangesRequestedDays,
			Approved:         cfg.Staleness.ApprovedDays,
		},
		Metrics: metrics.Options{Scope: scope},
		Members: memberSet,
		Workers: cfg.Workers,
	}
}

// outputReport writes the report in the requested format to the given
// file, or stdout when the path is empty.
func outputReport(rep *report.Report, format, outFile string) error {
	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	case "csv":
		if err := writeCSV(w, rep); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	case "text":
		writeText(w, rep)
	default:
		return fmt.Errorf("unknown format: %s (expected json, csv or text)", format)
	}
	return nil
}

// writeCSV emits one row per PR with its bucket and metrics.
func writeCSV(w io.Writer, rep *report.Report) error {
	cw := csv.NewWriter(w)
	header := []string{"bucket", "number", "title", "author", "age", "staleness", "approved", "changes_requested", "teams", "degraded", "url"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, section := range rep.Sections {
		for _, pr := range section.PRs {
			row := []string{
				section.Bucket.Name,
				strconv.Itoa(pr.Number),
				pr.Title,
				pr.Author,
				strconv.Itoa(pr.Metrics.Age),
				strconv.Itoa(pr.Metrics.Staleness),
				strconv.FormatBool(pr.Metrics.IsApproved),
				strconv.FormatBool(pr.Metrics.HasChangesRequested),
				strings.Join(pr.OwningTeams, " "),
				strconv.FormatBool(pr.Degraded),
				pr.URL,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// writeText emits a human-readable section listing.
func writeText(w io.Writer, rep *report.Report) {
	fmt.Fprintf(w, "%s/%s: %d open PRs (run %s)\n", rep.Org, rep.Repo, rep.Total, rep.RunID)
	if rep.Degraded > 0 {
		fmt.Fprintf(w, "%d PRs had incomplete data and show zero metrics\n", rep.Degraded)
	}
	for _, section := range rep.Sections {
		fmt.Fprintf(w, "\n%s (%d)\n", section.Bucket.Label, len(section.PRs))
		for _, pr := range section.PRs {
			fmt.Fprintf(w, "  #%d %s by @%s, %dd old, %dd stale", pr.Number, pr.Title, pr.Author, pr.Metrics.Age, pr.Metrics.Staleness)
			if len(pr.OwningTeams) > 0 {
				fmt.Fprintf(w, " [%s]", strings.Join(pr.OwningTeams, ", "))
			}
			fmt.Fprintln(w)
		}
	}
}
