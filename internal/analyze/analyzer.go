// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-04
// Last Modified: 2026-03-08

package analyze

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/similigh/pr-triage/internal/metrics"
	"github.com/similigh/pr-triage/internal/ownership"
	"github.com/similigh/pr-triage/internal/triage"
)

// defaultWorkers bounds the per-PR fetch fan-out to stay inside upstream
// rate limits.
const defaultWorkers = 15

// Fetcher supplies per-PR detail records. Implemented by the GitHub
// integration; tests provide fakes.
type Fetcher interface {
	ListChangedFiles(ctx context.Context, number int) ([]string, error)
	ListComments(ctx context.Context, number int) ([]metrics.Comment, error)
	ListReviews(ctx context.Context, number int) ([]metrics.Review, error)
}

// Analyzer wires the ownership index, metric options and triage policy
// into one pipeline run. It holds no mutable state, so concurrent Run
// calls need no coordination.
type Analyzer struct {
	Fetcher    Fetcher
	Index      *ownership.Index
	Policy     triage.Policy
	Thresholds triage.Thresholds
	Metrics    metrics.Options

	// Members are logins counted as team members; any other author is a
	// community contributor. Empty means community detection is off.
	Members map[string]bool

	// Now is injectable for deterministic tests. Defaults to time.Now.
	Now func() time.Time

	// Workers bounds the fetch fan-out. Defaults to defaultWorkers.
	Workers int
}

type job struct {
	index int
	pr    RawPR
}

// Run analyzes all PRs and returns them classified, in input order.
//
// Per-PR fetch failures never abort the batch: the failing PR keeps zero
// metrics and a Degraded flag, siblings proceed, and the whole set is
// returned (all-settled, not fail-fast).
func (a *Analyzer) Run(ctx context.Context, prs []RawPR) []ClassifiedPR {
	workers := a.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(prs) && len(prs) > 0 {
		workers = len(prs)
	}

	jobs := make(chan job, workers)
	out := make([]ClassifiedPR, len(prs))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				out[j.index] = a.analyzePR(ctx, j.pr)
			}
		}()
	}

	for i, pr := range prs {
		jobs <- job{index: i, pr: pr}
	}
	close(jobs)
	wg.Wait()

	return out
}

// analyzePR takes one PR through every stage.
func (a *Analyzer) analyzePR(ctx context.Context, pr RawPR) ClassifiedPR {
	withFiles := a.resolveOwnership(ctx, pr)
	withMetrics := a.computeMetrics(ctx, withFiles)
	return a.classify(withMetrics)
}

// resolveOwnership attaches changed files and their owning teams. A file
// listing failure degrades to an empty set; ownership resolution itself
// never fails.
func (a *Analyzer) resolveOwnership(ctx context.Context, pr RawPR) PRWithFiles {
	files, err := a.Fetcher.ListChangedFiles(ctx, pr.Number)
	if err != nil {
		log.Printf("[analyze] Warning: files for PR #%d unavailable: %v", pr.Number, err)
		return PRWithFiles{RawPR: pr}
	}
	return PRWithFiles{RawPR: pr, Files: files, OwningTeams: a.Index.Resolve(files)}
}

// computeMetrics attaches age/staleness/review state. A comment or review
// fetch failure yields the zero metrics substitute with Degraded set, per
// the partial-data policy.
func (a *Analyzer) computeMetrics(ctx context.Context, pr PRWithFiles) PRWithMetrics {
	comments, err := a.Fetcher.ListComments(ctx, pr.Number)
	if err != nil {
		log.Printf("[analyze] Warning: comments for PR #%d unavailable: %v", pr.Number, err)
		return PRWithMetrics{PRWithFiles: pr, Metrics: metrics.Zero(), Degraded: true}
	}

	reviews, err := a.Fetcher.ListReviews(ctx, pr.Number)
	if err != nil {
		log.Printf("[analyze] Warning: reviews for PR #%d unavailable: %v", pr.Number, err)
		return PRWithMetrics{PRWithFiles: pr, Metrics: metrics.Zero(), Degraded: true}
	}

	m := metrics.Compute(pr.Author, pr.CreatedAt, comments, reviews, a.now(), a.Metrics)
	return PRWithMetrics{PRWithFiles: pr, Metrics: m}
}

// classify is the final, pure stage.
func (a *Analyzer) classify(pr PRWithMetrics) ClassifiedPR {
	in := triage.Input{
		Draft:       pr.Draft,
		Labels:      pr.Labels,
		IsCommunity: len(a.Members) > 0 && !a.Members[pr.Author],
		Metrics:     pr.Metrics,
		OwningTeams: pr.OwningTeams,
	}

	bucket := triage.Classify(in, a.Policy)
	attention, needs := triage.ClassifyAttention(in, a.Thresholds)

	return ClassifiedPR{
		PRWithMetrics:  pr,
		IsCommunity:    in.IsCommunity,
		Bucket:         bucket,
		Attention:      attention,
		NeedsAttention: needs,
	}
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// SortByAge orders PRs oldest first, breaking ties by number so output is
// stable across runs.
func SortByAge(prs []ClassifiedPR) {
	sort.SliceStable(prs, func(i, j int) bool {
		if prs[i].Metrics.Age != prs[j].Metrics.Age {
			return prs[i].Metrics.Age > prs[j].Metrics.Age
		}
		return prs[i].Number < prs[j].Number
	})
}
