// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-05
// Last Modified: 2026-03-08

// Package report groups classified PRs into bucket-ordered sections for
// the output layer. It carries labels and priorities; how sections are
// rendered is the caller's concern.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/similigh/pr-triage/internal/analyze"
	"github.com/similigh/pr-triage/internal/triage"
)

// Section is one bucket and the PRs that fell into it, oldest first.
type Section struct {
	Bucket triage.Bucket          `json:"bucket"`
	PRs    []analyze.ClassifiedPR `json:"prs"`
}

// Report is one complete triage run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Org         string    `json:"org"`
	Repo        string    `json:"repo"`
	Total       int       `json:"total"`
	Degraded    int       `json:"degraded"`
	Sections    []Section `json:"sections"`
}

// New groups classified PRs by primary bucket into a Report. Sections are
// ordered by bucket priority, PRs within a section oldest first with the
// PR number as tie-break, so the same input always produces the same
// report layout.
func New(org, repo string, prs []analyze.ClassifiedPR, now time.Time) *Report {
	return build(org, repo, prs, now, func(pr analyze.ClassifiedPR) (triage.Bucket, bool) {
		return pr.Bucket, true
	})
}

// NewAttention groups only the PRs needing attention, by attention bucket.
func NewAttention(org, repo string, prs []analyze.ClassifiedPR, now time.Time) *Report {
	return build(org, repo, prs, now, func(pr analyze.ClassifiedPR) (triage.Bucket, bool) {
		return pr.Attention, pr.NeedsAttention
	})
}

func build(org, repo string, prs []analyze.ClassifiedPR, now time.Time, bucketOf func(analyze.ClassifiedPR) (triage.Bucket, bool)) *Report {
	r := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: now,
		Org:         org,
		Repo:        repo,
	}

	byBucket := make(map[triage.Bucket][]analyze.ClassifiedPR)
	for _, pr := range prs {
		bucket, ok := bucketOf(pr)
		if !ok {
			continue
		}
		byBucket[bucket] = append(byBucket[bucket], pr)
		r.Total++
		if pr.Degraded {
			r.Degraded++
		}
	}

	for bucket, group := range byBucket {
		analyze.SortByAge(group)
		r.Sections = append(r.Sections, Section{Bucket: bucket, PRs: group})
	}
	sort.Slice(r.Sections, func(i, j int) bool {
		a, b := r.Sections[i].Bucket, r.Sections[j].Bucket
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Name < b.Name
	})

	return r
}

// Counts returns the per-bucket PR counts keyed by bucket name.
func (r *Report) Counts() map[string]int {
	counts := make(map[string]int, len(r.Sections))
	for _, s := range r.Sections {
		counts[s.Bucket.Name] = len(s.PRs)
	}
	return counts
}
