// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-08

package metrics

import "time"

// ReviewState represents the state of a submitted review.
type ReviewState string

// ReviewState values, matching the GitHub API spelling.
const (
	ReviewStatePending          ReviewState = "PENDING"
	ReviewStateApproved         ReviewState = "APPROVED"
	ReviewStateChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewStateCommented        ReviewState = "COMMENTED"
)

// Comment is one PR conversation comment.
type Comment struct {
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is one submitted PR review.
type Review struct {
	Author      string      `json:"author"`
	State       ReviewState `json:"state"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// Metrics summarizes one PR's age, staleness and review state. It is
// recomputed every run and never persisted.
type Metrics struct {
	Age                 int  `json:"age"`
	Staleness           int  `json:"staleness"`
	IsApproved          bool `json:"is_approved"`
	HasChangesRequested bool `json:"has_changes_requested"`
}

// Zero is the degraded-PR substitute used when comments or reviews could
// not be fetched. The PR stays in the report with zeroed metrics instead
// of dropping out of the batch.
func Zero() Metrics {
	return Metrics{}
}

// ActivityScope selects whose comments and reviews count toward staleness.
type ActivityScope string

const (
	// ScopeAll counts activity from everyone, including the PR author.
	ScopeAll ActivityScope = "all"
	// ScopeExcludeAuthor ignores the PR author's own comments and
	// reviews; only other participants reset staleness.
	ScopeExcludeAuthor ActivityScope = "exclude_author"
)

// Options configures metric computation.
type Options struct {
	Scope ActivityScope
}

// Compute derives Metrics for one PR from its creation time and its
// comment and review records, relative to now.
//
// Only the most recent review per author counts toward approval state: a
// later COMMENTED review from the same reviewer invalidates their earlier
// APPROVED, while another reviewer's APPROVED still stands. IsApproved and
// HasChangesRequested may both be true when different reviewers' latest
// reviews disagree.
func Compute(author string, createdAt time.Time, comments []Comment, reviews []Review, now time.Time, opts Options) Metrics {
	m := Metrics{Age: BusinessDaysBetween(createdAt, now)}

	latest := make(map[string]Review, len(reviews))
	for _, r := range reviews {
		if prev, ok := latest[r.Author]; !ok || r.SubmittedAt.After(prev.SubmittedAt) {
			latest[r.Author] = r
		}
	}
	for _, r := range latest {
		switch r.State {
		case ReviewStateApproved:
			m.IsApproved = true
		case ReviewStateChangesRequested:
			m.HasChangesRequested = true
		}
	}

	excludeAuthor := opts.Scope == ScopeExcludeAuthor

	// Creation always counts as activity, so a silent PR has
	// staleness == age.
	lastActivity := createdAt
	for _, c := range comments {
		if excludeAuthor && c.Author == author {
			continue
		}
		if c.CreatedAt.After(lastActivity) {
			lastActivity = c.CreatedAt
		}
	}
	for _, r := range reviews {
		if excludeAuthor && r.Author == author {
			continue
		}
		if r.SubmittedAt.After(lastActivity) {
			lastActivity = r.SubmittedAt
		}
	}

	m.Staleness = BusinessDaysBetween(lastActivity, now)
	return m
}
