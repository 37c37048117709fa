// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-03
// Last Modified: 2026-03-08

// Package triage assigns each pull request to exactly one triage bucket.
package triage

// Bucket identifies one triage bucket. Buckets are mutually exclusive and
// totally ordered by Priority (lower sorts first) for report grouping.
// Classification returns the variant; how its Label is rendered belongs to
// the presentation layer.
type Bucket struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Priority int    `json:"priority"`
}

// Fixed buckets of the primary triage chain.
var (
	BucketCommunity = Bucket{Name: "community", Label: "Community contributions", Priority: 10}

	BucketHighPriority = Bucket{Name: "high-priority", Label: "High priority", Priority: 20}

	BucketChangesRequested = Bucket{Name: "changes-requested", Label: "Changes requested", Priority: 40}

	BucketApproved = Bucket{Name: "approved", Label: "Approved, awaiting merge", Priority: 50}

	BucketNeedsReview = Bucket{Name: "needs-review", Label: "Needs review", Priority: 60}
)

// fastTrackPriority slots fast-track buckets between high-priority and
// changes-requested.
const fastTrackPriority = 30

// FastTrackBucket builds the dedicated review bucket for a single-owner
// fast-track team. The label falls back to "<team> review" when the
// configuration does not provide one.
func FastTrackBucket(team, label string) Bucket {
	if label == "" {
		label = team + " review"
	}
	return Bucket{Name: team + "-review", Label: label, Priority: fastTrackPriority}
}

// Attention buckets for the stale/draft-focused reporting variants.
var (
	AttentionDraftStuck = Bucket{Name: "draft-stuck", Label: "Drafts stuck in progress", Priority: 10}

	AttentionChangesRequested = Bucket{Name: "changes-requested-no-followup", Label: "Changes requested without follow-up", Priority: 20}

	AttentionApproved = Bucket{Name: "approved-awaiting-merge", Label: "Approved but not merged", Priority: 30}

	AttentionGeneral = Bucket{Name: "general-attention", Label: "Stalled, needs attention", Priority: 40}
)
