// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-03
// Last Modified: 2026-03-08

package triage

import (
	"strings"

	"github.com/similigh/pr-triage/internal/metrics"
)

// Input is everything the classifier looks at for one PR. It is plain
// data: ownership resolution and metric computation happen upstream.
type Input struct {
	Draft       bool
	Labels      []string
	IsCommunity bool
	Metrics     metrics.Metrics
	OwningTeams []string
}

// Policy configures the primary classification chain.
type Policy struct {
	// PriorityLabels routes any PR carrying one of these labels to the
	// high-priority bucket. Matching is case-insensitive.
	PriorityLabels []string

	// FastTrack maps team name to bucket label for teams whose sole
	// ownership of a PR routes it to a dedicated review bucket.
	FastTrack map[string]string
}

// Classify assigns exactly one bucket to a PR. The predicates form an
// ordered chain and the first match wins; the order encodes priority and
// must not be reshuffled.
func Classify(in Input, p Policy) Bucket {
	if in.IsCommunity {
		return BucketCommunity
	}

	if hasAnyLabel(in.Labels, p.PriorityLabels) {
		return BucketHighPriority
	}

	if len(in.OwningTeams) == 1 {
		team := in.OwningTeams[0]
		if label, ok := p.FastTrack[team]; ok {
			return FastTrackBucket(team, label)
		}
	}

	if in.Metrics.HasChangesRequested {
		return BucketChangesRequested
	}

	if in.Metrics.IsApproved {
		return BucketApproved
	}

	return BucketNeedsReview
}

// Thresholds configures the attention classification, in business days.
type Thresholds struct {
	Stale            int // staleness floor for general attention
	DraftAge         int // minimum age before a draft counts as stuck
	ChangesRequested int // staleness floor for unanswered change requests
	Approved         int // staleness floor for unmerged approvals
}

// DefaultThresholds returns the standard attention thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Stale: 7, DraftAge: 7, ChangesRequested: 3, Approved: 2}
}

// ClassifyAttention is the orthogonal stale/draft-focused classification.
// It is independent of Classify: a PR can sit in any primary bucket and
// still need attention. Returns false when the PR needs none.
//
// Like the primary chain, evaluation is first-match-wins in a fixed order.
func ClassifyAttention(in Input, t Thresholds) (Bucket, bool) {
	switch {
	case in.Draft && in.Metrics.Age >= t.DraftAge && in.Metrics.Staleness >= t.Stale:
		return AttentionDraftStuck, true
	case in.Metrics.HasChangesRequested && in.Metrics.Staleness >= t.ChangesRequested:
		return AttentionChangesRequested, true
	case in.Metrics.IsApproved && in.Metrics.Staleness >= t.Approved:
		return AttentionApproved, true
	case !in.Draft && in.Metrics.Staleness >= t.Stale:
		return AttentionGeneral, true
	}
	return Bucket{}, false
}

// hasAnyLabel reports whether any of the wanted labels is present
// (case-insensitive), mirroring how GitHub treats label names.
func hasAnyLabel(labels, wanted []string) bool {
	if len(wanted) == 0 {
		return false
	}
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[strings.ToLower(l)] = true
	}
	for _, w := range wanted {
		if set[strings.ToLower(w)] {
			return true
		}
	}
	return false
}
