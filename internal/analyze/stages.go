// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-04
// Last Modified: 2026-03-08

// Package analyze runs pull requests through the staged triage pipeline:
// RawPR -> PRWithFiles -> PRWithMetrics -> ClassifiedPR. Each stage is a
// total function over the previous stage's record, so a PR never carries
// half-attached fields between stages.
package analyze

import (
	"time"

	"github.com/similigh/pr-triage/internal/metrics"
	"github.com/similigh/pr-triage/internal/triage"
)

// RawPR is a pull request as fetched, before any enrichment.
type RawPR struct {
	Number         int       `json:"number"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	CreatedAt      time.Time `json:"created_at"`
	Draft          bool      `json:"draft"`
	Labels         []string  `json:"labels,omitempty"`
	Assignees      []string  `json:"assignees,omitempty"`
	RequestedTeams []string  `json:"requested_teams,omitempty"`
	URL            string    `json:"url,omitempty"`
}

// PRWithFiles is a RawPR plus its changed files and resolved owners.
type PRWithFiles struct {
	RawPR
	Files       []string `json:"files,omitempty"`
	OwningTeams []string `json:"owning_teams,omitempty"`
}

// PRWithMetrics adds computed metrics. Degraded marks a PR whose comments
// or reviews could not be fetched; its metrics are the zero substitute.
type PRWithMetrics struct {
	PRWithFiles
	Metrics  metrics.Metrics `json:"metrics"`
	Degraded bool            `json:"degraded,omitempty"`
}

// ClassifiedPR is the final stage: the primary triage bucket plus the
// orthogonal attention classification (NeedsAttention false means the
// Attention bucket is meaningless).
type ClassifiedPR struct {
	PRWithMetrics
	IsCommunity    bool          `json:"is_community"`
	Bucket         triage.Bucket `json:"bucket"`
	Attention      triage.Bucket `json:"attention,omitempty"`
	NeedsAttention bool          `json:"needs_attention"`
}
