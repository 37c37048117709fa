// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-02
// Last Modified: 2026-03-08

package metrics

import (
	"testing"
	"time"
)

// 2026-03-09 is a Monday.
var now = time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

func TestCompute_SilentPR(t *testing.T) {
	created := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC) // previous Monday

	m := Compute("alice", created, nil, nil, now, Options{})

	if m.Age != 6 {
		t.Errorf("Expected age 6, got %d", m.Age)
	}
	if m.Staleness != m.Age {
		t.Errorf("Expected staleness == age for a silent PR, got %d vs %d", m.Staleness, m.Age)
	}
	if m.IsApproved || m.HasChangesRequested {
		t.Errorf("Expected no review state, got approved=%v changesRequested=%v", m.IsApproved, m.HasChangesRequested)
	}
}

func TestCompute_CreatedNow(t *testing.T) {
	m := Compute("alice", now, nil, nil, now, Options{})

	// Inclusive day counting: the creation day itself counts as 1.
	if m.Age != 1 || m.Staleness != 1 {
		t.Errorf("Expected age == staleness == 1, got age=%d staleness=%d", m.Age, m.Staleness)
	}
}

func TestCompute_LatestReviewPerAuthorWins(t *testing.T) {
	created := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	reviews := []Review{
		{Author: "bob", State: ReviewStateApproved, SubmittedAt: created.Add(2 * time.Hour)},
		{Author: "bob", State: ReviewStateChangesRequested, SubmittedAt: created.Add(4 * time.Hour)},
	}

	m := Compute("alice", created, nil, reviews, now, Options{})

	if m.IsApproved {
		t.Error("Expected bob's later CHANGES_REQUESTED to invalidate his earlier APPROVED")
	}
	if !m.HasChangesRequested {
		t.Error("Expected hasChangesRequested to be true")
	}
}

func TestCompute_ConflictingReviewersBothCount(t *testing.T) {
	created := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	reviews := []Review{
		{Author: "bob", State: ReviewStateApproved, SubmittedAt: created.Add(time.Hour)},
		{Author: "carol", State: ReviewStateChangesRequested, SubmittedAt: created.Add(2 * time.Hour)},
	}

	m := Compute("alice", created, nil, reviews, now, Options{})

	if !m.IsApproved || !m.HasChangesRequested {
		t.Errorf("Expected both flags set when latest reviews disagree, got approved=%v changesRequested=%v",
			m.IsApproved, m.HasChangesRequested)
	}
}

func TestCompute_CommentedInvalidatesNothingForOthers(t *testing.T) {
	created := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	reviews := []Review{
		{Author: "bob", State: ReviewStateApproved, SubmittedAt: created.Add(time.Hour)},
		{Author: "carol", State: ReviewStateCommented, SubmittedAt: created.Add(2 * time.Hour)},
	}

	m := Compute("alice", created, nil, reviews, now, Options{})

	if !m.IsApproved {
		t.Error("Expected bob's APPROVED to survive carol's later COMMENTED")
	}
}

func TestCompute_StalenessTracksLastActivity(t *testing.T) {
	created := time.Date(2026, time.February, 16, 9, 0, 0, 0, time.UTC) // three weeks back
	comments := []Comment{
		{Author: "bob", CreatedAt: time.Date(2026, time.March, 6, 10, 0, 0, 0, time.UTC)}, // Friday
	}

	m := Compute("alice", created, comments, nil, now, Options{})

	if m.Staleness != 2 {
		t.Errorf("Expected staleness 2 (Friday comment to Monday now), got %d", m.Staleness)
	}
	if m.Age <= m.Staleness {
		t.Errorf("Expected age (%d) to exceed staleness (%d)", m.Age, m.Staleness)
	}
}

func TestCompute_ExcludeAuthorScope(t *testing.T) {
	created := time.Date(2026, time.February, 16, 9, 0, 0, 0, time.UTC)
	comments := []Comment{
		// Only the author has touched the PR since creation.
		{Author: "alice", CreatedAt: time.Date(2026, time.March, 6, 10, 0, 0, 0, time.UTC)},
	}

	all := Compute("alice", created, comments, nil, now, Options{Scope: ScopeAll})
	excl := Compute("alice", created, comments, nil, now, Options{Scope: ScopeExcludeAuthor})

	if all.Staleness != 2 {
		t.Errorf("Expected scope=all staleness 2, got %d", all.Staleness)
	}
	if excl.Staleness != excl.Age {
		t.Errorf("Expected scope=exclude_author to ignore the author's comment: staleness %d, age %d",
			excl.Staleness, excl.Age)
	}
}

func TestZero(t *testing.T) {
	z := Zero()
	if z.Age != 0 || z.Staleness != 0 || z.IsApproved || z.HasChangesRequested {
		t.Errorf("Expected zero-valued metrics, got %+v", z)
	}
}
