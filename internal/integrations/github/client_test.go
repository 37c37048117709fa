// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-03
// Last Modified: 2026-03-08

package github

import (
	"testing"
	"time"

	"github.com/google/go-github/v60/github"
)

func TestToRawPR(t *testing.T) {
	created := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	pr := &github.PullRequest{
		Number:    github.Int(42),
		Title:     github.String("Fix ownership resolution"),
		User:      &github.User{Login: github.String("alice")},
		CreatedAt: &github.Timestamp{Time: created},
		Draft:     github.Bool(true),
		HTMLURL:   github.String("https://github.com/similigh/engine/pull/42"),
		Labels: []*github.Label{
			{Name: github.String("priority")},
			{Name: github.String("bug")},
		},
		Assignees: []*github.User{
			{Login: github.String("bob")},
		},
		RequestedTeams: []*github.Team{
			{Slug: github.String("foundation")},
		},
	}

	raw := toRawPR(pr)

	if raw.Number != 42 {
		t.Errorf("Expected number 42, got %d", raw.Number)
	}
	if raw.Author != "alice" {
		t.Errorf("Expected author 'alice', got %s", raw.Author)
	}
	if !raw.CreatedAt.Equal(created) {
		t.Errorf("Expected created %v, got %v", created, raw.CreatedAt)
	}
	if !raw.Draft {
		t.Error("Expected draft flag to carry over")
	}
	if len(raw.Labels) != 2 || raw.Labels[0] != "priority" {
		t.Errorf("Expected labels [priority bug], got %v", raw.Labels)
	}
	if len(raw.Assignees) != 1 || raw.Assignees[0] != "bob" {
		t.Errorf("Expected assignees [bob], got %v", raw.Assignees)
	}
	if len(raw.RequestedTeams) != 1 || raw.RequestedTeams[0] != "foundation" {
		t.Errorf("Expected requested teams [foundation], got %v", raw.RequestedTeams)
	}
}

func TestToRawPR_MissingOptionalFields(t *testing.T) {
	raw := toRawPR(&github.PullRequest{Number: github.Int(7)})

	if raw.Number != 7 {
		t.Errorf("Expected number 7, got %d", raw.Number)
	}
	if raw.Author != "" {
		t.Errorf("Expected empty author for missing user, got %q", raw.Author)
	}
	if raw.Labels != nil || raw.Assignees != nil || raw.RequestedTeams != nil {
		t.Errorf("Expected nil slices for missing fields, got %v %v %v", raw.Labels, raw.Assignees, raw.RequestedTeams)
	}
}
