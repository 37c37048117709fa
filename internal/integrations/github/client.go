// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-03
// Last Modified: 2026-03-08

// Package github wraps the GitHub API for the triage pipeline: open PR
// listing, per-PR detail fetches, and file content retrieval.
package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/pr-triage/internal/analyze"
	"github.com/similigh/pr-triage/internal/metrics"
)

// perPage is the page size for list calls.
const perPage = 100

// Client wraps the GitHub API client for one repository. It implements
// analyze.Fetcher.
type Client struct {
	client *github.Client
	org    string
	repo   string
}

// ListOpenPullRequests fetches all open PRs for the repository.
func (c *Client) ListOpenPullRequests(ctx context.Context) ([]analyze.RawPR, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var prs []analyze.RawPR
	for {
		page, resp, err := c.client.PullRequests.List(ctx, c.org, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}
		for _, pr := range page {
			prs = append(prs, toRawPR(pr))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return prs, nil
}

// ListChangedFiles fetches the changed file paths of one PR.
func (c *Client) ListChangedFiles(ctx context.Context, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var files []string
	for {
		page, resp, err := c.client.PullRequests.ListFiles(ctx, c.org, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list files for PR #%d: %w", number, err)
		}
		for _, f := range page {
			files = append(files, f.GetFilename())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return files, nil
}

// ListComments fetches the conversation comments of one PR.
func (c *Client) ListComments(ctx context.Context, number int) ([]metrics.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var comments []metrics.Comment
	for {
		page, resp, err := c.client.Issues.ListComments(ctx, c.org, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for PR #%d: %w", number, err)
		}
		for _, cm := range page {
			comments = append(comments, metrics.Comment{
				Author:    cm.GetUser().GetLogin(),
				CreatedAt: cm.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return comments, nil
}

// ListReviews fetches the submitted reviews of one PR.
func (c *Client) ListReviews(ctx context.Context, number int) ([]metrics.Review, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var reviews []metrics.Review
	for {
		page, resp, err := c.client.PullRequests.ListReviews(ctx, c.org, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews for PR #%d: %w", number, err)
		}
		for _, r := range page {
			reviews = append(reviews, metrics.Review{
				Author:      r.GetUser().GetLogin(),
				State:       metrics.ReviewState(r.GetState()),
				SubmittedAt: r.GetSubmittedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return reviews, nil
}

// GetFileContent fetches the decoded content of a repository file. An
// empty ref means the default branch. Used for the CODEOWNERS file and
// for remote config inheritance.
func (c *Client) GetFileContent(ctx context.Context, org, repo, path, ref string) ([]byte, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	file, _, _, err := c.client.Repositories.GetContents(ctx, org, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s:%s: %w", org, repo, path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s/%s:%s is a directory, not a file", org, repo, path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s:%s: %w", org, repo, path, err)
	}
	return []byte(content), nil
}

// GetCodeowners fetches the repository's ownership rule file.
func (c *Client) GetCodeowners(ctx context.Context, path string) ([]byte, error) {
	return c.GetFileContent(ctx, c.org, c.repo, path, "")
}

// ListOrgMembers fetches the logins of all organization members, used to
// tell team PRs from community contributions.
func (c *Client) ListOrgMembers(ctx context.Context) ([]string, error) {
	opts := &github.ListMembersOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var members []string
	for {
		page, resp, err := c.client.Organizations.ListMembers(ctx, c.org, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list members of %s: %w", c.org, err)
		}
		for _, m := range page {
			members = append(members, m.GetLogin())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return members, nil
}

// toRawPR maps a GitHub PR to the pipeline's raw record.
func toRawPR(pr *github.PullRequest) analyze.RawPR {
	raw := analyze.RawPR{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Author:    pr.GetUser().GetLogin(),
		CreatedAt: pr.GetCreatedAt().Time,
		Draft:     pr.GetDraft(),
		URL:       pr.GetHTMLURL(),
	}
	for _, l := range pr.Labels {
		raw.Labels = append(raw.Labels, l.GetName())
	}
	for _, a := range pr.Assignees {
		raw.Assignees = append(raw.Assignees, a.GetLogin())
	}
	for _, t := range pr.RequestedTeams {
		raw.RequestedTeams = append(raw.RequestedTeams, t.GetSlug())
	}
	return raw
}
