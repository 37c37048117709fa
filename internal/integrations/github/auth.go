// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-03
// Last Modified: 2026-03-03

package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// NewClient creates a new GitHub client for one repository using the
// provided token. If token is empty, it returns an unauthenticated client.
// All requests go through the retrying transport.
func NewClient(ctx context.Context, token, org, repo string) *Client {
	base := &retryTransport{}

	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: base})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{Transport: base}
	}

	return &Client{
		client: github.NewClient(hc),
		org:    org,
		repo:   repo,
	}
}
