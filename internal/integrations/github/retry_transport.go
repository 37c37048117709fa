// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-03-03
// Last Modified: 2026-03-03

package github

import (
	"fmt"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const (
	// retryAttempts is the maximum number of retry attempts.
	retryAttempts = 4
	// retryDelay is the initial retry delay.
	retryDelay = 1 * time.Second
	// retryMaxDelay is the maximum retry delay.
	retryMaxDelay = 30 * time.Second
	// retryMaxJitter adds randomness to prevent thundering herd.
	retryMaxJitter = 1 * time.Second
)

// retryTransport wraps an http.RoundTripper with exponential backoff and
// jitter. Only idempotent GET requests and retryable status codes (5xx,
// 429) are retried.
type retryTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface with retry logic.
func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if req.Method != http.MethodGet {
		return base.RoundTrip(req)
	}

	var resp *http.Response
	err := retry.Do(
		func() error {
			var err error
			resp, err = base.RoundTrip(req)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				status := resp.StatusCode
				if closeErr := resp.Body.Close(); closeErr != nil {
					return fmt.Errorf("status %d (body close: %v)", status, closeErr)
				}
				return fmt.Errorf("retryable status %d", status)
			}
			return nil
		},
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.MaxDelay(retryMaxDelay),
		retry.MaxJitter(retryMaxJitter),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(req.Context()),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
