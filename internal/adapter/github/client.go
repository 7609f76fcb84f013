package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sora4431/ghstats/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// QueryMode selects the account root of every query. It is resolved once at
// construction: a personal access token sees the authenticated viewer
// (private and public contributions), a plain token sees a named user
// (public only).
type QueryMode int

// Query modes.
const (
	ModeViewer QueryMode = iota
	ModeNamedUser
)

// Client issues GraphQL queries about a github account.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer    HTTPDoer
	address string
	token   string
	mode    QueryMode
	login   string
	l       logrus.FieldLogger

	maxAttempts     int
	backoff         func(attempt int) time.Duration
	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// login is only used in ModeNamedUser.
func NewClient(doer HTTPDoer, address string, token string, mode QueryMode, login string, l logrus.FieldLogger) *Client {
	return &Client{
		doer:    doer,
		address: address,
		token:   token,
		mode:    mode,
		login:   login,
		l:       l,

		maxAttempts: 3,
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<uint(attempt-1)) * time.Second
		},
		responseMaxSize: 1024 * 1024 * 10,
	}
}

// Profile returns account metadata.
func (c *Client) Profile(ctx context.Context) (app.Profile, error) {
	resp, err := c.post(ctx, c.wrapQuery("", profileFields), c.vars(nil))
	if err != nil {
		return app.Profile{}, fmt.Errorf("querying profile: %w", err)
	}

	return resp.account().toProfile()
}

// Contributions returns the contribution payload for one window.
func (c *Client) Contributions(ctx context.Context, w app.Window) (app.Contributions, error) {
	vars := c.vars(map[string]interface{}{
		"from": w.From.UTC().Format(time.RFC3339),
		"to":   w.To.UTC().Format(time.RFC3339),
	})

	resp, err := c.post(ctx, c.wrapQuery("$from: DateTime!, $to: DateTime!", contributionsFields), vars)
	if err != nil {
		return app.Contributions{}, fmt.Errorf("querying contributions: %w", err)
	}

	return resp.account().toContributions(), nil
}

// Repositories returns one page of the owned repository list. An empty
// cursor requests the first page.
func (c *Client) Repositories(ctx context.Context, cursor string) (app.RepoPage, error) {
	var after interface{}
	if cursor != "" {
		after = cursor
	}
	vars := c.vars(map[string]interface{}{"cursor": after})

	resp, err := c.post(ctx, c.wrapQuery("$cursor: String", repositoriesFields), vars)
	if err != nil {
		return app.RepoPage{}, fmt.Errorf("querying repositories: %w", err)
	}

	return resp.account().toRepoPage(), nil
}

// wrapQuery wraps inner fields in viewer{} or user(login:){} depending on
// the query mode.
func (c *Client) wrapQuery(decls, inner string) string {
	if c.mode == ModeViewer {
		if decls == "" {
			return "query { viewer { " + inner + " } }"
		}
		return "query(" + decls + ") { viewer { " + inner + " } }"
	}

	d := "$login: String!"
	if decls != "" {
		d += ", " + decls
	}
	return "query(" + d + ") { user(login: $login) { " + inner + " } }"
}

func (c *Client) vars(extra map[string]interface{}) map[string]interface{} {
	vars := make(map[string]interface{}, len(extra)+1)
	if c.mode == ModeNamedUser {
		vars["login"] = c.login
	}
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

// post sends a GraphQL query, retrying transport-level failures with
// backoff. A parsed response carrying GraphQL errors is not retried: it is
// logged and returned as-is so missing fields default downstream.
func (c *Client) post(ctx context.Context, query string, vars map[string]interface{}) (accountResponse, error) {
	payload, err := jsoniter.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return accountResponse{}, fmt.Errorf("marshalling request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.backoff(attempt - 1)):
			case <-ctx.Done():
				return accountResponse{}, ctx.Err()
			}
		}

		body, err := c.doRequest(ctx, payload)
		if err != nil {
			lastErr = err
			c.l.Warnf("github api call failed (attempt %d/%d): %v", attempt, c.maxAttempts, err)
			continue
		}

		var resp accountResponse
		if err := jsoniter.Unmarshal(body, &resp); err != nil {
			return accountResponse{}, fmt.Errorf("unmarshalling response: %w", err)
		}

		for _, e := range resp.Errors {
			c.l.Warnf("github api reported error: %s", e.Message)
		}

		return resp, nil
	}

	return accountResponse{}, fmt.Errorf("github api call failed after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, app.TooManyRequestsError("rate limit exceeded")
		}
		return nil, errors.New("got invalid http status code: " + strconv.Itoa(resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
