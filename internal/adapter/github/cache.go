package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sora4431/ghstats/internal/app"
)

// CachedClient wraps github client with caching layer. In serve mode the
// same windows and pages are re-fetched on every refresh; entries within
// ttl are served from memory instead.
type CachedClient struct {
	client             app.GithubClient
	contributionsCache *lru.Cache
	reposCache         *lru.Cache
	ttl                time.Duration

	profile        app.Profile
	profileCreated time.Time
}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	contributionsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for contributions: %w", err)
	}
	reposCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for repositories: %w", err)
	}

	return &CachedClient{
		client:             client,
		contributionsCache: contributionsCache,
		reposCache:         reposCache,
		ttl:                ttl,
	}, nil
}

// Profile returns account metadata.
func (c *CachedClient) Profile(ctx context.Context) (app.Profile, error) {
	if !c.profileCreated.IsZero() && c.profileCreated.Add(c.ttl).After(time.Now()) {
		return c.profile, nil
	}

	profile, err := c.client.Profile(ctx)
	if err != nil {
		return profile, err
	}

	c.profile = profile
	c.profileCreated = time.Now()

	return profile, nil
}

type contributionsCacheEntry struct {
	data    app.Contributions
	created time.Time
}

// Contributions returns the contribution payload for one window.
func (c *CachedClient) Contributions(ctx context.Context, w app.Window) (app.Contributions, error) {
	key := c.windowCacheKey(w)
	if val, ok := c.contributionsCache.Get(key); ok {
		entry := val.(contributionsCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	contributions, err := c.client.Contributions(ctx, w)
	if err != nil {
		return contributions, err
	}

	c.contributionsCache.Add(key, contributionsCacheEntry{
		data:    contributions,
		created: time.Now(),
	})

	return contributions, nil
}

type reposCacheEntry struct {
	data    app.RepoPage
	created time.Time
}

// Repositories returns one page of the owned repository list.
func (c *CachedClient) Repositories(ctx context.Context, cursor string) (app.RepoPage, error) {
	if val, ok := c.reposCache.Get(cursor); ok {
		entry := val.(reposCacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data, nil
		}
	}

	page, err := c.client.Repositories(ctx, cursor)
	if err != nil {
		return page, err
	}

	c.reposCache.Add(cursor, reposCacheEntry{
		data:    page,
		created: time.Now(),
	})

	return page, nil
}

func (c *CachedClient) windowCacheKey(w app.Window) string {
	return w.From.UTC().Format(time.RFC3339) + "|" + w.To.UTC().Format(time.RFC3339)
}
