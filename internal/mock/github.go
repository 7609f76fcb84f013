package mock

import (
	"context"

	"github.com/sora4431/ghstats/internal/app"
)

// GithubClient mocks app.GithubClient
type GithubClient struct {
	ProfileFunc       func(ctx context.Context) (app.Profile, error)
	ContributionsFunc func(ctx context.Context, w app.Window) (app.Contributions, error)
	RepositoriesFunc  func(ctx context.Context, cursor string) (app.RepoPage, error)

	// ContributionWindows records every window passed to Contributions.
	ContributionWindows []app.Window

	// RepoCursors records every cursor passed to Repositories.
	RepoCursors []string
}

// Profile returns fake profile data
func (m *GithubClient) Profile(ctx context.Context) (app.Profile, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx)
	}

	return app.Profile{}, nil
}

// Contributions returns fake contributions data
func (m *GithubClient) Contributions(ctx context.Context, w app.Window) (app.Contributions, error) {
	m.ContributionWindows = append(m.ContributionWindows, w)

	if m.ContributionsFunc != nil {
		return m.ContributionsFunc(ctx, w)
	}

	return app.Contributions{}, nil
}

// Repositories returns fake repository list pages
func (m *GithubClient) Repositories(ctx context.Context, cursor string) (app.RepoPage, error) {
	m.RepoCursors = append(m.RepoCursors, cursor)

	if m.RepositoriesFunc != nil {
		return m.RepositoriesFunc(ctx, cursor)
	}

	return app.RepoPage{}, nil
}
