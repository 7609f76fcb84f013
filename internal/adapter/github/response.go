package github

import (
	"fmt"
	"time"

	"github.com/sora4431/ghstats/internal/app"
)

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type accountResponse struct {
	Data struct {
		Viewer *accountData `json:"viewer"`
		User   *accountData `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// account unwraps whichever account root the query mode produced. Missing
// data yields an empty accountData so every field defaults to zero.
func (r accountResponse) account() accountData {
	if r.Data.Viewer != nil {
		return *r.Data.Viewer
	}
	if r.Data.User != nil {
		return *r.Data.User
	}
	return accountData{}
}

type accountData struct {
	CreatedAt               string             `json:"createdAt"`
	ContributionsCollection *contribCollection `json:"contributionsCollection"`
	Repositories            *repoConnection    `json:"repositories"`
}

type contribCollection struct {
	TotalCommitContributions            int `json:"totalCommitContributions"`
	TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
	TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
	TotalIssueContributions             int `json:"totalIssueContributions"`
	ContributionCalendar                struct {
		Weeks []struct {
			ContributionDays []struct {
				Date              string `json:"date"`
				ContributionCount int    `json:"contributionCount"`
			} `json:"contributionDays"`
		} `json:"weeks"`
	} `json:"contributionCalendar"`
	CommitContributionsByRepository []struct {
		Repository struct {
			IsFork    bool `json:"isFork"`
			Languages struct {
				Edges []struct {
					Size int `json:"size"`
					Node struct {
						Name  string `json:"name"`
						Color string `json:"color"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"languages"`
		} `json:"repository"`
	} `json:"commitContributionsByRepository"`
}

type repoConnection struct {
	PageInfo struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
	Nodes []struct {
		StargazerCount int    `json:"stargazerCount"`
		CreatedAt      string `json:"createdAt"`
		IsFork         bool   `json:"isFork"`
	} `json:"nodes"`
}

func (a accountData) toProfile() (app.Profile, error) {
	created, err := time.Parse(time.RFC3339, a.CreatedAt)
	if err != nil {
		return app.Profile{}, fmt.Errorf("parsing account createdAt %q: %w", a.CreatedAt, err)
	}

	return app.Profile{CreatedAt: created}, nil
}

func (a accountData) toContributions() app.Contributions {
	cc := a.ContributionsCollection
	if cc == nil {
		return app.Contributions{}
	}

	c := app.Contributions{
		Totals: app.Totals{
			Commits:      cc.TotalCommitContributions,
			PullRequests: cc.TotalPullRequestContributions,
			Reviews:      cc.TotalPullRequestReviewContributions,
			Issues:       cc.TotalIssueContributions,
		},
	}

	for _, week := range cc.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			c.Days = append(c.Days, app.CalendarDay{
				Date:  day.Date,
				Count: day.ContributionCount,
			})
		}
	}

	for _, rc := range cc.CommitContributionsByRepository {
		repo := app.RepoContribution{
			IsFork: rc.Repository.IsFork,
		}
		for _, edge := range rc.Repository.Languages.Edges {
			repo.Languages = append(repo.Languages, app.LanguageSize{
				Name:  edge.Node.Name,
				Color: edge.Node.Color,
				Bytes: edge.Size,
			})
		}
		c.Repositories = append(c.Repositories, repo)
	}

	return c
}

func (a accountData) toRepoPage() app.RepoPage {
	rc := a.Repositories
	if rc == nil {
		return app.RepoPage{}
	}

	page := app.RepoPage{
		HasNext:   rc.PageInfo.HasNextPage,
		EndCursor: rc.PageInfo.EndCursor,
	}
	for _, n := range rc.Nodes {
		created, _ := time.Parse(time.RFC3339, n.CreatedAt)
		page.Repos = append(page.Repos, app.RepoSummary{
			Stars:     n.StargazerCount,
			CreatedAt: created,
			IsFork:    n.IsFork,
		})
	}

	return page
}
