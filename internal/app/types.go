package app

import "time"

// Window is a bounded [From, To) date range submitted to the contributions
// query in place of an unbounded "all history" request. The API refuses
// ranges longer than a year.
type Window struct {
	From time.Time
	To   time.Time
}

// Totals holds cumulative contribution counters. Counters are only ever
// incremented while folding windows.
type Totals struct {
	Commits      int
	PullRequests int
	Reviews      int
	Issues       int
}

// CalendarDay is a single day's contribution count as reported by the API.
// Date has "YYYY-MM-DD" format.
type CalendarDay struct {
	Date  string
	Count int
}

// LanguageSize is one language's byte share within a single repository.
type LanguageSize struct {
	Name  string
	Color string
	Bytes int
}

// RepoContribution describes a repository the account committed to during
// one window.
type RepoContribution struct {
	IsFork    bool
	Languages []LanguageSize
}

// Contributions is the payload returned for one window.
type Contributions struct {
	Totals       Totals
	Days         []CalendarDay
	Repositories []RepoContribution
}

// Profile holds account metadata needed to bound the aggregation.
type Profile struct {
	CreatedAt time.Time
}

// RepoSummary is one entry of the paginated owned-repository list.
type RepoSummary struct {
	Stars     int
	CreatedAt time.Time
	IsFork    bool
}

// RepoPage is a single page of the repository list.
type RepoPage struct {
	Repos     []RepoSummary
	HasNext   bool
	EndCursor string
}

// LanguageStat is one language's aggregated byte total across all non-fork
// repositories the account contributed to.
type LanguageStat struct {
	Name  string
	Color string
	Bytes int
}

// Stats is the fully aggregated account history for one run.
type Stats struct {
	Login     string
	CreatedAt time.Time

	Totals    Totals
	RepoCount int
	Stars     int

	// Monthly maps "YYYY-MM" to contribution counts summed over the
	// calendar days of all windows.
	Monthly map[string]int

	// Languages is kept in first-seen order; ranking happens at render time.
	Languages []LanguageStat

	// PublicOnly is true when the run used the named-user query variant,
	// which only sees public contributions.
	PublicOnly bool

	GeneratedAt time.Time
}
