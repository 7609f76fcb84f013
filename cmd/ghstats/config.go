package main

import "time"

// Config is the container for app configuration
type Config struct {
	// Login - github account the cards are generated for
	Login string `required:"true"`

	// StatsToken - personal access token with repo + read:user scopes.
	// When set, queries run as the authenticated viewer and include
	// private contributions.
	StatsToken string `default:""`

	// GithubToken - fallback token. Queries run against the named user and
	// only see public contributions.
	GithubToken string `default:""`

	// GithubAPIAddress - address of the github graphql endpoint
	GithubAPIAddress string `default:"https://api.github.com/graphql"`

	// GithubAPIRateLimit - max frequency for github api calls
	GithubAPIRateLimit float64 `default:"0.5"`

	// GithubTimeout - timeout for single github api calls
	GithubTimeout time.Duration `default:"15s"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"1000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"30m"`

	// SnapshotDBPath - filepath for bolt db with stats snapshots
	SnapshotDBPath string `default:"./ghstats.data"`

	// SnapshotDBBucketName - bolt db bucket name
	SnapshotDBBucketName string `default:"snapshots"`

	// SnapshotTTL - maximum age for a snapshot to be served after a failed fetch
	SnapshotTTL time.Duration `default:"24h"`

	// OutputDir - directory the svg documents are written to in one-shot mode
	OutputDir string `default:"./output/assets/svg"`

	// HTTPServerAddress - listen address for the card server. If empty,
	// the app runs once, writes the svg files and exits.
	HTTPServerAddress string `default:""`

	// RefreshInterval - how often the card server regenerates the cards
	RefreshInterval time.Duration `default:"1h"`

	// TrendMonths - number of calendar months on the trend chart
	TrendMonths int `default:"18"`

	// TopLanguages - number of languages kept on the language bar
	TopLanguages int `default:"7"`

	// Radar axis ceilings treated as 100%.
	RadarCommitsBenchmark float64 `default:"1000"`
	RadarPRsBenchmark     float64 `default:"200"`
	RadarReviewsBenchmark float64 `default:"100"`
	RadarIssuesBenchmark  float64 `default:"100"`
	RadarStarsBenchmark   float64 `default:"500"`
}
