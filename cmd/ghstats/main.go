package main

import (
	"context"
	netHttp "net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/sora4431/ghstats/internal/adapter/github"
	api "github.com/sora4431/ghstats/internal/api/http"
	"github.com/sora4431/ghstats/internal/api/http/limiter"
	"github.com/sora4431/ghstats/internal/app"
	"github.com/sora4431/ghstats/internal/database"
	"github.com/sora4431/ghstats/internal/render"
)

func main() {
	_ = godotenv.Load()

	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	token := conf.StatsToken
	mode := github.ModeViewer
	publicOnly := false
	if token == "" {
		token = conf.GithubToken
		mode = github.ModeNamedUser
		publicOnly = true
		l.Info("STATSTOKEN not set, falling back to public-only queries")
	}

	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		token,
		mode,
		conf.Login,
		l.WithField("component", "githubClient"),
	)
	cachedClient, err := github.NewCachedClient(
		githubClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	kvStore, err := database.NewBoltKVStore(
		conf.SnapshotDBPath,
		conf.SnapshotDBBucketName,
	)
	if err != nil {
		l.Fatalf("couldn't create bolt kv store: %v", err)
	}
	defer kvStore.Close()

	service := app.NewService(
		cachedClient,
		kvStore,
		conf.SnapshotTTL,
		l.WithField("component", "service"),
	)

	opts := render.Options{
		TrendMonths:  conf.TrendMonths,
		TopLanguages: conf.TopLanguages,
		Benchmarks: render.Benchmarks{
			Commits:      conf.RadarCommitsBenchmark,
			PullRequests: conf.RadarPRsBenchmark,
			Reviews:      conf.RadarReviewsBenchmark,
			Issues:       conf.RadarIssuesBenchmark,
			Stars:        conf.RadarStarsBenchmark,
		},
	}

	generate := func() ([]render.Card, error) {
		stats, err := service.BuildStats(context.Background(), conf.Login, publicOnly)
		if err != nil {
			return nil, err
		}
		return render.Cards(stats, opts)
	}

	if conf.HTTPServerAddress == "" {
		runOnce(l, generate, conf.OutputDir)
		return
	}

	runServer(l, generate, conf)
}

func runOnce(l *logrus.Logger, generate func() ([]render.Card, error), outputDir string) {
	cards, err := generate()
	if err != nil {
		l.Fatalf("couldn't build stats: %v", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		l.Fatalf("couldn't create output dir: %v", err)
	}

	for _, card := range cards {
		path := filepath.Join(outputDir, card.Name())
		if err := os.WriteFile(path, card.Data, 0o644); err != nil {
			l.Fatalf("couldn't write %s: %v", path, err)
		}
		l.Infof("saved %s", path)
	}
}

func runServer(l *logrus.Logger, generate func() ([]render.Card, error), conf Config) {
	store := api.NewStore()

	refresh := func() {
		cards, err := generate()
		if err != nil {
			l.Errorf("couldn't refresh cards: %v", err)
			return
		}
		store.Replace(cards)
		l.Infof("refreshed %d cards", len(cards))
	}

	refresh()
	ticker := time.NewTicker(conf.RefreshInterval)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			refresh()
		}
	}()

	mux := api.NewMux(store, 60*time.Second, l.WithField("component", "mux"))
	server := api.NewServer(
		conf.HTTPServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
