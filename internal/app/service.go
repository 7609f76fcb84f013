package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GithubClient returns account data from the github API.
type GithubClient interface {
	Profile(ctx context.Context) (Profile, error)
	Contributions(ctx context.Context, w Window) (Contributions, error)
	Repositories(ctx context.Context, cursor string) (RepoPage, error)
}

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// maxRepoPages bounds the repository list walk. The API should report page
// exhaustion long before this; the cap guards against a malformed source
// that keeps answering hasNextPage=true.
const maxRepoPages = 50

// Service is main apps entry point. Builds full-history account stats from
// the windowed and paginated github queries.
type Service struct {
	client      GithubClient
	store       KVStore
	snapshotTTL time.Duration
	l           logrus.FieldLogger

	// now is captured once per BuildStats call so every window and series
	// computation shares one notion of the present.
	now func() time.Time
}

// NewService creates new Service instance. store is optional; when set,
// successful runs are snapshotted and a failed fetch falls back to the most
// recent snapshot within snapshotTTL.
func NewService(client GithubClient, store KVStore, snapshotTTL time.Duration, l logrus.FieldLogger) *Service {
	return &Service{
		client:      client,
		store:       store,
		snapshotTTL: snapshotTTL,
		l:           l,
		now:         time.Now,
	}
}

// BuildStats reconstructs the account's full-history stats. Window and page
// fetch failures degrade to empty payloads; only a failure to establish the
// aggregation bounds (the profile query) is terminal, and even then a stored
// snapshot is served if one is fresh enough.
func (s *Service) BuildStats(ctx context.Context, login string, publicOnly bool) (Stats, error) {
	if login == "" {
		return Stats{}, InvalidRequestError("login cannot be empty")
	}

	now := s.now().UTC()

	profile, err := s.client.Profile(ctx)
	if err != nil {
		if snap, ok := s.readSnapshot(login); ok {
			s.l.Warnf("profile query failed, serving snapshot from %s: %v", snap.SavedAt.Format(time.RFC3339), err)
			return snap.Stats, nil
		}
		return Stats{}, errors.Wrap(err, "retrieving profile")
	}

	agg := NewAggregator()
	for _, w := range Windows(profile.CreatedAt, now) {
		c, err := s.client.Contributions(ctx, w)
		if err != nil {
			s.l.Warnf("contributions query for %s..%s failed, folding empty window: %v",
				w.From.Format("2006-01-02"), w.To.Format("2006-01-02"), err)
			continue
		}
		agg.Fold(c)
	}

	repoCount, stars := s.walkRepositories(ctx)

	stats := Stats{
		Login:       login,
		CreatedAt:   profile.CreatedAt,
		Totals:      agg.Totals(),
		RepoCount:   repoCount,
		Stars:       stars,
		Monthly:     agg.Monthly(),
		Languages:   agg.Languages(),
		PublicOnly:  publicOnly,
		GeneratedAt: now,
	}

	s.writeSnapshot(login, stats)

	return stats, nil
}

// walkRepositories follows the cursor-paginated repository list until the
// source reports exhaustion, counting owned non-fork repositories and their
// stars. Fork entries keep their place in the page stream but contribute
// nothing to either counter.
func (s *Service) walkRepositories(ctx context.Context) (repoCount, stars int) {
	cursor := ""
	for page := 0; ; page++ {
		if page >= maxRepoPages {
			s.l.Warnf("repository list did not report exhaustion after %d pages, stopping", maxRepoPages)
			return repoCount, stars
		}

		rp, err := s.client.Repositories(ctx, cursor)
		if err != nil {
			s.l.Warnf("repository list query failed on page %d: %v", page, err)
			return repoCount, stars
		}

		for _, r := range rp.Repos {
			if r.IsFork {
				continue
			}
			repoCount++
			stars += r.Stars
		}

		if !rp.HasNext {
			return repoCount, stars
		}
		cursor = rp.EndCursor
	}
}

type snapshot struct {
	SavedAt time.Time `json:"savedAt"`
	Stats   Stats     `json:"stats"`
}

func (s *Service) readSnapshot(login string) (snapshot, bool) {
	if s.store == nil {
		return snapshot{}, false
	}

	data, err := s.store.ReadKey([]byte(login))
	if err != nil {
		s.l.Warnf("reading stats snapshot: %v", err)
		return snapshot{}, false
	}
	if data == nil {
		return snapshot{}, false
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.l.Warnf("unmarshalling stats snapshot: %v", err)
		return snapshot{}, false
	}
	if snap.SavedAt.Add(s.snapshotTTL).Before(s.now()) {
		return snapshot{}, false
	}

	return snap, true
}

func (s *Service) writeSnapshot(login string, stats Stats) {
	if s.store == nil {
		return
	}

	data, err := json.Marshal(snapshot{SavedAt: s.now(), Stats: stats})
	if err != nil {
		s.l.Warnf("marshalling stats snapshot: %v", err)
		return
	}
	if err := s.store.UpdateKey([]byte(login), data); err != nil {
		s.l.Warnf("writing stats snapshot: %v", err)
	}
}
