package http

import (
	"sort"
	"sync"

	"github.com/sora4431/ghstats/internal/render"
)

// Store holds the most recently rendered card set. The refresh loop
// replaces the whole set atomically while handlers read from it.
type Store struct {
	m     sync.RWMutex
	cards map[string][]byte
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		cards: make(map[string][]byte),
	}
}

// Replace swaps in a freshly rendered card set.
func (s *Store) Replace(cards []render.Card) {
	next := make(map[string][]byte, len(cards))
	for _, c := range cards {
		next[c.Name()] = c.Data
	}

	s.m.Lock()
	s.cards = next
	s.m.Unlock()
}

// Card returns one rendered document by file name.
func (s *Store) Card(name string) ([]byte, bool) {
	s.m.RLock()
	defer s.m.RUnlock()

	data, ok := s.cards[name]
	return data, ok
}

// Names returns the available document names, sorted.
func (s *Store) Names() []string {
	s.m.RLock()
	defer s.m.RUnlock()

	names := make([]string, 0, len(s.cards))
	for n := range s.cards {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
